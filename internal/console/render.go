package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	jsoniter "github.com/json-iterator/go"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format selects how the planned-move listing is rendered.
type Format string

const (
	FormatTable  Format = "table"
	FormatPlain  Format = "plain"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatPlain, FormatJSON, FormatNDJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected table, plain, json or ndjson)", s)
	}
}

// RenderPlan renders the suggested moves in the requested format. The
// returned string carries no trailing newline.
func RenderPlan(pairs []plan.NamePair, format Format, styles Styles) (string, error) {
	switch format {
	case FormatPlain:
		lines := make([]string, 0, len(pairs))
		for _, p := range pairs {
			lines = append(lines, fmt.Sprintf("%s -> %s", p.OriginalName, p.NewName))
		}
		return strings.Join(lines, "\n"), nil
	case FormatJSON:
		b, err := json.MarshalIndent(pairs, "", "  ")
		if err != nil {
			return "", err
		}
		return string(b), nil
	case FormatNDJSON:
		lines := make([]string, 0, len(pairs))
		for _, p := range pairs {
			b, err := json.Marshal(p)
			if err != nil {
				return "", err
			}
			lines = append(lines, string(b))
		}
		return strings.Join(lines, "\n"), nil
	default:
		return renderTable(pairs, styles), nil
	}
}

func renderTable(pairs []plan.NamePair, styles Styles) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers("Original", "New Location").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header.Padding(0, 1)
			}
			return styles.Item.Padding(0, 1)
		})
	for _, p := range pairs {
		t.Row(p.OriginalName, p.NewName)
	}
	return t.String()
}
