package console

import (
	"strings"
	"testing"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

var renderPairs = []plan.NamePair{
	{OriginalName: "ep1.mkv", NewName: "Show/Episode_01.mkv"},
	{OriginalName: "ep2.mkv", NewName: "Show/Episode_02.mkv"},
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, valid := range []string{"table", "plain", "json", "ndjson"} {
		if _, err := ParseFormat(valid); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(\"yaml\") expected error, got nil")
	}
}

func TestRenderPlanPlain(t *testing.T) {
	t.Parallel()
	got, err := RenderPlan(renderPairs, FormatPlain, PlainStyles())
	if err != nil {
		t.Fatalf("RenderPlan() error = %v", err)
	}
	want := "ep1.mkv -> Show/Episode_01.mkv\nep2.mkv -> Show/Episode_02.mkv"
	if got != want {
		t.Errorf("RenderPlan(plain) = %q, want %q", got, want)
	}
}

func TestRenderPlanJSON(t *testing.T) {
	t.Parallel()
	got, err := RenderPlan(renderPairs, FormatJSON, PlainStyles())
	if err != nil {
		t.Fatalf("RenderPlan() error = %v", err)
	}
	var decoded []plan.NamePair
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("RenderPlan(json) output is not valid JSON: %v\n%s", err, got)
	}
	if len(decoded) != 2 || decoded[0].OriginalName != "ep1.mkv" {
		t.Errorf("RenderPlan(json) decoded = %+v", decoded)
	}
}

func TestRenderPlanNDJSON(t *testing.T) {
	t.Parallel()
	got, err := RenderPlan(renderPairs, FormatNDJSON, PlainStyles())
	if err != nil {
		t.Fatalf("RenderPlan() error = %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderPlan(ndjson) produced %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var decoded plan.NamePair
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
		}
	}
}

func TestRenderPlanTable(t *testing.T) {
	t.Parallel()
	got, err := RenderPlan(renderPairs, FormatTable, PlainStyles())
	if err != nil {
		t.Fatalf("RenderPlan() error = %v", err)
	}
	for _, fragment := range []string{"Original", "New Location", "ep1.mkv", "Show/Episode_02.mkv"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("RenderPlan(table) missing %q:\n%s", fragment, got)
		}
	}
}
