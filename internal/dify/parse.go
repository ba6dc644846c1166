package dify

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"

	"github.com/laipz8200/anime-librarian/internal/plan"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// aiResult is the payload embedded in data.outputs.text.
type aiResult struct {
	Result []plan.NamePair `json:"result"`
}

// extractText pulls the embedded payload string out of the workflow reply,
// which nests it as data.outputs.text.
func extractText(body []byte) (string, error) {
	res := gjson.GetBytes(body, "data.outputs.text")
	if !res.Exists() || res.Type != gjson.String {
		return "", fmt.Errorf("%w: missing data.outputs.text", ErrResponseShape)
	}
	return res.String(), nil
}

// parseNamePairs decodes the payload text into name pairs. Near-miss JSON
// (trailing commas, unquoted keys) is repaired first; anything still
// unparseable afterwards is an error, never guessed at.
func parseNamePairs(text string) ([]plan.NamePair, error) {
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, fmt.Errorf("repair JSON: %w", err)
	}

	var out aiResult
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if out.Result == nil {
		return nil, errors.New(`missing "result" array`)
	}
	for i, p := range out.Result {
		if p.OriginalName == "" || p.NewName == "" {
			return nil, fmt.Errorf("entry %d is missing original_name or new_name", i)
		}
	}
	return out.Result, nil
}
