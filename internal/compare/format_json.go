package compare

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONFormatter renders a ComparisonSet as a single JSON document
type JSONFormatter struct {
	Pretty bool
}

// Format returns the document followed by a newline
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	marshal := json.Marshal
	if jf.Pretty {
		marshal = func(v any) ([]byte, error) { return json.MarshalIndent(v, "", "  ") }
	}

	data, err := marshal(compSet)
	if err != nil {
		return "", fmt.Errorf("marshal comparison: %w", err)
	}
	return string(data) + "\n", nil
}
