package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var _ Extractor = JSONExtractor{}

// JSONExtractor flattens arbitrary JSON into dotted key-value lines so the
// structure reads as plain text. Object keys are emitted in sorted order
// for deterministic output.
type JSONExtractor struct{}

// maxJSONDepth bounds recursion on adversarially nested input.
const maxJSONDepth = 100

func (JSONExtractor) Extract(content []byte) (string, error) {
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return "", nil
	}

	var data any
	if err := json.Unmarshal(content, &data); err != nil {
		return "", fmt.Errorf("parse json: %w", err)
	}

	var lines []string
	flattenJSON("", data, &lines, 0)
	return strings.Join(lines, "\n"), nil
}

func flattenJSON(prefix string, v any, lines *[]string, depth int) {
	if depth >= maxJSONDepth {
		*lines = append(*lines, labelOr(prefix)+": <truncated>")
		return
	}

	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenJSON(key, val[k], lines, depth+1)
		}
	case []any:
		if scalarsOnly(val) {
			parts := make([]string, len(val))
			for i, item := range val {
				parts[i] = formatScalar(item)
			}
			*lines = append(*lines, labelOr(prefix)+": "+strings.Join(parts, ", "))
			return
		}
		for _, item := range val {
			flattenJSON(prefix, item, lines, depth+1)
		}
	case nil:
		// null carries no text
	default:
		*lines = append(*lines, labelOr(prefix)+": "+formatScalar(val))
	}
}

func labelOr(prefix string) string {
	if prefix == "" {
		return "value"
	}
	return prefix
}

func scalarsOnly(arr []any) bool {
	for _, v := range arr {
		switch v.(type) {
		case map[string]any, []any:
			return false
		}
	}
	return true
}

func formatScalar(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}
