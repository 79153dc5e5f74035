package recs

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrParse is returned when a completion cannot be turned into at least one
// recommendation record, even after truncation recovery. Terminal for the
// request; never retried.
var ErrParse = errors.New("failed to parse recommendations")

// ParseRecommendations turns raw completion text into loosely-typed records.
// It tolerates markdown code fences around the payload and truncated output
// (the model running out of tokens mid-object): on a failed parse it cuts
// the text at the last complete '}', closes the array and parses again.
func ParseRecommendations(content string) ([]map[string]any, error) {
	cleaned := stripFences(content)

	var recs []map[string]any
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		recovered, rerr := recoverTruncated(cleaned)
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		recs = recovered
	}

	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrParse)
	}
	return recs, nil
}

func recoverTruncated(cleaned string) ([]map[string]any, error) {
	last := strings.LastIndex(cleaned, "}")
	if last <= 0 {
		return nil, errors.New("no complete object")
	}

	truncated := cleaned[:last+1]
	if !strings.HasSuffix(strings.TrimSpace(truncated), "]") {
		truncated += "]"
	}

	var recs []map[string]any
	if err := json.Unmarshal([]byte(truncated), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func stripFences(content string) string {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-len("```")]
	}
	return strings.TrimSpace(cleaned)
}
