package recs

import (
	"errors"
	"testing"
)

func TestParseRecommendationsPlainArray(t *testing.T) {
	recs, err := ParseRecommendations(`[{"id": "a", "title": "One"}, {"id": "b", "title": "Two"}]`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0]["title"] != "One" {
		t.Fatalf("got title %v, want One", recs[0]["title"])
	}
}

func TestParseRecommendationsStripsFences(t *testing.T) {
	content := "```json\n[{\"id\": \"a\", \"title\": \"Fenced\"}]\n```"
	recs, err := ParseRecommendations(content)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(recs) != 1 || recs[0]["title"] != "Fenced" {
		t.Fatalf("unexpected records: %v", recs)
	}

	// bare fence without language tag
	recs, err = ParseRecommendations("```\n[{\"id\": \"b\"}]\n```")
	if err != nil {
		t.Fatalf("bare fence parse failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
}

func TestParseRecommendationsRecoversTruncation(t *testing.T) {
	// the model ran out of tokens mid-way through the third object
	content := `[{"id": "a", "title": "One"}, {"id": "b", "title": "Two"}, {"id": "c", "tit`
	recs, err := ParseRecommendations(content)
	if err != nil {
		t.Fatalf("truncation recovery failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records after recovery, want 2", len(recs))
	}
	if recs[1]["id"] != "b" {
		t.Fatalf("got id %v, want b", recs[1]["id"])
	}
}

func TestParseRecommendationsFencedAndTruncated(t *testing.T) {
	content := "```json\n[{\"id\": \"a\", \"title\": \"One\"}, {\"id\": \"b\""
	recs, err := ParseRecommendations(content)
	if err != nil {
		t.Fatalf("recovery failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
}

func TestParseRecommendationsFailures(t *testing.T) {
	for _, content := range []string{
		"",
		"I'm sorry, I can't help with that.",
		"[]",
		"[{",
	} {
		if _, err := ParseRecommendations(content); !errors.Is(err, ErrParse) {
			t.Fatalf("content %q: got err %v, want ErrParse", content, err)
		}
	}
}
