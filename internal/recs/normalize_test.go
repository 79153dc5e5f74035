package recs

import (
	"testing"
)

func TestNormalizeClampsScores(t *testing.T) {
	raw := []map[string]any{
		{"id": "a", "score": float64(150)},
		{"id": "b", "score": float64(10)},
		{"id": "c", "score": "abc"},
		{"id": "d"},
		{"id": "e", "score": float64(85)},
	}
	out := Normalize(raw)

	want := []int{98, 70, 75, 75, 85}
	for i, rec := range out {
		if rec.Score != want[i] {
			t.Fatalf("record %d: score %d, want %d", i, rec.Score, want[i])
		}
	}
}

func TestNormalizeBackfillsIDs(t *testing.T) {
	raw := []map[string]any{
		{"title": "No ID One"},
		{"title": "No ID Two"},
		{"id": "kept", "title": "Has ID"},
	}
	out := Normalize(raw)

	if out[0].ID == "" || out[1].ID == "" {
		t.Fatal("missing ids were not backfilled")
	}
	if out[0].ID == out[1].ID {
		t.Fatal("backfilled ids must be unique")
	}
	if out[2].ID != "kept" {
		t.Fatalf("existing id was replaced: got %q", out[2].ID)
	}
}

func TestNormalizeFieldFallbacks(t *testing.T) {
	out := Normalize([]map[string]any{
		{"id": "a", "year": float64(1955), "aiReason": "classic"},
		{"id": "b", "origin": "Japan", "reason": "plain reason"},
	})

	if out[0].Origin != "1955" {
		t.Fatalf("origin fallback from year: got %q, want 1955", out[0].Origin)
	}
	if out[0].Reason != "classic" {
		t.Fatalf("got reason %q, want classic", out[0].Reason)
	}
	if out[1].Origin != "Japan" {
		t.Fatalf("got origin %q, want Japan", out[1].Origin)
	}
	if out[1].Reason != "plain reason" {
		t.Fatalf("reason fallback: got %q", out[1].Reason)
	}
}

func TestNormalizePlatforms(t *testing.T) {
	out := Normalize([]map[string]any{
		{
			"id": "a",
			"platforms": []any{
				map[string]any{"name": "Amazon", "url": "https://amazon.com/s?k=deep work", "type": "primary"},
				map[string]any{"name": "Library", "url": "archive.org/search?q=x", "type": "tertiary"},
				map[string]any{"name": "Broken", "url": "https://bad host/a b"},
			},
		},
	})

	platforms := out[0].Platforms
	if len(platforms) != 3 {
		t.Fatalf("got %d platforms, want 3 (entries are never dropped)", len(platforms))
	}
	if platforms[0].Type != "primary" {
		t.Fatalf("got type %q, want primary", platforms[0].Type)
	}
	if platforms[1].Type != "secondary" {
		t.Fatalf("unknown type must become secondary, got %q", platforms[1].Type)
	}
	if platforms[2].Type != "secondary" {
		t.Fatalf("missing type must become secondary, got %q", platforms[2].Type)
	}
}

func TestRepairURL(t *testing.T) {
	cases := []struct {
		name     string
		platform string
		in       string
		want     string
	}{
		{
			name:     "missing scheme",
			platform: "Goodreads",
			in:       "goodreads.com/search?q=siddhartha",
			want:     "https://goodreads.com/search?q=siddhartha",
		},
		{
			name:     "space in query re-encoded",
			platform: "Amazon",
			in:       "https://amazon.com/s?k=deep work",
			want:     "https://amazon.com/s?k=deep+work",
		},
		{
			name:     "youtube short link",
			platform: "YouTube",
			in:       "https://youtu.be/dQw4w9WgXcQ",
			want:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "youtube embed",
			platform: "YouTube",
			in:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			name:     "youtube keeps non-v params",
			platform: "YouTube",
			in:       "https://youtu.be/abc123?t=30",
			want:     "https://www.youtube.com/watch?t=30&v=abc123",
		},
		{
			name:     "youtube search has no video id",
			platform: "YouTube",
			in:       "https://www.youtube.com/results?search_query=lofi jazz",
			want:     "https://www.youtube.com/results?search_query=lofi+jazz",
		},
		{
			name:     "unparseable falls back to plus",
			platform: "Spotify",
			in:       "https://bad host.com/deep work",
			want:     "https://bad+host.com/deep+work",
		},
		{
			name:     "empty stays empty",
			platform: "Spotify",
			in:       "",
			want:     "",
		},
	}

	for _, tc := range cases {
		got := RepairURL(tc.platform, tc.in)
		if got != tc.want {
			t.Fatalf("%s: RepairURL(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestRepairURLIdempotent(t *testing.T) {
	inputs := []struct {
		platform string
		url      string
	}{
		{"Amazon", "https://amazon.com/s?k=deep work"},
		{"YouTube", "https://youtu.be/abc123?t=30"},
		{"Goodreads", "goodreads.com/search?q=meditations"},
	}
	for _, in := range inputs {
		once := RepairURL(in.platform, in.url)
		twice := RepairURL(in.platform, once)
		if once != twice {
			t.Fatalf("RepairURL not idempotent for %q: %q != %q", in.url, once, twice)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := []map[string]any{
		{
			"id": "stable", "title": "T", "creator": "C", "origin": "India",
			"aiReason": "r", "score": float64(150), "isRegional": true,
			"tags": []any{"one", "two"},
			"platforms": []any{
				map[string]any{"name": "YouTube", "url": "https://youtu.be/xyz", "type": "primary"},
			},
		},
	}
	first := Normalize(raw)

	again := Normalize([]map[string]any{
		{
			"id": first[0].ID, "title": first[0].Title, "creator": first[0].Creator,
			"origin": first[0].Origin, "aiReason": first[0].Reason,
			"score": float64(first[0].Score), "isRegional": first[0].IsRegional,
			"tags": []any{"one", "two"},
			"platforms": []any{
				map[string]any{
					"name": first[0].Platforms[0].Name,
					"url":  first[0].Platforms[0].URL,
					"type": first[0].Platforms[0].Type,
				},
			},
		},
	})

	if first[0].Score != again[0].Score {
		t.Fatalf("score changed on re-normalize: %d != %d", first[0].Score, again[0].Score)
	}
	if first[0].Platforms[0].URL != again[0].Platforms[0].URL {
		t.Fatalf("url changed on re-normalize: %q != %q",
			first[0].Platforms[0].URL, again[0].Platforms[0].URL)
	}
}
