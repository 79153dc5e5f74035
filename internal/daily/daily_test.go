package daily

import (
	"testing"
	"time"
)

func TestSuggestionsDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	first := Suggestions(date)
	second := Suggestions(date)

	if len(first) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(first))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("same date produced different picks: %q != %q", first[i].ID, second[i].ID)
		}
	}
}

func TestSuggestionsTimeOfDayIrrelevant(t *testing.T) {
	morning := time.Date(2025, 6, 15, 6, 1, 2, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)

	a := Suggestions(morning)
	b := Suggestions(night)
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("picks differ within one date: %q != %q", a[i].ID, b[i].ID)
		}
	}
}

func TestSuggestionsDistinct(t *testing.T) {
	// scan a year of dates; the two picks must always differ
	date := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		picks := Suggestions(date.AddDate(0, 0, i))
		if picks[0].ID == picks[1].ID {
			t.Fatalf("%s: duplicate pick %q", date.AddDate(0, 0, i).Format("2006-01-02"), picks[0].ID)
		}
	}
}

func TestSuggestionsVaryAcrossDates(t *testing.T) {
	seen := make(map[string]bool)
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		picks := Suggestions(date.AddDate(0, 0, i))
		seen[picks[0].ID+"/"+picks[1].ID] = true
	}
	if len(seen) < 2 {
		t.Fatalf("30 days produced %d distinct pairs, want variety", len(seen))
	}
}

func TestSuggestionsDrawFromPool(t *testing.T) {
	if PoolSize() != 10 {
		t.Fatalf("pool size = %d, want 10", PoolSize())
	}

	valid := make(map[string]bool)
	for _, rec := range suggestionPool {
		valid[rec.ID] = true
	}

	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		for _, pick := range Suggestions(date.AddDate(0, 0, i)) {
			if !valid[pick.ID] {
				t.Fatalf("pick %q is not in the pool", pick.ID)
			}
		}
	}
}
