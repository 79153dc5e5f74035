package events

import (
	"fmt"
	"testing"
	"time"

	"recohub/pkg/models"
)

func TestAggregateByType(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	evs := []models.ConsumptionEvent{
		{ItemType: "book", CreatedAt: now},
		{ItemType: "book", CreatedAt: now},
		{ItemType: "music", CreatedAt: now},
		{ItemType: "movie", CreatedAt: now},
		{ItemType: "movie", CreatedAt: now},
		{ItemType: "movie", CreatedAt: now},
	}

	got := Aggregate(evs, now)
	if got.TotalEvents != 6 {
		t.Fatalf("TotalEvents = %d, want 6", got.TotalEvents)
	}
	if len(got.ByType) != 3 {
		t.Fatalf("got %d types, want 3", len(got.ByType))
	}
	if got.ByType[0].Type != "movie" || got.ByType[0].Count != 3 {
		t.Fatalf("top type = %+v, want movie/3", got.ByType[0])
	}
	// equal counts break ties alphabetically
	if got.ByType[1].Type != "book" {
		t.Fatalf("second type = %q, want book", got.ByType[1].Type)
	}
}

func TestAggregateByDayWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	evs := []models.ConsumptionEvent{
		{ItemType: "book", CreatedAt: now},
		{ItemType: "book", CreatedAt: now.AddDate(0, 0, -1)},
		{ItemType: "book", CreatedAt: now.AddDate(0, 0, -1)},
		// outside the 14-day window, still counted in totals
		{ItemType: "book", CreatedAt: now.AddDate(0, 0, -30)},
	}

	got := Aggregate(evs, now)
	if len(got.ByDay) != 14 {
		t.Fatalf("got %d days, want 14", len(got.ByDay))
	}

	last := got.ByDay[len(got.ByDay)-1]
	if last.Date != "2025-06-15" || last.Count != 1 {
		t.Fatalf("last day = %+v, want 2025-06-15/1", last)
	}
	prev := got.ByDay[len(got.ByDay)-2]
	if prev.Date != "2025-06-14" || prev.Count != 2 {
		t.Fatalf("previous day = %+v, want 2025-06-14/2", prev)
	}
	first := got.ByDay[0]
	if first.Date != "2025-06-02" || first.Count != 0 {
		t.Fatalf("window start = %+v, want 2025-06-02/0", first)
	}
}

func TestAggregateTopContexts(t *testing.T) {
	now := time.Now()
	var evs []models.ConsumptionEvent
	// seven labels with distinct frequencies 1..7
	for i := 1; i <= 7; i++ {
		label := fmt.Sprintf("ctx-%d", i)
		for j := 0; j < i; j++ {
			evs = append(evs, models.ConsumptionEvent{
				ItemType:  "music",
				Context:   []string{label},
				CreatedAt: now,
			})
		}
	}

	got := Aggregate(evs, now)
	if len(got.TopContexts) != 5 {
		t.Fatalf("got %d contexts, want 5", len(got.TopContexts))
	}
	if got.TopContexts[0].Context != "ctx-7" || got.TopContexts[0].Count != 7 {
		t.Fatalf("top context = %+v, want ctx-7/7", got.TopContexts[0])
	}
	if got.TopContexts[4].Context != "ctx-3" {
		t.Fatalf("cutoff context = %q, want ctx-3", got.TopContexts[4].Context)
	}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, time.Now())
	if got.TotalEvents != 0 {
		t.Fatalf("TotalEvents = %d, want 0", got.TotalEvents)
	}
	if len(got.ByDay) != 14 {
		t.Fatalf("empty input still yields the 14-day series, got %d", len(got.ByDay))
	}
	if len(got.ByType) != 0 || len(got.TopContexts) != 0 {
		t.Fatal("empty input must yield empty type/context lists")
	}
}
