package events

import (
	"sort"
	"time"

	"recohub/pkg/models"
)

const (
	insightsDays        = 14
	insightsTopContexts = 5
)

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

type ContextCount struct {
	Context string `json:"context"`
	Count   int    `json:"count"`
}

type Insights struct {
	TotalEvents int            `json:"total_events"`
	ByType      []TypeCount    `json:"by_type"`
	ByDay       []DayCount     `json:"by_day"`
	TopContexts []ContextCount `json:"top_contexts"`
}

// Aggregate rolls a window of events up into what the insights dashboard
// plots: interaction counts per item type, a per-day series over the last
// 14 days ending at now, and the five most frequent context labels.
func Aggregate(evs []models.ConsumptionEvent, now time.Time) Insights {
	byType := make(map[string]int)
	byDay := make(map[string]int)
	byContext := make(map[string]int)

	for _, ev := range evs {
		t := ev.ItemType
		if t == "" {
			t = "unknown"
		}
		byType[t]++
		byDay[ev.CreatedAt.Format("2006-01-02")]++
		for _, c := range ev.Context {
			if c != "" {
				byContext[c]++
			}
		}
	}

	types := make([]TypeCount, 0, len(byType))
	for t, n := range byType {
		types = append(types, TypeCount{Type: t, Count: n})
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Count != types[j].Count {
			return types[i].Count > types[j].Count
		}
		return types[i].Type < types[j].Type
	})

	days := make([]DayCount, 0, insightsDays)
	for i := insightsDays - 1; i >= 0; i-- {
		d := now.AddDate(0, 0, -i).Format("2006-01-02")
		days = append(days, DayCount{Date: d, Count: byDay[d]})
	}

	contexts := make([]ContextCount, 0, len(byContext))
	for c, n := range byContext {
		contexts = append(contexts, ContextCount{Context: c, Count: n})
	}
	sort.Slice(contexts, func(i, j int) bool {
		if contexts[i].Count != contexts[j].Count {
			return contexts[i].Count > contexts[j].Count
		}
		return contexts[i].Context < contexts[j].Context
	})
	if len(contexts) > insightsTopContexts {
		contexts = contexts[:insightsTopContexts]
	}

	return Insights{
		TotalEvents: len(evs),
		ByType:      types,
		ByDay:       days,
		TopContexts: contexts,
	}
}
