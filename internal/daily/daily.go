package daily

import (
	"math"
	"strconv"
	"time"

	"recohub/pkg/models"
)

// suggestionPool is the fixed, hand-curated pool the daily picks come from.
var suggestionPool = []models.Recommendation{
	{
		ID:      "daily_1",
		Title:   "Deep Work",
		Creator: "Cal Newport",
		Origin:  "Book",
		Reason:  "Essential for mastering focus in a distracted world.",
		Tags:    []string{"Productivity", "Focus"},
	},
	{
		ID:      "daily_2",
		Title:   "Man's Search for Meaning",
		Creator: "Viktor Frankl",
		Origin:  "Book",
		Reason:  "A profound testament to the power of perspective and resilience.",
		Tags:    []string{"Philosophy", "Resilience"},
	},
	{
		ID:      "daily_3",
		Title:   "Samsara",
		Creator: "Ron Fricke",
		Origin:  "Film",
		Reason:  "A non-verbal guided meditation on the cycle of life.",
		Tags:    []string{"Documentary", "Visuals"},
	},
	{
		ID:      "daily_4",
		Title:   "Weightless",
		Creator: "Marconi Union",
		Origin:  "Music",
		Reason:  "Scientifically designed to reduce anxiety and blood pressure.",
		Tags:    []string{"Ambient", "Relaxation"},
	},
	{
		ID:      "daily_5",
		Title:   "Atomic Habits",
		Creator: "James Clear",
		Origin:  "Book",
		Reason:  "Small changes lead to remarkable results over time.",
		Tags:    []string{"Habits", "Growth"},
	},
	{
		ID:         "daily_6",
		Title:      "My Neighbor Totoro",
		Creator:    "Hayao Miyazaki",
		Origin:     "Film",
		Reason:     "Reconnect with childlike wonder and nature's spirit.",
		Tags:       []string{"Animation", "Nature"},
		IsRegional: true,
	},
	{
		ID:      "daily_7",
		Title:   "The Daily Stoic",
		Creator: "Ryan Holiday",
		Origin:  "Book",
		Reason:  "Ancient wisdom for modern emotional regulation.",
		Tags:    []string{"Stoicism", "Philosophy"},
	},
	{
		ID:      "daily_8",
		Title:   "Experience",
		Creator: "Ludovico Einaudi",
		Origin:  "Music",
		Reason:  "Emotional catharsis through minimal piano composition.",
		Tags:    []string{"Classical", "Emotion"},
	},
	{
		ID:      "daily_9",
		Title:   "Baraka",
		Creator: "Ron Fricke",
		Origin:  "Film",
		Reason:  "A visual poem connecting human culture and nature.",
		Tags:    []string{"Documentary", "Culture"},
	},
	{
		ID:      "daily_10",
		Title:   "Thinking, Fast and Slow",
		Creator: "Daniel Kahneman",
		Origin:  "Book",
		Reason:  "Understand the two systems that drive the way we think.",
		Tags:    []string{"Psychology", "Cognition"},
	},
}

// seededRandom maps a seed to a pseudo-random value in [0, 1). The same
// sin-derived generator the web client uses, so every client picks the same
// items for a given date.
func seededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// Suggestions deterministically selects two distinct items from the pool
// for a calendar date. The seed is the date formatted as YYYYMMDD, so the
// result is independent of time of day, time zone and process restarts.
func Suggestions(date time.Time) []models.Recommendation {
	baseSeed, _ := strconv.Atoi(date.Format("20060102"))
	poolSize := len(suggestionPool)

	index1 := int(seededRandom(baseSeed) * float64(poolSize))
	index2 := int(seededRandom(baseSeed+1) * float64(poolSize))

	if index1 == index2 {
		index2 = (index2 + 1) % poolSize
	}

	return []models.Recommendation{suggestionPool[index1], suggestionPool[index2]}
}

// PoolSize reports how many items the fixed pool holds.
func PoolSize() int {
	return len(suggestionPool)
}
