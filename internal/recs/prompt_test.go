package recs

import (
	"fmt"
	"strings"
	"testing"

	"recohub/pkg/models"
)

func TestSplitDistribution(t *testing.T) {
	cases := []struct {
		count     int
		regional  int
		worldwide int
	}{
		{10, 3, 7},
		{15, 5, 10},
		{20, 6, 14},
		{50, 15, 35},
		{1, 0, 1},
	}
	for _, tc := range cases {
		regional, worldwide := Split(tc.count)
		if regional != tc.regional || worldwide != tc.worldwide {
			t.Fatalf("Split(%d) = (%d, %d), want (%d, %d)",
				tc.count, regional, worldwide, tc.regional, tc.worldwide)
		}
		if regional+worldwide != tc.count {
			t.Fatalf("Split(%d) quotas do not sum to count", tc.count)
		}
	}
}

func TestBuildPromptRegularMode(t *testing.T) {
	_, user := BuildPrompt(PromptRequest{
		Profile: models.UserProfile{
			Age:      "24",
			City:     "Chennai",
			Country:  "India",
			Activity: []string{"study"},
		},
		Category: "books",
		Count:    10,
	})

	if !strings.Contains(user, "Generate 10 books recommendations") {
		t.Fatalf("user prompt missing count/category header:\n%s", user)
	}
	if !strings.Contains(user, "3 recommendations MUST be from India") {
		t.Fatalf("user prompt missing regional quota:\n%s", user)
	}
	if !strings.Contains(user, "7 recommendations MUST be from worldwide") {
		t.Fatalf("user prompt missing worldwide quota:\n%s", user)
	}
}

func TestBuildPromptClampsCount(t *testing.T) {
	_, user := BuildPrompt(PromptRequest{
		Category: "movies",
		Count:    120,
	})
	if !strings.Contains(user, fmt.Sprintf("Generate %d movies", MaxResultCount)) {
		t.Fatalf("count not clamped to %d:\n%s", MaxResultCount, user)
	}

	_, user = BuildPrompt(PromptRequest{Category: "movies", Count: 0})
	if !strings.Contains(user, "Generate 10 movies") {
		t.Fatalf("zero count did not default to 10:\n%s", user)
	}
}

func TestBuildPromptSearchModeSuspendsQuotas(t *testing.T) {
	system, user := BuildPrompt(PromptRequest{
		Profile:     models.UserProfile{City: "Osaka", Country: "Japan"},
		Category:    "music",
		SearchQuery: "lofi jazz",
		Count:       10,
	})

	if !strings.Contains(user, `Search for music matching: "lofi jazz"`) {
		t.Fatalf("search prompt missing query:\n%s", user)
	}
	if strings.Contains(user, "CRITICAL DISTRIBUTION") {
		t.Fatal("search prompt must not carry the distribution quotas")
	}
	if !strings.Contains(user, "Do NOT apply regional/worldwide distribution rules") {
		t.Fatalf("search prompt missing quota suspension:\n%s", user)
	}
	if !strings.Contains(system, "SEARCH MODE") {
		t.Fatalf("system prompt missing search-mode rule:\n%s", system)
	}
}

func TestBuildPromptCategoryPreference(t *testing.T) {
	p := models.UserProfile{
		BookGenre:  []string{"Philosophy"},
		MusicType:  []string{"Jazz"},
		MovieStyle: []string{"Drama"},
	}

	_, user := BuildPrompt(PromptRequest{Profile: p, Category: "books", Count: 5})
	if !strings.Contains(user, "Genre Preference: Philosophy") {
		t.Fatalf("books prompt missing genre preference:\n%s", user)
	}

	_, user = BuildPrompt(PromptRequest{Profile: p, Category: "music", Count: 5})
	if !strings.Contains(user, "Music Type: Jazz") {
		t.Fatalf("music prompt missing music type:\n%s", user)
	}

	_, user = BuildPrompt(PromptRequest{Profile: p, Category: "movies", Count: 5})
	if !strings.Contains(user, "Film Style: Drama") {
		t.Fatalf("movies prompt missing film style:\n%s", user)
	}
}

func TestBuildPromptEmptyFieldsFallBack(t *testing.T) {
	_, user := BuildPrompt(PromptRequest{Category: "books", Count: 5})
	if !strings.Contains(user, "Not specified") {
		t.Fatalf("empty profile fields should render as Not specified:\n%s", user)
	}
}
