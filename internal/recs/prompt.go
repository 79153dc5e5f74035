package recs

import (
	"fmt"
	"math"
	"strings"

	"recohub/pkg/models"
)

// MaxResultCount caps how many items one request may ask the model for.
const MaxResultCount = 50

// regionalShare is the requested (not audited) share of regional items in
// non-search mode.
const regionalShare = 0.3

const trainingExamples = `
# TRAINING DATA FOR CULTURALLY-AWARE RECOMMENDATIONS

## RANKING ALGORITHM (Apply to all recommendations):
- Cultural Proximity (30%): Prefer regional creators, local authors, culturally resonant content
- Cognitive Value (30%): Intellectual nourishment, consciousness expansion potential
- Activity Relevance (25%): Match to user's current intent/state of mind
- Popularity (15%): General acclaim considered but not prioritized

## DIVERSITY RULES:
- Never recommend the same author/creator twice in one set
- Mix classic and contemporary works
- Provide unique, personalized AI explanation for each recommendation

## BOOK TRAINING EXAMPLES:
Input: 19, Male, Chennai, Tamil Nadu, India, Study, Philosophy
Books: "The Alchemist" by Paulo Coelho (Accessible philosophical fiction), "Siddhartha" by Hermann Hesse (Eastern philosophy), "The Prophet" by Kahlil Gibran (Poetic philosophy), "Autobiography of a Yogi" by Paramahansa Yogananda (Indian spiritual classic), "Meditations" by Marcus Aurelius (Stoic philosophy)

Input: 28, Female, Bangalore, Karnataka, India, Work, Self-help
Books: "Atomic Habits" by James Clear (Practical habit formation), "Deep Work" by Cal Newport (Focus and productivity), "The 7 Habits of Highly Effective People" by Stephen Covey, "Mindset" by Carol Dweck (Growth mindset), "Range" by David Epstein (Generalist approach)

## MOVIE TRAINING EXAMPLES:
Input: 26, Male, Kolkata, West Bengal, India, Relaxation, Drama
Movies: "Pather Panchali" (1955, Satyajit Ray - foundational Indian cinema), "Court" (2014, Venice award winner), "The Lunchbox" (2013, Mumbai romance), "Masaan" (2015, Varanasi drama), "Super Deluxe" (2019, Tamil experimental)

Input: 29, Female, Osaka, Kansai, Japan, Study, Cinematic
Movies: "Tokyo Story" (1953, Yasujirō Ozu), "Spirited Away" (2001, Studio Ghibli), "Shoplifters" (2018, Palme d'Or), "Rashomon" (1950, Kurosawa), "Drive My Car" (2021, Oscar winner)

## MUSIC TRAINING EXAMPLES:
- "Gayatri Mantra, Radical Devotion" by Sri Mooji - Sacred chant for deep meditation
- "ESTAS TONNE - INTERNAL FLIGHT [FULL ALBUM]" - Neo-classical guitar journey
- "Zakir Hussain and Dave Holland: Crosscurrents" - Jazz fusion with tabla
- "Sound Scapes - Music of the Mountains | Pandit Shivkumar Sharma" - Santoor maestro
- "Joan Baez - Diamonds and Rust" - Poetic folk
- "Pink Floyd" - Progressive rock

## EXPLANATION TEMPLATES:
- "Recommended because you're in [city] and prefer [genre] — [author/creator] shares your cultural context and [specific resonance]"
- "Matches your [activity] needs through [specific feature that aids the activity]"
- "Similar to your preference for [user preference] but with [unique aspect that expands horizons]"
- "A [regional] classic that resonates with [cultural background] and offers [cognitive value]"
`

// PromptRequest is everything the request builder needs. Count is clamped
// to MaxResultCount; a non-empty SearchQuery switches to search mode, which
// suspends the regional/worldwide distribution rule.
type PromptRequest struct {
	Profile     models.UserProfile
	Category    string // "books", "movies" or "music"
	SearchQuery string
	Count       int
}

// Split returns the requested regional/worldwide distribution for a result
// count in non-search mode.
func Split(count int) (regional, worldwide int) {
	regional = int(math.Round(float64(count) * regionalShare))
	worldwide = count - regional
	return regional, worldwide
}

// BuildPrompt assembles the system and user instructions for the generation
// endpoint. It is pure: no I/O, no state.
func BuildPrompt(req PromptRequest) (system, user string) {
	count := req.Count
	if count <= 0 {
		count = 10
	}
	if count > MaxResultCount {
		count = MaxResultCount
	}

	searchMode := strings.TrimSpace(req.SearchQuery) != ""

	var distRule string
	if searchMode {
		distRule = "- When in SEARCH MODE, return ONLY results matching the search query - ignore regional/worldwide distribution rules"
	} else {
		distRule = "- For regular recommendations: 30% from user's region/country (isRegional: true), 70% from worldwide (isRegional: false)"
	}

	system = fmt.Sprintf(`You are a culturally-aware recommendation system that provides conscious, meaningful recommendations for books, movies, and music. Your goal is to help users become more intelligent consumers by prioritizing:

1. Cultural Proximity (30%%): Regional creators, local authors, culturally resonant content
2. Cognitive Value (30%%): Intellectual nourishment, consciousness expansion
3. Activity Relevance (25%%): Match to user's current intent and state of mind
4. Popularity (15%%): General acclaim, but not prioritized

%s

CRITICAL RULES:
- Never recommend the same author/creator twice in one set
%s
- Mix classic and contemporary works
- Provide a unique, personalized AI explanation for each recommendation
- Calculate a match score (70-98%%) based on how well each item matches the user's profile
- Always respond with valid JSON only, no markdown formatting`, trainingExamples, distRule)

	if searchMode {
		user = buildSearchPrompt(req, count)
	} else {
		user = buildRecommendPrompt(req, count)
	}
	return system, user
}

func buildSearchPrompt(req PromptRequest, count int) string {
	p := req.Profile
	return fmt.Sprintf(`Search for %s matching: "%s"

User is from %s, %s. Activity: %s

IMPORTANT: Return ONLY results that match the search query %q. Do NOT apply regional/worldwide distribution rules.
Focus on relevance to the search term - find the best matches from anywhere in the world.

Return ONLY a JSON array with %d %s recommendations matching the search query in this format (no markdown, no code blocks):
%s

Include 4-6 relevant platform links for each recommendation. Use URL-encoded titles/names.
For music, ALWAYS include YouTube and SoundCloud links.`,
		req.Category, req.SearchQuery,
		p.City, p.Country, joinOrUnspecified(p.Activity),
		req.SearchQuery,
		count, req.Category,
		resultFormat)
}

func buildRecommendPrompt(req PromptRequest, count int) string {
	p := req.Profile
	regional, worldwide := Split(count)

	return fmt.Sprintf(`Generate %d %s recommendations for this user:

User Profile:
- Age: %s
- Gender: %s
- City: %s
- Region: %s
- Country: %s
- Current Activity: %s
- Mood: %s
- %s: %s

CRITICAL DISTRIBUTION:
- %d recommendations MUST be from %s or the user's region (isRegional: true)
- %d recommendations MUST be from worldwide/other cultures (isRegional: false)
- Mix classic and contemporary works
- Ensure variety in creators - no duplicate authors/artists/directors

Return ONLY a JSON array with exactly %d recommendations in this format (no markdown, no code blocks):
%s

Include 4-6 relevant platform links for each recommendation. Use URL-encoded titles/names.
For music, ALWAYS include YouTube and SoundCloud links when available.`,
		count, req.Category,
		p.Age, p.Gender, p.City, orUnspecified(p.Region), p.Country,
		joinOrUnspecified(p.Activity), joinOrUnspecified(p.Mood),
		preferenceLabel(req.Category), joinOrUnspecified(categoryPreference(p, req.Category)),
		regional, p.Country,
		worldwide,
		count,
		resultFormat)
}

const resultFormat = `[
  {
    "id": "unique-id-1",
    "title": "Title of the work",
    "creator": "Author/Artist/Director name",
    "year": "Year if applicable or null",
    "origin": "Country or region of origin",
    "isRegional": true,
    "aiReason": "Personalized explanation of why this is recommended based on the user's profile, location, and preferences.",
    "tags": ["tag1", "tag2", "tag3"],
    "score": 85,
    "platforms": [
      {"name": "Platform Name", "url": "https://platform-url.com/search?q=title", "type": "primary"},
      {"name": "Platform 2", "url": "https://platform2.com/search?q=title", "type": "secondary"}
    ]
  }
]`

func categoryPreference(p models.UserProfile, category string) []string {
	switch category {
	case "books":
		return p.BookGenre
	case "music":
		return p.MusicType
	default:
		return p.MovieStyle
	}
}

func preferenceLabel(category string) string {
	switch category {
	case "books":
		return "Genre Preference"
	case "music":
		return "Music Type"
	default:
		return "Film Style"
	}
}

func joinOrUnspecified(values []string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return "Not specified"
	}
	return strings.Join(out, ", ")
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
