package recs

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"recohub/pkg/models"
)

const (
	minScore     = 70
	maxScore     = 98
	defaultScore = 75
)

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// Normalize maps raw records onto the canonical Recommendation shape. It is
// pure and idempotent: normalizing an already-normalized record yields the
// same record.
func Normalize(raw []map[string]any) []models.Recommendation {
	out := make([]models.Recommendation, 0, len(raw))
	for _, rec := range raw {
		out = append(out, normalizeOne(rec))
	}
	return out
}

func normalizeOne(rec map[string]any) models.Recommendation {
	id := asString(rec["id"])
	if id == "" {
		id = uuid.NewString()
	}

	origin := asString(rec["origin"])
	if origin == "" {
		origin = asString(rec["year"])
	}

	reason := asString(rec["aiReason"])
	if reason == "" {
		reason = asString(rec["reason"])
	}

	return models.Recommendation{
		ID:         id,
		Title:      asString(rec["title"]),
		Creator:    asString(rec["creator"]),
		Origin:     origin,
		Reason:     reason,
		Tags:       asStringSlice(rec["tags"]),
		Score:      clampScore(rec["score"]),
		Platforms:  normalizePlatforms(rec["platforms"]),
		IsRegional: asBool(rec["isRegional"]),
		Thumbnail:  asString(rec["thumbnail"]),
	}
}

func normalizePlatforms(v any) []models.Platform {
	items, ok := v.([]any)
	if !ok {
		return []models.Platform{}
	}

	out := make([]models.Platform, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := models.Platform{
			Name: asString(m["name"]),
			URL:  RepairURL(asString(m["name"]), asString(m["url"])),
			Type: asString(m["type"]),
		}
		if p.Type != "primary" {
			p.Type = "secondary"
		}
		// a malformed URL is never grounds for dropping the entry
		out = append(out, p)
	}
	return out
}

// RepairURL normalizes an outbound platform link: defaults the scheme to
// https, re-encodes query parameters, and rewrites YouTube watch/embed/
// short-link forms to the canonical watch?v= form, keeping non-v params.
// If the URL cannot be parsed at all it falls back to replacing literal
// spaces with '+'.
func RepairURL(platformName, raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if !schemeRe.MatchString(s) {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return strings.ReplaceAll(raw, " ", "+")
	}

	if isYouTube(platformName, u) {
		if canonical := canonicalYouTube(u); canonical != "" {
			return canonical
		}
	}

	u.RawQuery = u.Query().Encode()
	return u.String()
}

func isYouTube(platformName string, u *url.URL) bool {
	return strings.Contains(strings.ToLower(platformName), "youtube") ||
		strings.Contains(u.Host, "youtu.be")
}

// canonicalYouTube extracts the video id from short-link, embed and watch
// forms. Returns "" when there is no video id (e.g. a search results URL).
func canonicalYouTube(u *url.URL) string {
	var videoID string
	switch {
	case strings.Contains(u.Host, "youtu.be"):
		videoID = strings.TrimPrefix(u.Path, "/")
	case strings.HasPrefix(u.Path, "/embed/"):
		videoID = strings.TrimPrefix(u.Path, "/embed/")
	default:
		videoID = u.Query().Get("v")
	}
	if videoID == "" {
		return ""
	}

	watch := url.URL{Scheme: "https", Host: "www.youtube.com", Path: "/watch"}
	q := url.Values{"v": {videoID}}
	for key, vals := range u.Query() {
		if key == "v" {
			continue
		}
		for _, val := range vals {
			q.Set(key, val)
		}
	}
	watch.RawQuery = q.Encode()
	return watch.String()
}

func clampScore(v any) int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultScore
	}
	s := int(math.Round(f))
	if s < minScore {
		return minScore
	}
	if s > maxScore {
		return maxScore
	}
	return s
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func asStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
