package models

// Platform is one outbound link on a recommendation card.
// Type is "primary" or "secondary"; the UI renders primaries first.
type Platform struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Recommendation is the canonical, normalized form of one generated item.
// Raw model output is mapped into this structure by the normalizer before
// anything else touches it. JSON tags match what the web client expects.
type Recommendation struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Creator    string     `json:"creator"`
	Origin     string     `json:"origin"`
	Reason     string     `json:"reason"`
	Tags       []string   `json:"tags"`
	Score      int        `json:"score"`
	Platforms  []Platform `json:"platforms"`
	IsRegional bool       `json:"isRegional"`
	Thumbnail  string     `json:"thumbnail,omitempty"`
}
