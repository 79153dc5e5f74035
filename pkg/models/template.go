package models

// RecommendationItem is one hand-authored entry inside a template bundle.
type RecommendationItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Creator     string   `json:"creator"`
	Type        string   `json:"type"` // "book", "movie" or "music"
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Link        string   `json:"link,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

// TemplateItem is a static, pre-authored bundle of recommendations tied to
// one activity. Templates are embedded in the binary and immutable.
type TemplateItem struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	ActivityID      string               `json:"activityId"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

type ActivityCategory struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Gradient    string `json:"gradient"`
}
