package models

import "time"

// UserProfile holds everything the profile wizard collects. The multi-select
// fields are slices; only the preference slice matching the active category
// (bookGenre, musicType or movieStyle) is used when building a prompt.
type UserProfile struct {
	Age               string   `json:"age"`
	Gender            string   `json:"gender"`
	City              string   `json:"city"`
	Region            string   `json:"region"`
	Country           string   `json:"country"`
	Activity          []string `json:"activity"`
	Mood              []string `json:"mood"`
	BookGenre         []string `json:"bookGenre"`
	MusicType         []string `json:"musicType"`
	MovieStyle        []string `json:"movieStyle"`
	PersonalityTraits []string `json:"personalityTraits"`
	Alignments        []string `json:"alignments"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
