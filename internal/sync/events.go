package sync

import "time"

type FavoriteEvent struct {
	Type      string    `json:"type"` // "favorite.add" or "favorite.remove"
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	ItemType  string    `json:"item_type,omitempty"`
	ItemTitle string    `json:"item_title,omitempty"`
	At        time.Time `json:"at"`
}

type ProfileEvent struct {
	Type   string    `json:"type"` // "profile.update"
	UserID string    `json:"user_id"`
	At     time.Time `json:"at"`
}
