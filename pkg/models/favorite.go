package models

import "time"

type FavoriteItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ItemID    string    `json:"item_id"`
	ItemType  string    `json:"item_type"`
	ItemTitle string    `json:"item_title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
