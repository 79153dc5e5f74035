package models

import "time"

// ConsumptionEvent is one append-only interaction record. Context carries
// free-form labels ("like", "dislike", activity ids, template contexts).
type ConsumptionEvent struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	ItemID     string    `json:"item_id"`
	ItemType   string    `json:"item_type"`
	ItemTitle  string    `json:"item_title,omitempty"`
	TemplateID string    `json:"template_id,omitempty"`
	Context    []string  `json:"context"`
	CreatedAt  time.Time `json:"created_at"`
}
