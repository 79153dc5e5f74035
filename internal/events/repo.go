package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"recohub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

// Insert appends one event. Events are never updated or deleted.
func (r *Repo) Insert(ctx context.Context, ev models.ConsumptionEvent) error {
	ctxJSON, err := json.Marshal(ev.Context)
	if err != nil {
		ctxJSON = []byte("[]")
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO consumption_events (user_id, item_id, item_type, item_title, template_id, context)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ev.UserID, ev.ItemID, ev.ItemType, nullable(ev.ItemTitle), nullable(ev.TemplateID), string(ctxJSON))
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListRecent returns the user's newest events, capped, for the insights
// view. Aggregation happens in memory over this window.
func (r *Repo) ListRecent(ctx context.Context, userID string, limit int) ([]models.ConsumptionEvent, error) {
	if limit <= 0 || limit > 1000 {
		limit = 500
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, item_id, item_type, item_title, template_id, context, created_at
		FROM consumption_events
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := make([]models.ConsumptionEvent, 0, limit)
	for rows.Next() {
		var ev models.ConsumptionEvent
		var title, templateID sql.NullString
		var ctxJSON string
		var created time.Time

		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.ItemID, &ev.ItemType, &title, &templateID, &ctxJSON, &created); err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}

		ev.ItemTitle = title.String
		ev.TemplateID = templateID.String
		ev.CreatedAt = created
		if err := json.Unmarshal([]byte(ctxJSON), &ev.Context); err != nil || ev.Context == nil {
			ev.Context = []string{}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}

	return out, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
