package favorites

import (
	"context"
	"database/sql"
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

func (r *Repo) Add(ctx context.Context, fav models.FavoriteItem) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO favorites (id, user_id, item_id, item_type, item_title, created_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, fav.ID, fav.UserID, fav.ItemID, fav.ItemType, fav.ItemTitle)
	if err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *Repo) Remove(ctx context.Context, userID, itemID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM favorites
		WHERE user_id = ? AND item_id = ?
	`, userID, itemID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Get(ctx context.Context, userID, itemID string) (*models.FavoriteItem, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, item_id, item_type, item_title, created_at
		FROM favorites
		WHERE user_id = ? AND item_id = ?
	`, userID, itemID)

	var it models.FavoriteItem
	var title sql.NullString
	var created time.Time
	if err := row.Scan(&it.ID, &it.UserID, &it.ItemID, &it.ItemType, &title, &created); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get favorite: %w", err)
	}
	it.ItemTitle = title.String
	it.CreatedAt = created
	return &it, nil
}

// List returns the user's favorites newest first.
func (r *Repo) List(ctx context.Context, userID string, limit, offset int) ([]models.FavoriteItem, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM favorites WHERE user_id = ?
	`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count favorites: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, item_id, item_type, item_title, created_at
		FROM favorites
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	out := make([]models.FavoriteItem, 0, limit)
	for rows.Next() {
		var it models.FavoriteItem
		var title sql.NullString
		var created time.Time

		if err := rows.Scan(&it.ID, &it.UserID, &it.ItemID, &it.ItemType, &title, &created); err != nil {
			return nil, 0, fmt.Errorf("scan favorite row: %w", err)
		}
		it.ItemTitle = title.String
		it.CreatedAt = created
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows err: %w", err)
	}

	return out, total, nil
}
