package profile

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

// Upsert overwrites the user's single profile row. Idempotent.
func (r *Repo) Upsert(ctx context.Context, userID string, p models.UserProfile) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO user_profiles (
			user_id, age, gender, city, region, country,
			activity, mood, book_genre, music_type, movie_style,
			personality_traits, alignments, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			age = excluded.age,
			gender = excluded.gender,
			city = excluded.city,
			region = excluded.region,
			country = excluded.country,
			activity = excluded.activity,
			mood = excluded.mood,
			book_genre = excluded.book_genre,
			music_type = excluded.music_type,
			movie_style = excluded.movie_style,
			personality_traits = excluded.personality_traits,
			alignments = excluded.alignments,
			updated_at = CURRENT_TIMESTAMP
	`, userID, p.Age, p.Gender, p.City, p.Region, p.Country,
		encodeList(p.Activity), encodeList(p.Mood), encodeList(p.BookGenre),
		encodeList(p.MusicType), encodeList(p.MovieStyle),
		encodeList(p.PersonalityTraits), encodeList(p.Alignments))
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT age, gender, city, region, country,
		       activity, mood, book_genre, music_type, movie_style,
		       personality_traits, alignments, updated_at
		FROM user_profiles
		WHERE user_id = ?
	`, userID)

	var p models.UserProfile
	var activity, mood, bookGenre, musicType, movieStyle, traits, alignments string
	var updated time.Time
	if err := row.Scan(&p.Age, &p.Gender, &p.City, &p.Region, &p.Country,
		&activity, &mood, &bookGenre, &musicType, &movieStyle,
		&traits, &alignments, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Activity = decodeList(activity)
	p.Mood = decodeList(mood)
	p.BookGenre = decodeList(bookGenre)
	p.MusicType = decodeList(musicType)
	p.MovieStyle = decodeList(movieStyle)
	p.PersonalityTraits = decodeList(traits)
	p.Alignments = decodeList(alignments)
	p.UpdatedAt = updated
	return &p, nil
}

func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(s string) []string {
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
