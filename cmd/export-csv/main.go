package main

import (
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"recohub/pkg/database"
)

// Offline export straight from the SQLite file, no API server needed.
// Dumps the append-only tables for analysis in a spreadsheet.
func main() {
	outDir := flag.String("out", "data", "output directory for CSV files")
	table := flag.String("table", "all", "events|favorites|all")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	switch *table {
	case "events":
		mustExport(exportEvents(db, filepath.Join(*outDir, "consumption_events.csv")))
	case "favorites":
		mustExport(exportFavorites(db, filepath.Join(*outDir, "favorites.csv")))
	case "all":
		mustExport(exportEvents(db, filepath.Join(*outDir, "consumption_events.csv")))
		mustExport(exportFavorites(db, filepath.Join(*outDir, "favorites.csv")))
	default:
		log.Fatalf("unknown table %q (want events|favorites|all)", *table)
	}
}

func mustExport(n int, path string, err error) {
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("✅ wrote %d rows to %s", n, path)
}

func exportEvents(db *sql.DB, path string) (int, string, error) {
	rows, err := db.Query(`
		SELECT id, user_id, item_id, item_type,
		       COALESCE(item_title, ''), COALESCE(template_id, ''),
		       context, created_at
		FROM consumption_events
		ORDER BY created_at ASC
	`)
	if err != nil {
		return 0, path, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	file, err := os.Create(path)
	if err != nil {
		return 0, path, err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{
		"id", "user_id", "item_id", "item_type", "item_title", "template_id", "context", "created_at",
	}); err != nil {
		return 0, path, err
	}

	count := 0
	for rows.Next() {
		var id int64
		var userID, itemID, itemType, title, templateID, ctxJSON, created string
		if err := rows.Scan(&id, &userID, &itemID, &itemType, &title, &templateID, &ctxJSON, &created); err != nil {
			return count, path, fmt.Errorf("scan event: %w", err)
		}
		if err := w.Write([]string{
			fmt.Sprintf("%d", id), userID, itemID, itemType, title, templateID, ctxJSON, created,
		}); err != nil {
			return count, path, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, path, err
	}

	w.Flush()
	return count, path, w.Error()
}

func exportFavorites(db *sql.DB, path string) (int, string, error) {
	rows, err := db.Query(`
		SELECT id, user_id, item_id, item_type, COALESCE(item_title, ''), created_at
		FROM favorites
		ORDER BY created_at ASC
	`)
	if err != nil {
		return 0, path, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	file, err := os.Create(path)
	if err != nil {
		return 0, path, err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{
		"id", "user_id", "item_id", "item_type", "item_title", "created_at",
	}); err != nil {
		return 0, path, err
	}

	count := 0
	for rows.Next() {
		var id, userID, itemID, itemType, title, created string
		if err := rows.Scan(&id, &userID, &itemID, &itemType, &title, &created); err != nil {
			return count, path, fmt.Errorf("scan favorite: %w", err)
		}
		if err := w.Write([]string{id, userID, itemID, itemType, title, created}); err != nil {
			return count, path, err
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return count, path, err
	}

	w.Flush()
	return count, path, w.Error()
}
