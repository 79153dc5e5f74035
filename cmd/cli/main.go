package main

import (
	"bufio"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"recohub/internal/recs"
	"recohub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

type tokenData struct {
	Token string `json:"token"`
}

type authResponse struct {
	Token string `json:"token"`
}

type recsResponse struct {
	Recommendations []models.Recommendation `json:"recommendations"`
}

type dailyResponse struct {
	Date        string                  `json:"date"`
	Suggestions []models.Recommendation `json:"suggestions"`
}

type templatesResponse struct {
	Total int                   `json:"total"`
	Items []models.TemplateItem `json:"items"`
}

type favoritesResponse struct {
	Total  int                   `json:"total"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Items  []models.FavoriteItem `json:"items"`
}

func main() {
	global := flag.NewFlagSet("recohub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	tokenPath := global.String("token", defaultTokenPath(), "token file path")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	cmd := args[0]
	sub := ""
	if len(args) > 1 {
		sub = args[1]
	}

	// generation can take up to 25s server-side; leave headroom
	client := &http.Client{Timeout: 30 * time.Second}

	switch cmd {
	case "auth":
		handleAuth(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "profile":
		handleProfile(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "recs":
		handleRecs(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "daily":
		handleDaily(ctx, client, *baseURL, args[1:])
	case "templates":
		handleTemplates(ctx, client, *baseURL, sub, args[2:])
	case "favorites":
		handleFavorites(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	case "log":
		handleLog(ctx, client, *baseURL, *tokenPath, args[1:])
	case "notify":
		handleNotify(*baseURL, *tokenPath, sub, args[2:])
	case "export":
		handleExport(ctx, client, *baseURL, *tokenPath, sub, args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleAuth(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "login":
		fs := flag.NewFlagSet("auth login", flag.ExitOnError)
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *email == "" || *password == "" {
			log.Fatal("email and password are required")
		}

		payload := map[string]string{"email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/login", "", payload, &resp); err != nil {
			log.Fatalf("login failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ logged in")
	case "register":
		fs := flag.NewFlagSet("auth register", flag.ExitOnError)
		username := fs.String("username", "", "username")
		email := fs.String("email", "", "email address")
		password := fs.String("password", "", "password")
		_ = fs.Parse(args)

		if *username == "" || *email == "" || *password == "" {
			log.Fatal("username, email, and password are required")
		}

		payload := map[string]string{"username": *username, "email": *email, "password": *password}
		var resp authResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/auth/register", "", payload, &resp); err != nil {
			log.Fatalf("register failed: %v", err)
		}
		if err := saveToken(tokenPath, resp.Token); err != nil {
			log.Fatalf("save token: %v", err)
		}
		fmt.Println("✅ registered and logged in")
	case "logout":
		if token, err := readToken(tokenPath); err == nil && token != "" {
			// best effort server-side invalidation
			_ = doJSON(ctx, client, http.MethodPost, baseURL+"/auth/logout", token, nil, nil)
		}
		if err := clearToken(tokenPath); err != nil {
			log.Fatalf("logout failed: %v", err)
		}
		fmt.Println("✅ logged out")
	case "me":
		token := mustToken(tokenPath)
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/me", token, nil, &resp); err != nil {
			log.Fatalf("me failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: recohub auth <login|register|logout|me>")
	}
}

func handleProfile(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "set":
		fs := flag.NewFlagSet("profile set", flag.ExitOnError)
		age := fs.String("age", "", "age")
		gender := fs.String("gender", "", "gender")
		city := fs.String("city", "", "city")
		region := fs.String("region", "", "region/state")
		country := fs.String("country", "", "country")
		activity := fs.String("activity", "", "comma-separated activities")
		mood := fs.String("mood", "", "comma-separated moods")
		bookGenre := fs.String("book-genre", "", "comma-separated book genres")
		musicType := fs.String("music-type", "", "comma-separated music types")
		movieStyle := fs.String("movie-style", "", "comma-separated movie styles")
		_ = fs.Parse(args)

		p := models.UserProfile{
			Age:        *age,
			Gender:     *gender,
			City:       *city,
			Region:     *region,
			Country:    *country,
			Activity:   splitCSV(*activity),
			Mood:       splitCSV(*mood),
			BookGenre:  splitCSV(*bookGenre),
			MusicType:  splitCSV(*musicType),
			MovieStyle: splitCSV(*movieStyle),
		}

		var resp models.UserProfile
		if err := doJSON(ctx, client, http.MethodPut, baseURL+"/users/profile", token, p, &resp); err != nil {
			log.Fatalf("profile set failed: %v", err)
		}
		printJSON(resp)
	case "show":
		var resp models.UserProfile
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/profile", token, nil, &resp); err != nil {
			log.Fatalf("profile show failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: recohub profile <set|show>")
	}
}

func handleRecs(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "generate", "search":
		fs := flag.NewFlagSet("recs "+sub, flag.ExitOnError)
		category := fs.String("category", "books", "books|movies|music")
		count := fs.Int("count", 15, "how many results to request (max 50)")
		query := fs.String("q", "", "search query (search only)")
		_ = fs.Parse(args)

		if sub == "search" && *query == "" {
			log.Fatal("-q is required for search")
		}

		profile := fetchProfile(ctx, client, baseURL, tokenPath)

		payload := map[string]any{
			"userProfile": profile,
			"category":    *category,
			"count":       *count,
		}
		if sub == "search" {
			payload["searchQuery"] = *query
		}

		var resp recsResponse
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/recommendations", "", payload, &resp); err != nil {
			log.Fatalf("%s failed: %v", sub, err)
		}

		browse(resp.Recommendations)
	default:
		log.Fatal("usage: recohub recs <generate|search>")
	}
}

// browse pages through the full result set locally; no re-fetch happens
// when flipping pages.
func browse(all []models.Recommendation) {
	if len(all) == 0 {
		fmt.Println("no recommendations")
		return
	}

	pager := recs.NewPager()
	pager.SetResults(all)
	printPage(pager.GoToPage(1), pager.Current(), pager.TotalPages())

	reader := bufio.NewScanner(os.Stdin)
	fmt.Println("commands: n(ext), p(rev), g <page>, q(uit)")
	for reader.Scan() {
		fields := strings.Fields(reader.Text())
		if len(fields) == 0 {
			continue
		}

		target := pager.Current()
		switch fields[0] {
		case "n":
			target++
		case "p":
			target--
		case "g":
			if len(fields) < 2 {
				fmt.Println("usage: g <page>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("usage: g <page>")
				continue
			}
			target = n
		case "q":
			return
		default:
			fmt.Println("commands: n(ext), p(rev), g <page>, q(uit)")
			continue
		}

		if target < 1 || target > pager.TotalPages() {
			fmt.Printf("page out of range (1-%d)\n", pager.TotalPages())
			continue
		}
		printPage(pager.GoToPage(target), pager.Current(), pager.TotalPages())
	}
}

func printPage(items []models.Recommendation, page, totalPages int) {
	fmt.Printf("\n— page %d/%d —\n", page, totalPages)
	for _, rec := range items {
		badge := "🌍"
		if rec.IsRegional {
			badge = "📍"
		}
		fmt.Printf("%s %s — %s (%d%%)\n", badge, rec.Title, rec.Creator, rec.Score)
		if rec.Origin != "" {
			fmt.Printf("   origin: %s\n", rec.Origin)
		}
		if rec.Reason != "" {
			fmt.Printf("   %s\n", rec.Reason)
		}
		if len(rec.Tags) > 0 {
			fmt.Printf("   tags: %s\n", strings.Join(rec.Tags, ", "))
		}
		for i, p := range rec.Platforms {
			if i == 6 {
				break // cards show at most 6 links
			}
			fmt.Printf("   [%s] %s: %s\n", p.Type, p.Name, p.URL)
		}
	}
}

func fetchProfile(ctx context.Context, client *http.Client, baseURL, tokenPath string) models.UserProfile {
	token, err := readToken(tokenPath)
	if err != nil || token == "" {
		return models.UserProfile{}
	}
	var p models.UserProfile
	if err := doJSON(ctx, client, http.MethodGet, baseURL+"/users/profile", token, nil, &p); err != nil {
		// no saved profile yet; generation still works with an empty one
		return models.UserProfile{}
	}
	return p
}

func handleDaily(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("daily", flag.ExitOnError)
	date := fs.String("date", "", "date as YYYY-MM-DD (defaults to today)")
	_ = fs.Parse(args)

	endpoint := baseURL + "/daily"
	if *date != "" {
		endpoint += "?date=" + url.QueryEscape(*date)
	}

	var resp dailyResponse
	if err := doJSON(ctx, client, http.MethodGet, endpoint, "", nil, &resp); err != nil {
		log.Fatalf("daily failed: %v", err)
	}

	fmt.Printf("daily picks for %s:\n", resp.Date)
	for _, rec := range resp.Suggestions {
		fmt.Printf("  %s — %s (%s): %s\n", rec.Title, rec.Creator, rec.Origin, rec.Reason)
	}
}

func handleTemplates(ctx context.Context, client *http.Client, baseURL, sub string, args []string) {
	switch sub {
	case "list":
		fs := flag.NewFlagSet("templates list", flag.ExitOnError)
		activity := fs.String("activity", "", "activity id filter")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/templates")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		if *activity != "" {
			qv := u.Query()
			qv.Set("activity", *activity)
			u.RawQuery = qv.Encode()
		}

		var resp templatesResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), "", nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	case "show":
		fs := flag.NewFlagSet("templates show", flag.ExitOnError)
		id := fs.String("id", "", "template id")
		_ = fs.Parse(args)
		if *id == "" {
			log.Fatal("template id is required")
		}

		var resp models.TemplateItem
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/templates/"+url.PathEscape(*id), "", nil, &resp); err != nil {
			log.Fatalf("show failed: %v", err)
		}
		printJSON(resp)
	case "activities":
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodGet, baseURL+"/activities", "", nil, &resp); err != nil {
			log.Fatalf("activities failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: recohub templates <list|show|activities>")
	}
}

func handleFavorites(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "toggle":
		fs := flag.NewFlagSet("favorites toggle", flag.ExitOnError)
		itemID := fs.String("item-id", "", "item id")
		itemType := fs.String("type", "", "book|movie|music|template")
		title := fs.String("title", "", "item title")
		_ = fs.Parse(args)
		if *itemID == "" || *itemType == "" {
			log.Fatal("item-id and type are required")
		}

		payload := map[string]any{
			"item_id":    *itemID,
			"item_type":  *itemType,
			"item_title": *title,
		}
		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/favorites", token, payload, &resp); err != nil {
			log.Fatalf("toggle failed: %v", err)
		}
		printJSON(resp)
	case "remove":
		fs := flag.NewFlagSet("favorites remove", flag.ExitOnError)
		itemID := fs.String("item-id", "", "item id")
		_ = fs.Parse(args)
		if *itemID == "" {
			log.Fatal("item-id is required")
		}

		var resp map[string]any
		if err := doJSON(ctx, client, http.MethodDelete, baseURL+"/users/favorites/"+url.PathEscape(*itemID), token, nil, &resp); err != nil {
			log.Fatalf("remove failed: %v", err)
		}
		printJSON(resp)
	case "list":
		fs := flag.NewFlagSet("favorites list", flag.ExitOnError)
		limit := fs.Int("limit", 20, "page size")
		offset := fs.Int("offset", 0, "offset")
		_ = fs.Parse(args)

		u, err := url.Parse(baseURL + "/users/favorites")
		if err != nil {
			log.Fatalf("invalid base url: %v", err)
		}
		qv := u.Query()
		qv.Set("limit", fmt.Sprintf("%d", *limit))
		qv.Set("offset", fmt.Sprintf("%d", *offset))
		u.RawQuery = qv.Encode()

		var resp favoritesResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			log.Fatalf("list failed: %v", err)
		}
		printJSON(resp)
	default:
		log.Fatal("usage: recohub favorites <toggle|remove|list>")
	}
}

func handleLog(ctx context.Context, client *http.Client, baseURL, tokenPath string, args []string) {
	token := mustToken(tokenPath)

	fs := flag.NewFlagSet("log", flag.ExitOnError)
	itemID := fs.String("item-id", "", "item id")
	itemType := fs.String("type", "", "book|movie|music")
	title := fs.String("title", "", "item title")
	templateID := fs.String("template", "", "template id (if launched from one)")
	contexts := fs.String("context", "", "comma-separated context labels")
	_ = fs.Parse(args)
	if *itemID == "" || *itemType == "" {
		log.Fatal("item-id and type are required")
	}

	payload := map[string]any{
		"item_id":     *itemID,
		"item_type":   *itemType,
		"item_title":  *title,
		"template_id": *templateID,
		"context":     splitCSV(*contexts),
	}
	var resp map[string]any
	if err := doJSON(ctx, client, http.MethodPost, baseURL+"/users/events", token, payload, &resp); err != nil {
		log.Fatalf("log failed: %v", err)
	}
	printJSON(resp)
}

func handleNotify(baseURL, tokenPath, sub string, args []string) {
	switch sub {
	case "subscribe":
		fs := flag.NewFlagSet("notify subscribe", flag.ExitOnError)
		wsURL := fs.String("ws", "", "WebSocket URL (defaults to /ws on API host)")
		_ = fs.Parse(args)

		endpoint := *wsURL
		if endpoint == "" {
			var err error
			// authenticate when a token is on disk so user-scoped events arrive
			token, _ := readToken(tokenPath)
			endpoint, err = websocketURL(baseURL, "/ws", token)
			if err != nil {
				log.Fatalf("ws url: %v", err)
			}
		}
		if err := runWebSocket(endpoint); err != nil {
			log.Fatalf("subscribe failed: %v", err)
		}
	default:
		log.Fatal("usage: recohub notify subscribe")
	}
}

func handleExport(ctx context.Context, client *http.Client, baseURL, tokenPath, sub string, args []string) {
	token := mustToken(tokenPath)
	switch sub {
	case "json":
		fs := flag.NewFlagSet("export json", flag.ExitOnError)
		out := fs.String("out", "data/favorites.json", "output JSON path")
		limit := fs.Int("limit", 200, "max favorites to export")
		_ = fs.Parse(args)

		items, err := fetchFavorites(ctx, client, baseURL, token, *limit)
		if err != nil {
			log.Fatalf("export json failed: %v", err)
		}
		if err := writeJSON(*out, items); err != nil {
			log.Fatalf("write json failed: %v", err)
		}
		log.Printf("✅ exported %d favorites to %s", len(items), *out)
	case "csv":
		fs := flag.NewFlagSet("export csv", flag.ExitOnError)
		out := fs.String("out", "data/favorites.csv", "output CSV path")
		limit := fs.Int("limit", 200, "max favorites to export")
		_ = fs.Parse(args)

		items, err := fetchFavorites(ctx, client, baseURL, token, *limit)
		if err != nil {
			log.Fatalf("export csv failed: %v", err)
		}
		if err := writeCSV(*out, items); err != nil {
			log.Fatalf("write csv failed: %v", err)
		}
		log.Printf("✅ exported %d favorites to %s", len(items), *out)
	default:
		log.Fatal("usage: recohub export <json|csv>")
	}
}

func runWebSocket(wsURL string) error {
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Printf("[notify] connected to %s", wsURL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		fmt.Println(string(msg))
	}
}

func fetchFavorites(ctx context.Context, client *http.Client, baseURL, token string, limit int) ([]models.FavoriteItem, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	var out []models.FavoriteItem
	offset := 0
	for len(out) < limit {
		pageSize := 50
		if remaining := limit - len(out); remaining < pageSize {
			pageSize = remaining
		}
		u, err := url.Parse(baseURL + "/users/favorites")
		if err != nil {
			return nil, err
		}
		qv := u.Query()
		qv.Set("limit", fmt.Sprintf("%d", pageSize))
		qv.Set("offset", fmt.Sprintf("%d", offset))
		u.RawQuery = qv.Encode()

		var resp favoritesResponse
		if err := doJSON(ctx, client, http.MethodGet, u.String(), token, nil, &resp); err != nil {
			return nil, err
		}
		if len(resp.Items) == 0 {
			break
		}
		out = append(out, resp.Items...)
		offset += len(resp.Items)
		if offset >= resp.Total {
			break
		}
	}

	return out, nil
}

func writeJSON(path string, items []models.FavoriteItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func writeCSV(path string, items []models.FavoriteItem) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{
		"id", "item_id", "item_type", "item_title", "created_at",
	}); err != nil {
		return err
	}
	for _, item := range items {
		if err := writer.Write([]string{
			item.ID,
			item.ItemID,
			item.ItemType,
			item.ItemTitle,
			item.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func doJSON(ctx context.Context, client *http.Client, method, endpoint, token string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = strings.NewReader(string(b))
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed: %s", method, endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	return nil
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./.recohub-token.json"
	}
	return filepath.Join(home, ".recohub", "token.json")
}

func saveToken(path, token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(tokenData{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var td tokenData
	if err := json.Unmarshal(data, &td); err != nil {
		return "", err
	}
	return strings.TrimSpace(td.Token), nil
}

func mustToken(path string) string {
	token, err := readToken(path)
	if err != nil {
		log.Fatalf("token not found, please login: %v", err)
	}
	if token == "" {
		log.Fatal("token empty, please login")
	}
	return token
}

func clearToken(path string) error {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func websocketURL(baseURL, path, token string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	out := url.URL{
		Scheme: scheme,
		Host:   u.Host,
		Path:   path,
	}
	if token != "" {
		out.RawQuery = url.Values{"token": {token}}.Encode()
	}
	return out.String(), nil
}

func printUsage() {
	fmt.Println("recohub <command> [subcommand] [flags]")
	fmt.Println("commands:")
	fmt.Println("  auth login|register|logout|me")
	fmt.Println("  profile set|show")
	fmt.Println("  recs generate|search")
	fmt.Println("  daily [-date YYYY-MM-DD]")
	fmt.Println("  templates list|show|activities")
	fmt.Println("  favorites toggle|remove|list")
	fmt.Println("  log -item-id ... -type ...")
	fmt.Println("  notify subscribe")
	fmt.Println("  export json|csv")
}
