package sync

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"recohub/pkg/logger"
)

func testParser(token string) (string, error) {
	if strings.HasPrefix(token, "valid-") {
		return strings.TrimPrefix(token, "valid-"), nil
	}
	return "", errors.New("bad token")
}

func startTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	router := gin.New()
	router.GET("/ws", WSHandler(hub, testParser, logger.Nop()))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	if token != "" {
		wsURL += "?token=" + token
	}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	return conn
}

func readWelcome(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read welcome: %v", err)
	}
	var welcome map[string]string
	if err := json.Unmarshal(msg, &welcome); err != nil || welcome["type"] != "welcome" {
		t.Fatalf("unexpected welcome %q (err %v)", msg, err)
	}
}

func TestWSUserScopedBroadcast(t *testing.T) {
	hub, srv := startTestHub(t)

	owner := dial(t, srv, "valid-user-1")
	other := dial(t, srv, "valid-user-2")
	readWelcome(t, owner)
	readWelcome(t, other)

	waitFor(t, func() bool { return hub.Stats().WSClients == 2 })

	hub.BroadcastToUser("user-1", FavoriteEvent{
		Type:     "favorite.add",
		UserID:   "user-1",
		ItemID:   "rec-1",
		ItemType: "book",
	})

	_, msg, err := owner.ReadMessage()
	if err != nil {
		t.Fatalf("owner read: %v", err)
	}
	var ev FavoriteEvent
	if err := json.Unmarshal(msg, &ev); err != nil {
		t.Fatalf("broadcast not json: %v", err)
	}
	if ev.Type != "favorite.add" || ev.ItemID != "rec-1" {
		t.Fatalf("got event %+v", ev)
	}

	// the other user must see nothing: the next read times out
	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Fatal("other user received a foreign event")
	}
}

func TestWSAnonymousGetsNoUserEvents(t *testing.T) {
	hub, srv := startTestHub(t)

	conn := dial(t, srv, "")
	readWelcome(t, conn)
	waitFor(t, func() bool { return hub.Stats().WSClients == 1 })

	hub.BroadcastToUser("user-1", ProfileEvent{Type: "profile.update", UserID: "user-1"})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("anonymous client received a user event")
	}
}

func TestWSRejectsBadToken(t *testing.T) {
	_, srv := startTestHub(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=garbage"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err == nil {
		conn.Close()
		t.Fatal("bad token must not upgrade")
	}
	if resp == nil || resp.StatusCode != 401 {
		t.Fatalf("got response %+v, want 401", resp)
	}
}

func TestHubStatsTrackClients(t *testing.T) {
	hub, srv := startTestHub(t)

	conn := dial(t, srv, "valid-user-1")
	waitFor(t, func() bool { return hub.Stats().WSClients == 1 })

	conn.Close()
	waitFor(t, func() bool { return hub.Stats().WSClients == 0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
