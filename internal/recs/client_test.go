package recs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"recohub/pkg/logger"
)

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		Endpoint:   srv.URL,
		APIKey:     "test-key",
		Model:      "test-model",
		HTTPClient: srv.Client(),
		Log:        logger.Nop(),
	}
}

func TestClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("got auth header %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		if req.Model != "test-model" {
			t.Errorf("got model %q", req.Model)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": `[{"id":"a"}]`}},
			},
		})
	}))
	defer srv.Close()

	content, err := newTestClient(srv).Generate(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if content != `[{"id":"a"}]` {
		t.Fatalf("got content %q", content)
	}
}

func TestClientGenerateErrorMapping(t *testing.T) {
	cases := []struct {
		status  int
		wantErr error
	}{
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusPaymentRequired, ErrQuotaExhausted},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		_, err := newTestClient(srv).Generate(context.Background(), "sys", "user")
		srv.Close()
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("status %d: got err %v, want %v", tc.status, err, tc.wantErr)
		}
	}
}

func TestClientGenerateGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Generate(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected error on 500")
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExhausted) {
		t.Fatalf("500 must not map to a sentinel error, got %v", err)
	}
}

func TestClientGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Generate(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
