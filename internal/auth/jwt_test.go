package auth

import (
	"testing"
	"time"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "recohub-test",
		Duration: time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	ts := testTokenService()
	u := &User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		TokenVersion: 3,
	}

	token, exp, err := ts.Sign(u)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if time.Until(exp) < 55*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != u.ID || claims.Username != u.Username || claims.Email != u.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.TokenVersion != 3 {
		t.Fatalf("token version = %d, want 3", claims.TokenVersion)
	}
	if claims.Issuer != "recohub-test" {
		t.Fatalf("issuer = %q", claims.Issuer)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	ts := testTokenService()
	token, _, err := ts.Sign(&User{ID: "user-1"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	other := testTokenService()
	other.Secret = []byte("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	ts := testTokenService()
	ts.Duration = -time.Minute

	token, _, err := ts.Sign(&User{ID: "user-1"})
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := ts.Parse(token); err == nil {
		t.Fatal("expired token must not parse")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	if _, err := testTokenService().Parse("not.a.token"); err == nil {
		t.Fatal("garbage must not parse")
	}
}
