package auth

import (
	"testing"
	"time"
)

func TestTokens_IssueParseRoundtrip(t *testing.T) {
	t.Parallel()

	tk := NewTokens("secret-a")
	u := &User{ID: "u1", Email: "jo@example.com"}

	raw, err := tk.Issue(u)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	sess, err := tk.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sess.UserID != "u1" || sess.Email != "jo@example.com" {
		t.Fatalf("session=%+v", sess)
	}
}

func TestTokens_BadInputsAreNoSession(t *testing.T) {
	t.Parallel()

	tk := NewTokens("secret-a")

	if _, err := tk.Parse("garbage"); err != ErrNoSession {
		t.Fatalf("garbage token: err=%v, want ErrNoSession", err)
	}

	// signed with a different secret
	other := NewTokens("secret-b")
	raw, err := other.Issue(&User{ID: "u1", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tk.Parse(raw); err != ErrNoSession {
		t.Fatalf("wrong-secret token: err=%v, want ErrNoSession", err)
	}
}

func TestTokens_ExpiredIsNoSession(t *testing.T) {
	t.Parallel()

	tk := NewTokens("secret-a")
	tk.ttl = -time.Minute // already expired at issue time

	raw, err := tk.Issue(&User{ID: "u1", Email: "jo@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := tk.Parse(raw); err != ErrNoSession {
		t.Fatalf("expired token: err=%v, want ErrNoSession", err)
	}
}
