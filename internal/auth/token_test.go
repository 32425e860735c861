package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	token, err := tm.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected subject 7, got %d", userID)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30*time.Minute)
	verifier := NewTokenManager("secret-b", 30*time.Minute)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("token %q: expected ErrTokenInvalid, got %v", tok, err)
		}
	}
}

func TestVerifyReportsExpiryDistinctly(t *testing.T) {
	tm := NewTokenManager("test-secret", 30*time.Minute)

	token, err := tm.Issue(3)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Shift the verifier's clock past the validity window.
	tm.now = func() time.Time { return time.Now().Add(31 * time.Minute) }

	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestZeroTTLFallsBackToDefault(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	if tm.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, tm.ttl)
	}
}
