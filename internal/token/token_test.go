package token

import (
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(Config{Secret: []byte("super-secret"), TTL: time.Hour})
	tok, err := iss.Issue("64f0c2a1b3")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if tok == "" {
		t.Fatal("Issue returned empty token")
	}

	id, err := iss.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if id != "64f0c2a1b3" {
		t.Fatalf("user id mismatch: got %q", id)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(Config{Secret: []byte("secret"), TTL: time.Hour})
	// force expiry into the past
	iss.ttl = -time.Minute
	tok, err := iss.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := iss.Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer(Config{Secret: []byte("right-secret")}).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewIssuer(Config{Secret: []byte("wrong-secret")}).Verify(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestConfigFromEnv_SecretDefaulting(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := ConfigFromEnv()
	if !cfg.DefaultSecret {
		t.Fatal("expected DefaultSecret when JWT_SECRET is unset")
	}

	t.Setenv("JWT_SECRET", "configured-secret")
	cfg = ConfigFromEnv()
	if cfg.DefaultSecret {
		t.Fatal("DefaultSecret should be false when JWT_SECRET is set")
	}
	if string(cfg.Secret) != "configured-secret" {
		t.Fatalf("secret = %q", cfg.Secret)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	iss := NewIssuer(Config{Secret: []byte("k")})
	if _, err := iss.Verify("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
