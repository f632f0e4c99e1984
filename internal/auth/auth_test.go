package auth_test

import (
	"strings"
	"testing"

	"github.com/protomem/schedule-app/internal/auth"
)

func TestHashPassword(t *testing.T) {
	hash, err := auth.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("testpass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !auth.CheckPassword(hash, "testpass123") {
		t.Error("correct password must match")
	}
	if auth.CheckPassword(hash, "wrongpassword") {
		t.Error("wrong password must not match")
	}
	if auth.CheckPassword("not-a-hash", "testpass123") {
		t.Error("garbage hash must not match")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	h1, _ := auth.HashPassword("testpass123")
	h2, _ := auth.HashPassword("testpass123")
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}
