package auth

import (
	"testing"
)

func TestNewAuth_RejectsEmptySecret(t *testing.T) {
	if _, err := NewAuth("", 24); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestIssueAndParseToken(t *testing.T) {
	a, err := NewAuth("test-secret", 24)
	if err != nil {
		t.Fatal(err)
	}

	token, err := a.IssueToken("user-123", true)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := a.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("Subject = %q, want user-123", claims.Subject)
	}
	if !claims.IsAdmin {
		t.Error("IsAdmin should round-trip")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	a, _ := NewAuth("secret-a", 24)
	b, _ := NewAuth("secret-b", 24)

	token, err := a.IssueToken("user-123", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.ParseToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	a, _ := NewAuth("test-secret", -1)

	token, err := a.IssueToken("user-123", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.ParseToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken for expired token", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	a, _ := NewAuth("test-secret", 24)
	if _, err := a.ParseToken("not.a.token"); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct{ in, want string }{
		{"User@Example.COM", "user@example.com"},
		{"  user@example.com  ", "user@example.com"},
		{"user@example.com", "user@example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
