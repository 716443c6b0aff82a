package helpers

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ada@example.com", "hotel_owner", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := ValidateToken(token, "test-secret")
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("userId: got %q", claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Role != "hotel_owner" {
		t.Errorf("role: got %q", claims.Role)
	}
	if !claims.IsHotelOwner() {
		t.Error("IsHotelOwner should be true")
	}
	if claims.IsAdmin() {
		t.Error("IsAdmin should be false")
	}
	if !claims.HasRole("admin", "hotel_owner") {
		t.Error("HasRole should match any of the given roles")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("user-1", "ada@example.com", "user", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateToken(token, "wrong-secret"); err == nil {
		t.Fatal("token signed with a different secret must not validate")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("user-1", "ada@example.com", "user", "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateToken(token, "test-secret"); err == nil {
		t.Fatal("expired token must not validate")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "s3cret-pass") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Error("wrong password must not verify")
	}
}
