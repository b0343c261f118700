package utils

import (
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "s3cret" {
		t.Error("password stored in plain text")
	}

	if err := CheckPassword("s3cret", hash); err != nil {
		t.Errorf("CheckPassword rejected correct password: %v", err)
	}

	if err := CheckPassword("wrong", hash); err == nil {
		t.Error("CheckPassword accepted wrong password")
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@x.com", true},
		{"user.name+tag@example.co", true},
		{"not-an-email", false},
		{"@missing.local", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsValidEmail(tc.email); got != tc.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}
