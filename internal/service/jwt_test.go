package service

import (
	"strings"
	"testing"
)

func TestGenerateParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT("7b0e8f7e-1111-2222-3333-444455556666", "Ana")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	id, name, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != "7b0e8f7e-1111-2222-3333-444455556666" {
		t.Fatalf("player id = %q", id)
	}
	if name != "Ana" {
		t.Fatalf("player name = %q", name)
	}
}

func TestParseJWTTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	token, err := GenerateJWT("id-1", "Ana")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// flip the last character of the signature
	tampered := token[:len(token)-1] + "x"
	if strings.HasSuffix(token, "x") {
		tampered = token[:len(token)-1] + "y"
	}

	if _, _, err := ParseJWT(tampered); err == nil {
		t.Fatal("tampered token accepted")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	InitJWT()
	token, err := GenerateJWT("id-1", "Ana")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	InitJWT()
	if _, _, err := ParseJWT(token); err == nil {
		t.Fatal("token signed with a different secret accepted")
	}
}
