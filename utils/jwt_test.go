package utils

import (
	"mime/multipart"
	"testing"

	"github.com/dendisetiawann/kejora-frontend/config"
)

func withSessionConfig(t *testing.T, secret, expiry string) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		SessionSecret: secret,
		SessionExpiry: expiry,
		MaxUploadSize: 5242880,
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestSessionTokenRoundTrip(t *testing.T) {
	withSessionConfig(t, "test-secret", "24h")

	token, err := GenerateSessionToken("sess-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.SessionID != "sess-abc" {
		t.Fatalf("expected session ID round trip, got %q", claims.SessionID)
	}
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	withSessionConfig(t, "test-secret", "24h")
	token, err := GenerateSessionToken("sess-abc")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	withSessionConfig(t, "other-secret", "24h")
	if _, err := ValidateSessionToken(token); err == nil {
		t.Fatal("expected rejection with a different secret")
	}
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	withSessionConfig(t, "test-secret", "24h")

	if _, err := ValidateSessionToken("not.a.token"); err == nil {
		t.Fatal("expected rejection of malformed token")
	}
}

func TestValidateImageUpload(t *testing.T) {
	withSessionConfig(t, "test-secret", "24h")

	ok := &multipart.FileHeader{Filename: "kopi.JPG", Size: 1024}
	if err := ValidateImageUpload(ok); err != nil {
		t.Fatalf("expected jpg accepted, got %v", err)
	}

	tooBig := &multipart.FileHeader{Filename: "kopi.png", Size: 6 << 20}
	if err := ValidateImageUpload(tooBig); err == nil {
		t.Fatal("expected oversized file rejected")
	}

	wrongType := &multipart.FileHeader{Filename: "kopi.pdf", Size: 1024}
	if err := ValidateImageUpload(wrongType); err == nil {
		t.Fatal("expected non-image rejected")
	}
}
