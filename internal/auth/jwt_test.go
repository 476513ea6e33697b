package auth

import (
	"testing"

	"github.com/stockops/stock-manager/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(models.Session{FirstName: "Ada", LastName: "Lovelace"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	session, err := SessionFromRequestHeader("Bearer " + token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if session.FirstName != "Ada" || session.LastName != "Lovelace" {
		t.Errorf("expected Ada Lovelace, got %q %q", session.FirstName, session.LastName)
	}
}

func TestInvalidAuthorizationHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"missing scheme", "sometoken"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SessionFromRequestHeader(tt.header); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
