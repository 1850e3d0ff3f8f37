package auth

import (
	"testing"

	"github.com/reev-boutik/produit/internal/models"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{ID: 7, Username: "admin", Role: "admin"}

	tokenStr, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, claims, err := TokenClaims("Bearer " + tokenStr)
	if err != nil {
		t.Fatalf("TokenClaims: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected a valid token")
	}
	if claims["username"] != "admin" {
		t.Errorf("username claim = %v, want admin", claims["username"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role claim = %v, want admin", claims["role"])
	}
	// JSON round-tripping turns the numeric claim into a float64.
	if claims["sub"] != float64(7) {
		t.Errorf("sub claim = %v, want 7", claims["sub"])
	}
}

func TestTokenClaimsRejectsBadHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"empty header", ""},
		{"missing scheme", "abc.def.ghi"},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := TokenClaims(tt.header); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTokenRejectedAfterSecretRotation(t *testing.T) {
	t.Cleanup(func() { SetSecret("super-secret-key") })

	tokenStr, err := GenerateToken(models.User{ID: 7, Username: "admin"})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("rotated-secret")
	if _, _, err := TokenClaims("Bearer " + tokenStr); err == nil {
		t.Error("token signed with the old secret should be rejected")
	}
}
