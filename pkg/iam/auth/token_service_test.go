package auth

import (
	"testing"
	"time"

	"github.com/jobdeck/jobdeck/pkg/kernel"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "jobdeck-test")

	token, err := svc.GenerateToken("user-1", "admin@example.com", []string{ScopeJobsAll})
	if err != nil {
		t.Fatalf("generating: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validating: %v", err)
	}
	if claims.UserID != kernel.UserID("user-1") {
		t.Fatalf("user id = %s", claims.UserID)
	}
	if claims.Email != kernel.Email("admin@example.com") {
		t.Fatalf("email = %s", claims.Email)
	}
	if len(claims.Scopes) != 1 || claims.Scopes[0] != ScopeJobsAll {
		t.Fatalf("scopes = %v", claims.Scopes)
	}
	if claims.Issuer != "jobdeck-test" {
		t.Fatalf("issuer = %s", claims.Issuer)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour, "jobdeck")
	verifier := NewJWTService("secret-b", time.Hour, "jobdeck")

	token, err := issuer.GenerateToken("user-1", "admin@example.com", nil)
	if err != nil {
		t.Fatalf("generating: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token signed with another secret should be rejected")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, "jobdeck")

	token, err := svc.GenerateToken("user-1", "admin@example.com", nil)
	if err != nil {
		t.Fatalf("generating: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token should be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, "jobdeck")
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Fatal("garbage token should be rejected")
	}
}

func TestHasAnyScope(t *testing.T) {
	ctx := &AuthContext{Scopes: []string{ScopeJobsRead, ScopeApplicationsReview}}

	if !ctx.HasAnyScope(ScopeJobsRead) {
		t.Fatal("held scope not recognized")
	}
	if !ctx.HasAnyScope(ScopeJobsWrite, ScopeApplicationsReview) {
		t.Fatal("any-of semantics broken")
	}
	if ctx.HasAnyScope(ScopeJobsDelete) {
		t.Fatal("unheld scope granted")
	}

	admin := &AuthContext{Scopes: []string{ScopeAll}}
	if !admin.HasAnyScope(ScopeAll) {
		t.Fatal("wildcard scope not recognized")
	}
}
