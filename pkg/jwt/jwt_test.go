package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "Maria", "maria@loja.com", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken retornou erro: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken retornou erro: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, esperado %q", claims.UserID, "user-1")
	}
	if claims.Name != "Maria" {
		t.Errorf("Name = %q, esperado %q", claims.Name, "Maria")
	}
	if claims.Email != "maria@loja.com" {
		t.Errorf("Email = %q, esperado %q", claims.Email, "maria@loja.com")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, esperado %q", claims.Role, "admin")
	}
}

func TestGenerateTokenSemSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken("user-1", "Maria", "maria@loja.com", "admin", time.Hour)
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("erro = %v, esperado %v", err, ErrMissingSecret)
	}
}

func TestValidateTokenExpirado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "Maria", "maria@loja.com", "staff", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken retornou erro: %v", err)
	}

	_, err = ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("erro = %v, esperado %v", err, ErrExpiredToken)
	}
}

func TestValidateTokenAdulterado(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := GenerateToken("user-1", "Maria", "maria@loja.com", "staff", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken retornou erro: %v", err)
	}

	_, err = ValidateToken(token + "x")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("erro = %v, esperado %v", err, ErrInvalidToken)
	}
}
