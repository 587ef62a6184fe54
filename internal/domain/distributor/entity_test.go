package distributor

import (
	"errors"
	"testing"
)

func TestNewDistributor(t *testing.T) {
	d, err := NewDistributor("Distribuidora Sul", "27AAPFU0939F1ZV", "Sul Ltda", "Rua A, 10", "1199999000", "contato@sul.com", "Carlos", "user-1")
	if err != nil {
		t.Fatalf("NewDistributor retornou erro: %v", err)
	}

	if d.ID == "" {
		t.Error("ID não foi gerado")
	}
	if d.Name != "Distribuidora Sul" {
		t.Errorf("Name = %q, esperado %q", d.Name, "Distribuidora Sul")
	}
}

func TestNewDistributorNomeVazio(t *testing.T) {
	_, err := NewDistributor("", "", "", "", "", "", "", "user-1")
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("erro = %v, esperado %v", err, ErrEmptyName)
	}
}

func TestUpdate(t *testing.T) {
	d, err := NewDistributor("Distribuidora Sul", "", "", "", "", "", "", "user-1")
	if err != nil {
		t.Fatalf("NewDistributor retornou erro: %v", err)
	}

	if err := d.Update("Distribuidora Norte", "GST123", "Norte Ltda", "Rua B, 20", "1188888000", "norte@d.com", "Ana"); err != nil {
		t.Fatalf("Update retornou erro: %v", err)
	}
	if d.Name != "Distribuidora Norte" {
		t.Errorf("Name = %q, esperado %q", d.Name, "Distribuidora Norte")
	}

	if err := d.Update("", "", "", "", "", "", ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Update com nome vazio: erro = %v, esperado %v", err, ErrEmptyName)
	}
}
