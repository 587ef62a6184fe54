package user

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Maria", "maria@loja.com", "senha-secreta", RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser retornou erro: %v", err)
	}

	if u.Password == "senha-secreta" {
		t.Error("senha foi armazenada em texto puro")
	}
	if !u.CheckPassword("senha-secreta") {
		t.Error("CheckPassword rejeitou a senha correta")
	}
	if u.CheckPassword("outra-senha") {
		t.Error("CheckPassword aceitou senha incorreta")
	}
	if !u.IsAdmin() {
		t.Error("IsAdmin() = false para RoleAdmin")
	}
}

func TestNewUserRolePadrao(t *testing.T) {
	u, err := NewUser("João", "joao@loja.com", "senha", "")
	if err != nil {
		t.Fatalf("NewUser retornou erro: %v", err)
	}
	if u.Role != RoleStaff {
		t.Errorf("Role = %q, esperado %q", u.Role, RoleStaff)
	}
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{name: "nome vazio", email: "a@b.com", password: "x", wantErr: ErrEmptyName},
		{name: "email vazio", userName: "Maria", password: "x", wantErr: ErrEmptyEmail},
		{name: "senha vazia", userName: "Maria", email: "a@b.com", wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.userName, tt.email, tt.password, RoleStaff)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewUser erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}
