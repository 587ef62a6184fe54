package expense

import (
	"errors"
	"testing"
	"time"
)

func TestNewExpense(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	e, err := NewExpense(TypeElectricity, 350.75, "conta de luz de março", date, "user-1")
	if err != nil {
		t.Fatalf("NewExpense retornou erro: %v", err)
	}

	if e.ID == "" {
		t.Error("ID não foi gerado")
	}
	if e.ExpenseType != TypeElectricity {
		t.Errorf("ExpenseType = %q, esperado %q", e.ExpenseType, TypeElectricity)
	}
	if !e.Date.Equal(date) {
		t.Errorf("Date = %v, esperado %v", e.Date, date)
	}
}

func TestNewExpenseValidation(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		expenseType Type
		amount      float64
		date        time.Time
		wantErr     error
	}{
		{name: "tipo vazio", expenseType: "", amount: 10, date: date, wantErr: ErrEmptyType},
		{name: "tipo desconhecido", expenseType: "viagem", amount: 10, date: date, wantErr: ErrInvalidType},
		{name: "valor zero", expenseType: TypeEmployee, amount: 0, date: date, wantErr: ErrInvalidAmount},
		{name: "valor negativo", expenseType: TypeEmployee, amount: -5, date: date, wantErr: ErrInvalidAmount},
		{name: "data zerada", expenseType: TypeEmployee, amount: 10, wantErr: ErrEmptyDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExpense(tt.expenseType, tt.amount, "", tt.date, "user-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewExpense erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, typ := range []Type{TypeEmployee, TypeElectricity, TypeMaintenance, TypeMarketing, TypeMiscellaneous} {
		if !typ.IsValid() {
			t.Errorf("Type %q deveria ser válido", typ)
		}
	}
}
