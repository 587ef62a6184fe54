package expense

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyType     = errors.New("tipo de despesa é obrigatório")
	ErrInvalidType   = errors.New("tipo de despesa inválido")
	ErrInvalidAmount = errors.New("valor da despesa deve ser maior que zero")
	ErrEmptyDate     = errors.New("data da despesa é obrigatória")
)

// Type define a categoria da despesa
type Type string

const (
	TypeEmployee      Type = "employee"
	TypeElectricity   Type = "electricity"
	TypeMaintenance   Type = "maintenance"
	TypeMarketing     Type = "marketing"
	TypeMiscellaneous Type = "miscellaneous"
)

// IsValid verifica se o tipo de despesa é conhecido
func (t Type) IsValid() bool {
	switch t {
	case TypeEmployee, TypeElectricity, TypeMaintenance, TypeMarketing, TypeMiscellaneous:
		return true
	}
	return false
}

// Expense representa uma despesa operacional da loja
type Expense struct {
	ID          string    `json:"id"`          // ID da Despesa
	ExpenseType Type      `json:"expense_type"` // Tipo
	Amount      float64   `json:"amount"`      // Valor
	Description string    `json:"description"` // Descrição
	Date        time.Time `json:"date"`        // Data da Despesa
	CreatedBy   string    `json:"created_by"`  // ID do Usuário que registrou
	CreatedAt   time.Time `json:"created_at"`  // Data de Criação
	UpdatedAt   time.Time `json:"updated_at"`  // Data de Atualização
}

// NewExpense cria uma nova despesa
func NewExpense(expenseType Type, amount float64, description string, date time.Time, createdBy string) (*Expense, error) {
	if expenseType == "" {
		return nil, ErrEmptyType
	}
	if !expenseType.IsValid() {
		return nil, ErrInvalidType
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		return nil, ErrEmptyDate
	}

	now := time.Now()
	return &Expense{
		ID:          uuid.New().String(),
		ExpenseType: expenseType,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
