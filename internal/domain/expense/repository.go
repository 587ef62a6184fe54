package expense

import (
	"context"
	"time"
)

// ListFilter define os filtros de listagem de despesas
type ListFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Repository define a interface para operações de repositório de despesas
type Repository interface {
	// Create registra uma nova despesa
	Create(ctx context.Context, e *Expense) error

	// FindByID busca uma despesa pelo ID
	FindByID(ctx context.Context, id string) (*Expense, error)

	// List lista despesas, da mais recente para a mais antiga
	List(ctx context.Context, filter ListFilter) ([]*Expense, error)

	// Delete remove uma despesa
	Delete(ctx context.Context, id string) error
}
