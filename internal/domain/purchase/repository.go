package purchase

import (
	"context"
	"time"
)

// Update descreve uma atualização parcial de nota fiscal de compra.
// Campos nulos permanecem inalterados; Items nulo mantém os itens atuais
// (quando presente, a lista não pode ser vazia).
type Update struct {
	Items         []Item
	PaymentMethod *PaymentMethod
	Status        *Status
	Notes         *string
}

// ListFilter define os filtros de listagem de notas de compra
type ListFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	DistributorID string
}

// Repository define a interface para o motor de notas fiscais de compra.
// Create, Update e Delete são unidades atômicas de trabalho: a escrita da
// nota e os ajustes de estoque persistem juntos ou não persistem.
type Repository interface {
	// Create grava a nota e soma o estoque recebido de cada item em uma
	// única transação; também aponta o distribuidor dos produtos recebidos
	// para o distribuidor da nota
	Create(ctx context.Context, inv *Invoice) error

	// FindByID busca uma nota pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista notas de compra, da mais recente para a mais antiga
	List(ctx context.Context, filter ListFilter) ([]*Invoice, error)

	// Update aplica uma atualização parcial, reconciliando os ajustes de
	// estoque contra os itens que estão sendo substituídos
	Update(ctx context.Context, id string, upd Update) (*Invoice, error)

	// Delete reverte o estoque recebido por cada item e remove a nota,
	// na mesma transação
	Delete(ctx context.Context, id string) error
}
