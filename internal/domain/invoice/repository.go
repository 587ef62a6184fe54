package invoice

import (
	"context"
	"time"
)

// Update descreve uma atualização parcial de nota fiscal de venda.
// Campos nulos permanecem inalterados; Items nulo mantém os itens atuais
// (quando presente, a lista não pode ser vazia).
type Update struct {
	CustomerName    *string
	CustomerPhone   *string
	CustomerAddress *string
	Items           []Item
	PaymentMethod   *PaymentMethod
	Status          *Status
	Notes           *string
}

// ListFilter define os filtros de listagem de notas de venda
type ListFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	CustomerName string
	Page         int
	PageSize     int
}

// Repository define a interface para o motor de notas fiscais de venda.
// Create, Update e Delete são unidades atômicas de trabalho: a escrita da
// nota e os ajustes de estoque persistem juntos ou não persistem.
type Repository interface {
	// Create valida o estoque de cada item, grava a nota e baixa o estoque,
	// tudo em uma única transação
	Create(ctx context.Context, inv *Invoice) error

	// FindByID busca uma nota pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// List lista notas com filtros e paginação, e retorna o total de registros
	List(ctx context.Context, filter ListFilter) ([]*Invoice, int, error)

	// Update aplica uma atualização parcial, reconciliando os ajustes de
	// estoque contra os itens que estão sendo substituídos
	Update(ctx context.Context, id string, upd Update) (*Invoice, error)

	// Delete remove a nota pelo ID. O estoque baixado na emissão não é
	// devolvido: a exclusão arquiva o registro, não desfaz a venda.
	Delete(ctx context.Context, id string) error
}
