package product

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto
	Create(ctx context.Context, p *Product) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByBarcode busca um produto pelo código de barras
	FindByBarcode(ctx context.Context, barcode string) (*Product, error)

	// FindByCategory lista os produtos de uma categoria
	FindByCategory(ctx context.Context, category string) ([]*Product, error)

	// FindByDistributor lista os produtos de um distribuidor
	FindByDistributor(ctx context.Context, distributor string) ([]*Product, error)

	// SearchByName busca produtos pelo nome (parcial, sem diferenciar maiúsculas)
	SearchByName(ctx context.Context, name string) ([]*Product, error)

	// List lista todos os produtos
	List(ctx context.Context) ([]*Product, error)

	// Update atualiza os dados cadastrais de um produto existente
	Update(ctx context.Context, p *Product) error

	// Delete remove um produto
	Delete(ctx context.Context, id string) error
}
