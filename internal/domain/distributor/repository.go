package distributor

import (
	"context"
)

// Repository define a interface para operações de repositório de distribuidores
type Repository interface {
	// Create cria um novo distribuidor
	Create(ctx context.Context, d *Distributor) error

	// FindByID busca um distribuidor pelo ID
	FindByID(ctx context.Context, id string) (*Distributor, error)

	// List lista todos os distribuidores
	List(ctx context.Context) ([]*Distributor, error)

	// Update atualiza os dados de um distribuidor existente
	Update(ctx context.Context, d *Distributor) error

	// Delete remove um distribuidor
	Delete(ctx context.Context, id string) error

	// ExistsByName verifica se já existe um distribuidor com o nome informado
	ExistsByName(ctx context.Context, name string) (bool, error)
}
