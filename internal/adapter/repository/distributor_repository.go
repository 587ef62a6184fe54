package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-mercearia/internal/domain/distributor"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de distribuidores
var (
	ErrDistributorDuplicateName = errors.New("distribuidor com mesmo nome já existe")
)

const distributorColumns = `
	id, name, COALESCE(gstin, ''), COALESCE(company, ''), COALESCE(address, ''),
	COALESCE(phone, ''), COALESCE(email, ''), COALESCE(contact_person, ''),
	created_by, created_at, updated_at`

// DistributorRepository implementa a interface distributor.Repository
type DistributorRepository struct {
	db *pgxpool.Pool
}

// NewDistributorRepository cria uma nova instância de DistributorRepository
func NewDistributorRepository(db *pgxpool.Pool) distributor.Repository {
	return &DistributorRepository{
		db: db,
	}
}

// Create implementa distributor.Repository.Create
func (r *DistributorRepository) Create(ctx context.Context, d *distributor.Distributor) error {
	exists, err := r.ExistsByName(ctx, d.Name)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do distribuidor: %w", err)
	}
	if exists {
		return ErrDistributorDuplicateName
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO distributors (
			id, name, gstin, company, address, phone, email, contact_person,
			created_by, created_at, updated_at
		) VALUES (
			$1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''),
			NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9, $10, $11
		)`,
		d.ID, d.Name, d.GSTIN, d.Company, d.Address, d.Phone, d.Email,
		d.ContactPerson, d.CreatedBy, d.CreatedAt, d.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDistributorDuplicateName
		}
		return fmt.Errorf("erro ao criar distribuidor: %w", err)
	}

	return nil
}

// FindByID implementa distributor.Repository.FindByID
func (r *DistributorRepository) FindByID(ctx context.Context, id string) (*distributor.Distributor, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+distributorColumns+` FROM distributors WHERE id = $1`, id)
	return scanDistributor(row)
}

// List implementa distributor.Repository.List
func (r *DistributorRepository) List(ctx context.Context) ([]*distributor.Distributor, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+distributorColumns+` FROM distributors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar distribuidores: %w", err)
	}
	defer rows.Close()

	distributors := make([]*distributor.Distributor, 0)
	for rows.Next() {
		d, err := scanDistributor(rows)
		if err != nil {
			return nil, err
		}
		distributors = append(distributors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar distribuidores: %w", err)
	}

	return distributors, nil
}

// Update implementa distributor.Repository.Update
func (r *DistributorRepository) Update(ctx context.Context, d *distributor.Distributor) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE distributors SET
			name = $1, gstin = NULLIF($2, ''), company = NULLIF($3, ''),
			address = NULLIF($4, ''), phone = NULLIF($5, ''),
			email = NULLIF($6, ''), contact_person = NULLIF($7, ''),
			updated_at = $8
		WHERE id = $9`,
		d.Name, d.GSTIN, d.Company, d.Address, d.Phone, d.Email,
		d.ContactPerson, d.UpdatedAt, d.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrDistributorDuplicateName
		}
		return fmt.Errorf("erro ao atualizar distribuidor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDistributorNotFound
	}

	return nil
}

// Delete implementa distributor.Repository.Delete
func (r *DistributorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM distributors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover distribuidor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDistributorNotFound
	}

	return nil
}

// ExistsByName implementa distributor.Repository.ExistsByName
func (r *DistributorRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM distributors WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar distribuidor: %w", err)
	}
	return exists, nil
}

// scanDistributor lê um distribuidor de uma linha de resultado
func scanDistributor(row pgx.Row) (*distributor.Distributor, error) {
	var d distributor.Distributor
	err := row.Scan(
		&d.ID, &d.Name, &d.GSTIN, &d.Company, &d.Address, &d.Phone, &d.Email,
		&d.ContactPerson, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDistributorNotFound
		}
		return nil, fmt.Errorf("erro ao buscar distribuidor: %w", err)
	}
	return &d, nil
}
