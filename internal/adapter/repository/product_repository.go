package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-mercearia/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de produtos
var (
	ErrProductNotFound         = errors.New("produto não encontrado")
	ErrProductDuplicateBarcode = errors.New("produto com mesmo código de barras já existe")
)

const productColumns = `
	id, name, COALESCE(barcode, ''), category, distributor, stock,
	cost_price::double precision, mrp::double precision,
	selling_price::double precision, COALESCE(batch_no, ''), mfg_date,
	expiry_date, COALESCE(product_image, ''), added_by, created_at, updated_at`

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

// Create implementa product.Repository.Create
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (
			id, name, barcode, category, distributor, stock, cost_price, mrp,
			selling_price, batch_no, mfg_date, expiry_date, product_image,
			added_by, created_at, updated_at
		) VALUES (
			$1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, NULLIF($10, ''),
			$11, $12, NULLIF($13, ''), $14, $15, $16
		)`,
		p.ID, p.Name, p.Barcode, p.Category, p.Distributor, p.Stock,
		p.CostPrice, p.MRP, p.SellingPrice, p.BatchNo, p.MfgDate,
		p.ExpiryDate, p.ProductImage, p.AddedBy, p.CreatedAt, p.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// FindByBarcode implementa product.Repository.FindByBarcode
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*product.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE barcode = $1`, barcode)
	return scanProduct(row)
}

// FindByCategory implementa product.Repository.FindByCategory
func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = $1 ORDER BY name`, category)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos por categoria: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// FindByDistributor implementa product.Repository.FindByDistributor
func (r *ProductRepository) FindByDistributor(ctx context.Context, distributor string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE distributor = $1 ORDER BY name`, distributor)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos por distribuidor: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// SearchByName implementa product.Repository.SearchByName
func (r *ProductRepository) SearchByName(ctx context.Context, name string) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, name)
	if err != nil {
		return nil, fmt.Errorf("erro ao pesquisar produtos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Update implementa product.Repository.Update. O estoque não é alterado aqui:
// movimentações de estoque pertencem aos motores de nota fiscal.
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products SET
			name = $1, barcode = NULLIF($2, ''), category = $3, distributor = $4,
			cost_price = $5, mrp = $6, selling_price = $7, batch_no = NULLIF($8, ''),
			mfg_date = $9, expiry_date = $10, product_image = NULLIF($11, ''),
			updated_at = $12
		WHERE id = $13`,
		p.Name, p.Barcode, p.Category, p.Distributor, p.CostPrice, p.MRP,
		p.SellingPrice, p.BatchNo, p.MfgDate, p.ExpiryDate, p.ProductImage,
		p.UpdatedAt, p.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrProductDuplicateBarcode
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// Delete implementa product.Repository.Delete. Notas já emitidas guardam cópias
// desnormalizadas dos atributos do produto, então não há cascata.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

// scanProduct lê um produto de uma linha de resultado
func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Category, &p.Distributor, &p.Stock,
		&p.CostPrice, &p.MRP, &p.SellingPrice, &p.BatchNo, &p.MfgDate,
		&p.ExpiryDate, &p.ProductImage, &p.AddedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

// collectProducts lê todos os produtos de um conjunto de resultados
func collectProducts(rows pgx.Rows) ([]*product.Product, error) {
	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar produtos: %w", err)
	}
	return products, nil
}
