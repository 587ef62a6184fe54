package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-mercearia/internal/domain/product"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrInsufficientStock é retornado quando uma baixa deixaria o estoque negativo
var ErrInsufficientStock = errors.New("estoque insuficiente")

// stockTx é o recorte mínimo de pgx.Tx usado pelo livro-razão de estoque
type stockTx interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// applyStockDelta aplica um ajuste assinado ao estoque de um produto dentro da
// transação do chamador. A linha do produto é travada com FOR UPDATE, de modo
// que mutações concorrentes sobre o mesmo produto fiquem serializadas. Delta
// positivo recebe estoque (compra); negativo baixa estoque (venda).
//
// Falha com ErrProductNotFound se o produto não existe e com
// ErrInsufficientStock se o ajuste deixaria o estoque negativo. Nos dois casos
// cabe ao chamador abortar a transação inteira: ajuste parcial de estoque
// nunca é um resultado aceitável.
func applyStockDelta(ctx context.Context, tx stockTx, productID string, delta int) (int, error) {
	var (
		name  string
		stock int
	)
	err := tx.QueryRow(ctx,
		`SELECT name, stock FROM products WHERE id = $1 FOR UPDATE`,
		productID).Scan(&name, &stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
		}
		return 0, fmt.Errorf("erro ao carregar estoque do produto: %w", err)
	}

	newStock := stock + delta
	if newStock < 0 {
		return 0, fmt.Errorf("%w: produto %s, disponível %d, solicitado %d",
			ErrInsufficientStock, name, stock, -delta)
	}

	_, err = tx.Exec(ctx,
		`UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`,
		newStock, productID)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar estoque do produto: %w", err)
	}

	return newStock, nil
}

// loadProductForUpdate carrega um produto travando a linha dentro da
// transação do chamador. Os motores de nota usam o retorno para congelar os
// atributos do produto no item no momento da transação.
func loadProductForUpdate(ctx context.Context, tx stockTx, id string) (*product.Product, error) {
	var p product.Product
	err := tx.QueryRow(ctx,
		`SELECT
			id, name, COALESCE(barcode, ''), category, distributor, stock,
			cost_price::double precision, mrp::double precision,
			selling_price::double precision, COALESCE(batch_no, ''), mfg_date,
			expiry_date, COALESCE(product_image, ''), added_by, created_at, updated_at
		FROM products WHERE id = $1 FOR UPDATE`,
		id).Scan(
		&p.ID, &p.Name, &p.Barcode, &p.Category, &p.Distributor, &p.Stock,
		&p.CostPrice, &p.MRP, &p.SellingPrice, &p.BatchNo, &p.MfgDate,
		&p.ExpiryDate, &p.ProductImage, &p.AddedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("erro ao carregar produto: %w", err)
	}
	return &p, nil
}
