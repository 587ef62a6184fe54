package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/purchase"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de notas de compra
var (
	ErrPurchaseNotFound        = errors.New("nota fiscal de compra não encontrada")
	ErrPurchaseDuplicateNumber = errors.New("nota fiscal de compra com mesmo número já existe")
	ErrDistributorNotFound     = errors.New("distribuidor não encontrado")
)

// PurchaseRepository implementa o motor de notas fiscais de compra definido
// por purchase.Repository. É o espelho do motor de vendas com o sinal do
// estoque invertido: receber mercadoria aumenta o estoque, e a exclusão da
// nota devolve o que foi recebido.
type PurchaseRepository struct {
	db *pgxpool.Pool
}

// NewPurchaseRepository cria uma nova instância de PurchaseRepository
func NewPurchaseRepository(db *pgxpool.Pool) purchase.Repository {
	return &PurchaseRepository{
		db: db,
	}
}

// Create implementa purchase.Repository.Create
func (r *PurchaseRepository) Create(ctx context.Context, inv *purchase.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	distributorName, err := findDistributorName(ctx, tx, inv.DistributorID)
	if err != nil {
		return err
	}

	for idx := range inv.Items {
		item := &inv.Items[idx]

		p, err := loadProductForUpdate(ctx, tx, item.ProductID)
		if err != nil {
			return err
		}

		// Nome e código de barras vêm do cadastro; preço de custo, MRP e
		// valores fiscais vêm da nota do fornecedor.
		item.Name = p.Name
		if item.Barcode == "" {
			item.Barcode = p.Barcode
		}

		if _, err := applyStockDelta(ctx, tx, item.ProductID, item.Quantity); err != nil {
			return err
		}

		// O produto passa a apontar para o distribuidor desta compra
		_, err = tx.Exec(ctx,
			`UPDATE products SET distributor = $1, updated_at = NOW() WHERE id = $2`,
			distributorName, item.ProductID)
		if err != nil {
			return fmt.Errorf("erro ao atualizar distribuidor do produto: %w", err)
		}
	}

	inv.ComputeTotals()

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO purchase_invoices (
			id, invoice_number, distributor_id, items, subtotal, tax, discount,
			total_amount, payment_method, status, notes, created_by,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)`,
		inv.ID, inv.InvoiceNumber, inv.DistributorID, itemsJSON, inv.Subtotal,
		inv.Tax, inv.Discount, inv.TotalAmount, inv.PaymentMethod, inv.Status,
		inv.Notes, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrPurchaseDuplicateNumber
		}
		return fmt.Errorf("erro ao criar nota fiscal de compra: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchase_invoices WHERE id = $1`, id)
	return scanPurchase(row)
}

// List implementa purchase.Repository.List
func (r *PurchaseRepository) List(ctx context.Context, filter purchase.ListFilter) ([]*purchase.Invoice, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.DistributorID != "" {
		args = append(args, filter.DistributorID)
		conditions = append(conditions, fmt.Sprintf("distributor_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchase_invoices`+where+` ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notas de compra: %w", err)
	}
	defer rows.Close()

	invoices := make([]*purchase.Invoice, 0)
	for rows.Next() {
		inv, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar notas de compra: %w", err)
	}

	return invoices, nil
}

// Update implementa purchase.Repository.Update com a mesma reconciliação por
// diferença do motor de vendas, com o sinal invertido
func (r *PurchaseRepository) Update(ctx context.Context, id string, upd purchase.Update) (*purchase.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	inv, err := findPurchaseForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if upd.Items != nil {
		if err := purchase.ValidateItems(upd.Items); err != nil {
			return nil, err
		}

		oldItems := inv.Items
		oldByProduct := make(map[string]purchase.Item, len(oldItems))
		for _, item := range oldItems {
			oldByProduct[item.ProductID] = item
		}

		newItems := make([]purchase.Item, len(upd.Items))
		for i, item := range upd.Items {
			if old, ok := oldByProduct[item.ProductID]; ok {
				item.Name = old.Name
				if item.Barcode == "" {
					item.Barcode = old.Barcode
				}
				newItems[i] = item
				continue
			}

			p, err := loadProductForUpdate(ctx, tx, item.ProductID)
			if err != nil {
				return nil, err
			}
			item.Name = p.Name
			if item.Barcode == "" {
				item.Barcode = p.Barcode
			}
			newItems[i] = item
		}

		for _, d := range purchase.StockDeltas(oldItems, newItems) {
			if _, err := applyStockDelta(ctx, tx, d.ProductID, d.Delta); err != nil {
				return nil, err
			}
		}

		inv.Items = newItems
		inv.ComputeTotals()
	}

	if upd.PaymentMethod != nil {
		if !upd.PaymentMethod.IsValid() {
			return nil, purchase.ErrInvalidPaymentMethod
		}
		inv.PaymentMethod = *upd.PaymentMethod
	}
	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return nil, purchase.ErrInvalidStatus
		}
		inv.Status = *upd.Status
	}
	if upd.Notes != nil {
		inv.Notes = *upd.Notes
	}
	inv.UpdatedAt = time.Now()

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE purchase_invoices SET
			items = $1, subtotal = $2, tax = $3, discount = $4,
			total_amount = $5, payment_method = $6, status = $7, notes = $8,
			updated_at = $9
		WHERE id = $10`,
		itemsJSON, inv.Subtotal, inv.Tax, inv.Discount, inv.TotalAmount,
		inv.PaymentMethod, inv.Status, inv.Notes, inv.UpdatedAt, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar nota de compra: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return inv, nil
}

// Delete implementa purchase.Repository.Delete. A reversão protege contra
// excluir uma compra cujo estoque recebido já foi vendido: se a baixa
// deixaria o estoque negativo, nada é removido.
func (r *PurchaseRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	inv, err := findPurchaseForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}

	for _, item := range inv.Items {
		if _, err := applyStockDelta(ctx, tx, item.ProductID, -item.Quantity); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("erro ao remover nota de compra: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

const purchaseColumns = `
	id, invoice_number, distributor_id, items, subtotal::double precision,
	tax::double precision, discount::double precision,
	total_amount::double precision, payment_method, status,
	COALESCE(notes, ''), created_by, created_at, updated_at`

// findDistributorName resolve o nome do distribuidor dentro da transação
func findDistributorName(ctx context.Context, tx pgx.Tx, id string) (string, error) {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM distributors WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrDistributorNotFound
		}
		return "", fmt.Errorf("erro ao buscar distribuidor: %w", err)
	}
	return name, nil
}

// findPurchaseForUpdate carrega a nota travando a linha dentro da transação
func findPurchaseForUpdate(ctx context.Context, tx pgx.Tx, id string) (*purchase.Invoice, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+purchaseColumns+` FROM purchase_invoices WHERE id = $1 FOR UPDATE`, id)
	return scanPurchase(row)
}

// scanPurchase lê uma nota de compra de uma linha de resultado
func scanPurchase(row pgx.Row) (*purchase.Invoice, error) {
	var inv purchase.Invoice
	var itemsJSON []byte

	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.DistributorID, &itemsJSON,
		&inv.Subtotal, &inv.Tax, &inv.Discount, &inv.TotalAmount,
		&inv.PaymentMethod, &inv.Status, &inv.Notes, &inv.CreatedBy,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar nota de compra: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	return &inv, nil
}
