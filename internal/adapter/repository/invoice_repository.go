package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório de notas de venda
var (
	ErrInvoiceNotFound        = errors.New("nota fiscal não encontrada")
	ErrInvoiceDuplicateNumber = errors.New("nota fiscal com mesmo número já existe")
)

// InvoiceRepository implementa o motor de notas fiscais de venda definido por
// invoice.Repository. Toda mutação roda em uma transação: a escrita da nota e
// as baixas de estoque são visíveis juntas ou não acontecem.
type InvoiceRepository struct {
	db *pgxpool.Pool
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *pgxpool.Pool) invoice.Repository {
	return &InvoiceRepository{
		db: db,
	}
}

// Create implementa invoice.Repository.Create
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	// Congela os atributos de cada produto no item e baixa o estoque.
	// Qualquer falha (produto inexistente, estoque insuficiente) aborta a
	// transação inteira sem nota parcial nem estoque errado.
	for idx := range inv.Items {
		item := &inv.Items[idx]

		p, err := loadProductForUpdate(ctx, tx, item.ProductID)
		if err != nil {
			return err
		}

		item.Name = p.Name
		item.Barcode = p.Barcode
		item.CostPrice = p.CostPrice
		item.MRP = p.MRP
		if item.SellingPrice == 0 {
			item.SellingPrice = p.SellingPrice
		}
		if item.BatchNo == "" {
			item.BatchNo = p.BatchNo
		}
		item.MfgDate = p.MfgDate
		item.ExpiryDate = p.ExpiryDate

		if _, err := applyStockDelta(ctx, tx, item.ProductID, -item.Quantity); err != nil {
			return err
		}
	}

	inv.ComputeTotals()

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("erro ao converter itens para JSON: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO invoices (
			id, invoice_number, customer_name, customer_phone, customer_address,
			items, subtotal, tax, discount, total_amount, payment_method,
			status, notes, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`,
		inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.CustomerPhone,
		inv.CustomerAddress, itemsJSON, inv.Subtotal, inv.Tax, inv.Discount,
		inv.TotalAmount, inv.PaymentMethod, inv.Status, inv.Notes,
		inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrInvoiceDuplicateNumber
		}
		return fmt.Errorf("erro ao criar nota fiscal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	return scanInvoice(row)
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int, error) {
	where, args := buildInvoiceFilter(filter)

	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao contar notas fiscais: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`SELECT %s FROM invoices%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao listar notas fiscais: %w", err)
	}
	defer rows.Close()

	invoices := make([]*invoice.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, 0, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao iterar notas fiscais: %w", err)
	}

	return invoices, total, nil
}

// Update implementa invoice.Repository.Update. Quando os itens são trocados,
// o ajuste de estoque é reconciliado por diferença: só o que mudou entre o
// conjunto antigo e o novo é aplicado, nunca o novo conjunto inteiro.
func (r *InvoiceRepository) Update(ctx context.Context, id string, upd invoice.Update) (*invoice.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	inv, err := findInvoiceForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if upd.Items != nil {
		if err := invoice.ValidateItems(upd.Items); err != nil {
			return nil, err
		}

		oldItems := inv.Items
		oldByProduct := make(map[string]invoice.Item, len(oldItems))
		for _, item := range oldItems {
			oldByProduct[item.ProductID] = item
		}

		// Itens mantidos preservam o retrato histórico do produto; itens
		// novos recebem um retrato fresco do cadastro.
		newItems := make([]invoice.Item, len(upd.Items))
		for i, item := range upd.Items {
			if old, ok := oldByProduct[item.ProductID]; ok {
				merged := old
				merged.Quantity = item.Quantity
				if item.SellingPrice > 0 {
					merged.SellingPrice = item.SellingPrice
				}
				newItems[i] = merged
				continue
			}

			p, err := loadProductForUpdate(ctx, tx, item.ProductID)
			if err != nil {
				return nil, err
			}
			fresh := item
			fresh.Name = p.Name
			fresh.Barcode = p.Barcode
			fresh.CostPrice = p.CostPrice
			fresh.MRP = p.MRP
			if fresh.SellingPrice == 0 {
				fresh.SellingPrice = p.SellingPrice
			}
			if fresh.BatchNo == "" {
				fresh.BatchNo = p.BatchNo
			}
			fresh.MfgDate = p.MfgDate
			fresh.ExpiryDate = p.ExpiryDate
			newItems[i] = fresh
		}

		for _, d := range invoice.StockDeltas(oldItems, newItems) {
			if _, err := applyStockDelta(ctx, tx, d.ProductID, d.Delta); err != nil {
				return nil, err
			}
		}

		inv.Items = newItems
		inv.ComputeTotals()
	}

	if upd.CustomerName != nil {
		inv.CustomerName = *upd.CustomerName
	}
	if upd.CustomerPhone != nil {
		inv.CustomerPhone = *upd.CustomerPhone
	}
	if upd.CustomerAddress != nil {
		inv.CustomerAddress = *upd.CustomerAddress
	}
	if upd.PaymentMethod != nil {
		if !upd.PaymentMethod.IsValid() {
			return nil, invoice.ErrInvalidPaymentMethod
		}
		inv.PaymentMethod = *upd.PaymentMethod
	}
	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return nil, invoice.ErrInvalidStatus
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
		`UPDATE invoices SET
			customer_name = $1, customer_phone = $2, customer_address = $3,
			items = $4, subtotal = $5, tax = $6, discount = $7,
			total_amount = $8, payment_method = $9, status = $10, notes = $11,
			updated_at = $12
		WHERE id = $13`,
		inv.CustomerName, inv.CustomerPhone, inv.CustomerAddress, itemsJSON,
		inv.Subtotal, inv.Tax, inv.Discount, inv.TotalAmount,
		inv.PaymentMethod, inv.Status, inv.Notes, inv.UpdatedAt, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar nota fiscal: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return inv, nil
}

// Delete implementa invoice.Repository.Delete. A exclusão não devolve o
// estoque baixado na emissão: remove apenas o registro da nota.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover nota fiscal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}

	return nil
}

const invoiceColumns = `
	id, invoice_number, customer_name, COALESCE(customer_phone, ''),
	COALESCE(customer_address, ''), items, subtotal::double precision,
	tax::double precision, discount::double precision,
	total_amount::double precision, payment_method, status,
	COALESCE(notes, ''), created_by, created_at, updated_at`

// buildInvoiceFilter monta a cláusula WHERE da listagem de notas de venda
func buildInvoiceFilter(filter invoice.ListFilter) (string, []any) {
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
	if filter.CustomerName != "" {
		args = append(args, filter.CustomerName)
		conditions = append(conditions, fmt.Sprintf("customer_name ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// findInvoiceForUpdate carrega a nota travando a linha dentro da transação
func findInvoiceForUpdate(ctx context.Context, tx pgx.Tx, id string) (*invoice.Invoice, error) {
	row := tx.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
	return scanInvoice(row)
}

// scanInvoice lê uma nota de venda de uma linha de resultado
func scanInvoice(row pgx.Row) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	var itemsJSON []byte

	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerPhone,
		&inv.CustomerAddress, &itemsJSON, &inv.Subtotal, &inv.Tax,
		&inv.Discount, &inv.TotalAmount, &inv.PaymentMethod, &inv.Status,
		&inv.Notes, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar nota fiscal: %w", err)
	}

	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("erro ao converter itens: %w", err)
	}

	return &inv, nil
}
