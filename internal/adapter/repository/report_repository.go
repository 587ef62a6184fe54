package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/report"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportRepository implementa a interface report.Repository. As consultas são
// somente-leitura sobre notas de venda finalizadas e nunca tocam o estoque.
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *pgxpool.Pool) report.Repository {
	return &ReportRepository{
		db: db,
	}
}

// SalesReport implementa report.Repository.SalesReport
func (r *ReportRepository) SalesReport(ctx context.Context, filter report.Filter) ([]report.SalesRow, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		// A data final é inclusiva: o dia inteiro entra no relatório
		args = append(args, filter.EndDate.AddDate(0, 0, 1))
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if filter.PaymentMethod != "" {
		args = append(args, filter.PaymentMethod)
		conditions = append(conditions, fmt.Sprintf("payment_method = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(ctx,
		`SELECT invoice_number, created_at, customer_name,
			total_amount::double precision, payment_method, status
		 FROM invoices`+where+` ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar relatório de vendas: %w", err)
	}
	defer rows.Close()

	result := make([]report.SalesRow, 0)
	for rows.Next() {
		var row report.SalesRow
		var createdAt time.Time
		if err := rows.Scan(&row.InvoiceNumber, &createdAt, &row.CustomerName,
			&row.TotalAmount, &row.PaymentMethod, &row.Status); err != nil {
			return nil, fmt.Errorf("erro ao ler linha do relatório: %w", err)
		}
		row.CreatedAt = createdAt
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar relatório: %w", err)
	}

	return result, nil
}
