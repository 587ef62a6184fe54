package report

import (
	"time"
)

// SalesRow é uma linha do relatório de vendas: uma projeção somente-leitura
// sobre notas de venda já finalizadas. O relatório nunca toca o estoque.
type SalesRow struct {
	InvoiceNumber string    `json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
}

// Filter define os filtros do relatório de vendas. EndDate é inclusivo:
// o dia inteiro da data final entra no relatório.
type Filter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	PaymentMethod string
	Status        string
}
