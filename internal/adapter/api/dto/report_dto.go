package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/report"
)

// SalesRowResponse representa uma linha do relatório de vendas
type SalesRowResponse struct {
	InvoiceNumber string    `json:"invoice_number"`
	CreatedAt     time.Time `json:"created_at"`
	CustomerName  string    `json:"customer_name"`
	TotalAmount   float64   `json:"total_amount"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
}

// SalesReportResponse representa a resposta do relatório de vendas com os
// agregados do período filtrado
type SalesReportResponse struct {
	Data       []SalesRowResponse `json:"data"`
	TotalCount int                `json:"total_count"`
	TotalSales float64            `json:"total_sales"`
}

// ToSalesReportResponse converte as linhas do relatório para DTO de resposta
func ToSalesReportResponse(rows []report.SalesRow) SalesReportResponse {
	data := make([]SalesRowResponse, len(rows))
	total := 0.0
	for i, row := range rows {
		data[i] = SalesRowResponse{
			InvoiceNumber: row.InvoiceNumber,
			CreatedAt:     row.CreatedAt,
			CustomerName:  row.CustomerName,
			TotalAmount:   row.TotalAmount,
			PaymentMethod: row.PaymentMethod,
			Status:        row.Status,
		}
		total += row.TotalAmount
	}

	return SalesReportResponse{
		Data:       data,
		TotalCount: len(rows),
		TotalSales: total,
	}
}
