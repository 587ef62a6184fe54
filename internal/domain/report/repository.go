package report

import (
	"context"
)

// Repository define a interface para consultas de relatório
type Repository interface {
	// SalesReport retorna as linhas do relatório de vendas conforme o filtro,
	// da venda mais recente para a mais antiga
	SalesReport(ctx context.Context, filter Filter) ([]SalesRow, error)
}
