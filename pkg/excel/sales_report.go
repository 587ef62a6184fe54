// Package excel exporta relatórios para planilhas xlsx.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hugohenrick/erp-mercearia/internal/domain/report"
)

const salesSheetName = "Sales Report"

var salesHeaders = []string{"Invoice Number", "Date", "Customer", "Total Amount", "Payment Method", "Status"}

// WriteSalesReport monta a planilha do relatório de vendas, uma linha por nota
func WriteSalesReport(rows []report.SalesRow) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(salesSheetName)
	if err != nil {
		return nil, fmt.Errorf("criar planilha: %w", err)
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remover planilha padrão: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("criar estilo do cabeçalho: %w", err)
	}

	for col, header := range salesHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("endereçar célula do cabeçalho: %w", err)
		}
		if err := file.SetCellValue(salesSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("escrever cabeçalho: %w", err)
		}
		if err := file.SetCellStyle(salesSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("aplicar estilo do cabeçalho: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.InvoiceNumber,
			row.CreatedAt.Format("2006-01-02 15:04"),
			row.CustomerName,
			row.TotalAmount,
			row.PaymentMethod,
			row.Status,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("endereçar célula: %w", err)
			}
			if err := file.SetCellValue(salesSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("escrever linha %d: %w", i+1, err)
			}
		}
	}

	if err := file.SetColWidth(salesSheetName, "A", "F", 20); err != nil {
		return nil, fmt.Errorf("ajustar largura das colunas: %w", err)
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilha: %w", err)
	}
	return buffer, nil
}
