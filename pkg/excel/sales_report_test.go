package excel

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hugohenrick/erp-mercearia/internal/domain/report"
)

func TestWriteSalesReport(t *testing.T) {
	rows := []report.SalesRow{
		{
			InvoiceNumber: "INV-001",
			CreatedAt:     time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
			CustomerName:  "Walk-in Customer",
			TotalAmount:   130,
			PaymentMethod: "cash",
			Status:        "paid",
		},
		{
			InvoiceNumber: "INV-002",
			CreatedAt:     time.Date(2025, 3, 11, 9, 15, 0, 0, time.UTC),
			CustomerName:  "Maria",
			TotalAmount:   61.5,
			PaymentMethod: "upi",
			Status:        "pending",
		},
	}

	buffer, err := WriteSalesReport(rows)
	if err != nil {
		t.Fatalf("WriteSalesReport retornou erro: %v", err)
	}

	file, err := excelize.OpenReader(buffer)
	if err != nil {
		t.Fatalf("planilha gerada não pôde ser aberta: %v", err)
	}
	defer file.Close()

	got, err := file.GetRows(salesSheetName)
	if err != nil {
		t.Fatalf("erro ao ler linhas: %v", err)
	}

	// Cabeçalho + uma linha por venda
	if len(got) != 3 {
		t.Fatalf("planilha tem %d linhas, esperado 3", len(got))
	}
	if got[0][0] != "Invoice Number" {
		t.Errorf("cabeçalho = %q, esperado %q", got[0][0], "Invoice Number")
	}
	if got[1][0] != "INV-001" {
		t.Errorf("primeira venda = %q, esperado %q", got[1][0], "INV-001")
	}
	if got[2][2] != "Maria" {
		t.Errorf("cliente da segunda venda = %q, esperado %q", got[2][2], "Maria")
	}
}

func TestWriteSalesReportVazio(t *testing.T) {
	buffer, err := WriteSalesReport(nil)
	if err != nil {
		t.Fatalf("WriteSalesReport retornou erro: %v", err)
	}

	file, err := excelize.OpenReader(buffer)
	if err != nil {
		t.Fatalf("planilha gerada não pôde ser aberta: %v", err)
	}
	defer file.Close()

	got, err := file.GetRows(salesSheetName)
	if err != nil {
		t.Fatalf("erro ao ler linhas: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("planilha tem %d linhas, esperado apenas o cabeçalho", len(got))
	}
}
