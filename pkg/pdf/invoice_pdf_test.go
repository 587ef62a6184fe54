package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
)

func TestGenerateInvoicePDF(t *testing.T) {
	inv := &invoice.Invoice{
		ID:            "inv-1",
		InvoiceNumber: "INV-001",
		CustomerName:  "Walk-in Customer",
		Items: []invoice.Item{
			{ProductID: "p1", Name: "Arroz 5kg", Quantity: 2, SellingPrice: 26},
			{ProductID: "p2", Name: "Feijão 1kg", Quantity: 1, SellingPrice: 9},
		},
		Subtotal:      61,
		TotalAmount:   61,
		PaymentMethod: invoice.PaymentCash,
		Status:        invoice.StatusPaid,
		CreatedAt:     time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	document, err := GenerateInvoicePDF(inv)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF retornou erro: %v", err)
	}

	if len(document) == 0 {
		t.Fatal("PDF gerado está vazio")
	}
	if !bytes.HasPrefix(document, []byte("%PDF")) {
		t.Error("conteúdo gerado não tem cabeçalho de PDF")
	}
}
