package invoice

import (
	"errors"
	"testing"
)

func TestNewInvoiceDefaults(t *testing.T) {
	inv, err := NewInvoice("INV-001", "", "", "", []Item{
		{ProductID: "p1", Quantity: 2, SellingPrice: 10},
	}, "", "", "", "user-1")
	if err != nil {
		t.Fatalf("NewInvoice retornou erro: %v", err)
	}

	if inv.CustomerName != DefaultCustomerName {
		t.Errorf("CustomerName = %q, esperado %q", inv.CustomerName, DefaultCustomerName)
	}
	if inv.PaymentMethod != PaymentCash {
		t.Errorf("PaymentMethod = %q, esperado %q", inv.PaymentMethod, PaymentCash)
	}
	if inv.Status != StatusPaid {
		t.Errorf("Status = %q, esperado %q", inv.Status, StatusPaid)
	}
	if inv.ID == "" {
		t.Error("ID não foi gerado")
	}
}

func TestNewInvoiceValidation(t *testing.T) {
	validItems := []Item{{ProductID: "p1", Quantity: 1, SellingPrice: 5}}

	tests := []struct {
		name          string
		invoiceNumber string
		items         []Item
		payment       PaymentMethod
		status        Status
		wantErr       error
	}{
		{
			name:          "número vazio",
			invoiceNumber: "",
			items:         validItems,
			wantErr:       ErrEmptyInvoiceNumber,
		},
		{
			name:          "sem itens",
			invoiceNumber: "INV-001",
			items:         nil,
			wantErr:       ErrNoItems,
		},
		{
			name:          "item sem produto",
			invoiceNumber: "INV-001",
			items:         []Item{{Quantity: 1, SellingPrice: 5}},
			wantErr:       ErrEmptyItemProduct,
		},
		{
			name:          "quantidade zero",
			invoiceNumber: "INV-001",
			items:         []Item{{ProductID: "p1", Quantity: 0, SellingPrice: 5}},
			wantErr:       ErrInvalidQuantity,
		},
		{
			name:          "quantidade negativa",
			invoiceNumber: "INV-001",
			items:         []Item{{ProductID: "p1", Quantity: -3, SellingPrice: 5}},
			wantErr:       ErrInvalidQuantity,
		},
		{
			name:          "preço negativo",
			invoiceNumber: "INV-001",
			items:         []Item{{ProductID: "p1", Quantity: 1, SellingPrice: -1}},
			wantErr:       ErrInvalidPrice,
		},
		{
			name:          "forma de pagamento inválida",
			invoiceNumber: "INV-001",
			items:         validItems,
			payment:       "cheque",
			wantErr:       ErrInvalidPaymentMethod,
		},
		{
			name:          "status inválido",
			invoiceNumber: "INV-001",
			items:         validItems,
			status:        "cancelada",
			wantErr:       ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInvoice(tt.invoiceNumber, "", "", "", tt.items, tt.payment, tt.status, "", "user-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewInvoice erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	// Venda de 5 unidades a 26.0: subtotal e total devem ser 130
	inv := &Invoice{
		Items: []Item{
			{ProductID: "p1", Quantity: 5, SellingPrice: 26},
		},
	}
	inv.ComputeTotals()

	if inv.Subtotal != 130 {
		t.Errorf("Subtotal = %v, esperado 130", inv.Subtotal)
	}
	if inv.TotalAmount != 130 {
		t.Errorf("TotalAmount = %v, esperado 130", inv.TotalAmount)
	}
}

func TestComputeTotalsWithTaxAndDiscount(t *testing.T) {
	inv := &Invoice{
		Items: []Item{
			{ProductID: "p1", Quantity: 2, SellingPrice: 50},
			{ProductID: "p2", Quantity: 1, SellingPrice: 30},
		},
		Tax:      13,
		Discount: 10,
	}
	inv.ComputeTotals()

	if inv.Subtotal != 130 {
		t.Errorf("Subtotal = %v, esperado 130", inv.Subtotal)
	}
	// total = subtotal - desconto + imposto
	if inv.TotalAmount != 133 {
		t.Errorf("TotalAmount = %v, esperado 133", inv.TotalAmount)
	}
}

func TestComputeTotalsIdempotente(t *testing.T) {
	inv := &Invoice{
		Items: []Item{{ProductID: "p1", Quantity: 3, SellingPrice: 7}},
	}
	inv.ComputeTotals()
	first := inv.TotalAmount
	inv.ComputeTotals()

	if inv.TotalAmount != first {
		t.Errorf("TotalAmount mudou de %v para %v", first, inv.TotalAmount)
	}
}

func TestReplaceItems(t *testing.T) {
	inv, err := NewInvoice("INV-001", "", "", "", []Item{
		{ProductID: "p1", Quantity: 2, SellingPrice: 10},
	}, "", "", "", "user-1")
	if err != nil {
		t.Fatalf("NewInvoice retornou erro: %v", err)
	}

	if err := inv.ReplaceItems([]Item{{ProductID: "p2", Quantity: 4, SellingPrice: 5}}); err != nil {
		t.Fatalf("ReplaceItems retornou erro: %v", err)
	}
	if inv.TotalAmount != 20 {
		t.Errorf("TotalAmount = %v, esperado 20", inv.TotalAmount)
	}

	if err := inv.ReplaceItems(nil); !errors.Is(err, ErrNoItems) {
		t.Errorf("ReplaceItems(nil) erro = %v, esperado %v", err, ErrNoItems)
	}
}

func TestPaymentMethodIsValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentCash, PaymentCard, PaymentUPI, PaymentOther} {
		if !m.IsValid() {
			t.Errorf("PaymentMethod %q deveria ser válida", m)
		}
	}
	if PaymentMethod("pix").IsValid() {
		t.Error("PaymentMethod desconhecida aceita como válida")
	}
}
