package purchase

import (
	"errors"
	"testing"
)

func validItem() Item {
	return Item{
		ProductID: "p1",
		Quantity:  50,
		Rate:      22,
		SGST:      2,
		CGST:      2,
		CostPrice: 22,
		MRP:       30,
	}
}

func TestComputeNetAmount(t *testing.T) {
	// rate x quantity - discount + sgst + cgst + igst
	item := Item{Quantity: 50, Rate: 22, SGST: 2, CGST: 2}
	if got := item.ComputeNetAmount(); got != 1104 {
		t.Errorf("ComputeNetAmount() = %v, esperado 1104", got)
	}

	item = Item{Quantity: 10, Rate: 5, Discount: 3, IGST: 1.5}
	if got := item.ComputeNetAmount(); got != 48.5 {
		t.Errorf("ComputeNetAmount() = %v, esperado 48.5", got)
	}
}

func TestNewInvoiceValidation(t *testing.T) {
	tests := []struct {
		name          string
		invoiceNumber string
		distributorID string
		mutate        func(*Item)
		wantErr       error
	}{
		{
			name:          "número vazio",
			invoiceNumber: "",
			distributorID: "d1",
			wantErr:       ErrEmptyInvoiceNumber,
		},
		{
			name:          "distribuidor vazio",
			invoiceNumber: "PUR-001",
			distributorID: "",
			wantErr:       ErrEmptyDistributor,
		},
		{
			name:          "quantidade inválida",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.Quantity = 0 },
			wantErr:       ErrInvalidQuantity,
		},
		{
			name:          "rate zero",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.Rate = 0 },
			wantErr:       ErrInvalidRate,
		},
		{
			name:          "preço de custo zero",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.CostPrice = 0 },
			wantErr:       ErrInvalidPrice,
		},
		{
			name:          "mrp zero",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.MRP = 0 },
			wantErr:       ErrInvalidPrice,
		},
		{
			name:          "imposto negativo",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.SGST = -1 },
			wantErr:       ErrNegativeTax,
		},
		{
			name:          "desconto negativo",
			invoiceNumber: "PUR-001",
			distributorID: "d1",
			mutate:        func(it *Item) { it.Discount = -0.5 },
			wantErr:       ErrNegativeTax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			if tt.mutate != nil {
				tt.mutate(&item)
			}
			_, err := NewInvoice(tt.invoiceNumber, tt.distributorID, []Item{item}, "", "", "", "user-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewInvoice erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewInvoiceSemItens(t *testing.T) {
	_, err := NewInvoice("PUR-001", "d1", nil, "", "", "", "user-1")
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("NewInvoice erro = %v, esperado %v", err, ErrNoItems)
	}
}

func TestComputeTotalsAggregates(t *testing.T) {
	inv := &Invoice{
		Items: []Item{
			{ProductID: "p1", Quantity: 50, Rate: 22, SGST: 2, CGST: 2, CostPrice: 22, MRP: 30},
			{ProductID: "p2", Quantity: 10, Rate: 5, Discount: 3, IGST: 1.5, CostPrice: 5, MRP: 8},
		},
	}
	inv.ComputeTotals()

	if inv.Subtotal != 1150 {
		t.Errorf("Subtotal = %v, esperado 1150", inv.Subtotal)
	}
	if inv.Tax != 5.5 {
		t.Errorf("Tax = %v, esperado 5.5", inv.Tax)
	}
	if inv.Discount != 3 {
		t.Errorf("Discount = %v, esperado 3", inv.Discount)
	}
	if inv.TotalAmount != 1152.5 {
		t.Errorf("TotalAmount = %v, esperado 1152.5", inv.TotalAmount)
	}

	// Valores líquidos derivados item a item
	if inv.Items[0].NetAmount != 1104 {
		t.Errorf("Items[0].NetAmount = %v, esperado 1104", inv.Items[0].NetAmount)
	}
	if inv.Items[1].NetAmount != 48.5 {
		t.Errorf("Items[1].NetAmount = %v, esperado 48.5", inv.Items[1].NetAmount)
	}
}

func TestComputeTotalsIdempotente(t *testing.T) {
	inv := &Invoice{Items: []Item{validItem()}}
	inv.ComputeTotals()
	first := inv.TotalAmount
	inv.ComputeTotals()

	if inv.TotalAmount != first {
		t.Errorf("TotalAmount mudou de %v para %v", first, inv.TotalAmount)
	}
}

// NetAmount enviado pelo chamador é ignorado: sempre recalculado
func TestComputeTotalsIgnoresCallerNetAmount(t *testing.T) {
	item := validItem()
	item.NetAmount = 999999

	inv := &Invoice{Items: []Item{item}}
	inv.ComputeTotals()

	if inv.Items[0].NetAmount != 1104 {
		t.Errorf("NetAmount = %v, esperado 1104", inv.Items[0].NetAmount)
	}
}
