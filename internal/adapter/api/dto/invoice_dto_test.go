package dto

import (
	"testing"

	"github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
	"github.com/hugohenrick/erp-mercearia/internal/domain/purchase"
)

func strPtr(s string) *string { return &s }

func TestToInvoiceUpdate(t *testing.T) {
	req := InvoiceUpdateRequest{
		CustomerName:  strPtr("Maria"),
		PaymentMethod: strPtr("upi"),
		Items: []InvoiceItemRequest{
			{ProductID: "p1", Quantity: 3, SellingPrice: 12},
		},
	}

	upd := req.ToInvoiceUpdate()

	if upd.CustomerName == nil || *upd.CustomerName != "Maria" {
		t.Errorf("CustomerName = %v, esperado Maria", upd.CustomerName)
	}
	if upd.PaymentMethod == nil || *upd.PaymentMethod != invoice.PaymentUPI {
		t.Errorf("PaymentMethod = %v, esperado upi", upd.PaymentMethod)
	}
	if upd.Status != nil {
		t.Errorf("Status = %v, esperado nil", upd.Status)
	}
	if len(upd.Items) != 1 || upd.Items[0].ProductID != "p1" || upd.Items[0].Quantity != 3 {
		t.Errorf("Items convertidos incorretamente: %+v", upd.Items)
	}
}

// Items ausente na requisição significa "manter os itens atuais"
func TestToInvoiceUpdateSemItens(t *testing.T) {
	req := InvoiceUpdateRequest{Notes: strPtr("entrega agendada")}

	upd := req.ToInvoiceUpdate()

	if upd.Items != nil {
		t.Errorf("Items = %v, esperado nil", upd.Items)
	}
	if upd.Notes == nil || *upd.Notes != "entrega agendada" {
		t.Errorf("Notes = %v, esperado 'entrega agendada'", upd.Notes)
	}
}

func TestToPurchaseUpdate(t *testing.T) {
	req := PurchaseUpdateRequest{
		Status: strPtr("pending"),
		Items: []PurchaseItemRequest{
			{ProductID: "p1", Quantity: 10, Rate: 5, CostPrice: 5, MRP: 8},
		},
	}

	upd := req.ToPurchaseUpdate()

	if upd.Status == nil || *upd.Status != purchase.StatusPending {
		t.Errorf("Status = %v, esperado pending", upd.Status)
	}
	if upd.PaymentMethod != nil {
		t.Errorf("PaymentMethod = %v, esperado nil", upd.PaymentMethod)
	}
	if len(upd.Items) != 1 || upd.Items[0].Rate != 5 {
		t.Errorf("Items convertidos incorretamente: %+v", upd.Items)
	}
}

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		wantPage int
		wantSize int
	}{
		{name: "valores válidos", page: 2, pageSize: 25, wantPage: 2, wantSize: 25},
		{name: "página zero vira um", page: 0, pageSize: 10, wantPage: 1, wantSize: 10},
		{name: "tamanho zero vira padrão", page: 1, pageSize: 0, wantPage: 1, wantSize: 10},
		{name: "tamanho acima do teto é limitado", page: 1, pageSize: 500, wantPage: 1, wantSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetPagination(tt.page, tt.pageSize)
			if got.Page != tt.wantPage || got.PageSize != tt.wantSize {
				t.Errorf("GetPagination(%d, %d) = %+v, esperado page %d size %d",
					tt.page, tt.pageSize, got, tt.wantPage, tt.wantSize)
			}
		})
	}
}
