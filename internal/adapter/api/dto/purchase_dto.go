package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/purchase"
)

// PurchaseItemRequest representa um item de compra enviado pelo cliente.
// O valor líquido do item é derivado no servidor e ignorado na entrada.
type PurchaseItemRequest struct {
	ProductID  string     `json:"product_id" binding:"required"`
	Quantity   int        `json:"quantity" binding:"required,min=1"`
	Rate       float64    `json:"rate" binding:"required,gt=0"`
	Discount   float64    `json:"discount" binding:"min=0"`
	SGST       float64    `json:"sgst" binding:"min=0"`
	CGST       float64    `json:"cgst" binding:"min=0"`
	IGST       float64    `json:"igst" binding:"min=0"`
	CostPrice  float64    `json:"cost_price" binding:"required,gt=0"`
	MRP        float64    `json:"mrp" binding:"required,gt=0"`
	BatchNo    string     `json:"batch_no"`
	MfgDate    *time.Time `json:"mfg_date"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// PurchaseRequest representa os dados de uma nota fiscal de compra para criação
type PurchaseRequest struct {
	InvoiceNumber string                `json:"invoice_number" binding:"required"`
	DistributorID string                `json:"distributor_id" binding:"required"`
	Items         []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"payment_method"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes"`
}

// PurchaseUpdateRequest representa uma atualização parcial de nota de compra.
// Campos ausentes permanecem inalterados; quando presente, a lista de itens
// substitui os itens atuais e o estoque é reconciliado.
type PurchaseUpdateRequest struct {
	Items         []PurchaseItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	PaymentMethod *string               `json:"payment_method"`
	Status        *string               `json:"status"`
	Notes         *string               `json:"notes"`
}

// PurchaseItemResponse representa um item de compra na resposta
type PurchaseItemResponse struct {
	ProductID  string     `json:"product_id"`
	Name       string     `json:"name"`
	Barcode    string     `json:"barcode,omitempty"`
	Quantity   int        `json:"quantity"`
	Rate       float64    `json:"rate"`
	Discount   float64    `json:"discount"`
	SGST       float64    `json:"sgst"`
	CGST       float64    `json:"cgst"`
	IGST       float64    `json:"igst"`
	NetAmount  float64    `json:"net_amount"`
	CostPrice  float64    `json:"cost_price"`
	MRP        float64    `json:"mrp"`
	BatchNo    string     `json:"batch_no,omitempty"`
	MfgDate    *time.Time `json:"mfg_date,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// PurchaseResponse representa a resposta com dados de uma nota fiscal de compra
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	DistributorID string                 `json:"distributor_id"`
	Items         []PurchaseItemResponse `json:"items"`
	Subtotal      float64                `json:"subtotal"`
	Tax           float64                `json:"tax"`
	Discount      float64                `json:"discount"`
	TotalAmount   float64                `json:"total_amount"`
	PaymentMethod string                 `json:"payment_method"`
	Status        string                 `json:"status"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedBy     string                 `json:"created_by,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// PurchaseListResponse representa a resposta com a lista de notas de compra
type PurchaseListResponse struct {
	Data       []PurchaseResponse `json:"data"`
	TotalCount int                `json:"total_count"`
}

// ToPurchaseItems converte itens de requisição para itens de domínio
func ToPurchaseItems(items []PurchaseItemRequest) []purchase.Item {
	result := make([]purchase.Item, len(items))
	for i, item := range items {
		result[i] = purchase.Item{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			Discount:   item.Discount,
			SGST:       item.SGST,
			CGST:       item.CGST,
			IGST:       item.IGST,
			CostPrice:  item.CostPrice,
			MRP:        item.MRP,
			BatchNo:    item.BatchNo,
			MfgDate:    item.MfgDate,
			ExpiryDate: item.ExpiryDate,
		}
	}
	return result
}

// ToPurchaseResponse converte uma nota de compra do domínio para DTO de resposta
func ToPurchaseResponse(inv *purchase.Invoice) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = PurchaseItemResponse{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Barcode:    item.Barcode,
			Quantity:   item.Quantity,
			Rate:       item.Rate,
			Discount:   item.Discount,
			SGST:       item.SGST,
			CGST:       item.CGST,
			IGST:       item.IGST,
			NetAmount:  item.NetAmount,
			CostPrice:  item.CostPrice,
			MRP:        item.MRP,
			BatchNo:    item.BatchNo,
			MfgDate:    item.MfgDate,
			ExpiryDate: item.ExpiryDate,
		}
	}

	return PurchaseResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		DistributorID: inv.DistributorID,
		Items:         items,
		Subtotal:      inv.Subtotal,
		Tax:           inv.Tax,
		Discount:      inv.Discount,
		TotalAmount:   inv.TotalAmount,
		PaymentMethod: string(inv.PaymentMethod),
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// ToPurchaseListResponse converte uma lista de notas de compra do domínio para DTO de resposta
func ToPurchaseListResponse(invoices []*purchase.Invoice) PurchaseListResponse {
	data := make([]PurchaseResponse, len(invoices))
	for i, inv := range invoices {
		data[i] = ToPurchaseResponse(inv)
	}

	return PurchaseListResponse{
		Data:       data,
		TotalCount: len(invoices),
	}
}

// ToPurchaseUpdate converte a requisição de atualização para o comando de domínio
func (r PurchaseUpdateRequest) ToPurchaseUpdate() purchase.Update {
	upd := purchase.Update{
		Notes: r.Notes,
	}
	if r.PaymentMethod != nil {
		method := purchase.PaymentMethod(*r.PaymentMethod)
		upd.PaymentMethod = &method
	}
	if r.Status != nil {
		status := purchase.Status(*r.Status)
		upd.Status = &status
	}
	if r.Items != nil {
		upd.Items = ToPurchaseItems(r.Items)
	}
	return upd
}
