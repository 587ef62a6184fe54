package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
)

// InvoiceItemRequest representa um item de venda enviado pelo cliente.
// Apenas produto, quantidade e preço praticado são aceitos; os demais
// atributos do item são copiados do produto pelo servidor.
type InvoiceItemRequest struct {
	ProductID    string  `json:"product_id" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	SellingPrice float64 `json:"selling_price"`
	BatchNo      string  `json:"batch_no"`
}

// InvoiceRequest representa os dados de uma nota fiscal de venda para criação
type InvoiceRequest struct {
	InvoiceNumber   string               `json:"invoice_number" binding:"required"`
	CustomerName    string               `json:"customer_name"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod   string               `json:"payment_method"`
	Status          string               `json:"status"`
	Notes           string               `json:"notes"`
}

// InvoiceUpdateRequest representa uma atualização parcial de nota de venda.
// Campos ausentes permanecem inalterados; quando presente, a lista de itens
// substitui os itens atuais e o estoque é reconciliado.
type InvoiceUpdateRequest struct {
	CustomerName    *string              `json:"customer_name"`
	CustomerPhone   *string              `json:"customer_phone"`
	CustomerAddress *string              `json:"customer_address"`
	Items           []InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	PaymentMethod   *string              `json:"payment_method"`
	Status          *string              `json:"status"`
	Notes           *string              `json:"notes"`
}

// InvoiceItemResponse representa um item de venda na resposta
type InvoiceItemResponse struct {
	ProductID    string     `json:"product_id"`
	Name         string     `json:"name"`
	Barcode      string     `json:"barcode,omitempty"`
	Quantity     int        `json:"quantity"`
	CostPrice    float64    `json:"cost_price"`
	MRP          float64    `json:"mrp"`
	SellingPrice float64    `json:"selling_price"`
	BatchNo      string     `json:"batch_no,omitempty"`
	MfgDate      *time.Time `json:"mfg_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

// InvoiceResponse representa a resposta com dados de uma nota fiscal de venda
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	CustomerName    string                `json:"customer_name"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	Items           []InvoiceItemResponse `json:"items"`
	Subtotal        float64               `json:"subtotal"`
	Tax             float64               `json:"tax"`
	Discount        float64               `json:"discount"`
	TotalAmount     float64               `json:"total_amount"`
	PaymentMethod   string                `json:"payment_method"`
	Status          string                `json:"status"`
	Notes           string                `json:"notes,omitempty"`
	CreatedBy       string                `json:"created_by,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// InvoiceListResponse representa a resposta com a lista de notas de venda paginada
type InvoiceListResponse struct {
	Data       []InvoiceResponse `json:"data"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// ToInvoiceItems converte itens de requisição para itens de domínio
func ToInvoiceItems(items []InvoiceItemRequest) []invoice.Item {
	result := make([]invoice.Item, len(items))
	for i, item := range items {
		result[i] = invoice.Item{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			SellingPrice: item.SellingPrice,
			BatchNo:      item.BatchNo,
		}
	}
	return result
}

// ToInvoiceResponse converte uma nota de venda do domínio para DTO de resposta
func ToInvoiceResponse(inv *invoice.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			ProductID:    item.ProductID,
			Name:         item.Name,
			Barcode:      item.Barcode,
			Quantity:     item.Quantity,
			CostPrice:    item.CostPrice,
			MRP:          item.MRP,
			SellingPrice: item.SellingPrice,
			BatchNo:      item.BatchNo,
			MfgDate:      item.MfgDate,
			ExpiryDate:   item.ExpiryDate,
		}
	}

	return InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Items:           items,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Discount:        inv.Discount,
		TotalAmount:     inv.TotalAmount,
		PaymentMethod:   string(inv.PaymentMethod),
		Status:          string(inv.Status),
		Notes:           inv.Notes,
		CreatedBy:       inv.CreatedBy,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converte uma lista de notas de venda do domínio para DTO de resposta paginada
func ToInvoiceListResponse(invoices []*invoice.Invoice, totalCount, page, pageSize int) InvoiceListResponse {
	data := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		data[i] = ToInvoiceResponse(inv)
	}

	return InvoiceListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToInvoiceUpdate converte a requisição de atualização para o comando de domínio
func (r InvoiceUpdateRequest) ToInvoiceUpdate() invoice.Update {
	upd := invoice.Update{
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		Notes:           r.Notes,
	}
	if r.PaymentMethod != nil {
		method := invoice.PaymentMethod(*r.PaymentMethod)
		upd.PaymentMethod = &method
	}
	if r.Status != nil {
		status := invoice.Status(*r.Status)
		upd.Status = &status
	}
	if r.Items != nil {
		upd.Items = ToInvoiceItems(r.Items)
	}
	return upd
}
