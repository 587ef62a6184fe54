package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/product"
)

// ProductRequest representa os dados de um produto para criação ou atualização
type ProductRequest struct {
	Name         string     `json:"name" binding:"required"`
	Barcode      string     `json:"barcode"`
	Category     string     `json:"category" binding:"required"`
	Distributor  string     `json:"distributor"`
	Stock        int        `json:"stock"`
	CostPrice    float64    `json:"cost_price"`
	MRP          float64    `json:"mrp"`
	SellingPrice float64    `json:"selling_price"`
	BatchNo      string     `json:"batch_no"`
	MfgDate      *time.Time `json:"mfg_date"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	ProductImage string     `json:"product_image"`
}

// ProductResponse representa a resposta com dados de um produto
type ProductResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Barcode      string     `json:"barcode,omitempty"`
	Category     string     `json:"category"`
	Distributor  string     `json:"distributor"`
	Stock        int        `json:"stock"`
	CostPrice    float64    `json:"cost_price"`
	MRP          float64    `json:"mrp"`
	SellingPrice float64    `json:"selling_price"`
	BatchNo      string     `json:"batch_no,omitempty"`
	MfgDate      *time.Time `json:"mfg_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	ProductImage string     `json:"product_image,omitempty"`
	AddedBy      string     `json:"added_by,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ProductListResponse representa a resposta com a lista de produtos
type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	TotalCount int               `json:"total_count"`
}

// ToProductResponse converte um produto do domínio para DTO de resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Barcode:      p.Barcode,
		Category:     p.Category,
		Distributor:  p.Distributor,
		Stock:        p.Stock,
		CostPrice:    p.CostPrice,
		MRP:          p.MRP,
		SellingPrice: p.SellingPrice,
		BatchNo:      p.BatchNo,
		MfgDate:      p.MfgDate,
		ExpiryDate:   p.ExpiryDate,
		ProductImage: p.ProductImage,
		AddedBy:      p.AddedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO de resposta
func ToProductListResponse(products []*product.Product) ProductListResponse {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Data:       data,
		TotalCount: len(products),
	}
}
