package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("nome do produto não pode ser vazio")
	ErrEmptyCategory    = errors.New("categoria não pode ser vazia")
	ErrEmptyDistributor = errors.New("distribuidor não pode ser vazio")
	ErrNegativeStock    = errors.New("estoque não pode ser negativo")
	ErrInvalidPrice     = errors.New("preço não pode ser negativo")
)

// Product representa um produto do catálogo da mercearia.
// O campo Stock é o único mutado pelos motores de nota fiscal; os demais
// campos só mudam por edição direta do produto.
type Product struct {
	ID           string     `json:"id"`            // ID do Produto
	Name         string     `json:"name"`          // Nome
	Barcode      string     `json:"barcode"`       // Código de Barras (opcional, único)
	Category     string     `json:"category"`      // Categoria
	Distributor  string     `json:"distributor"`   // Distribuidor (texto livre)
	Stock        int        `json:"stock"`         // Quantidade em Estoque
	CostPrice    float64    `json:"cost_price"`    // Preço de Custo
	MRP          float64    `json:"mrp"`           // Preço Máximo de Venda (MRP)
	SellingPrice float64    `json:"selling_price"` // Preço de Venda
	BatchNo      string     `json:"batch_no"`      // Número do Lote
	MfgDate      *time.Time `json:"mfg_date"`      // Data de Fabricação
	ExpiryDate   *time.Time `json:"expiry_date"`   // Data de Validade
	ProductImage string     `json:"product_image"` // Referência da Imagem
	AddedBy      string     `json:"added_by"`      // ID do Usuário que cadastrou
	CreatedAt    time.Time  `json:"created_at"`    // Data de Criação
	UpdatedAt    time.Time  `json:"updated_at"`    // Data de Atualização
}

// NewProduct cria um novo produto
func NewProduct(
	name string,
	barcode string,
	category string,
	distributor string,
	stock int,
	costPrice float64,
	mrp float64,
	sellingPrice float64,
	addedBy string,
) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if distributor == "" {
		return nil, ErrEmptyDistributor
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if costPrice < 0 || mrp < 0 || sellingPrice < 0 {
		return nil, ErrInvalidPrice
	}

	// Quando não informado, o preço de venda assume o MRP
	if sellingPrice == 0 {
		sellingPrice = mrp
	}

	now := time.Now()
	return &Product{
		ID:           uuid.New().String(),
		Name:         name,
		Barcode:      barcode,
		Category:     category,
		Distributor:  distributor,
		Stock:        stock,
		CostPrice:    costPrice,
		MRP:          mrp,
		SellingPrice: sellingPrice,
		AddedBy:      addedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update atualiza os dados cadastrais do produto. O estoque não é alterado
// aqui: movimentações de estoque passam pelos motores de nota fiscal.
func (p *Product) Update(
	name string,
	barcode string,
	category string,
	distributor string,
	costPrice float64,
	mrp float64,
	sellingPrice float64,
	batchNo string,
	mfgDate *time.Time,
	expiryDate *time.Time,
	productImage string,
) error {
	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if costPrice < 0 || mrp < 0 || sellingPrice < 0 {
		return ErrInvalidPrice
	}

	p.Name = name
	p.Barcode = barcode
	p.Category = category
	p.Distributor = distributor
	p.CostPrice = costPrice
	p.MRP = mrp
	if sellingPrice > 0 {
		p.SellingPrice = sellingPrice
	}
	p.BatchNo = batchNo
	p.MfgDate = mfgDate
	p.ExpiryDate = expiryDate
	p.ProductImage = productImage
	p.UpdatedAt = time.Now()

	return nil
}

// HasStock verifica se há estoque suficiente para a quantidade solicitada
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}
