package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyInvoiceNumber   = errors.New("número da nota não pode ser vazio")
	ErrNoItems              = errors.New("nota fiscal deve ter ao menos um item")
	ErrEmptyItemProduct     = errors.New("item da nota deve referenciar um produto")
	ErrInvalidQuantity      = errors.New("quantidade do item deve ser maior ou igual a 1")
	ErrInvalidPrice         = errors.New("preço do item não pode ser negativo")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrInvalidStatus        = errors.New("status inválido")
)

// PaymentMethod define a forma de pagamento da nota
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentUPI   PaymentMethod = "upi"
	PaymentOther PaymentMethod = "other"
)

// IsValid verifica se a forma de pagamento é conhecida
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI, PaymentOther:
		return true
	}
	return false
}

// Status representa o estado de pagamento da nota
type Status string

const (
	StatusPaid    Status = "paid"
	StatusUnpaid  Status = "unpaid"
	StatusPending Status = "pending"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusPaid, StatusUnpaid, StatusPending:
		return true
	}
	return false
}

// DefaultCustomerName é usado quando a venda não identifica o cliente
const DefaultCustomerName = "Walk-in Customer"

// Item é um item de venda. Os atributos do produto são copiados no momento
// da venda para que a nota permaneça estável mesmo que o produto mude depois.
type Item struct {
	ProductID    string     `json:"product_id"`    // ID do Produto
	Name         string     `json:"name"`          // Nome (desnormalizado)
	Barcode      string     `json:"barcode"`       // Código de Barras (desnormalizado)
	Quantity     int        `json:"quantity"`      // Quantidade vendida
	CostPrice    float64    `json:"cost_price"`    // Preço de Custo (desnormalizado)
	MRP          float64    `json:"mrp"`           // MRP (desnormalizado)
	SellingPrice float64    `json:"selling_price"` // Preço de Venda praticado
	BatchNo      string     `json:"batch_no"`      // Lote (desnormalizado)
	MfgDate      *time.Time `json:"mfg_date"`      // Data de Fabricação
	ExpiryDate   *time.Time `json:"expiry_date"`   // Data de Validade
}

// Invoice representa uma nota fiscal de venda com seus itens embutidos.
// A nota é dona exclusiva dos itens; produtos são apenas referenciados.
type Invoice struct {
	ID              string        `json:"id"`               // ID da Nota
	InvoiceNumber   string        `json:"invoice_number"`   // Número legível (único)
	CustomerName    string        `json:"customer_name"`    // Nome do Cliente
	CustomerPhone   string        `json:"customer_phone"`   // Telefone do Cliente
	CustomerAddress string        `json:"customer_address"` // Endereço do Cliente
	Items           []Item        `json:"items"`            // Itens da venda
	Subtotal        float64       `json:"subtotal"`         // Soma de preço de venda x quantidade
	Tax             float64       `json:"tax"`              // Imposto total
	Discount        float64       `json:"discount"`         // Desconto total
	TotalAmount     float64       `json:"total_amount"`     // Subtotal - Desconto + Imposto
	PaymentMethod   PaymentMethod `json:"payment_method"`   // Forma de Pagamento
	Status          Status        `json:"status"`           // Status da Nota
	Notes           string        `json:"notes"`            // Observações
	CreatedBy       string        `json:"created_by"`       // ID do Usuário que emitiu
	CreatedAt       time.Time     `json:"created_at"`       // Data de Criação
	UpdatedAt       time.Time     `json:"updated_at"`       // Data de Atualização
}

// ValidateItems valida a lista de itens de uma venda. Quantidades e preços
// vindos do chamador nunca são confiados sem esta checagem.
func ValidateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for _, item := range items {
		if item.ProductID == "" {
			return ErrEmptyItemProduct
		}
		if item.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if item.SellingPrice < 0 {
			return ErrInvalidPrice
		}
	}
	return nil
}

// NewInvoice cria uma nova nota fiscal de venda
func NewInvoice(
	invoiceNumber string,
	customerName string,
	customerPhone string,
	customerAddress string,
	items []Item,
	paymentMethod PaymentMethod,
	status Status,
	notes string,
	createdBy string,
) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, ErrEmptyInvoiceNumber
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
	}

	if customerName == "" {
		customerName = DefaultCustomerName
	}
	if paymentMethod == "" {
		paymentMethod = PaymentCash
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if status == "" {
		status = StatusPaid
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	inv := &Invoice{
		ID:              uuid.New().String(),
		InvoiceNumber:   invoiceNumber,
		CustomerName:    customerName,
		CustomerPhone:   customerPhone,
		CustomerAddress: customerAddress,
		Items:           items,
		PaymentMethod:   paymentMethod,
		Status:          status,
		Notes:           notes,
		CreatedBy:       createdBy,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	inv.ComputeTotals()

	return inv, nil
}

// ComputeTotals recalcula subtotal e total a partir dos itens.
// No caminho simples de venda não há imposto nem desconto.
func (i *Invoice) ComputeTotals() {
	subtotal := 0.0
	for _, item := range i.Items {
		subtotal += item.SellingPrice * float64(item.Quantity)
	}
	i.Subtotal = subtotal
	i.TotalAmount = i.Subtotal - i.Discount + i.Tax
}

// ReplaceItems substitui o conjunto de itens e recalcula os totais
func (i *Invoice) ReplaceItems(items []Item) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	i.Items = items
	i.ComputeTotals()
	i.UpdatedAt = time.Now()
	return nil
}
