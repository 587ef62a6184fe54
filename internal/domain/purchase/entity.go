package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyInvoiceNumber   = errors.New("número da nota não pode ser vazio")
	ErrEmptyDistributor     = errors.New("distribuidor é obrigatório")
	ErrNoItems              = errors.New("nota fiscal deve ter ao menos um item")
	ErrEmptyItemProduct     = errors.New("item da nota deve referenciar um produto")
	ErrInvalidQuantity      = errors.New("quantidade do item deve ser maior ou igual a 1")
	ErrInvalidRate          = errors.New("valor unitário do item deve ser maior que zero")
	ErrInvalidPrice         = errors.New("preço de custo e MRP do item devem ser maiores que zero")
	ErrNegativeTax          = errors.New("desconto e impostos do item não podem ser negativos")
	ErrInvalidPaymentMethod = errors.New("forma de pagamento inválida")
	ErrInvalidStatus        = errors.New("status inválido")
)

// PaymentMethod define a forma de pagamento da compra
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

// Status representa o estado de pagamento da compra
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

// Item é um item de compra. NetAmount é derivado dos demais campos e é
// recalculado pelo motor a cada gravação.
type Item struct {
	ProductID  string     `json:"product_id"`  // ID do Produto
	Name       string     `json:"name"`        // Nome (desnormalizado)
	Barcode    string     `json:"barcode"`     // Código de Barras (desnormalizado)
	Quantity   int        `json:"quantity"`    // Quantidade recebida
	Rate       float64    `json:"rate"`        // Valor unitário de compra
	Discount   float64    `json:"discount"`    // Desconto do item
	SGST       float64    `json:"sgst"`        // Imposto estadual (SGST)
	CGST       float64    `json:"cgst"`        // Imposto central (CGST)
	IGST       float64    `json:"igst"`        // Imposto interestadual (IGST)
	NetAmount  float64    `json:"net_amount"`  // rate x quantity - discount + sgst + cgst + igst
	CostPrice  float64    `json:"cost_price"`  // Preço de Custo (desnormalizado)
	MRP        float64    `json:"mrp"`         // MRP (desnormalizado)
	BatchNo    string     `json:"batch_no"`    // Lote
	MfgDate    *time.Time `json:"mfg_date"`    // Data de Fabricação
	ExpiryDate *time.Time `json:"expiry_date"` // Data de Validade
}

// ComputeNetAmount calcula o valor líquido do item
func (it Item) ComputeNetAmount() float64 {
	return it.Rate*float64(it.Quantity) - it.Discount + it.SGST + it.CGST + it.IGST
}

// Invoice representa uma nota fiscal de compra junto a um distribuidor
type Invoice struct {
	ID            string        `json:"id"`             // ID da Nota
	InvoiceNumber string        `json:"invoice_number"` // Número legível (único)
	DistributorID string        `json:"distributor_id"` // ID do Distribuidor
	Items         []Item        `json:"items"`          // Itens da compra
	Subtotal      float64       `json:"subtotal"`       // Soma de rate x quantity
	Tax           float64       `json:"tax"`            // Soma de sgst + cgst + igst
	Discount      float64       `json:"discount"`       // Soma dos descontos
	TotalAmount   float64       `json:"total_amount"`   // Subtotal - Desconto + Imposto
	PaymentMethod PaymentMethod `json:"payment_method"` // Forma de Pagamento
	Status        Status        `json:"status"`         // Status da Nota
	Notes         string        `json:"notes"`          // Observações
	CreatedBy     string        `json:"created_by"`     // ID do Usuário que registrou
	CreatedAt     time.Time     `json:"created_at"`     // Data de Criação
	UpdatedAt     time.Time     `json:"updated_at"`     // Data de Atualização
}

// ValidateItems valida a lista de itens de uma compra
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
		if item.Rate <= 0 {
			return ErrInvalidRate
		}
		if item.CostPrice <= 0 || item.MRP <= 0 {
			return ErrInvalidPrice
		}
		if item.Discount < 0 || item.SGST < 0 || item.CGST < 0 || item.IGST < 0 {
			return ErrNegativeTax
		}
	}
	return nil
}

// NewInvoice cria uma nova nota fiscal de compra
func NewInvoice(
	invoiceNumber string,
	distributorID string,
	items []Item,
	paymentMethod PaymentMethod,
	status Status,
	notes string,
	createdBy string,
) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, ErrEmptyInvoiceNumber
	}
	if distributorID == "" {
		return nil, ErrEmptyDistributor
	}
	if err := ValidateItems(items); err != nil {
		return nil, err
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
		ID:            uuid.New().String(),
		InvoiceNumber: invoiceNumber,
		DistributorID: distributorID,
		Items:         items,
		PaymentMethod: paymentMethod,
		Status:        status,
		Notes:         notes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inv.ComputeTotals()

	return inv, nil
}

// ComputeTotals recalcula o valor líquido de cada item e os agregados da nota
func (i *Invoice) ComputeTotals() {
	subtotal := 0.0
	tax := 0.0
	discount := 0.0
	for idx := range i.Items {
		item := &i.Items[idx]
		item.NetAmount = item.ComputeNetAmount()
		subtotal += item.Rate * float64(item.Quantity)
		tax += item.SGST + item.CGST + item.IGST
		discount += item.Discount
	}
	i.Subtotal = subtotal
	i.Tax = tax
	i.Discount = discount
	i.TotalAmount = subtotal - discount + tax
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
