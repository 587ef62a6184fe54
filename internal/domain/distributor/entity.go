package distributor

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome do distribuidor não pode ser vazio")
)

// Distributor representa um distribuidor/fornecedor, a contraparte
// de uma nota fiscal de compra.
type Distributor struct {
	ID            string    `json:"id"`             // ID do Distribuidor
	Name          string    `json:"name"`           // Nome (único)
	GSTIN         string    `json:"gstin"`          // Inscrição Fiscal (GSTIN)
	Company       string    `json:"company"`        // Empresa
	Address       string    `json:"address"`        // Endereço
	Phone         string    `json:"phone"`          // Telefone
	Email         string    `json:"email"`          // Email
	ContactPerson string    `json:"contact_person"` // Pessoa de Contato
	CreatedBy     string    `json:"created_by"`     // ID do Usuário que cadastrou
	CreatedAt     time.Time `json:"created_at"`     // Data de Criação
	UpdatedAt     time.Time `json:"updated_at"`     // Data de Atualização
}

// NewDistributor cria um novo distribuidor
func NewDistributor(name, gstin, company, address, phone, email, contactPerson, createdBy string) (*Distributor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Distributor{
		ID:            uuid.New().String(),
		Name:          name,
		GSTIN:         gstin,
		Company:       company,
		Address:       address,
		Phone:         phone,
		Email:         email,
		ContactPerson: contactPerson,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update atualiza os dados do distribuidor
func (d *Distributor) Update(name, gstin, company, address, phone, email, contactPerson string) error {
	if name == "" {
		return ErrEmptyName
	}

	d.Name = name
	d.GSTIN = gstin
	d.Company = company
	d.Address = address
	d.Phone = phone
	d.Email = email
	d.ContactPerson = contactPerson
	d.UpdatedAt = time.Now()

	return nil
}
