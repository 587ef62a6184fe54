package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/distributor"
)

// DistributorRequest representa os dados de um distribuidor para criação ou atualização
type DistributorRequest struct {
	Name          string `json:"name" binding:"required"`
	GSTIN         string `json:"gstin"`
	Company       string `json:"company"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	ContactPerson string `json:"contact_person"`
}

// DistributorResponse representa a resposta com dados de um distribuidor
type DistributorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GSTIN         string    `json:"gstin,omitempty"`
	Company       string    `json:"company,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	ContactPerson string    `json:"contact_person,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DistributorListResponse representa a resposta com a lista de distribuidores
type DistributorListResponse struct {
	Data       []DistributorResponse `json:"data"`
	TotalCount int                   `json:"total_count"`
}

// ToDistributorResponse converte um distribuidor do domínio para DTO de resposta
func ToDistributorResponse(d *distributor.Distributor) DistributorResponse {
	return DistributorResponse{
		ID:            d.ID,
		Name:          d.Name,
		GSTIN:         d.GSTIN,
		Company:       d.Company,
		Address:       d.Address,
		Phone:         d.Phone,
		Email:         d.Email,
		ContactPerson: d.ContactPerson,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// ToDistributorListResponse converte uma lista de distribuidores do domínio para DTO de resposta
func ToDistributorListResponse(distributors []*distributor.Distributor) DistributorListResponse {
	data := make([]DistributorResponse, len(distributors))
	for i, d := range distributors {
		data[i] = ToDistributorResponse(d)
	}

	return DistributorListResponse{
		Data:       data,
		TotalCount: len(distributors),
	}
}
