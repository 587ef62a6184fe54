package dto

import (
	"time"

	"github.com/hugohenrick/erp-mercearia/internal/domain/expense"
)

// ExpenseRequest representa os dados de uma despesa para criação
type ExpenseRequest struct {
	ExpenseType string    `json:"expense_type" binding:"required"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
}

// ExpenseResponse representa a resposta com dados de uma despesa
type ExpenseResponse struct {
	ID          string    `json:"id"`
	ExpenseType string    `json:"expense_type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse representa a resposta com a lista de despesas
type ExpenseListResponse struct {
	Data        []ExpenseResponse `json:"data"`
	TotalCount  int               `json:"total_count"`
	TotalAmount float64           `json:"total_amount"`
}

// ToExpenseResponse converte uma despesa do domínio para DTO de resposta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		ExpenseType: string(e.ExpenseType),
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas do domínio para DTO de
// resposta, acumulando o valor total das despesas listadas
func ToExpenseListResponse(expenses []*expense.Expense) ExpenseListResponse {
	data := make([]ExpenseResponse, len(expenses))
	total := 0.0
	for i, e := range expenses {
		data[i] = ToExpenseResponse(e)
		total += e.Amount
	}

	return ExpenseListResponse{
		Data:        data,
		TotalCount:  len(expenses),
		TotalAmount: total,
	}
}
