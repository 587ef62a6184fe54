package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-mercearia/internal/domain/expense"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrExpenseNotFound é retornado quando a despesa não existe
var ErrExpenseNotFound = errors.New("despesa não encontrada")

const expenseColumns = `
	id, expense_type, amount::double precision, COALESCE(description, ''),
	date, created_by, created_at, updated_at`

// ExpenseRepository implementa a interface expense.Repository
type ExpenseRepository struct {
	db *pgxpool.Pool
}

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *pgxpool.Pool) expense.Repository {
	return &ExpenseRepository{
		db: db,
	}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (
			id, expense_type, amount, description, date, created_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`,
		e.ID, e.ExpenseType, e.Amount, e.Description, e.Date, e.CreatedBy,
		e.CreatedAt, e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao registrar despesa: %w", err)
	}

	return nil
}

// FindByID implementa expense.Repository.FindByID
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*expense.Expense, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	return scanExpense(row)
}

// List implementa expense.Repository.List
func (r *ExpenseRepository) List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses`+where+` ORDER BY date DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer rows.Close()

	expenses := make([]*expense.Expense, 0)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar despesas: %w", err)
	}

	return expenses, nil
}

// Delete implementa expense.Repository.Delete
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao remover despesa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

// scanExpense lê uma despesa de uma linha de resultado
func scanExpense(row pgx.Row) (*expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.ExpenseType, &e.Amount, &e.Description, &e.Date,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar despesa: %w", err)
	}
	return &e, nil
}
