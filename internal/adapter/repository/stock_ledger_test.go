package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

type fakeProductRow struct {
	name  string
	stock int
}

// fakeStockTx simula o recorte de pgx.Tx usado pelo livro-razão de estoque
type fakeStockTx struct {
	products map[string]*fakeProductRow
	execErr  error
}

func (t *fakeStockTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	id := args[0].(string)
	p, ok := t.products[id]
	if !ok {
		return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
	}
	return fakeRow{scan: func(dest ...any) error {
		*dest[0].(*string) = p.name
		*dest[1].(*int) = p.stock
		return nil
	}}
}

func (t *fakeStockTx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	if t.execErr != nil {
		return pgconn.CommandTag{}, t.execErr
	}
	newStock := args[0].(int)
	id := args[1].(string)
	t.products[id].stock = newStock
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func TestApplyStockDelta(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		delta     int
		wantStock int
	}{
		{name: "baixa de venda", stock: 20, delta: -5, wantStock: 15},
		{name: "entrada de compra", stock: 20, delta: 50, wantStock: 70},
		{name: "baixa até zero", stock: 5, delta: -5, wantStock: 0},
		{name: "delta zero", stock: 7, delta: 0, wantStock: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeStockTx{products: map[string]*fakeProductRow{
				"p1": {name: "Arroz", stock: tt.stock},
			}}

			got, err := applyStockDelta(context.Background(), tx, "p1", tt.delta)
			if err != nil {
				t.Fatalf("applyStockDelta retornou erro: %v", err)
			}
			if got != tt.wantStock {
				t.Errorf("novo estoque = %d, esperado %d", got, tt.wantStock)
			}
			if tx.products["p1"].stock != tt.wantStock {
				t.Errorf("estoque persistido = %d, esperado %d", tx.products["p1"].stock, tt.wantStock)
			}
		})
	}
}

func TestApplyStockDeltaInsuficiente(t *testing.T) {
	tx := &fakeStockTx{products: map[string]*fakeProductRow{
		"p1": {name: "Feijão", stock: 3},
	}}

	_, err := applyStockDelta(context.Background(), tx, "p1", -5)
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("erro = %v, esperado %v", err, ErrInsufficientStock)
	}

	// A falha não pode ter tocado o estoque
	if tx.products["p1"].stock != 3 {
		t.Errorf("estoque = %d, esperado 3 (inalterado)", tx.products["p1"].stock)
	}
}

func TestApplyStockDeltaProdutoInexistente(t *testing.T) {
	tx := &fakeStockTx{products: map[string]*fakeProductRow{}}

	_, err := applyStockDelta(context.Background(), tx, "desconhecido", -1)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("erro = %v, esperado %v", err, ErrProductNotFound)
	}
}

func TestApplyStockDeltaFalhaDeEscrita(t *testing.T) {
	writeErr := errors.New("conexão perdida")
	tx := &fakeStockTx{
		products: map[string]*fakeProductRow{"p1": {name: "Açúcar", stock: 10}},
		execErr:  writeErr,
	}

	_, err := applyStockDelta(context.Background(), tx, "p1", -2)
	if !errors.Is(err, writeErr) {
		t.Fatalf("erro = %v, esperado %v encadeado", err, writeErr)
	}
}
