package product

import (
	"errors"
	"testing"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "789100000001", "Grãos", "Distribuidora Sul", 20, 18.5, 26, 24, "user-1")
	if err != nil {
		t.Fatalf("NewProduct retornou erro: %v", err)
	}

	if p.ID == "" {
		t.Error("ID não foi gerado")
	}
	if p.Stock != 20 {
		t.Errorf("Stock = %d, esperado 20", p.Stock)
	}
	if p.SellingPrice != 24 {
		t.Errorf("SellingPrice = %v, esperado 24", p.SellingPrice)
	}
}

// Sem preço de venda informado, assume o MRP
func TestNewProductSellingPricePadrao(t *testing.T) {
	p, err := NewProduct("Feijão 1kg", "", "Grãos", "Distribuidora Sul", 10, 5, 9, 0, "user-1")
	if err != nil {
		t.Fatalf("NewProduct retornou erro: %v", err)
	}
	if p.SellingPrice != 9 {
		t.Errorf("SellingPrice = %v, esperado 9 (MRP)", p.SellingPrice)
	}
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name        string
		productName string
		category    string
		distributor string
		stock       int
		costPrice   float64
		mrp         float64
		selling     float64
		wantErr     error
	}{
		{name: "nome vazio", category: "Grãos", distributor: "D", wantErr: ErrEmptyName},
		{name: "categoria vazia", productName: "Arroz", distributor: "D", wantErr: ErrEmptyCategory},
		{name: "distribuidor vazio", productName: "Arroz", category: "Grãos", wantErr: ErrEmptyDistributor},
		{name: "estoque negativo", productName: "Arroz", category: "Grãos", distributor: "D", stock: -1, wantErr: ErrNegativeStock},
		{name: "preço negativo", productName: "Arroz", category: "Grãos", distributor: "D", costPrice: -1, wantErr: ErrInvalidPrice},
		{name: "mrp negativo", productName: "Arroz", category: "Grãos", distributor: "D", mrp: -5, wantErr: ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.productName, "", tt.category, tt.distributor, tt.stock, tt.costPrice, tt.mrp, tt.selling, "user-1")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewProduct erro = %v, esperado %v", err, tt.wantErr)
			}
		})
	}
}

// A atualização cadastral não pode mexer no estoque
func TestUpdateNaoAlteraEstoque(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "", "Grãos", "Distribuidora Sul", 20, 18.5, 26, 24, "user-1")
	if err != nil {
		t.Fatalf("NewProduct retornou erro: %v", err)
	}

	if err := p.Update("Arroz Integral 5kg", "", "Grãos", "Distribuidora Norte", 19, 27, 25, "", nil, nil, ""); err != nil {
		t.Fatalf("Update retornou erro: %v", err)
	}

	if p.Stock != 20 {
		t.Errorf("Stock = %d, esperado 20 (inalterado)", p.Stock)
	}
	if p.Name != "Arroz Integral 5kg" {
		t.Errorf("Name = %q, esperado %q", p.Name, "Arroz Integral 5kg")
	}
}

// Preço de venda zero na atualização mantém o preço atual
func TestUpdateSellingPriceZeroMantemAtual(t *testing.T) {
	p, err := NewProduct("Arroz 5kg", "", "Grãos", "Distribuidora Sul", 20, 18.5, 26, 24, "user-1")
	if err != nil {
		t.Fatalf("NewProduct retornou erro: %v", err)
	}

	if err := p.Update("Arroz 5kg", "", "Grãos", "Distribuidora Sul", 18.5, 26, 0, "", nil, nil, ""); err != nil {
		t.Fatalf("Update retornou erro: %v", err)
	}
	if p.SellingPrice != 24 {
		t.Errorf("SellingPrice = %v, esperado 24", p.SellingPrice)
	}
}

func TestHasStock(t *testing.T) {
	p := &Product{Stock: 5}

	if !p.HasStock(5) {
		t.Error("HasStock(5) = false, esperado true")
	}
	if p.HasStock(6) {
		t.Error("HasStock(6) = true, esperado false")
	}
}
