package invoice

import (
	"reflect"
	"testing"
)

func TestStockDeltas(t *testing.T) {
	tests := []struct {
		name     string
		oldItems []Item
		newItems []Item
		want     []StockDelta
	}{
		{
			name:     "quantidade aumenta consome a diferença",
			oldItems: []Item{{ProductID: "p1", Quantity: 3}},
			newItems: []Item{{ProductID: "p1", Quantity: 5}},
			want:     []StockDelta{{ProductID: "p1", Delta: -2}},
		},
		{
			name:     "quantidade diminui devolve a diferença",
			oldItems: []Item{{ProductID: "p1", Quantity: 3}},
			newItems: []Item{{ProductID: "p1", Quantity: 1}},
			want:     []StockDelta{{ProductID: "p1", Delta: 2}},
		},
		{
			name:     "quantidade igual não gera ajuste",
			oldItems: []Item{{ProductID: "p1", Quantity: 3}},
			newItems: []Item{{ProductID: "p1", Quantity: 3}},
			want:     []StockDelta{},
		},
		{
			name:     "item removido devolve tudo",
			oldItems: []Item{{ProductID: "p1", Quantity: 4}},
			newItems: nil,
			want:     []StockDelta{{ProductID: "p1", Delta: 4}},
		},
		{
			name:     "item novo consome tudo",
			oldItems: nil,
			newItems: []Item{{ProductID: "p2", Quantity: 6}},
			want:     []StockDelta{{ProductID: "p2", Delta: -6}},
		},
		{
			name: "troca de produto combina remoção e adição",
			oldItems: []Item{
				{ProductID: "p1", Quantity: 2},
			},
			newItems: []Item{
				{ProductID: "p2", Quantity: 3},
			},
			want: []StockDelta{
				{ProductID: "p1", Delta: 2},
				{ProductID: "p2", Delta: -3},
			},
		},
		{
			name: "item duplicado acumula a quantidade",
			oldItems: []Item{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p1", Quantity: 3},
			},
			newItems: []Item{
				{ProductID: "p1", Quantity: 4},
			},
			want: []StockDelta{{ProductID: "p1", Delta: 1}},
		},
		{
			name: "conjunto misto segue a ordem antigos depois novos",
			oldItems: []Item{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 2},
			},
			newItems: []Item{
				{ProductID: "p2", Quantity: 5},
				{ProductID: "p3", Quantity: 1},
			},
			want: []StockDelta{
				{ProductID: "p1", Delta: 3},
				{ProductID: "p2", Delta: -3},
				{ProductID: "p3", Delta: -1},
			},
		},
		{
			name:     "ambos vazios",
			oldItems: nil,
			newItems: nil,
			want:     []StockDelta{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StockDeltas(tt.oldItems, tt.newItems)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StockDeltas() = %v, esperado %v", got, tt.want)
			}
		})
	}
}

// O efeito líquido dos ajustes deve sempre igualar a variação total vendida
func TestStockDeltasNetEffect(t *testing.T) {
	oldItems := []Item{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 2},
		{ProductID: "p3", Quantity: 7},
	}
	newItems := []Item{
		{ProductID: "p1", Quantity: 5},
		{ProductID: "p3", Quantity: 7},
		{ProductID: "p4", Quantity: 1},
	}

	sold := func(items []Item) int {
		total := 0
		for _, it := range items {
			total += it.Quantity
		}
		return total
	}

	net := 0
	for _, d := range StockDeltas(oldItems, newItems) {
		net += d.Delta
	}

	if want := sold(oldItems) - sold(newItems); net != want {
		t.Errorf("efeito líquido = %d, esperado %d", net, want)
	}
}
