package purchase

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
			name:     "quantidade aumenta soma a diferença",
			oldItems: []Item{{ProductID: "p1", Quantity: 10}},
			newItems: []Item{{ProductID: "p1", Quantity: 15}},
			want:     []StockDelta{{ProductID: "p1", Delta: 5}},
		},
		{
			name:     "quantidade diminui retira a diferença",
			oldItems: []Item{{ProductID: "p1", Quantity: 10}},
			newItems: []Item{{ProductID: "p1", Quantity: 4}},
			want:     []StockDelta{{ProductID: "p1", Delta: -6}},
		},
		{
			name:     "item removido retira tudo",
			oldItems: []Item{{ProductID: "p1", Quantity: 8}},
			newItems: nil,
			want:     []StockDelta{{ProductID: "p1", Delta: -8}},
		},
		{
			name:     "item novo soma tudo",
			oldItems: nil,
			newItems: []Item{{ProductID: "p2", Quantity: 12}},
			want:     []StockDelta{{ProductID: "p2", Delta: 12}},
		},
		{
			name:     "quantidade igual não gera ajuste",
			oldItems: []Item{{ProductID: "p1", Quantity: 7}},
			newItems: []Item{{ProductID: "p1", Quantity: 7}},
			want:     []StockDelta{},
		},
		{
			name: "conjunto misto com sinal invertido em relação à venda",
			oldItems: []Item{
				{ProductID: "p1", Quantity: 3},
				{ProductID: "p2", Quantity: 2},
			},
			newItems: []Item{
				{ProductID: "p2", Quantity: 5},
				{ProductID: "p3", Quantity: 1},
			},
			want: []StockDelta{
				{ProductID: "p1", Delta: -3},
				{ProductID: "p2", Delta: 3},
				{ProductID: "p3", Delta: 1},
			},
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
