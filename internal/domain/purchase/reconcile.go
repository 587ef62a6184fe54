package purchase

// StockDelta é um ajuste assinado a aplicar no estoque de um produto.
// Positivo recebe estoque, negativo devolve ao fornecedor.
type StockDelta struct {
	ProductID string
	Delta     int
}

// StockDeltas calcula os ajustes de estoque quando o conjunto de itens de uma
// compra é substituído. É o espelho da reconciliação de venda, com o sinal
// invertido: receber mercadoria aumenta o estoque.
//
//   - item removido: retira do estoque a quantidade recebida antes;
//   - item mantido:  aplica apenas a diferença de quantidade;
//   - item novo:     soma a quantidade inteira.
func StockDeltas(oldItems, newItems []Item) []StockDelta {
	oldQty := make(map[string]int, len(oldItems))
	for _, item := range oldItems {
		oldQty[item.ProductID] += item.Quantity
	}
	newQty := make(map[string]int, len(newItems))
	for _, item := range newItems {
		newQty[item.ProductID] += item.Quantity
	}

	deltas := make([]StockDelta, 0, len(oldQty)+len(newQty))
	seen := make(map[string]bool, len(oldQty))

	for _, item := range oldItems {
		id := item.ProductID
		if seen[id] {
			continue
		}
		seen[id] = true

		qty, kept := newQty[id]
		if !kept {
			deltas = append(deltas, StockDelta{ProductID: id, Delta: -oldQty[id]})
			continue
		}
		if diff := qty - oldQty[id]; diff != 0 {
			deltas = append(deltas, StockDelta{ProductID: id, Delta: diff})
		}
	}

	for _, item := range newItems {
		id := item.ProductID
		if seen[id] {
			continue
		}
		seen[id] = true

		deltas = append(deltas, StockDelta{ProductID: id, Delta: newQty[id]})
	}

	return deltas
}
