package invoice

// StockDelta é um ajuste assinado a aplicar no estoque de um produto.
// Negativo consome estoque, positivo devolve.
type StockDelta struct {
	ProductID string
	Delta     int
}

// StockDeltas calcula os ajustes de estoque necessários quando o conjunto de
// itens de uma venda é substituído. A comparação é chaveada pelo produto:
//
//   - item removido: devolve ao estoque a quantidade antiga;
//   - item mantido:  aplica apenas a diferença de quantidade;
//   - item novo:     consome a quantidade inteira.
//
// Ajustes com delta zero são omitidos. A ordem segue os itens antigos e em
// seguida os novos, para que a aplicação seja determinística.
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
			// Removido: reverte o efeito da venda antiga
			deltas = append(deltas, StockDelta{ProductID: id, Delta: oldQty[id]})
			continue
		}
		if diff := qty - oldQty[id]; diff != 0 {
			// Mantido: consome (ou devolve) somente a diferença
			deltas = append(deltas, StockDelta{ProductID: id, Delta: -diff})
		}
	}

	for _, item := range newItems {
		id := item.ProductID
		if seen[id] {
			continue
		}
		seen[id] = true

		// Adicionado: consome a quantidade inteira
		deltas = append(deltas, StockDelta{ProductID: id, Delta: -newQty[id]})
	}

	return deltas
}
