// Package pdf gera a representação imprimível de uma nota fiscal de venda.
// Consome apenas o retrato final da nota; não realimenta estoque nem estado.
package pdf

import (
	"fmt"

	"github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Dados do cabeçalho do cupom
const (
	storeName    = "My Grocery Store"
	storeAddress = "123 Market Street, Your City, India"
	storeContact = "Phone: +91 123-456-7890 | Email: contact@grocerystore.com"
)

// GenerateInvoicePDF monta o cupom de venda em formato de bobina (80mm)
func GenerateInvoicePDF(inv *invoice.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(80, 250).
		WithLeftMargin(5).
		WithRightMargin(5).
		WithTopMargin(5).
		Build()

	m := maroto.New(cfg)

	// Cabeçalho da loja
	m.AddRow(7, text.NewCol(12, storeName, props.Text{
		Style: fontstyle.Bold,
		Size:  12,
		Align: align.Center,
	}))
	m.AddRow(4, text.NewCol(12, storeAddress, props.Text{
		Size:  7,
		Align: align.Center,
	}))
	m.AddRow(4, text.NewCol(12, storeContact, props.Text{
		Size:  7,
		Align: align.Center,
	}))
	m.AddRows(line.NewRow(2))

	// Identificação da nota
	m.AddRow(5,
		text.NewCol(7, fmt.Sprintf("Nota #%s", inv.InvoiceNumber), props.Text{
			Style: fontstyle.Bold,
			Size:  8,
		}),
		text.NewCol(5, inv.CreatedAt.Format("02/01/2006"), props.Text{
			Size:  8,
			Align: align.Right,
		}),
	)

	// Cliente
	m.AddRow(5, text.NewCol(12, "Cliente:", props.Text{Style: fontstyle.Bold, Size: 8}))
	m.AddRow(4, text.NewCol(12, inv.CustomerName, props.Text{Size: 8}))
	if inv.CustomerPhone != "" {
		m.AddRow(4, text.NewCol(12, inv.CustomerPhone, props.Text{Size: 8}))
	}
	m.AddRows(line.NewRow(2))

	// Itens
	m.AddRow(5,
		text.NewCol(6, "Item", props.Text{Style: fontstyle.Bold, Size: 8}),
		text.NewCol(2, "Qtd", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Preço", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right}),
	)
	for _, item := range inv.Items {
		m.AddRow(4,
			text.NewCol(6, item.Name, props.Text{Size: 8}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%.2f", item.SellingPrice), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%.2f", item.SellingPrice*float64(item.Quantity)), props.Text{Size: 8, Align: align.Right}),
		)
	}
	m.AddRows(line.NewRow(2))

	// Totais
	addTotalRow(m, "Subtotal", inv.Subtotal, false)
	if inv.Discount > 0 {
		addTotalRow(m, "Desconto", -inv.Discount, false)
	}
	if inv.Tax > 0 {
		addTotalRow(m, "Imposto", inv.Tax, false)
	}
	addTotalRow(m, "Total", inv.TotalAmount, true)

	// Pagamento e rodapé
	m.AddRow(5, text.NewCol(12,
		fmt.Sprintf("Pagamento: %s | Status: %s", inv.PaymentMethod, inv.Status),
		props.Text{Size: 8}))
	m.AddRow(6, text.NewCol(12, "Obrigado pela preferência!", props.Text{
		Size:  8,
		Align: align.Center,
	}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF da nota: %w", err)
	}

	return doc.GetBytes(), nil
}

// addTotalRow escreve uma linha de total alinhada à direita
func addTotalRow(m core.Maroto, label string, value float64, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRow(5,
		text.NewCol(8, label, props.Text{Size: 8, Style: style, Align: align.Right}),
		text.NewCol(4, fmt.Sprintf("%.2f", value), props.Text{Size: 8, Style: style, Align: align.Right}),
	)
}
