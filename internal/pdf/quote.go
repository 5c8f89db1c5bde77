// Package pdf rende i preventivi come documenti PDF scaricabili.
// Il resto del gestionale lo usa solo attraverso Renderer: l'impaginazione
// resta confinata qui.
package pdf

import (
	"fmt"
	"strings"

	"edilmodern-erp/internal/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Renderer produce il PDF di un preventivo.
type Renderer interface {
	RenderQuote(company models.Company, q models.Quote) ([]byte, error)
}

type MarotoRenderer struct{}

func NewRenderer() *MarotoRenderer { return &MarotoRenderer{} }

func (r *MarotoRenderer) RenderQuote(company models.Company, q models.Quote) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	// intestazione azienda
	m.AddRows(text.NewRow(10, strings.ToUpper(company.Name), props.Text{
		Size: 16, Style: fontstyle.Bold,
	}))
	m.AddRows(text.NewRow(6, companyLine(company), props.Text{Size: 8}))
	m.AddRows(line.NewRow(4))

	m.AddRow(8,
		text.NewCol(8, "PREVENTIVO N. "+q.Number, props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(4, "Data: "+q.Date, props.Text{Size: 10, Align: align.Right}),
	)

	// blocco cliente (fotografia al momento dell'emissione)
	m.AddRows(text.NewRow(6, "Spett.le", props.Text{Size: 9}))
	m.AddRows(text.NewRow(6, q.ClientName, props.Text{Size: 11, Style: fontstyle.Bold}))
	if q.ClientAddress != "" {
		m.AddRows(text.NewRow(5, q.ClientAddress, props.Text{Size: 9}))
	}
	if q.ClientPhone != "" {
		m.AddRows(text.NewRow(5, "Tel. "+q.ClientPhone, props.Text{Size: 9}))
	}

	if q.Description != "" {
		m.AddRows(text.NewRow(7, "Oggetto dei lavori", props.Text{Size: 10, Style: fontstyle.Bold, Top: 2}))
		m.AddRows(text.NewRow(14, q.Description, props.Text{Size: 9}))
	}

	m.AddRows(line.NewRow(4))

	// riepilogo importi
	m.AddRow(6,
		text.NewCol(8, "Imponibile lavori", props.Text{Size: 10}),
		text.NewCol(4, q.Subtotal.StringFixed(2)+" €", props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(6,
		text.NewCol(8, fmt.Sprintf("IVA (%s%%)", q.TaxRate.String()), props.Text{Size: 10}),
		text.NewCol(4, q.TaxAmount.StringFixed(2)+" €", props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(8, "TOTALE PREVENTIVO", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(4, q.Total.StringFixed(2)+" €", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	if q.Notes != "" {
		m.AddRows(text.NewRow(10, "Note: "+q.Notes, props.Text{Size: 8, Top: 4}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func companyLine(c models.Company) string {
	parts := make([]string, 0, 4)
	if c.VAT != "" {
		parts = append(parts, "P.IVA "+c.VAT)
	}
	if c.Address != "" {
		parts = append(parts, c.Address)
	}
	if c.Phone != "" {
		parts = append(parts, "Tel. "+c.Phone)
	}
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	return strings.Join(parts, " · ")
}

// Filename genera il nome file deterministico del documento:
// Preventivo_<progressivo>_<Nome_Cliente>.pdf.
func Filename(q models.Quote) string {
	seq := q.Number
	if i := strings.IndexByte(seq, '/'); i >= 0 {
		seq = seq[i+1:]
	}
	name := strings.Join(strings.Fields(q.ClientName), "_")
	if name == "" {
		name = "Generico"
	}
	return fmt.Sprintf("Preventivo_%s_%s.pdf", seq, name)
}
