// Package pdf genera la nota de venta en PDF (representación imprimible de
// una venta registrada).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Folio + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre + estado de pago                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Artículo | P.Unit | Flete | Importe          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Fletes / Pagado / Saldo / TOTAL                   │
//	│  FOOTER: QR con el folio para consulta                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// NotaVentaGenerator genera la nota de venta usando Maroto v2.
type NotaVentaGenerator struct {
	negocio string
}

// NewNotaVentaGenerator construye el generador. negocio es el nombre que
// encabeza la nota.
func NewNotaVentaGenerator(negocio string) *NotaVentaGenerator {
	return &NotaVentaGenerator{negocio: negocio}
}

// Generar genera el PDF de la venta y devuelve sus bytes.
func (g *NotaVentaGenerator) Generar(venta *entity.Venta) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Nota de Venta", true).
		WithAuthor(g.negocio, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(venta.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(venta))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(venta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y folio + fecha (der).
func (g *NotaVentaGenerator) headerRow(venta *entity.Venta) core.Row {
	fecha := venta.Fecha.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.negocio, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("NOTA DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Folio: "+folio(venta.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clienteRow: datos del cliente y estado de pago.
func clienteRow(venta *entity.Venta) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Estado de pago: %s",
				venta.Cliente, venta.EstadoPago,
			), props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Artículo", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Flete", 2, align.Right),
		h("Importe", 2, align.Right),
	)
}

// tableItemRows: una fila por línea de venta.
func tableItemRows(items []entity.VentaItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		importe := it.Cantidad.Mul(it.PrecioUnitario.Add(it.FletePorUnidad))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Cantidad.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				it.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+dinero(it.PrecioUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+dinero(it.FletePorUnidad),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				"$"+dinero(importe),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(venta *entity.Venta) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(30).Add(
		col.New(3),
		col.New(3).Add(
			label("Fletes:"),
			label("Pagado:"),
			label("Saldo pendiente:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+dinero(venta.TotalFletes)),
			value("$"+dinero(venta.MontoPagado)),
			value("$"+dinero(venta.SaldoPendiente)),
			grandValue("$"+dinero(venta.TotalVenta)),
		),
		col.New(3),
	)
}

// footerRow: QR con el folio completo para consultar la venta.
func footerRow(venta *entity.Venta) core.Row {
	return row.New(40).Add(
		col.New(4).Add(code.NewQr(venta.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código para consultar\nesta venta en el sistema.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Gracias por su compra.", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// folio acorta el UUID de la venta a un folio legible (primer bloque).
func folio(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// dinero da formato de miles con coma y dos decimales. Ej: "25000" → "25,000.00"
func dinero(d decimal.Decimal) string {
	s := d.StringFixed(2)
	entera, decimales := s, ""
	if i := len(s) - 3; i > 0 && s[i] == '.' {
		entera, decimales = s[:i], s[i:]
	}
	neg := ""
	if len(entera) > 0 && entera[0] == '-' {
		neg, entera = "-", entera[1:]
	}
	n := len(entera)
	if n <= 3 {
		return neg + entera + decimales
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, entera[i])
	}
	return neg + string(buf) + decimales
}
