// Package pdf implementa la generación del comprobante de pedido en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Distribuidora  │  N° Pedido + Fecha                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ENVÍO: contacto / dirección / referencias                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Costo de envío / TOTAL                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: estado, forma de pago, guía de entrega             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/casamedica/distribucion-api/internal/application/pedidos"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 72}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa pedidos.ComprobanteGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	empresa string
}

var _ pedidos.ComprobanteGenerator = (*MarotoPDFGenerator)(nil)

// NewMarotoPDFGenerator construye el generador con el nombre de la distribuidora.
func NewMarotoPDFGenerator(empresa string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{empresa: empresa}
}

// GenerarComprobante genera el PDF del pedido y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerarComprobante(
	_ context.Context,
	pedido *entity.Pedido,
	lineas []pedidos.LineaComprobante,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Pedido", true).
		WithAuthor(g.empresa, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(envioRow(pedido))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineaRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(pedido))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(pedido)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: distribuidora (izq) y N° de pedido + fecha (der).
func (g *MarotoPDFGenerator) headerRow(pedido *entity.Pedido) core.Row {
	fecha := pedido.FechaPedido.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.empresa, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Distribución farmacéutica", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(pedido.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// envioRow: contacto y dirección de envío del pedido.
func envioRow(pedido *entity.Pedido) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("DATOS DE ENVÍO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(pedido.EnvioContacto, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 6,
			}),
			text.New(pedido.EnvioDireccion, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineaRows: una fila por línea del pedido.
func tableLineaRows(lineas []pedidos.LineaComprobante) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", l.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				l.NombreProducto,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.PrecioUnitario.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(l.Total.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(pedido *entity.Pedido) core.Row {
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

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Costo de envío:"),
			grandLabel("TOTAL:"),
		),
		col.New(3).Add(
			value("$"+formatMoney(pedido.Subtotal.StringFixed(2))),
			value("$"+formatMoney(pedido.CostoEnvio.StringFixed(2))),
			grandValue("$"+formatMoney(pedido.Total.StringFixed(2))),
		),
		col.New(3),
	)
}

// footerRows: estado del pedido, forma de pago y guía si existe.
func footerRows(pedido *entity.Pedido) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("INFORMACIÓN DEL PEDIDO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Estado: %s   |   Forma de pago: %s",
				strings.ToUpper(pedido.Estado), pedido.FormaPago,
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		)),
	}
	if pedido.GuiaEntrega != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Guía de entrega: "+pedido.GuiaEntrega, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	if pedido.EnvioReferencias != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Referencias: "+pedido.EnvioReferencias, props.Text{
				Size: 8, Top: 1, Color: colorGray,
			}),
		)))
	}
	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"Este comprobante no es un comprobante fiscal. "+
				"Conserve su guía de entrega para cualquier aclaración.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID devuelve el primer bloque del UUID del pedido, en mayúsculas.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

// formatMoney inserta comas de miles en la parte entera de un monto con decimales.
// Ej: "25000.00" → "25,000.00"
func formatMoney(s string) string {
	entero, dec, _ := strings.Cut(s, ".")
	n := len(entero)
	if n <= 3 {
		if dec != "" {
			return entero + "." + dec
		}
		return entero
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	if dec != "" {
		return string(buf) + "." + dec
	}
	return string(buf)
}
