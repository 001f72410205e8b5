// Package pdf implementa la generación del reporte de existencias valuadas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + dirección  │  Fecha del corte             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Tarima | Producto | Ubic. | Proy. | P.Unit | Valor  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: valor de inventario de la bodega                    │
//	└─────────────────────────────────────────────────────────────┘
//
// Toda cantidad impresa es proyección del ledger al momento del reporte.
package pdf

import (
	"context"
	"fmt"
	"time"

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
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/application/reportes"
	"github.com/distrisur/bodega-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reportes.GeneradorPDF = (*MarotoReporteGenerator)(nil)

// MarotoReporteGenerator implementa reportes.GeneradorPDF usando Maroto v2.
type MarotoReporteGenerator struct{}

// NewMarotoReporteGenerator construye el generador.
func NewMarotoReporteGenerator() *MarotoReporteGenerator { return &MarotoReporteGenerator{} }

// GenerarReporteExistencias genera el PDF y devuelve sus bytes.
func (g *MarotoReporteGenerator) GenerarReporteExistencias(
	_ context.Context,
	bodega *entity.Bodega,
	filas []reportes.FilaExistencia,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Existencias", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(bodega))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	total := decimal.Zero
	for _, f := range filas {
		m.AddRows(filaRow(f))
		total = total.Add(f.Valor)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total, len(filas)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la bodega (izq) y fecha del corte (der).
func headerRow(bodega *entity.Bodega) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(16).Add(
		col.New(8).Add(
			text.New(bodega.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(bodega.Direccion, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("EXISTENCIAS VALUADAS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de existencias.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Tarima", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Ubic.", 1, align.Center),
		h("Proy.", 1, align.Right),
		h("P. Unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// filaRow: una fila por tarima con su proyección y valuación.
func filaRow(f reportes.FilaExistencia) core.Row {
	nombre := "—"
	if f.Producto != nil {
		nombre = f.Producto.Nombre + " " + f.Producto.Presentacion
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(
			corto(f.Tarima.ID),
			props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(4).Add(text.New(
			nombre,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			nonEmpty(f.Tarima.Ubicacion, "—"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", f.Proyeccion),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+f.Tarima.PrecioUnitario.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			"$"+f.Valor.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: valor total del inventario de la bodega.
func totalRow(total decimal.Decimal, tarimas int) core.Row {
	return row.New(12).Add(
		col.New(6).Add(text.New(
			fmt.Sprintf("%d tarimas", tarimas),
			props.Text{Size: 8, Color: colorGray, Top: 3, Left: 1},
		)),
		col.New(4).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New("$"+total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// corto abrevia un UUID a su primer bloque para la tabla.
func corto(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
