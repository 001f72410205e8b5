package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain/entity"
)

// FilaExistencia una tarima con su cantidad proyectada y valuación.
type FilaExistencia struct {
	Tarima     *entity.Tarima
	Producto   *entity.Producto
	Proyeccion int
	Valor      decimal.Decimal // proyección × precio unitario + depósitos de envase
}

// GeneradorPDF renderiza el reporte de existencias. Implementado con Maroto
// en infrastructure/pdf.
type GeneradorPDF interface {
	GenerarReporteExistencias(ctx context.Context, bodega *entity.Bodega, filas []FilaExistencia) ([]byte, error)
}

// ExportadorXML serializa la historia de eventos de una tarima para
// contabilidad. Implementado con etree en infrastructure/xmlexport.
type ExportadorXML interface {
	ExportarLedger(tarima *entity.Tarima, producto *entity.Producto, eventos []*entity.Evento, proyeccion int) ([]byte, error)
}
