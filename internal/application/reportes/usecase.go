// Package reportes produce el reporte de existencias en PDF y el export XML
// del ledger. Toda cantidad mostrada es proyección bajo demanda: aquí nunca
// se lee una cantidad persistida.
package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/inventory"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// UseCase arma los reportes a partir de proyecciones.
type UseCase struct {
	tarimaRepo   repository.TarimaRepository
	eventoRepo   repository.EventoRepository
	productoRepo repository.ProductoRepository
	bodegaRepo   repository.BodegaRepository
	pdf          GeneradorPDF
	xml          ExportadorXML
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	tarimaRepo repository.TarimaRepository,
	eventoRepo repository.EventoRepository,
	productoRepo repository.ProductoRepository,
	bodegaRepo repository.BodegaRepository,
	pdf GeneradorPDF,
	xml ExportadorXML,
) *UseCase {
	return &UseCase{
		tarimaRepo:   tarimaRepo,
		eventoRepo:   eventoRepo,
		productoRepo: productoRepo,
		bodegaRepo:   bodegaRepo,
		pdf:          pdf,
		xml:          xml,
	}
}

// ReporteExistenciasPDF proyecta todas las tarimas de la bodega y genera el
// PDF de existencias valuadas.
func (uc *UseCase) ReporteExistenciasPDF(ctx context.Context, bodegaID string) ([]byte, error) {
	bodega, err := uc.bodegaRepo.GetByID(bodegaID)
	if err != nil {
		return nil, err
	}
	if bodega == nil {
		return nil, domain.ErrInvalidInput
	}
	tarimas, err := uc.tarimaRepo.ListByBodega(bodegaID, 1000, 0)
	if err != nil {
		return nil, err
	}
	filas := make([]FilaExistencia, 0, len(tarimas))
	for _, t := range tarimas {
		eventos, err := uc.eventoRepo.ListByTarima(t.ID)
		if err != nil {
			return nil, err
		}
		inventory.OrdenarEventos(eventos)
		proy := inventory.Proyectar(eventos)
		producto, err := uc.productoRepo.GetByID(t.ProductoID)
		if err != nil {
			return nil, err
		}
		cantidad := decimal.NewFromInt(int64(proy))
		valor := t.PrecioUnitario.Add(t.DepositoEnvase).Mul(cantidad)
		filas = append(filas, FilaExistencia{Tarima: t, Producto: producto, Proyeccion: proy, Valor: valor})
	}
	return uc.pdf.GenerarReporteExistencias(ctx, bodega, filas)
}

// LedgerXML exporta la historia completa de eventos de una tarima.
func (uc *UseCase) LedgerXML(ctx context.Context, tarimaID string) ([]byte, error) {
	tarima, err := uc.tarimaRepo.GetByID(tarimaID)
	if err != nil {
		return nil, err
	}
	if tarima == nil {
		return nil, domain.ErrTarimaNoEncontrada
	}
	eventos, err := uc.eventoRepo.ListByTarima(tarimaID)
	if err != nil {
		return nil, err
	}
	inventory.OrdenarEventos(eventos)
	producto, err := uc.productoRepo.GetByID(tarima.ProductoID)
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportarLedger(tarima, producto, eventos, inventory.Proyectar(eventos))
}
