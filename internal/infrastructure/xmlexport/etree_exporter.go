// Package xmlexport serializa la historia del ledger de una tarima a XML
// para el sistema contable. El documento lleva la proyección calculada al
// momento del export, nunca una cantidad almacenada.
package xmlexport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/distrisur/bodega-api/internal/application/reportes"
	"github.com/distrisur/bodega-api/internal/domain/entity"
)

var _ reportes.ExportadorXML = (*EtreeExporter)(nil)

// EtreeExporter implementa reportes.ExportadorXML usando beevik/etree.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// ExportarLedger serializa la tarima, su proyección y todos sus eventos en
// orden canónico.
func (e *EtreeExporter) ExportarLedger(
	tarima *entity.Tarima,
	producto *entity.Producto,
	eventos []*entity.Evento,
	proyeccion int,
) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("LedgerTarima")
	root.CreateAttr("generado", time.Now().Format(time.RFC3339))

	elTarima := root.CreateElement("Tarima")
	elTarima.CreateElement("ID").SetText(tarima.ID)
	elTarima.CreateElement("BodegaID").SetText(tarima.BodegaID)
	if tarima.Ubicacion != "" {
		elTarima.CreateElement("Ubicacion").SetText(tarima.Ubicacion)
	}
	elTarima.CreateElement("Estado").SetText(tarima.Estado)
	elTarima.CreateElement("CantidadDeclarada").SetText(strconv.Itoa(tarima.CantidadDeclarada))
	elTarima.CreateElement("Proyeccion").SetText(strconv.Itoa(proyeccion))
	elTarima.CreateElement("PrecioUnitario").SetText(tarima.PrecioUnitario.StringFixed(2))

	if producto != nil {
		elProd := root.CreateElement("Producto")
		elProd.CreateElement("SKU").SetText(producto.SKU)
		elProd.CreateElement("Nombre").SetText(producto.Nombre)
		elProd.CreateElement("Presentacion").SetText(producto.Presentacion)
	}

	elEventos := root.CreateElement("Eventos")
	elEventos.CreateAttr("total", strconv.Itoa(len(eventos)))
	for _, ev := range eventos {
		el := elEventos.CreateElement("Evento")
		el.CreateAttr("id", ev.ID)
		el.CreateAttr("tipo", ev.Tipo)
		el.CreateElement("Cantidad").SetText(strconv.Itoa(ev.Cantidad))
		el.CreateElement("UsuarioID").SetText(ev.UsuarioID)
		el.CreateElement("Rol").SetText(ev.Rol)
		if ev.SupervisorID != "" {
			el.CreateElement("SupervisorID").SetText(ev.SupervisorID)
		}
		if ev.PedidoID != "" {
			el.CreateElement("PedidoID").SetText(ev.PedidoID)
		}
		if ev.Motivo != "" {
			el.CreateElement("Motivo").SetText(ev.Motivo)
		}
		if ev.UbicacionOrigen != "" || ev.UbicacionDestino != "" {
			mov := el.CreateElement("Movimiento")
			mov.CreateAttr("origen", ev.UbicacionOrigen)
			mov.CreateAttr("destino", ev.UbicacionDestino)
		}
		el.CreateElement("TsLogico").SetText(strconv.FormatInt(ev.TsLogico, 10))
		if ev.SyncBatchID != "" {
			el.CreateElement("SyncBatchID").SetText(ev.SyncBatchID)
		}
		el.CreateElement("Fecha").SetText(ev.CreatedAt.Format(time.RFC3339))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar ledger: %w", err)
	}
	return out, nil
}
