package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de una tarima. Nunca son autoritativos por sí mismos:
// se recalculan tras cada evento que afecta cantidad.
const (
	TarimaActiva    = "ACTIVA"
	TarimaReservada = "RESERVADA"
	TarimaAgotada   = "AGOTADA"
)

// Tarima representa una unidad de almacenamiento de un solo producto/lote.
// La cantidad física NUNCA se guarda en la tarima: se proyecta desde su
// ledger de eventos.
type Tarima struct {
	ID                string
	ProductoID        string
	ProveedorID       string
	BodegaID          string
	Ubicacion         string // opcional, ej. "A-03-2"
	CantidadDeclarada int    // capacidad declarada al recibir
	PrecioUnitario    decimal.Decimal
	DepositoEnvase    decimal.Decimal // depósito por envase retornable
	Estado            string          // ACTIVA, RESERVADA, AGOTADA (derivado)
	RecibidaAt        time.Time
	CreatedAt         time.Time
}
