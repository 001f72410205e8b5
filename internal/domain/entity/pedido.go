package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de pedido. COMPLETADO es terminal y derivado: se alcanza cuando
// todas las líneas quedan cubiertas por asignaciones confirmadas.
const (
	PedidoAbierto    = "ABIERTO"
	PedidoCompletado = "COMPLETADO"
)

// Estados de pago de un pedido. La derivación exacta es política configurable
// (ver pagos.PoliticaEstadoPago); estos son los valores posibles.
const (
	PagoPendiente = "PENDIENTE"
	PagoPagado    = "PAGADO"
	PagoCredito   = "CREDITO"
	PagoParcial   = "PARCIAL"
)

// Pedido agrupa líneas solicitadas por un cliente.
type Pedido struct {
	ID         string
	ClienteID  string
	BodegaID   string
	Estado     string // ABIERTO, COMPLETADO
	EstadoPago string
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PedidoLinea solicita una cantidad de un producto dentro de un pedido.
// CantidadSurtida acumula las confirmaciones de pick.
type PedidoLinea struct {
	ID                 string
	PedidoID           string
	ProductoID         string
	CantidadSolicitada int
	CantidadSurtida    int
	PrecioUnitario     decimal.Decimal
}
