package entity

import "time"

// Estados de una asignación de pick. CONFIRMADA es terminal: nunca se
// reabre; una corrección es un evento nuevo en el ledger, no una mutación.
const (
	AsignacionAbierta    = "ABIERTA"
	AsignacionConfirmada = "CONFIRMADA"
)

// AsignacionPick ata una línea de pedido a una tarima candidata con la
// cantidad asignada para surtir.
type AsignacionPick struct {
	ID                 string
	PedidoLineaID      string
	TarimaID           string
	CantidadAsignada   int
	CantidadConfirmada int // 0 mientras está ABIERTA
	Estado             string
	CreatedAt          time.Time
	ConfirmadaAt       *time.Time
}
