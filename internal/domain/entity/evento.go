package entity

import "time"

// Tipos de evento del ledger de inventario. El efecto sobre la cantidad
// proyectada depende únicamente del tipo y la cantidad firmada:
//
//	RECEPCION / ENTRADA / AJUSTE_POSITIVO   suman
//	SALIDA / PICK / MERMA / AJUSTE_NEGATIVO restan
//	AJUSTE                                  suma la cantidad firmada (puede ser negativa)
//	CREACION / REUBICACION / CIERRE_TARIMA / ASIGNACION_PICK  solo auditoría
const (
	EventoRecepcion      = "RECEPCION"
	EventoEntrada        = "ENTRADA"
	EventoAjustePositivo = "AJUSTE_POSITIVO"
	EventoSalida         = "SALIDA"
	EventoPick           = "PICK"
	EventoMerma          = "MERMA"
	EventoAjusteNegativo = "AJUSTE_NEGATIVO"
	EventoAjuste         = "AJUSTE"
	EventoCreacion       = "CREACION"
	EventoReubicacion    = "REUBICACION"
	EventoCierreTarima   = "CIERRE_TARIMA"
	EventoAsignacionPick = "ASIGNACION_PICK"
)

// Evento es un registro inmutable del ledger, atado a exactamente una tarima.
// Nunca se modifica ni se borra; una corrección es un evento nuevo.
// El orden para proyectar cantidad es TsLogico (timestamp lógico del cliente,
// para sincronización offline), no el orden de inserción.
type Evento struct {
	ID               string
	TarimaID         string
	Tipo             string
	Cantidad         int // sin signo salvo AJUSTE, que admite negativo
	UsuarioID        string
	Rol              string
	SupervisorID     string // co-firma, vacío si no aplica
	PedidoID         string // opcional, referencia al pedido (PICK)
	UbicacionOrigen  string // solo REUBICACION
	UbicacionDestino string // solo REUBICACION
	Motivo           string // obligatorio en MERMA y AJUSTE
	TsLogico         int64  // epoch ms asignado por el cliente
	SyncBatchID      string // lote de sincronización offline, vacío si es online
	RefLocal         string // referencia local del cliente para reportar resultados de sync
	CreatedAt        time.Time
}

// EsEntrada indica si el tipo suma cantidad.
func EsEntrada(tipo string) bool {
	switch tipo {
	case EventoRecepcion, EventoEntrada, EventoAjustePositivo:
		return true
	}
	return false
}

// EsSalida indica si el tipo resta cantidad.
func EsSalida(tipo string) bool {
	switch tipo {
	case EventoSalida, EventoPick, EventoMerma, EventoAjusteNegativo:
		return true
	}
	return false
}
