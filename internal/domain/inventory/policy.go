package inventory

import "github.com/distrisur/bodega-api/internal/domain/entity"

// Operaciones sujetas a la política de escalación.
const (
	OpPickExcedente = "PICK_EXCEDENTE" // confirmar más de lo asignado
	OpMerma         = "MERMA"
	OpAjuste        = "AJUSTE"
	OpCambioEstado  = "CAMBIO_ESTADO"
	OpCambioPrecio  = "CAMBIO_PRECIO"
)

// UmbralMerma calcula el máximo que un operario puede mermar sin co-firma:
// ceil(0.2 × inventario actual).
func UmbralMerma(inventarioActual int) int {
	if inventarioActual <= 0 {
		return 0
	}
	return (inventarioActual*20 + 99) / 100
}

// RequiereEscalacion decide si la operación necesita co-firma de supervisor.
// Es una función de decisión pura: NO valida la credencial del supervisor
// (eso es del verificador externo de PIN); solo dice si hace falta una.
// Devuelve también el umbral calculado para que el caller pueda pedir la
// autorización mostrando el límite.
//
// Reglas:
//   - supervisor y admin nunca escalan sus propias acciones.
//   - operario: pick confirmado por encima de lo asignado → co-firma.
//   - operario: merma que excede el 20% del inventario proyectado → co-firma.
//   - operario: cualquier ajuste, cambio de estado o cambio de precio → co-firma.
func RequiereEscalacion(rol, operacion string, magnitud, inventarioActual int) (bool, int) {
	if rol == entity.RolSupervisor || rol == entity.RolAdmin {
		return false, 0
	}
	switch operacion {
	case OpPickExcedente:
		// magnitud = cantidad confirmada, inventarioActual = cantidad asignada
		return magnitud > inventarioActual, inventarioActual
	case OpMerma:
		umbral := UmbralMerma(inventarioActual)
		return magnitud > umbral, umbral
	case OpAjuste, OpCambioEstado, OpCambioPrecio:
		return true, 0
	}
	return false, 0
}
