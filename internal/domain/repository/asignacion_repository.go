package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// AsignacionRepository define el puerto de persistencia para asignaciones de pick.
type AsignacionRepository interface {
	Create(asignacion *entity.AsignacionPick) error
	GetByID(id string) (*entity.AsignacionPick, error)
	// GetForUpdate bloquea la asignación para que la transición ABIERTA →
	// CONFIRMADA sea única aunque dos confirmaciones lleguen a la vez.
	GetForUpdate(id string) (*entity.AsignacionPick, error)
	Update(asignacion *entity.AsignacionPick) error
	ListByLinea(lineaID string) ([]*entity.AsignacionPick, error)
	// CountAbiertasByTarima cuenta asignaciones ABIERTAS sobre una tarima,
	// insumo para recalcular el estado RESERVADA.
	CountAbiertasByTarima(tarimaID string) (int, error)
}
