package repository

import (
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TarimaRepository define el puerto de persistencia para tarimas.
type TarimaRepository interface {
	Create(tarima *entity.Tarima) error
	GetByID(id string) (*entity.Tarima, error)
	// GetForUpdate bloquea la fila de la tarima (SELECT FOR UPDATE) para que
	// proyección + validación + append sean atómicos frente a picks concurrentes.
	GetForUpdate(id string) (*entity.Tarima, error)
	UpdateEstado(id, estado string) error
	UpdateUbicacion(id, ubicacion string) error
	UpdatePrecio(id string, precio decimal.Decimal) error
	ListByBodega(bodegaID string, limit, offset int) ([]*entity.Tarima, error)
}
