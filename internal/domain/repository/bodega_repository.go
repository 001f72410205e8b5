package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// BodegaRepository define el puerto de persistencia para bodegas.
type BodegaRepository interface {
	Create(bodega *entity.Bodega) error
	GetByID(id string) (*entity.Bodega, error)
	List() ([]*entity.Bodega, error)
}
