package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
}
