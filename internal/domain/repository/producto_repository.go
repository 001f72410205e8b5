package repository

import (
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ProductoRepository define el puerto de persistencia para productos.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	GetBySKU(sku string) (*entity.Producto, error)
	UpdatePrecio(id string, precio decimal.Decimal) error
	List(limit, offset int) ([]*entity.Producto, error)
}
