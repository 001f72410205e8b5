package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// PedidoRepository define el puerto de persistencia para pedidos y sus líneas.
type PedidoRepository interface {
	Create(pedido *entity.Pedido, lineas []*entity.PedidoLinea) error
	GetByID(id string) (*entity.Pedido, error)
	GetLinea(lineaID string) (*entity.PedidoLinea, error)
	GetLineas(pedidoID string) ([]*entity.PedidoLinea, error)
	UpdateLinea(linea *entity.PedidoLinea) error
	UpdateEstado(id, estado string) error
	UpdateEstadoPago(id, estadoPago string) error
}
