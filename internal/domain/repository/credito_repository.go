package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// CreditoRepository define el puerto de persistencia para créditos y abonos.
type CreditoRepository interface {
	Create(credito *entity.Credito) error
	GetByID(id string) (*entity.Credito, error)
	GetForUpdate(id string) (*entity.Credito, error)
	Update(credito *entity.Credito) error
	GetByPedido(pedidoID string) (*entity.Credito, error)
	CreateAbono(abono *entity.Abono) error
	ListAbonos(creditoID string) ([]*entity.Abono, error)
}
