package pagos

import (
	"context"

	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los
// repositorios de crédito y pedido.
type TxRunner interface {
	RunPagos(ctx context.Context, fn func(
		creditoRepo repository.CreditoRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}
