package picking

import (
	"context"

	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el ciclo de picking (ledger + pedido).
type TxRunner interface {
	RunPicking(ctx context.Context, fn func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
		pedidoRepo repository.PedidoRepository,
	) error) error
}
