package ledger

import (
	"context"

	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que proyección + validación +
// append sean atómicos sobre la tarima bloqueada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
	) error) error
}
