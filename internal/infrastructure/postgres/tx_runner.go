package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/distrisur/bodega-api/internal/application/ledger"
	"github.com/distrisur/bodega-api/internal/application/pagos"
	"github.com/distrisur/bodega-api/internal/application/picking"
	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// Ensure TxRunner implements the application ports.
var _ ledger.TxRunner = (*TxRunner)(nil)
var _ picking.TxRunner = (*TxRunner)(nil)
var _ pagos.TxRunner = (*TxRunner)(nil)

// maxIntentos acota el reintento ante fallas de serialización/deadlock;
// agotado, se reporta modificación concurrente al caller.
const maxIntentos = 3

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del ledger, ejecuta fn y hace
// Commit o Rollback. Reintenta ante fallas de serialización.
func (r *TxRunner) Run(ctx context.Context, fn func(
	eventoRepo repository.EventoRepository,
	tarimaRepo repository.TarimaRepository,
	asignacionRepo repository.AsignacionRepository,
) error) error {
	return r.conReintentos(ctx, func(ctx context.Context) error {
		return r.enTx(ctx, func(q Querier) error {
			return fn(NewEventoRepository(q), NewTarimaRepository(q), NewAsignacionRepository(q))
		})
	})
}

// RunPicking igual que Run pero con el repo de pedidos para el ciclo de picking.
func (r *TxRunner) RunPicking(ctx context.Context, fn func(
	eventoRepo repository.EventoRepository,
	tarimaRepo repository.TarimaRepository,
	asignacionRepo repository.AsignacionRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	return r.conReintentos(ctx, func(ctx context.Context) error {
		return r.enTx(ctx, func(q Querier) error {
			return fn(NewEventoRepository(q), NewTarimaRepository(q), NewAsignacionRepository(q), NewPedidoRepository(q))
		})
	})
}

// RunPagos transacción con repos de crédito y pedido (abonos).
func (r *TxRunner) RunPagos(ctx context.Context, fn func(
	creditoRepo repository.CreditoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	return r.conReintentos(ctx, func(ctx context.Context) error {
		return r.enTx(ctx, func(q Querier) error {
			return fn(NewCreditoRepository(q), NewPedidoRepository(q))
		})
	})
}

func (r *TxRunner) enTx(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *TxRunner) conReintentos(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for intento := 0; intento < maxIntentos; intento++ {
		err = fn(ctx)
		if err == nil || !isSerializationFailure(err) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrModificacionConcurrente, err)
}
