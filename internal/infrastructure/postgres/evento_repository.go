package postgres

import (
	"context"
	"fmt"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

// EventoRepo implementación del ledger append-only sobre PostgreSQL.
// Solo INSERT y SELECT: los eventos nunca se actualizan ni se borran.
type EventoRepo struct {
	q Querier
}

// NewEventoRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

const columnasEvento = `
	id, tarima_id, tipo, cantidad, usuario_id, rol, supervisor_id, pedido_id,
	ubicacion_origen, ubicacion_destino, motivo, ts_logico, sync_batch_id,
	ref_local, created_at`

// Create inserta un evento en el ledger.
func (r *EventoRepo) Create(e *entity.Evento) error {
	query := `
		INSERT INTO eventos (` + columnasEvento + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.TarimaID, e.Tipo, e.Cantidad, e.UsuarioID, e.Rol,
		nullIfEmpty(e.SupervisorID), nullIfEmpty(e.PedidoID),
		nullIfEmpty(e.UbicacionOrigen), nullIfEmpty(e.UbicacionDestino),
		nullIfEmpty(e.Motivo), e.TsLogico, nullIfEmpty(e.SyncBatchID),
		nullIfEmpty(e.RefLocal), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// ListByTarima devuelve la historia completa ordenada por ts_logico
// (desempate por created_at, id): el orden canónico de la proyección.
func (r *EventoRepo) ListByTarima(tarimaID string) ([]*entity.Evento, error) {
	query := `
		SELECT ` + columnasEvento + `
		FROM eventos WHERE tarima_id = $1
		ORDER BY ts_logico ASC, created_at ASC, id ASC`
	return r.list(query, tarimaID)
}

// ListByBatch devuelve los eventos importados en un lote de sincronización.
func (r *EventoRepo) ListByBatch(syncBatchID string) ([]*entity.Evento, error) {
	query := `
		SELECT ` + columnasEvento + `
		FROM eventos WHERE sync_batch_id = $1
		ORDER BY ts_logico ASC, created_at ASC, id ASC`
	return r.list(query, syncBatchID)
}

func (r *EventoRepo) list(query string, arg any) ([]*entity.Evento, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	var eventos []*entity.Evento
	for rows.Next() {
		var e entity.Evento
		var supervisorID, pedidoID, origen, destino, motivo, batchID, refLocal *string
		if err := rows.Scan(
			&e.ID, &e.TarimaID, &e.Tipo, &e.Cantidad, &e.UsuarioID, &e.Rol,
			&supervisorID, &pedidoID, &origen, &destino, &motivo,
			&e.TsLogico, &batchID, &refLocal, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		e.SupervisorID = deref(supervisorID)
		e.PedidoID = deref(pedidoID)
		e.UbicacionOrigen = deref(origen)
		e.UbicacionDestino = deref(destino)
		e.Motivo = deref(motivo)
		e.SyncBatchID = deref(batchID)
		e.RefLocal = deref(refLocal)
		eventos = append(eventos, &e)
	}
	return eventos, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
