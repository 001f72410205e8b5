package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.AsignacionRepository = (*AsignacionRepo)(nil)

// AsignacionRepo implementación de AsignacionRepository sobre PostgreSQL.
type AsignacionRepo struct {
	q Querier
}

// NewAsignacionRepository construye el adaptador de asignaciones de pick.
func NewAsignacionRepository(q Querier) *AsignacionRepo {
	return &AsignacionRepo{q: q}
}

const columnasAsignacion = `
	id, pedido_linea_id, tarima_id, cantidad_asignada, cantidad_confirmada,
	estado, created_at, confirmada_at`

// Create persiste una asignación nueva.
func (r *AsignacionRepo) Create(a *entity.AsignacionPick) error {
	query := `
		INSERT INTO asignaciones_pick (` + columnasAsignacion + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.PedidoLineaID, a.TarimaID, a.CantidadAsignada,
		a.CantidadConfirmada, a.Estado, a.CreatedAt, a.ConfirmadaAt,
	)
	if err != nil {
		return fmt.Errorf("insert asignacion: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación. Devuelve nil si no existe.
func (r *AsignacionRepo) GetByID(id string) (*entity.AsignacionPick, error) {
	return r.get(`SELECT `+columnasAsignacion+` FROM asignaciones_pick WHERE id = $1`, id)
}

// GetForUpdate bloquea la asignación: la transición ABIERTA → CONFIRMADA
// debe ganarla exactamente una confirmación.
func (r *AsignacionRepo) GetForUpdate(id string) (*entity.AsignacionPick, error) {
	return r.get(`SELECT `+columnasAsignacion+` FROM asignaciones_pick WHERE id = $1 FOR UPDATE`, id)
}

func (r *AsignacionRepo) get(query, id string) (*entity.AsignacionPick, error) {
	var a entity.AsignacionPick
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.PedidoLineaID, &a.TarimaID, &a.CantidadAsignada,
		&a.CantidadConfirmada, &a.Estado, &a.CreatedAt, &a.ConfirmadaAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asignacion: %w", err)
	}
	return &a, nil
}

// Update persiste estado, cantidad confirmada y fecha de confirmación.
func (r *AsignacionRepo) Update(a *entity.AsignacionPick) error {
	query := `
		UPDATE asignaciones_pick
		SET estado = $2, cantidad_confirmada = $3, confirmada_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Estado, a.CantidadConfirmada, a.ConfirmadaAt)
	if err != nil {
		return fmt.Errorf("update asignacion: %w", err)
	}
	return nil
}

// ListByLinea lista las asignaciones de una línea de pedido.
func (r *AsignacionRepo) ListByLinea(lineaID string) ([]*entity.AsignacionPick, error) {
	query := `
		SELECT ` + columnasAsignacion + `
		FROM asignaciones_pick WHERE pedido_linea_id = $1 ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, lineaID)
	if err != nil {
		return nil, fmt.Errorf("list asignaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.AsignacionPick
	for rows.Next() {
		var a entity.AsignacionPick
		if err := rows.Scan(
			&a.ID, &a.PedidoLineaID, &a.TarimaID, &a.CantidadAsignada,
			&a.CantidadConfirmada, &a.Estado, &a.CreatedAt, &a.ConfirmadaAt,
		); err != nil {
			return nil, fmt.Errorf("scan asignacion: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountAbiertasByTarima cuenta asignaciones ABIERTAS sobre una tarima.
func (r *AsignacionRepo) CountAbiertasByTarima(tarimaID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM asignaciones_pick WHERE tarima_id = $1 AND estado = $2`,
		tarimaID, entity.AsignacionAbierta,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count asignaciones abiertas: %w", err)
	}
	return n, nil
}
