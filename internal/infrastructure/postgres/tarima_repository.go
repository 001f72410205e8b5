package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.TarimaRepository = (*TarimaRepo)(nil)

// TarimaRepo implementación de TarimaRepository sobre PostgreSQL (usable con pool o tx).
type TarimaRepo struct {
	q Querier
}

// NewTarimaRepository construye el adaptador de tarimas. Pasar pool o tx (Querier).
func NewTarimaRepository(q Querier) *TarimaRepo {
	return &TarimaRepo{q: q}
}

const columnasTarima = `
	id, producto_id, proveedor_id, bodega_id, ubicacion, cantidad_declarada,
	precio_unitario, deposito_envase, estado, recibida_at, created_at`

// Create persiste una tarima nueva.
func (r *TarimaRepo) Create(t *entity.Tarima) error {
	query := `
		INSERT INTO tarimas (` + columnasTarima + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ProductoID, nullIfEmpty(t.ProveedorID), t.BodegaID,
		nullIfEmpty(t.Ubicacion), t.CantidadDeclarada, t.PrecioUnitario,
		t.DepositoEnvase, t.Estado, t.RecibidaAt, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tarima: %w", err)
	}
	return nil
}

// GetByID obtiene una tarima por ID. Devuelve nil si no existe.
func (r *TarimaRepo) GetByID(id string) (*entity.Tarima, error) {
	return r.get(`SELECT `+columnasTarima+` FROM tarimas WHERE id = $1`, id)
}

// GetForUpdate obtiene la tarima y bloquea la fila (SELECT FOR UPDATE) para
// que proyección + validación + append sean atómicos frente a operaciones
// concurrentes sobre la misma tarima.
func (r *TarimaRepo) GetForUpdate(id string) (*entity.Tarima, error) {
	return r.get(`SELECT `+columnasTarima+` FROM tarimas WHERE id = $1 FOR UPDATE`, id)
}

func (r *TarimaRepo) get(query, id string) (*entity.Tarima, error) {
	var t entity.Tarima
	var proveedorID, ubicacion *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductoID, &proveedorID, &t.BodegaID, &ubicacion,
		&t.CantidadDeclarada, &t.PrecioUnitario, &t.DepositoEnvase,
		&t.Estado, &t.RecibidaAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarima: %w", err)
	}
	t.ProveedorID = deref(proveedorID)
	t.Ubicacion = deref(ubicacion)
	return &t, nil
}

// UpdateEstado persiste el estado derivado recalculado tras un evento.
func (r *TarimaRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tarimas SET estado = $2 WHERE id = $1`, id, estado)
	if err != nil {
		return fmt.Errorf("update estado tarima: %w", err)
	}
	return nil
}

// UpdateUbicacion actualiza la ubicación tras una reubicación.
func (r *TarimaRepo) UpdateUbicacion(id, ubicacion string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tarimas SET ubicacion = $2 WHERE id = $1`, id, nullIfEmpty(ubicacion))
	if err != nil {
		return fmt.Errorf("update ubicacion tarima: %w", err)
	}
	return nil
}

// UpdatePrecio actualiza el precio unitario.
func (r *TarimaRepo) UpdatePrecio(id string, precio decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tarimas SET precio_unitario = $2 WHERE id = $1`, id, precio)
	if err != nil {
		return fmt.Errorf("update precio tarima: %w", err)
	}
	return nil
}

// ListByBodega lista tarimas por bodega con paginación.
func (r *TarimaRepo) ListByBodega(bodegaID string, limit, offset int) ([]*entity.Tarima, error) {
	query := `
		SELECT ` + columnasTarima + `
		FROM tarimas WHERE bodega_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, bodegaID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tarimas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tarima
	for rows.Next() {
		var t entity.Tarima
		var proveedorID, ubicacion *string
		if err := rows.Scan(
			&t.ID, &t.ProductoID, &proveedorID, &t.BodegaID, &ubicacion,
			&t.CantidadDeclarada, &t.PrecioUnitario, &t.DepositoEnvase,
			&t.Estado, &t.RecibidaAt, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan tarima: %w", err)
		}
		t.ProveedorID = deref(proveedorID)
		t.Ubicacion = deref(ubicacion)
		list = append(list, &t)
	}
	return list, rows.Err()
}
