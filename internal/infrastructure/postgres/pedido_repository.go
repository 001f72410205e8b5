package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

// PedidoRepo implementación de PedidoRepository sobre PostgreSQL.
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de pedidos.
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create inserta el pedido y todas sus líneas. El caller decide la
// transacción; aquí solo se ejecutan los INSERTs en orden.
func (r *PedidoRepo) Create(p *entity.Pedido, lineas []*entity.PedidoLinea) error {
	ctx := context.Background()
	query := `
		INSERT INTO pedidos (id, cliente_id, bodega_id, estado, estado_pago, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ClienteID, p.BodegaID, p.Estado, p.EstadoPago, p.Total,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	lineaQuery := `
		INSERT INTO pedido_lineas (id, pedido_id, producto_id, cantidad_solicitada, cantidad_surtida, precio_unitario)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range lineas {
		if _, err := r.q.Exec(ctx, lineaQuery,
			l.ID, l.PedidoID, l.ProductoID, l.CantidadSolicitada,
			l.CantidadSurtida, l.PrecioUnitario,
		); err != nil {
			return fmt.Errorf("insert pedido linea: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido. Devuelve nil si no existe.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), `
		SELECT id, cliente_id, bodega_id, estado, estado_pago, total, created_at, updated_at
		FROM pedidos WHERE id = $1`, id,
	).Scan(&p.ID, &p.ClienteID, &p.BodegaID, &p.Estado, &p.EstadoPago,
		&p.Total, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// GetLinea obtiene una línea de pedido. Devuelve nil si no existe.
func (r *PedidoRepo) GetLinea(lineaID string) (*entity.PedidoLinea, error) {
	var l entity.PedidoLinea
	err := r.q.QueryRow(context.Background(), `
		SELECT id, pedido_id, producto_id, cantidad_solicitada, cantidad_surtida, precio_unitario
		FROM pedido_lineas WHERE id = $1`, lineaID,
	).Scan(&l.ID, &l.PedidoID, &l.ProductoID, &l.CantidadSolicitada,
		&l.CantidadSurtida, &l.PrecioUnitario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido linea: %w", err)
	}
	return &l, nil
}

// GetLineas devuelve todas las líneas de un pedido.
func (r *PedidoRepo) GetLineas(pedidoID string) ([]*entity.PedidoLinea, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, pedido_id, producto_id, cantidad_solicitada, cantidad_surtida, precio_unitario
		FROM pedido_lineas WHERE pedido_id = $1 ORDER BY id ASC`, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list pedido lineas: %w", err)
	}
	defer rows.Close()
	var lineas []*entity.PedidoLinea
	for rows.Next() {
		var l entity.PedidoLinea
		if err := rows.Scan(&l.ID, &l.PedidoID, &l.ProductoID,
			&l.CantidadSolicitada, &l.CantidadSurtida, &l.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan pedido linea: %w", err)
		}
		lineas = append(lineas, &l)
	}
	return lineas, rows.Err()
}

// UpdateLinea persiste la cantidad surtida acumulada de una línea.
func (r *PedidoRepo) UpdateLinea(l *entity.PedidoLinea) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedido_lineas SET cantidad_surtida = $2 WHERE id = $1`,
		l.ID, l.CantidadSurtida)
	if err != nil {
		return fmt.Errorf("update pedido linea: %w", err)
	}
	return nil
}

// UpdateEstado persiste el estado derivado del pedido.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2, updated_at = $3 WHERE id = $1`,
		id, estado, time.Now())
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	return nil
}

// UpdateEstadoPago persiste el estado de pago derivado por la política.
func (r *PedidoRepo) UpdateEstadoPago(id, estadoPago string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado_pago = $2, updated_at = $3 WHERE id = $1`,
		id, estadoPago, time.Now())
	if err != nil {
		return fmt.Errorf("update estado pago: %w", err)
	}
	return nil
}
