package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL.
type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const columnasProducto = `
	id, sku, nombre, presentacion, precio, envase_retornable, deposito_envase,
	created_at, updated_at`

func (r *ProductoRepo) Create(p *entity.Producto) error {
	query := `
		INSERT INTO productos (` + columnasProducto + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Nombre, p.Presentacion, p.Precio,
		p.EnvaseRetornable, p.DepositoEnvase, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(`SELECT `+columnasProducto+` FROM productos WHERE id = $1`, id)
}

func (r *ProductoRepo) GetBySKU(sku string) (*entity.Producto, error) {
	return r.get(`SELECT `+columnasProducto+` FROM productos WHERE sku = $1`, sku)
}

func (r *ProductoRepo) get(query, arg string) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.SKU, &p.Nombre, &p.Presentacion, &p.Precio,
		&p.EnvaseRetornable, &p.DepositoEnvase, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) UpdatePrecio(id string, precio decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET precio = $2, updated_at = $3 WHERE id = $1`,
		id, precio, time.Now())
	if err != nil {
		return fmt.Errorf("update precio producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+columnasProducto+`
		FROM productos ORDER BY nombre ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Nombre, &p.Presentacion, &p.Precio,
			&p.EnvaseRetornable, &p.DepositoEnvase, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
