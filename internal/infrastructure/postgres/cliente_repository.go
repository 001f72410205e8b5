package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

const columnasCliente = `
	id, nombre, rfc, telefono, direccion, limite_credito, created_at, updated_at`

func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (` + columnasCliente + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nombre, c.RFC, c.Telefono, c.Direccion, c.LimiteCredito,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(),
		`SELECT `+columnasCliente+` FROM clientes WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.RFC, &c.Telefono, &c.Direccion,
		&c.LimiteCredito, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+columnasCliente+`
		FROM clientes ORDER BY nombre ASC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nombre, &c.RFC, &c.Telefono,
			&c.Direccion, &c.LimiteCredito, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
