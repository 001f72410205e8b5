package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

var _ repository.BodegaRepository = (*BodegaRepo)(nil)

// BodegaRepo implementación de BodegaRepository sobre PostgreSQL.
type BodegaRepo struct {
	q Querier
}

func NewBodegaRepository(q Querier) *BodegaRepo {
	return &BodegaRepo{q: q}
}

func (r *BodegaRepo) Create(b *entity.Bodega) error {
	query := `
		INSERT INTO bodegas (id, nombre, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.Nombre, b.Direccion, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert bodega: %w", err)
	}
	return nil
}

func (r *BodegaRepo) GetByID(id string) (*entity.Bodega, error) {
	var b entity.Bodega
	err := r.q.QueryRow(context.Background(), `
		SELECT id, nombre, direccion, created_at, updated_at
		FROM bodegas WHERE id = $1`, id,
	).Scan(&b.ID, &b.Nombre, &b.Direccion, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bodega: %w", err)
	}
	return &b, nil
}

func (r *BodegaRepo) List() ([]*entity.Bodega, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, nombre, direccion, created_at, updated_at
		FROM bodegas ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bodegas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Bodega
	for rows.Next() {
		var b entity.Bodega
		if err := rows.Scan(&b.ID, &b.Nombre, &b.Direccion, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan bodega: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
