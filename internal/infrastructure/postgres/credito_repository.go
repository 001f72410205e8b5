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

var _ repository.CreditoRepository = (*CreditoRepo)(nil)

// CreditoRepo implementación de CreditoRepository sobre PostgreSQL.
type CreditoRepo struct {
	q Querier
}

// NewCreditoRepository construye el adaptador de créditos y abonos.
func NewCreditoRepository(q Querier) *CreditoRepo {
	return &CreditoRepo{q: q}
}

const columnasCredito = `id, cliente_id, pedido_id, monto, saldo, estado, created_at, updated_at`

// Create persiste un crédito nuevo.
func (r *CreditoRepo) Create(c *entity.Credito) error {
	query := `
		INSERT INTO creditos (` + columnasCredito + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.ClienteID, c.PedidoID, c.Monto, c.Saldo, c.Estado,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credito: %w", err)
	}
	return nil
}

// GetByID obtiene un crédito. Devuelve nil si no existe.
func (r *CreditoRepo) GetByID(id string) (*entity.Credito, error) {
	return r.get(`SELECT `+columnasCredito+` FROM creditos WHERE id = $1`, id)
}

// GetForUpdate bloquea el crédito para que dos abonos simultáneos no
// descuenten el mismo saldo dos veces.
func (r *CreditoRepo) GetForUpdate(id string) (*entity.Credito, error) {
	return r.get(`SELECT `+columnasCredito+` FROM creditos WHERE id = $1 FOR UPDATE`, id)
}

// GetByPedido obtiene el crédito asociado a un pedido, nil si no hay.
func (r *CreditoRepo) GetByPedido(pedidoID string) (*entity.Credito, error) {
	return r.get(`SELECT `+columnasCredito+` FROM creditos WHERE pedido_id = $1`, pedidoID)
}

func (r *CreditoRepo) get(query, arg string) (*entity.Credito, error) {
	var c entity.Credito
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.ClienteID, &c.PedidoID, &c.Monto, &c.Saldo, &c.Estado,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credito: %w", err)
	}
	return &c, nil
}

// Update persiste saldo y estado del crédito.
func (r *CreditoRepo) Update(c *entity.Credito) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE creditos SET saldo = $2, estado = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Saldo, c.Estado, time.Now())
	if err != nil {
		return fmt.Errorf("update credito: %w", err)
	}
	return nil
}

// CreateAbono persiste un abono aplicado a un crédito.
func (r *CreditoRepo) CreateAbono(a *entity.Abono) error {
	query := `
		INSERT INTO abonos (id, credito_id, monto, metodo, usuario_id, fecha)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CreditoID, a.Monto, a.Metodo, a.UsuarioID, a.Fecha)
	if err != nil {
		return fmt.Errorf("insert abono: %w", err)
	}
	return nil
}

// ListAbonos devuelve los abonos de un crédito en orden cronológico.
func (r *CreditoRepo) ListAbonos(creditoID string) ([]*entity.Abono, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, credito_id, monto, metodo, usuario_id, fecha
		FROM abonos WHERE credito_id = $1 ORDER BY fecha ASC`, creditoID)
	if err != nil {
		return nil, fmt.Errorf("list abonos: %w", err)
	}
	defer rows.Close()
	var abonos []*entity.Abono
	for rows.Next() {
		var a entity.Abono
		if err := rows.Scan(&a.ID, &a.CreditoID, &a.Monto, &a.Metodo,
			&a.UsuarioID, &a.Fecha); err != nil {
			return nil, fmt.Errorf("scan abono: %w", err)
		}
		abonos = append(abonos, &a)
	}
	return abonos, rows.Err()
}
