package pagos

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memoria struct {
	mu       sync.Mutex
	creditos map[string]*entity.Credito
	abonos   []*entity.Abono
	pedidos  map[string]*entity.Pedido
}

type fakeCreditoRepo struct{ m *memoria }

func (r *fakeCreditoRepo) Create(c *entity.Credito) error             { r.m.creditos[c.ID] = c; return nil }
func (r *fakeCreditoRepo) GetByID(id string) (*entity.Credito, error) { return r.m.creditos[id], nil }
func (r *fakeCreditoRepo) GetForUpdate(id string) (*entity.Credito, error) {
	return r.m.creditos[id], nil
}
func (r *fakeCreditoRepo) Update(c *entity.Credito) error { r.m.creditos[c.ID] = c; return nil }
func (r *fakeCreditoRepo) GetByPedido(pedidoID string) (*entity.Credito, error) {
	for _, c := range r.m.creditos {
		if c.PedidoID == pedidoID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCreditoRepo) CreateAbono(a *entity.Abono) error {
	r.m.abonos = append(r.m.abonos, a)
	return nil
}
func (r *fakeCreditoRepo) ListAbonos(creditoID string) ([]*entity.Abono, error) {
	var out []*entity.Abono
	for _, a := range r.m.abonos {
		if a.CreditoID == creditoID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePedidoRepo struct{ m *memoria }

func (r *fakePedidoRepo) Create(p *entity.Pedido, lineas []*entity.PedidoLinea) error {
	r.m.pedidos[p.ID] = p
	return nil
}
func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error)                { return r.m.pedidos[id], nil }
func (r *fakePedidoRepo) GetLinea(id string) (*entity.PedidoLinea, error)          { return nil, nil }
func (r *fakePedidoRepo) GetLineas(pedidoID string) ([]*entity.PedidoLinea, error) { return nil, nil }
func (r *fakePedidoRepo) UpdateLinea(l *entity.PedidoLinea) error                  { return nil }
func (r *fakePedidoRepo) UpdateEstado(id, estado string) error                     { return nil }
func (r *fakePedidoRepo) UpdateEstadoPago(id, estadoPago string) error {
	if p := r.m.pedidos[id]; p != nil {
		p.EstadoPago = estadoPago
	}
	return nil
}

type fakeTxRunner struct{ m *memoria }

func (r *fakeTxRunner) RunPagos(ctx context.Context, fn func(
	creditoRepo repository.CreditoRepository,
	pedidoRepo repository.PedidoRepository,
) error) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return fn(&fakeCreditoRepo{r.m}, &fakePedidoRepo{r.m})
}

type entorno struct {
	m  *memoria
	uc *UseCase
}

func nuevoEntorno() *entorno {
	m := &memoria{creditos: make(map[string]*entity.Credito), pedidos: make(map[string]*entity.Pedido)}
	return &entorno{m: m, uc: NewUseCase(&fakeTxRunner{m}, nil)}
}

// conCredito siembra un pedido a crédito con saldo completo.
func (e *entorno) conCredito(total int64) (pedidoID, creditoID string) {
	pedidoID, creditoID = "ped-1", "cred-1"
	monto := decimal.NewFromInt(total)
	e.m.pedidos[pedidoID] = &entity.Pedido{ID: pedidoID, ClienteID: "c1", Estado: entity.PedidoAbierto, EstadoPago: entity.PagoCredito, Total: monto}
	e.m.creditos[creditoID] = &entity.Credito{ID: creditoID, ClienteID: "c1", PedidoID: pedidoID, Monto: monto, Saldo: monto, Estado: entity.CreditoAbierto}
	return
}

var cobrador = Actor{UsuarioID: "u-cobrador", Rol: entity.RolOperario}

// ──────────────────────────────────────────────────────────────────────────────
// Abonos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarAbono_Parcial(t *testing.T) {
	e := nuevoEntorno()
	pedidoID, creditoID := e.conCredito(1000)

	res, err := e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.NewFromInt(400), entity.MetodoEfectivo)
	require.NoError(t, err)
	assert.True(t, res.Saldo.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, entity.CreditoAbierto, res.CreditoEstado)
	assert.Equal(t, entity.PagoParcial, res.EstadoPago)
	assert.Equal(t, entity.PagoParcial, e.m.pedidos[pedidoID].EstadoPago)
}

func TestRegistrarAbono_SaldaElCredito(t *testing.T) {
	e := nuevoEntorno()
	pedidoID, creditoID := e.conCredito(1000)

	_, err := e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.NewFromInt(400), entity.MetodoEfectivo)
	require.NoError(t, err)

	res, err := e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.NewFromInt(600), entity.MetodoTransferencia)
	require.NoError(t, err)
	assert.True(t, res.Saldo.IsZero())
	assert.Equal(t, entity.CreditoSaldado, res.CreditoEstado)
	assert.Equal(t, entity.PagoPagado, res.EstadoPago)
	assert.Equal(t, entity.PagoPagado, e.m.pedidos[pedidoID].EstadoPago)
}

// El saldo nunca baja de cero: un abono mayor al saldo se rechaza completo,
// no se trunca.
func TestRegistrarAbono_MayorAlSaldo_Rechazado(t *testing.T) {
	e := nuevoEntorno()
	_, creditoID := e.conCredito(1000)

	_, err := e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.NewFromInt(1001), entity.MetodoEfectivo)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.m.abonos)
	assert.True(t, e.m.creditos[creditoID].Saldo.Equal(decimal.NewFromInt(1000)))
}

func TestRegistrarAbono_ValidaEntrada(t *testing.T) {
	e := nuevoEntorno()
	_, creditoID := e.conCredito(1000)

	_, err := e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.Zero, entity.MetodoEfectivo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.RegistrarAbono(context.Background(), cobrador, creditoID, decimal.NewFromInt(10), "CHEQUE")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = e.uc.RegistrarAbono(context.Background(), cobrador, "no-existe", decimal.NewFromInt(10), entity.MetodoEfectivo)
	assert.ErrorIs(t, err, domain.ErrCreditoNoEncontrado)
}
