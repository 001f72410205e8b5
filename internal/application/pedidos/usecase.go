// Package pedidos cubre el alta y consulta de pedidos. El cierre del pedido
// NO se decide aquí: es estado derivado que recalcula el ciclo de picking.
package pedidos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// UseCase alta y consulta de pedidos.
type UseCase struct {
	pedidoRepo  repository.PedidoRepository
	clienteRepo repository.ClienteRepository
	creditoRepo repository.CreditoRepository
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(pedidoRepo repository.PedidoRepository, clienteRepo repository.ClienteRepository, creditoRepo repository.CreditoRepository) *UseCase {
	return &UseCase{pedidoRepo: pedidoRepo, clienteRepo: clienteRepo, creditoRepo: creditoRepo}
}

// LineaInput una línea solicitada.
type LineaInput struct {
	ProductoID         string
	CantidadSolicitada int
	PrecioUnitario     decimal.Decimal
}

// CrearPedidoInput datos de alta.
type CrearPedidoInput struct {
	ClienteID string
	BodegaID  string
	ACredito  bool
	Lineas    []LineaInput
}

// CrearPedido crea el pedido ABIERTO con sus líneas; si es a crédito, abre
// el crédito por el total.
func (uc *UseCase) CrearPedido(in CrearPedidoInput) (*entity.Pedido, error) {
	if in.ClienteID == "" || in.BodegaID == "" || len(in.Lineas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	total := decimal.Zero
	pedidoID := uuid.New().String()
	lineas := make([]*entity.PedidoLinea, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		if l.ProductoID == "" || l.CantidadSolicitada <= 0 {
			return nil, domain.ErrInvalidInput
		}
		lineas = append(lineas, &entity.PedidoLinea{
			ID:                 uuid.New().String(),
			PedidoID:           pedidoID,
			ProductoID:         l.ProductoID,
			CantidadSolicitada: l.CantidadSolicitada,
			PrecioUnitario:     l.PrecioUnitario,
		})
		total = total.Add(l.PrecioUnitario.Mul(decimal.NewFromInt(int64(l.CantidadSolicitada))))
	}

	estadoPago := entity.PagoPendiente
	if in.ACredito {
		estadoPago = entity.PagoCredito
	}
	pedido := &entity.Pedido{
		ID:         pedidoID,
		ClienteID:  in.ClienteID,
		BodegaID:   in.BodegaID,
		Estado:     entity.PedidoAbierto,
		EstadoPago: estadoPago,
		Total:      total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.pedidoRepo.Create(pedido, lineas); err != nil {
		return nil, err
	}

	if in.ACredito {
		credito := &entity.Credito{
			ID:        uuid.New().String(),
			ClienteID: in.ClienteID,
			PedidoID:  pedidoID,
			Monto:     total,
			Saldo:     total,
			Estado:    entity.CreditoAbierto,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.creditoRepo.Create(credito); err != nil {
			return nil, err
		}
	}
	return pedido, nil
}

// GetPedido devuelve el pedido con sus líneas.
func (uc *UseCase) GetPedido(id string) (*entity.Pedido, []*entity.PedidoLinea, error) {
	pedido, err := uc.pedidoRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if pedido == nil {
		return nil, nil, domain.ErrPedidoNoEncontrado
	}
	lineas, err := uc.pedidoRepo.GetLineas(id)
	if err != nil {
		return nil, nil, err
	}
	return pedido, lineas, nil
}
