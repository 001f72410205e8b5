// Package pagos maneja créditos y abonos de pedidos vendidos a crédito.
package pagos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// Actor identifica a quien registra el abono.
type Actor struct {
	UsuarioID string
	Rol       string
}

// UseCase registra abonos y mantiene el estado de pago del pedido.
type UseCase struct {
	txRunner TxRunner
	politica PoliticaEstadoPago
}

// NewUseCase construye el caso de uso. Si politica es nil usa PoliticaDefault.
func NewUseCase(txRunner TxRunner, politica PoliticaEstadoPago) *UseCase {
	if politica == nil {
		politica = PoliticaDefault
	}
	return &UseCase{txRunner: txRunner, politica: politica}
}

// ResultadoAbono estado derivado tras aplicar un abono.
type ResultadoAbono struct {
	AbonoID       string
	Saldo         decimal.Decimal
	CreditoEstado string
	EstadoPago    string
}

// RegistrarAbono aplica un pago parcial o total a un crédito: descuenta el
// saldo, salda el crédito al llegar a cero y recalcula el estado de pago del
// pedido con la política configurada.
func (uc *UseCase) RegistrarAbono(ctx context.Context, actor Actor, creditoID string, monto decimal.Decimal, metodo string) (*ResultadoAbono, error) {
	if creditoID == "" || !monto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if metodo != entity.MetodoEfectivo && metodo != entity.MetodoTransferencia {
		return nil, domain.ErrInvalidInput
	}
	var res *ResultadoAbono
	err := uc.txRunner.RunPagos(ctx, func(
		creditoRepo repository.CreditoRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		credito, err := creditoRepo.GetForUpdate(creditoID)
		if err != nil {
			return err
		}
		if credito == nil {
			return domain.ErrCreditoNoEncontrado
		}
		if monto.GreaterThan(credito.Saldo) {
			return domain.ErrInvalidInput // no se aceptan abonos mayores al saldo
		}

		now := time.Now()
		abono := &entity.Abono{
			ID:        uuid.New().String(),
			CreditoID: creditoID,
			Monto:     monto,
			Metodo:    metodo,
			UsuarioID: actor.UsuarioID,
			Fecha:     now,
		}
		if err := creditoRepo.CreateAbono(abono); err != nil {
			return err
		}

		credito.Saldo = credito.Saldo.Sub(monto)
		if credito.Saldo.IsZero() {
			credito.Estado = entity.CreditoSaldado
		}
		credito.UpdatedAt = now
		if err := creditoRepo.Update(credito); err != nil {
			return err
		}

		pedido, err := pedidoRepo.GetByID(credito.PedidoID)
		if err != nil {
			return err
		}
		estadoPago := ""
		if pedido != nil {
			abonos, err := creditoRepo.ListAbonos(creditoID)
			if err != nil {
				return err
			}
			abonado := decimal.Zero
			for _, a := range abonos {
				abonado = abonado.Add(a.Monto)
			}
			estadoPago = uc.politica(pedido.Total, abonado, credito.Saldo)
			if err := pedidoRepo.UpdateEstadoPago(pedido.ID, estadoPago); err != nil {
				return err
			}
		}

		res = &ResultadoAbono{
			AbonoID:       abono.ID,
			Saldo:         credito.Saldo,
			CreditoEstado: credito.Estado,
			EstadoPago:    estadoPago,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
