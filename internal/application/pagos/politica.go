package pagos

import (
	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain/entity"
)

// PoliticaEstadoPago deriva el estado de pago de un pedido a partir del
// total, lo abonado en efectivo/transferencia y el saldo de crédito vivo.
//
// Es una política inyectable, no un invariante: el caso crédito parcial +
// efectivo parcial es ambiguo en la operación (hay quien lo reporta como
// CREDITO y quien lo reporta como PARCIAL), así que la derivación se deja
// configurable y la de abajo es solo el default.
type PoliticaEstadoPago func(total, abonado, saldoCredito decimal.Decimal) string

// PoliticaDefault: sin saldo y cubierto → PAGADO; crédito vivo con abonos →
// PARCIAL; crédito vivo sin abonos → CREDITO; resto → PENDIENTE.
func PoliticaDefault(total, abonado, saldoCredito decimal.Decimal) string {
	switch {
	case saldoCredito.IsZero() && abonado.GreaterThanOrEqual(total) && total.GreaterThan(decimal.Zero):
		return entity.PagoPagado
	case saldoCredito.GreaterThan(decimal.Zero) && abonado.GreaterThan(decimal.Zero):
		return entity.PagoParcial
	case saldoCredito.GreaterThan(decimal.Zero):
		return entity.PagoCredito
	}
	return entity.PagoPendiente
}
