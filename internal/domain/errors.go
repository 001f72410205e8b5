package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrTarimaNoEncontrada      = errors.New("tarima no encontrada")
	ErrAsignacionNoEncontrada  = errors.New("asignación no encontrada")
	ErrLineaNoEncontrada       = errors.New("línea de pedido no encontrada")
	ErrPedidoNoEncontrado      = errors.New("pedido no encontrado")
	ErrCreditoNoEncontrado     = errors.New("crédito no encontrado")
	ErrUserNotFound            = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists      = errors.New("el email ya está registrado")
	ErrInvalidInput            = errors.New("entrada inválida")
	ErrMotivoInvalido          = errors.New("motivo requerido o demasiado corto")
	ErrYaProcesada             = errors.New("la asignación ya fue procesada")
	ErrUnauthorized            = errors.New("no autorizado")
	ErrForbidden               = errors.New("acceso denegado")
	ErrModificacionConcurrente = errors.New("modificación concurrente, reintente la operación")

	// Sentinelas para errors.Is sobre los errores tipados de abajo.
	ErrInventarioInsuficiente = errors.New("inventario insuficiente")
	ErrEscalacionRequerida    = errors.New("requiere co-firma de supervisor")
)

// InventarioInsuficienteError indica que un pick, merma o ajuste dejaría la
// proyección negativa. Lleva la proyección actual para que el caller la muestre.
type InventarioInsuficienteError struct {
	TarimaID   string
	Disponible int
	Solicitado int
}

func (e *InventarioInsuficienteError) Error() string {
	return fmt.Sprintf("inventario insuficiente en tarima %s: disponible %d, solicitado %d",
		e.TarimaID, e.Disponible, e.Solicitado)
}

// Unwrap permite errors.Is(err, ErrInventarioInsuficiente).
func (e *InventarioInsuficienteError) Unwrap() error { return ErrInventarioInsuficiente }

// EscalacionRequeridaError indica que la operación necesita co-firma de
// supervisor. Lleva el umbral calculado para que el caller pida autorización.
type EscalacionRequeridaError struct {
	Operacion string
	Umbral    int
}

func (e *EscalacionRequeridaError) Error() string {
	return fmt.Sprintf("la operación %s requiere co-firma de supervisor (umbral %d)", e.Operacion, e.Umbral)
}

// Unwrap permite errors.Is(err, ErrEscalacionRequerida).
func (e *EscalacionRequeridaError) Unwrap() error { return ErrEscalacionRequerida }
