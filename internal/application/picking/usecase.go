// Package picking gobierna el ciclo de asignaciones de pick:
// ABIERTA → CONFIRMADA (terminal) por asignación, y el cierre derivado del
// pedido cuando todas sus líneas quedan cubiertas.
package picking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/inventory"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// Actor identifica a quien ejecuta la operación.
type Actor struct {
	UsuarioID string
	Rol       string
}

// UseCase implementa asignación y confirmación de picks.
type UseCase struct {
	txRunner TxRunner
}

// NewUseCase construye el caso de uso de picking.
func NewUseCase(txRunner TxRunner) *UseCase {
	return &UseCase{txRunner: txRunner}
}

// ResultadoAsignacion estado derivado tras asignar o confirmar.
type ResultadoAsignacion struct {
	AsignacionID string
	Estado       string
	TarimaEstado string
	PedidoEstado string
	Proyeccion   int
}

// AsignarPick ata una línea de pedido a una tarima candidata: crea la
// asignación ABIERTA, registra el evento de auditoría ASIGNACION_PICK y
// marca la tarima RESERVADA. No descuenta inventario: eso ocurre al
// confirmar.
func (uc *UseCase) AsignarPick(ctx context.Context, actor Actor, lineaID, tarimaID string, cantidad int) (*ResultadoAsignacion, error) {
	if lineaID == "" || tarimaID == "" || cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var res *ResultadoAsignacion
	err := uc.txRunner.RunPicking(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		linea, err := pedidoRepo.GetLinea(lineaID)
		if err != nil {
			return err
		}
		if linea == nil {
			return domain.ErrLineaNoEncontrada
		}
		tarima, err := tarimaRepo.GetForUpdate(tarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		eventos, err := eventoRepo.ListByTarima(tarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(eventos)
		proy := inventory.Proyectar(eventos)
		if cantidad > proy {
			return &domain.InventarioInsuficienteError{TarimaID: tarimaID, Disponible: proy, Solicitado: cantidad}
		}

		now := time.Now()
		asignacion := &entity.AsignacionPick{
			ID:               uuid.New().String(),
			PedidoLineaID:    lineaID,
			TarimaID:         tarimaID,
			CantidadAsignada: cantidad,
			Estado:           entity.AsignacionAbierta,
			CreatedAt:        now,
		}
		if err := asignacionRepo.Create(asignacion); err != nil {
			return err
		}
		ev := &entity.Evento{
			ID:        uuid.New().String(),
			TarimaID:  tarimaID,
			Tipo:      entity.EventoAsignacionPick,
			Cantidad:  cantidad,
			UsuarioID: actor.UsuarioID,
			Rol:       actor.Rol,
			PedidoID:  linea.PedidoID,
			TsLogico:  now.UnixMilli(),
			CreatedAt: now,
		}
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		if err := tarimaRepo.UpdateEstado(tarimaID, entity.TarimaReservada); err != nil {
			return err
		}
		res = &ResultadoAsignacion{
			AsignacionID: asignacion.ID,
			Estado:       asignacion.Estado,
			TarimaEstado: entity.TarimaReservada,
			Proyeccion:   proy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ConfirmarPick marca la asignación CONFIRMADA con la cantidad físicamente
// surtida, registra el PICK en el ledger, acumula la cantidad surtida de la
// línea, recalcula el estado de la tarima y reevalúa el cierre del pedido.
//
// Confirmar más de lo asignado requiere co-firma de supervisor para
// operarios. Una asignación no ABIERTA se rechaza: la transición es única.
func (uc *UseCase) ConfirmarPick(ctx context.Context, actor Actor, asignacionID string, cantidadConfirmada int, supervisorID string) (*ResultadoAsignacion, error) {
	if asignacionID == "" || cantidadConfirmada <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var res *ResultadoAsignacion
	err := uc.txRunner.RunPicking(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
		pedidoRepo repository.PedidoRepository,
	) error {
		asignacion, err := asignacionRepo.GetForUpdate(asignacionID)
		if err != nil {
			return err
		}
		if asignacion == nil {
			return domain.ErrAsignacionNoEncontrada
		}
		if asignacion.Estado != entity.AsignacionAbierta {
			return domain.ErrYaProcesada
		}
		if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpPickExcedente, cantidadConfirmada, asignacion.CantidadAsignada); escala && supervisorID == "" {
			return &domain.EscalacionRequeridaError{Operacion: inventory.OpPickExcedente, Umbral: umbral}
		}

		tarima, err := tarimaRepo.GetForUpdate(asignacion.TarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		eventos, err := eventoRepo.ListByTarima(asignacion.TarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(eventos)
		proy := inventory.Proyectar(eventos)
		if cantidadConfirmada > proy {
			return &domain.InventarioInsuficienteError{TarimaID: asignacion.TarimaID, Disponible: proy, Solicitado: cantidadConfirmada}
		}

		linea, err := pedidoRepo.GetLinea(asignacion.PedidoLineaID)
		if err != nil {
			return err
		}
		if linea == nil {
			return domain.ErrLineaNoEncontrada
		}

		now := time.Now()
		asignacion.Estado = entity.AsignacionConfirmada
		asignacion.CantidadConfirmada = cantidadConfirmada
		asignacion.ConfirmadaAt = &now
		if err := asignacionRepo.Update(asignacion); err != nil {
			return err
		}

		ev := &entity.Evento{
			ID:           uuid.New().String(),
			TarimaID:     asignacion.TarimaID,
			Tipo:         entity.EventoPick,
			Cantidad:     cantidadConfirmada,
			UsuarioID:    actor.UsuarioID,
			Rol:          actor.Rol,
			SupervisorID: supervisorID,
			PedidoID:     linea.PedidoID,
			TsLogico:     now.UnixMilli(),
			CreatedAt:    now,
		}
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}

		linea.CantidadSurtida += cantidadConfirmada
		if err := pedidoRepo.UpdateLinea(linea); err != nil {
			return err
		}

		nuevaProy := proy - cantidadConfirmada
		estadoTarima, err := recalcularEstadoTarima(tarimaRepo, asignacionRepo, asignacion.TarimaID, nuevaProy)
		if err != nil {
			return err
		}

		estadoPedido, err := uc.reevaluarPedido(asignacionRepo, pedidoRepo, linea.PedidoID)
		if err != nil {
			return err
		}

		res = &ResultadoAsignacion{
			AsignacionID: asignacion.ID,
			Estado:       asignacion.Estado,
			TarimaEstado: estadoTarima,
			PedidoEstado: estadoPedido,
			Proyeccion:   nuevaProy,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// reevaluarPedido recorre TODAS las líneas del pedido cada vez que alguna
// cambia — sin acumuladores incrementales, para que el total cacheado nunca
// derive del real. El pedido pasa a COMPLETADO cuando cada línea tiene
// asignaciones CONFIRMADAS que suman al menos lo solicitado. COMPLETADO es
// terminal: aquí nunca se regresa a ABIERTO.
func (uc *UseCase) reevaluarPedido(
	asignacionRepo repository.AsignacionRepository,
	pedidoRepo repository.PedidoRepository,
	pedidoID string,
) (string, error) {
	pedido, err := pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return "", err
	}
	if pedido == nil {
		return "", domain.ErrPedidoNoEncontrado
	}
	if pedido.Estado == entity.PedidoCompletado {
		return pedido.Estado, nil
	}
	lineas, err := pedidoRepo.GetLineas(pedidoID)
	if err != nil {
		return "", err
	}
	for _, linea := range lineas {
		asignaciones, err := asignacionRepo.ListByLinea(linea.ID)
		if err != nil {
			return "", err
		}
		confirmado := 0
		for _, a := range asignaciones {
			if a.Estado == entity.AsignacionConfirmada {
				confirmado += a.CantidadConfirmada
			}
		}
		if confirmado < linea.CantidadSolicitada {
			return pedido.Estado, nil
		}
	}
	if err := pedidoRepo.UpdateEstado(pedidoID, entity.PedidoCompletado); err != nil {
		return "", err
	}
	return entity.PedidoCompletado, nil
}

// recalcularEstadoTarima replica la regla derivada del ledger tras un pick.
func recalcularEstadoTarima(
	tarimaRepo repository.TarimaRepository,
	asignacionRepo repository.AsignacionRepository,
	tarimaID string,
	proyeccion int,
) (string, error) {
	estado := entity.TarimaActiva
	if proyeccion <= 0 {
		estado = entity.TarimaAgotada
	} else {
		abiertas, err := asignacionRepo.CountAbiertasByTarima(tarimaID)
		if err != nil {
			return "", err
		}
		if abiertas > 0 {
			estado = entity.TarimaReservada
		}
	}
	if err := tarimaRepo.UpdateEstado(tarimaID, estado); err != nil {
		return "", err
	}
	return estado, nil
}
