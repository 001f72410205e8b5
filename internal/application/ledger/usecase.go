// Package ledger implementa el motor de inventario por ledger de eventos:
// cada operación que afecta cantidad valida contra la proyección dentro de
// una transacción con la fila de la tarima bloqueada, y termina en un append.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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

// Resultado es el estado derivado que devuelve cada operación del ledger.
type Resultado struct {
	TarimaID   string
	Estado     string
	Proyeccion int
}

// UseCase registra eventos del ledger de forma transaccional.
type UseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	bodegaRepo   repository.BodegaRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(txRunner TxRunner, productoRepo repository.ProductoRepository, bodegaRepo repository.BodegaRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productoRepo: productoRepo, bodegaRepo: bodegaRepo}
}

// RecibirTarimaInput datos para dar de alta una tarima con su stock inicial.
type RecibirTarimaInput struct {
	ProductoID     string
	ProveedorID    string
	BodegaID       string
	Ubicacion      string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	DepositoEnvase decimal.Decimal
	TsLogico       int64
}

// RecibirTarima crea la tarima y registra CREACION + RECEPCION. La RECEPCION
// solo es válida aquí: fija el stock inicial y no se acepta después.
func (uc *UseCase) RecibirTarima(ctx context.Context, actor Actor, in RecibirTarimaInput) (*Resultado, error) {
	if in.ProductoID == "" || in.BodegaID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrInvalidInput
	}
	bodega, err := uc.bodegaRepo.GetByID(in.BodegaID)
	if err != nil {
		return nil, err
	}
	if bodega == nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ts := in.TsLogico
	if ts == 0 {
		ts = now.UnixMilli()
	}
	tarima := &entity.Tarima{
		ID:                uuid.New().String(),
		ProductoID:        in.ProductoID,
		ProveedorID:       in.ProveedorID,
		BodegaID:          in.BodegaID,
		Ubicacion:         in.Ubicacion,
		CantidadDeclarada: in.Cantidad,
		PrecioUnitario:    in.PrecioUnitario,
		DepositoEnvase:    in.DepositoEnvase,
		Estado:            entity.TarimaActiva,
		RecibidaAt:        now,
		CreatedAt:         now,
	}

	err = uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		_ repository.AsignacionRepository,
	) error {
		if err := tarimaRepo.Create(tarima); err != nil {
			return err
		}
		creacion := uc.nuevoEvento(tarima.ID, entity.EventoCreacion, 0, actor, ts, now)
		creacion.UbicacionDestino = in.Ubicacion
		if err := eventoRepo.Create(creacion); err != nil {
			return err
		}
		recepcion := uc.nuevoEvento(tarima.ID, entity.EventoRecepcion, in.Cantidad, actor, ts, now)
		return eventoRepo.Create(recepcion)
	})
	if err != nil {
		return nil, err
	}
	return &Resultado{TarimaID: tarima.ID, Estado: tarima.Estado, Proyeccion: in.Cantidad}, nil
}

// PickInput datos para registrar una salida por pick.
type PickInput struct {
	TarimaID     string
	Cantidad     int
	PedidoID     string
	SupervisorID string
	TsLogico     int64
}

// RegistrarPick valida cantidad ≤ proyección y registra un evento PICK.
func (uc *UseCase) RegistrarPick(ctx context.Context, actor Actor, in PickInput) (*Resultado, error) {
	if in.TarimaID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
	) error {
		tarima, proy, err := uc.proyectarConCandado(eventoRepo, tarimaRepo, in.TarimaID)
		if err != nil {
			return err
		}
		if in.Cantidad > proy {
			return &domain.InventarioInsuficienteError{TarimaID: in.TarimaID, Disponible: proy, Solicitado: in.Cantidad}
		}
		ev := uc.nuevoEvento(in.TarimaID, entity.EventoPick, in.Cantidad, actor, in.TsLogico, time.Now())
		ev.PedidoID = in.PedidoID
		ev.SupervisorID = in.SupervisorID
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		estado, err := recalcularEstado(tarimaRepo, asignacionRepo, tarima.ID, proy-in.Cantidad)
		if err != nil {
			return err
		}
		res = &Resultado{TarimaID: tarima.ID, Estado: estado, Proyeccion: proy - in.Cantidad}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// MermaInput datos para registrar una merma (daño, caducidad, rotura).
type MermaInput struct {
	TarimaID     string
	Cantidad     int
	Motivo       string
	SupervisorID string
	TsLogico     int64
}

// RegistrarMerma exige motivo, valida contra la proyección y aplica la
// política de escalación: un operario que merma más del 20% del inventario
// proyectado necesita co-firma de supervisor.
func (uc *UseCase) RegistrarMerma(ctx context.Context, actor Actor, in MermaInput) (*Resultado, error) {
	if in.TarimaID == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !motivoValido(in.Motivo) {
		return nil, domain.ErrMotivoInvalido
	}
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
	) error {
		tarima, proy, err := uc.proyectarConCandado(eventoRepo, tarimaRepo, in.TarimaID)
		if err != nil {
			return err
		}
		if in.Cantidad > proy {
			return &domain.InventarioInsuficienteError{TarimaID: in.TarimaID, Disponible: proy, Solicitado: in.Cantidad}
		}
		if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpMerma, in.Cantidad, proy); escala && in.SupervisorID == "" {
			return &domain.EscalacionRequeridaError{Operacion: inventory.OpMerma, Umbral: umbral}
		}
		ev := uc.nuevoEvento(in.TarimaID, entity.EventoMerma, in.Cantidad, actor, in.TsLogico, time.Now())
		ev.Motivo = strings.TrimSpace(in.Motivo)
		ev.SupervisorID = in.SupervisorID
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		estado, err := recalcularEstado(tarimaRepo, asignacionRepo, tarima.ID, proy-in.Cantidad)
		if err != nil {
			return err
		}
		res = &Resultado{TarimaID: tarima.ID, Estado: estado, Proyeccion: proy - in.Cantidad}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AjusteInput datos para un ajuste firmado (positivo o negativo).
type AjusteInput struct {
	TarimaID     string
	Cantidad     int // firmada
	Motivo       string
	SupervisorID string
	TsLogico     int64
}

// RegistrarAjuste valida que el total SIN clamp más el delta no quede
// negativo y exige co-firma para operarios (todo ajuste escala).
func (uc *UseCase) RegistrarAjuste(ctx context.Context, actor Actor, in AjusteInput) (*Resultado, error) {
	if in.TarimaID == "" || in.Cantidad == 0 {
		return nil, domain.ErrInvalidInput
	}
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
	) error {
		tarima, err := tarimaRepo.GetForUpdate(in.TarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		eventos, err := eventoRepo.ListByTarima(in.TarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(eventos)
		sinClamp := inventory.ProyectarSinClamp(eventos)
		if sinClamp+in.Cantidad < 0 {
			return &domain.InventarioInsuficienteError{TarimaID: in.TarimaID, Disponible: inventory.Proyectar(eventos), Solicitado: -in.Cantidad}
		}
		if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpAjuste, in.Cantidad, sinClamp); escala && in.SupervisorID == "" {
			return &domain.EscalacionRequeridaError{Operacion: inventory.OpAjuste, Umbral: umbral}
		}
		ev := uc.nuevoEvento(in.TarimaID, entity.EventoAjuste, in.Cantidad, actor, in.TsLogico, time.Now())
		ev.Motivo = strings.TrimSpace(in.Motivo)
		ev.SupervisorID = in.SupervisorID
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		proy := sinClamp + in.Cantidad
		if proy < 0 {
			proy = 0
		}
		estado, err := recalcularEstado(tarimaRepo, asignacionRepo, tarima.ID, proy)
		if err != nil {
			return err
		}
		res = &Resultado{TarimaID: tarima.ID, Estado: estado, Proyeccion: proy}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReubicacionInput datos para mover una tarima de ubicación.
type ReubicacionInput struct {
	TarimaID         string
	UbicacionDestino string
	Motivo           string
	TsLogico         int64
}

// ReubicarTarima registra un evento REUBICACION (solo auditoría, sin
// validación de cantidad) y actualiza la ubicación de la tarima.
func (uc *UseCase) ReubicarTarima(ctx context.Context, actor Actor, in ReubicacionInput) (*Resultado, error) {
	if in.TarimaID == "" || in.UbicacionDestino == "" {
		return nil, domain.ErrInvalidInput
	}
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		_ repository.AsignacionRepository,
	) error {
		tarima, err := tarimaRepo.GetForUpdate(in.TarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		ev := uc.nuevoEvento(in.TarimaID, entity.EventoReubicacion, 0, actor, in.TsLogico, time.Now())
		ev.UbicacionOrigen = tarima.Ubicacion
		ev.UbicacionDestino = in.UbicacionDestino
		ev.Motivo = strings.TrimSpace(in.Motivo)
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		if err := tarimaRepo.UpdateUbicacion(tarima.ID, in.UbicacionDestino); err != nil {
			return err
		}
		eventos, err := eventoRepo.ListByTarima(in.TarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(eventos)
		res = &Resultado{TarimaID: tarima.ID, Estado: tarima.Estado, Proyeccion: inventory.Proyectar(eventos)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CerrarTarima registra CIERRE_TARIMA y marca la tarima AGOTADA. Es un
// cambio de estado: los operarios requieren co-firma.
func (uc *UseCase) CerrarTarima(ctx context.Context, actor Actor, tarimaID, supervisorID string, tsLogico int64) (*Resultado, error) {
	if tarimaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpCambioEstado, 0, 0); escala && supervisorID == "" {
		return nil, &domain.EscalacionRequeridaError{Operacion: inventory.OpCambioEstado, Umbral: umbral}
	}
	var res *Resultado
	err := uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		_ repository.AsignacionRepository,
	) error {
		tarima, err := tarimaRepo.GetForUpdate(tarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		ev := uc.nuevoEvento(tarimaID, entity.EventoCierreTarima, 0, actor, tsLogico, time.Now())
		ev.SupervisorID = supervisorID
		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		if err := tarimaRepo.UpdateEstado(tarimaID, entity.TarimaAgotada); err != nil {
			return err
		}
		eventos, err := eventoRepo.ListByTarima(tarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(eventos)
		res = &Resultado{TarimaID: tarimaID, Estado: entity.TarimaAgotada, Proyeccion: inventory.Proyectar(eventos)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CambiarPrecio actualiza el precio unitario de la tarima. Cambio de precio
// siempre escala para operarios.
func (uc *UseCase) CambiarPrecio(ctx context.Context, actor Actor, tarimaID string, precio decimal.Decimal, supervisorID string) error {
	if tarimaID == "" || precio.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpCambioPrecio, 0, 0); escala && supervisorID == "" {
		return &domain.EscalacionRequeridaError{Operacion: inventory.OpCambioPrecio, Umbral: umbral}
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		_ repository.AsignacionRepository,
	) error {
		tarima, err := tarimaRepo.GetForUpdate(tarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		return tarimaRepo.UpdatePrecio(tarimaID, precio)
	})
}

// Proyeccion devuelve tarima + cantidad proyectada para lectura (sin candado).
func (uc *UseCase) Proyeccion(ctx context.Context, tarimaRepo repository.TarimaRepository, eventoRepo repository.EventoRepository, tarimaID string) (*entity.Tarima, int, error) {
	tarima, err := tarimaRepo.GetByID(tarimaID)
	if err != nil {
		return nil, 0, err
	}
	if tarima == nil {
		return nil, 0, domain.ErrTarimaNoEncontrada
	}
	eventos, err := eventoRepo.ListByTarima(tarimaID)
	if err != nil {
		return nil, 0, err
	}
	inventory.OrdenarEventos(eventos)
	return tarima, inventory.Proyectar(eventos), nil
}

// ── helpers internos ──────────────────────────────────────────────────────────

// proyectarConCandado bloquea la tarima y proyecta su cantidad actual dentro
// de la misma transacción, para que la validación no corra contra una
// proyección obsoleta.
func (uc *UseCase) proyectarConCandado(
	eventoRepo repository.EventoRepository,
	tarimaRepo repository.TarimaRepository,
	tarimaID string,
) (*entity.Tarima, int, error) {
	tarima, err := tarimaRepo.GetForUpdate(tarimaID)
	if err != nil {
		return nil, 0, err
	}
	if tarima == nil {
		return nil, 0, domain.ErrTarimaNoEncontrada
	}
	eventos, err := eventoRepo.ListByTarima(tarimaID)
	if err != nil {
		return nil, 0, err
	}
	inventory.OrdenarEventos(eventos)
	return tarima, inventory.Proyectar(eventos), nil
}

func (uc *UseCase) nuevoEvento(tarimaID, tipo string, cantidad int, actor Actor, tsLogico int64, now time.Time) *entity.Evento {
	if tsLogico == 0 {
		tsLogico = now.UnixMilli()
	}
	return &entity.Evento{
		ID:        uuid.New().String(),
		TarimaID:  tarimaID,
		Tipo:      tipo,
		Cantidad:  cantidad,
		UsuarioID: actor.UsuarioID,
		Rol:       actor.Rol,
		TsLogico:  tsLogico,
		CreatedAt: now,
	}
}

// recalcularEstado aplica la regla derivada tras cada evento que afecta
// cantidad: cero → AGOTADA; con asignaciones ABIERTAS → RESERVADA; si no,
// ACTIVA. Persiste y devuelve el estado.
func recalcularEstado(
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

// motivoValido exige un texto de justificación con contenido real.
func motivoValido(motivo string) bool {
	return len(strings.TrimSpace(motivo)) >= 3
}
