package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/inventory"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// EventoSync es un evento originado offline, identificado por la referencia
// local del cliente para poder reportar su resultado individual.
type EventoSync struct {
	RefLocal     string
	TarimaID     string
	Tipo         string
	Cantidad     int
	Motivo       string
	PedidoID     string
	SupervisorID string
	TsLogico     int64
}

// ResultadoSync es el resultado por evento de un lote de sincronización.
type ResultadoSync struct {
	RefLocal string
	Aceptado bool
	Motivo   string // razón de rechazo, vacío si aceptado
}

// SincronizarEventos aplica un lote offline: ordena por timestamp lógico
// ascendente y aplica los eventos uno por uno, cada inserción validada de
// forma independiente y marcada con el mismo identificador de lote. El
// rechazo de un evento NO aborta el lote: cada uno reporta su resultado.
//
// No hay detección explícita de conflictos entre dispositivos: una edición
// concurrente desde otro cliente solo se detecta por la misma validación de
// inventario insuficiente.
func (uc *UseCase) SincronizarEventos(ctx context.Context, actor Actor, eventos []EventoSync) (string, []ResultadoSync, error) {
	if len(eventos) == 0 {
		return "", nil, domain.ErrInvalidInput
	}
	batchID := uuid.New().String()

	ordenados := make([]EventoSync, len(eventos))
	copy(ordenados, eventos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].TsLogico < ordenados[j].TsLogico
	})

	resultados := make([]ResultadoSync, 0, len(ordenados))
	for _, es := range ordenados {
		if err := uc.aplicarEventoSync(ctx, actor, batchID, es); err != nil {
			resultados = append(resultados, ResultadoSync{RefLocal: es.RefLocal, Motivo: motivoRechazo(err)})
			continue
		}
		resultados = append(resultados, ResultadoSync{RefLocal: es.RefLocal, Aceptado: true})
	}
	return batchID, resultados, nil
}

// aplicarEventoSync inserta un evento del lote en su propia transacción,
// con las mismas reglas de validación que las operaciones en línea.
func (uc *UseCase) aplicarEventoSync(ctx context.Context, actor Actor, batchID string, es EventoSync) error {
	if es.TarimaID == "" {
		return domain.ErrInvalidInput
	}
	switch es.Tipo {
	case entity.EventoRecepcion, entity.EventoCreacion:
		// El stock inicial solo se fija al crear la tarima, nunca vía sync.
		return domain.ErrInvalidInput
	case entity.EventoMerma:
		if !motivoValido(es.Motivo) {
			return domain.ErrMotivoInvalido
		}
	case entity.EventoEntrada, entity.EventoAjustePositivo, entity.EventoSalida,
		entity.EventoPick, entity.EventoAjusteNegativo, entity.EventoAjuste,
		entity.EventoReubicacion:
		// validación por efecto, abajo
	default:
		return domain.ErrInvalidInput
	}

	return uc.txRunner.Run(ctx, func(
		eventoRepo repository.EventoRepository,
		tarimaRepo repository.TarimaRepository,
		asignacionRepo repository.AsignacionRepository,
	) error {
		tarima, err := tarimaRepo.GetForUpdate(es.TarimaID)
		if err != nil {
			return err
		}
		if tarima == nil {
			return domain.ErrTarimaNoEncontrada
		}
		historial, err := eventoRepo.ListByTarima(es.TarimaID)
		if err != nil {
			return err
		}
		inventory.OrdenarEventos(historial)
		proy := inventory.Proyectar(historial)

		ev := &entity.Evento{
			ID:           uuid.New().String(),
			TarimaID:     es.TarimaID,
			Tipo:         es.Tipo,
			Cantidad:     es.Cantidad,
			UsuarioID:    actor.UsuarioID,
			Rol:          actor.Rol,
			SupervisorID: es.SupervisorID,
			PedidoID:     es.PedidoID,
			Motivo:       strings.TrimSpace(es.Motivo),
			TsLogico:     es.TsLogico,
			SyncBatchID:  batchID,
			RefLocal:     es.RefLocal,
			CreatedAt:    time.Now(),
		}
		delta := inventory.Efecto(ev)

		switch {
		case entity.EsSalida(es.Tipo):
			if es.Cantidad <= 0 {
				return domain.ErrInvalidInput
			}
			if es.Cantidad > proy {
				return &domain.InventarioInsuficienteError{TarimaID: es.TarimaID, Disponible: proy, Solicitado: es.Cantidad}
			}
			switch es.Tipo {
			case entity.EventoMerma:
				if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpMerma, es.Cantidad, proy); escala && es.SupervisorID == "" {
					return &domain.EscalacionRequeridaError{Operacion: inventory.OpMerma, Umbral: umbral}
				}
			case entity.EventoAjusteNegativo:
				// Los ajustes escalan igual que en línea, sin importar el signo.
				if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpAjuste, es.Cantidad, proy); escala && es.SupervisorID == "" {
					return &domain.EscalacionRequeridaError{Operacion: inventory.OpAjuste, Umbral: umbral}
				}
			}
		case es.Tipo == entity.EventoAjuste:
			sinClamp := inventory.ProyectarSinClamp(historial)
			if sinClamp+es.Cantidad < 0 {
				return &domain.InventarioInsuficienteError{TarimaID: es.TarimaID, Disponible: proy, Solicitado: -es.Cantidad}
			}
			if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpAjuste, es.Cantidad, sinClamp); escala && es.SupervisorID == "" {
				return &domain.EscalacionRequeridaError{Operacion: inventory.OpAjuste, Umbral: umbral}
			}
		case entity.EsEntrada(es.Tipo):
			if es.Cantidad <= 0 {
				return domain.ErrInvalidInput
			}
			if es.Tipo == entity.EventoAjustePositivo {
				if escala, umbral := inventory.RequiereEscalacion(actor.Rol, inventory.OpAjuste, es.Cantidad, proy); escala && es.SupervisorID == "" {
					return &domain.EscalacionRequeridaError{Operacion: inventory.OpAjuste, Umbral: umbral}
				}
			}
		}

		if err := eventoRepo.Create(ev); err != nil {
			return err
		}
		if delta != 0 {
			nueva := proy + delta
			if nueva < 0 {
				nueva = 0
			}
			if _, err := recalcularEstado(tarimaRepo, asignacionRepo, es.TarimaID, nueva); err != nil {
				return err
			}
		}
		return nil
	})
}

// motivoRechazo traduce el error de validación al texto del resultado.
func motivoRechazo(err error) string {
	switch {
	case errors.Is(err, domain.ErrInventarioInsuficiente),
		errors.Is(err, domain.ErrEscalacionRequerida):
		return err.Error()
	case errors.Is(err, domain.ErrTarimaNoEncontrada):
		return domain.ErrTarimaNoEncontrada.Error()
	case errors.Is(err, domain.ErrMotivoInvalido):
		return domain.ErrMotivoInvalido.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return "evento inválido para sincronización"
	}
	return err.Error()
}
