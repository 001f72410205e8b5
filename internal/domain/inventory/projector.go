// Package inventory contiene el núcleo puro del modelo de inventario:
// la proyección de cantidad por replay del ledger de eventos y la política
// de escalación por co-firma de supervisor.
package inventory

import (
	"sort"

	"github.com/distrisur/bodega-api/internal/domain/entity"
)

// Efecto devuelve el delta que un evento aplica sobre la cantidad proyectada.
// Tipos desconocidos cuentan como auditoría (delta 0): nunca corrompen la
// proyección ni fallan el fold.
func Efecto(e *entity.Evento) int {
	switch e.Tipo {
	case entity.EventoRecepcion, entity.EventoEntrada, entity.EventoAjustePositivo:
		return e.Cantidad
	case entity.EventoSalida, entity.EventoPick, entity.EventoMerma, entity.EventoAjusteNegativo:
		return -e.Cantidad
	case entity.EventoAjuste:
		return e.Cantidad // firmada, puede ser negativa
	}
	return 0
}

// Proyectar hace fold sobre la historia ordenada de eventos de una tarima y
// devuelve la cantidad actual, nunca negativa. Es pura y reentrante: el mismo
// input produce siempre el mismo resultado, lo que permite recalcular bajo
// demanda en lugar de cachear.
func Proyectar(eventos []*entity.Evento) int {
	q := ProyectarSinClamp(eventos)
	if q < 0 {
		return 0
	}
	return q
}

// ProyectarSinClamp devuelve el total acumulado sin recortar a cero. La
// validación de ajustes compara contra este valor, no contra el proyectado
// externo.
func ProyectarSinClamp(eventos []*entity.Evento) int {
	total := 0
	for _, e := range eventos {
		total += Efecto(e)
	}
	return total
}

// OrdenarEventos ordena in-place por timestamp lógico ascendente, con
// desempate por CreatedAt y por ID para que el orden sea estable entre
// replays.
func OrdenarEventos(eventos []*entity.Evento) {
	sort.SliceStable(eventos, func(i, j int) bool {
		a, b := eventos[i], eventos[j]
		if a.TsLogico != b.TsLogico {
			return a.TsLogico < b.TsLogico
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
