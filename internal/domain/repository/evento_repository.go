package repository

import "github.com/distrisur/bodega-api/internal/domain/entity"

// EventoRepository define el puerto de persistencia del ledger de eventos.
// El ledger es append-only: no hay Update ni Delete.
type EventoRepository interface {
	Create(evento *entity.Evento) error
	// ListByTarima devuelve la historia completa ordenada por ts_logico
	// ascendente (desempate por created_at, id).
	ListByTarima(tarimaID string) ([]*entity.Evento, error)
	ListByBatch(syncBatchID string) ([]*entity.Evento, error)
}
