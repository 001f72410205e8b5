package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
)

func resultadoPorRef(resultados []ResultadoSync, ref string) *ResultadoSync {
	for i := range resultados {
		if resultados[i].RefLocal == ref {
			return &resultados[i]
		}
	}
	return nil
}

func TestSincronizarEventos_LoteVacio_Rechaza(t *testing.T) {
	e := nuevoEntorno()
	_, _, err := e.uc.SincronizarEventos(context.Background(), operario, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSincronizarEventos_AplicaEnOrdenDeTsLogico(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 10)

	// Llegan desordenados: la salida de 8 tiene ts anterior a la entrada de 5.
	// En orden de ts: SALIDA 8 (10→2), ENTRADA 5 (2→7).
	batchID, resultados, err := e.uc.SincronizarEventos(context.Background(), supervisor, []EventoSync{
		{RefLocal: "r2", TarimaID: tarimaID, Tipo: entity.EventoEntrada, Cantidad: 5, TsLogico: 2000},
		{RefLocal: "r1", TarimaID: tarimaID, Tipo: entity.EventoSalida, Cantidad: 8, TsLogico: 1000},
	})
	require.NoError(t, err)
	require.NotEmpty(t, batchID)
	require.Len(t, resultados, 2)
	assert.True(t, resultadoPorRef(resultados, "r1").Aceptado)
	assert.True(t, resultadoPorRef(resultados, "r2").Aceptado)

	repo := &fakeEventoRepo{e.m}
	tarima, proy, err := e.uc.Proyeccion(context.Background(), &fakeTarimaRepo{e.m}, repo, tarimaID)
	require.NoError(t, err)
	assert.Equal(t, 7, proy)
	assert.Equal(t, entity.TarimaActiva, tarima.Estado)

	// todos los eventos del lote llevan el mismo batch
	lote, err := repo.ListByBatch(batchID)
	require.NoError(t, err)
	assert.Len(t, lote, 2)
}

// El rechazo de un evento no aborta el lote: N-1 aceptados, 1 rechazado,
// identificado por su ref_local.
func TestSincronizarEventos_FallaParcialNoAbortaLote(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 10)

	_, resultados, err := e.uc.SincronizarEventos(context.Background(), supervisor, []EventoSync{
		{RefLocal: "ok-1", TarimaID: tarimaID, Tipo: entity.EventoSalida, Cantidad: 4, TsLogico: 1000},
		{RefLocal: "mal", TarimaID: tarimaID, Tipo: entity.EventoSalida, Cantidad: 99, TsLogico: 2000},
		{RefLocal: "ok-2", TarimaID: tarimaID, Tipo: entity.EventoSalida, Cantidad: 3, TsLogico: 3000},
	})
	require.NoError(t, err)
	require.Len(t, resultados, 3)

	assert.True(t, resultadoPorRef(resultados, "ok-1").Aceptado)
	assert.True(t, resultadoPorRef(resultados, "ok-2").Aceptado)

	rechazado := resultadoPorRef(resultados, "mal")
	require.NotNil(t, rechazado)
	assert.False(t, rechazado.Aceptado)
	assert.Contains(t, rechazado.Motivo, "insuficiente")

	_, proy, err := e.uc.Proyeccion(context.Background(), &fakeTarimaRepo{e.m}, &fakeEventoRepo{e.m}, tarimaID)
	require.NoError(t, err)
	assert.Equal(t, 3, proy, "solo los aceptados afectan la proyección: 10-4-3")
}

func TestSincronizarEventos_RechazaRecepcionYTiposDesconocidos(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 10)

	_, resultados, err := e.uc.SincronizarEventos(context.Background(), supervisor, []EventoSync{
		{RefLocal: "recep", TarimaID: tarimaID, Tipo: entity.EventoRecepcion, Cantidad: 50, TsLogico: 1000},
		{RefLocal: "raro", TarimaID: tarimaID, Tipo: "TELETRANSPORTE", Cantidad: 1, TsLogico: 2000},
	})
	require.NoError(t, err)
	assert.False(t, resultadoPorRef(resultados, "recep").Aceptado, "RECEPCION solo al crear la tarima")
	assert.False(t, resultadoPorRef(resultados, "raro").Aceptado)
}

func TestSincronizarEventos_MermaSinMotivoRechazada(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 10)

	_, resultados, err := e.uc.SincronizarEventos(context.Background(), supervisor, []EventoSync{
		{RefLocal: "m1", TarimaID: tarimaID, Tipo: entity.EventoMerma, Cantidad: 2, TsLogico: 1000},
	})
	require.NoError(t, err)
	assert.False(t, resultados[0].Aceptado)
}

func TestSincronizarEventos_EscalacionAplicaOffline(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 100)

	// merma del 30% por operario sin co-firma: rechazada también vía sync
	_, resultados, err := e.uc.SincronizarEventos(context.Background(), operario, []EventoSync{
		{RefLocal: "m1", TarimaID: tarimaID, Tipo: entity.EventoMerma, Cantidad: 30, Motivo: "caducidad", TsLogico: 1000},
	})
	require.NoError(t, err)
	require.False(t, resultados[0].Aceptado)
	assert.Contains(t, resultados[0].Motivo, "co-firma")

	// con co-firma offline registrada: aceptada
	_, resultados, err = e.uc.SincronizarEventos(context.Background(), operario, []EventoSync{
		{RefLocal: "m2", TarimaID: tarimaID, Tipo: entity.EventoMerma, Cantidad: 30, Motivo: "caducidad", SupervisorID: supervisor.UsuarioID, TsLogico: 2000},
	})
	require.NoError(t, err)
	assert.True(t, resultados[0].Aceptado)
}

// Los ajustes de operario escalan también vía sync, en cualquiera de sus
// tres formas: AJUSTE firmado, AJUSTE_NEGATIVO y AJUSTE_POSITIVO.
func TestSincronizarEventos_AjusteDeOperarioEscalaEnTodasSusFormas(t *testing.T) {
	e := nuevoEntorno()
	e.conCatalogo(productoID, bodegaID)
	tarimaID := recibir(t, e, 100)

	_, resultados, err := e.uc.SincronizarEventos(context.Background(), operario, []EventoSync{
		{RefLocal: "neg", TarimaID: tarimaID, Tipo: entity.EventoAjusteNegativo, Cantidad: 40, Motivo: "conteo físico", TsLogico: 1000},
		{RefLocal: "pos", TarimaID: tarimaID, Tipo: entity.EventoAjustePositivo, Cantidad: 10, Motivo: "conteo físico", TsLogico: 2000},
		{RefLocal: "firmado", TarimaID: tarimaID, Tipo: entity.EventoAjuste, Cantidad: -5, Motivo: "conteo físico", TsLogico: 3000},
	})
	require.NoError(t, err)
	for _, ref := range []string{"neg", "pos", "firmado"} {
		res := resultadoPorRef(resultados, ref)
		require.NotNil(t, res)
		assert.False(t, res.Aceptado, "ajuste %s sin co-firma", ref)
		assert.Contains(t, res.Motivo, "co-firma")
	}

	// nada se escribió en el ledger
	_, proy, err := e.uc.Proyeccion(context.Background(), &fakeTarimaRepo{e.m}, &fakeEventoRepo{e.m}, tarimaID)
	require.NoError(t, err)
	assert.Equal(t, 100, proy)

	// con co-firma offline registrada: aceptados
	_, resultados, err = e.uc.SincronizarEventos(context.Background(), operario, []EventoSync{
		{RefLocal: "neg", TarimaID: tarimaID, Tipo: entity.EventoAjusteNegativo, Cantidad: 40, Motivo: "conteo físico", SupervisorID: supervisor.UsuarioID, TsLogico: 4000},
	})
	require.NoError(t, err)
	assert.True(t, resultados[0].Aceptado)

	_, proy, err = e.uc.Proyeccion(context.Background(), &fakeTarimaRepo{e.m}, &fakeEventoRepo{e.m}, tarimaID)
	require.NoError(t, err)
	assert.Equal(t, 60, proy)
}

func TestSincronizarEventos_TarimaInexistente(t *testing.T) {
	e := nuevoEntorno()
	_, resultados, err := e.uc.SincronizarEventos(context.Background(), supervisor, []EventoSync{
		{RefLocal: "x", TarimaID: "no-existe", Tipo: entity.EventoSalida, Cantidad: 1, TsLogico: 1},
	})
	require.NoError(t, err)
	assert.False(t, resultados[0].Aceptado)
	assert.Contains(t, resultados[0].Motivo, "no encontrada")
}
