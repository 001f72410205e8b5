package reportes

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distrisur/bodega-api/internal/domain"
	"github.com/distrisur/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: los repos devuelven un escenario fijo, los generadores capturan lo
// que el caso de uso les entrega.
// ──────────────────────────────────────────────────────────────────────────────

type escenario struct {
	bodega   *entity.Bodega
	tarimas  []*entity.Tarima
	eventos  map[string][]*entity.Evento
	producto *entity.Producto
}

type fakeTarimaRepo struct{ e *escenario }

func (r *fakeTarimaRepo) Create(t *entity.Tarima) error { return nil }
func (r *fakeTarimaRepo) GetByID(id string) (*entity.Tarima, error) {
	for _, t := range r.e.tarimas {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeTarimaRepo) GetForUpdate(id string) (*entity.Tarima, error)  { return r.GetByID(id) }
func (r *fakeTarimaRepo) UpdateEstado(id, estado string) error            { return nil }
func (r *fakeTarimaRepo) UpdateUbicacion(id, u string) error              { return nil }
func (r *fakeTarimaRepo) UpdatePrecio(id string, p decimal.Decimal) error { return nil }
func (r *fakeTarimaRepo) ListByBodega(bodegaID string, limit, offset int) ([]*entity.Tarima, error) {
	return r.e.tarimas, nil
}

type fakeEventoRepo struct{ e *escenario }

func (r *fakeEventoRepo) Create(ev *entity.Evento) error { return nil }
func (r *fakeEventoRepo) ListByTarima(tarimaID string) ([]*entity.Evento, error) {
	return r.e.eventos[tarimaID], nil
}
func (r *fakeEventoRepo) ListByBatch(string) ([]*entity.Evento, error) { return nil, nil }

type fakeProductoRepo struct{ e *escenario }

func (r *fakeProductoRepo) Create(p *entity.Producto) error                    { return nil }
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error)        { return r.e.producto, nil }
func (r *fakeProductoRepo) GetBySKU(sku string) (*entity.Producto, error)      { return nil, nil }
func (r *fakeProductoRepo) UpdatePrecio(id string, p decimal.Decimal) error    { return nil }
func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error) { return nil, nil }

type fakeBodegaRepo struct{ e *escenario }

func (r *fakeBodegaRepo) Create(b *entity.Bodega) error { return nil }
func (r *fakeBodegaRepo) GetByID(id string) (*entity.Bodega, error) {
	if r.e.bodega != nil && r.e.bodega.ID == id {
		return r.e.bodega, nil
	}
	return nil, nil
}
func (r *fakeBodegaRepo) List() ([]*entity.Bodega, error) { return nil, nil }

type capturaPDF struct {
	bodega *entity.Bodega
	filas  []FilaExistencia
}

func (c *capturaPDF) GenerarReporteExistencias(ctx context.Context, bodega *entity.Bodega, filas []FilaExistencia) ([]byte, error) {
	c.bodega = bodega
	c.filas = filas
	return []byte("%PDF"), nil
}

type capturaXML struct {
	proyeccion int
	eventos    []*entity.Evento
}

func (c *capturaXML) ExportarLedger(t *entity.Tarima, p *entity.Producto, eventos []*entity.Evento, proyeccion int) ([]byte, error) {
	c.eventos = eventos
	c.proyeccion = proyeccion
	return []byte("<LedgerTarima/>"), nil
}

func nuevoEscenario() *escenario {
	now := time.Now()
	e := &escenario{
		bodega:   &entity.Bodega{ID: "b1", Nombre: "Bodega Norte"},
		producto: &entity.Producto{ID: "p1", SKU: "SKU-1", Nombre: "Caja retornable 24"},
		eventos:  make(map[string][]*entity.Evento),
	}
	e.tarimas = []*entity.Tarima{{
		ID: "t1", ProductoID: "p1", BodegaID: "b1", Estado: entity.TarimaActiva,
		PrecioUnitario: decimal.NewFromInt(250), DepositoEnvase: decimal.NewFromInt(50),
		RecibidaAt: now, CreatedAt: now,
	}}
	e.eventos["t1"] = []*entity.Evento{
		{ID: "e1", TarimaID: "t1", Tipo: entity.EventoRecepcion, Cantidad: 100, TsLogico: 1, CreatedAt: now},
		{ID: "e2", TarimaID: "t1", Tipo: entity.EventoPick, Cantidad: 40, TsLogico: 2, CreatedAt: now},
	}
	return e
}

func nuevoUseCase(e *escenario, pdf GeneradorPDF, xml ExportadorXML) *UseCase {
	return NewUseCase(&fakeTarimaRepo{e}, &fakeEventoRepo{e}, &fakeProductoRepo{e}, &fakeBodegaRepo{e}, pdf, xml)
}

// ──────────────────────────────────────────────────────────────────────────────

func TestReporteExistenciasPDF_ValuaProyecciones(t *testing.T) {
	e := nuevoEscenario()
	pdf := &capturaPDF{}
	uc := nuevoUseCase(e, pdf, &capturaXML{})

	out, err := uc.ReporteExistenciasPDF(context.Background(), "b1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	require.Len(t, pdf.filas, 1)
	fila := pdf.filas[0]
	assert.Equal(t, 60, fila.Proyeccion, "100 recibidas - 40 pickeadas")
	// valuación: 60 × (250 precio + 50 depósito de envase)
	assert.True(t, fila.Valor.Equal(decimal.NewFromInt(18000)))
	assert.Equal(t, "Bodega Norte", pdf.bodega.Nombre)
}

func TestReporteExistenciasPDF_BodegaInexistente(t *testing.T) {
	uc := nuevoUseCase(nuevoEscenario(), &capturaPDF{}, &capturaXML{})
	_, err := uc.ReporteExistenciasPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLedgerXML_EntregaHistoriaOrdenadaYProyeccion(t *testing.T) {
	e := nuevoEscenario()
	xml := &capturaXML{}
	uc := nuevoUseCase(e, &capturaPDF{}, xml)

	out, err := uc.LedgerXML(context.Background(), "t1")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
	assert.Equal(t, 60, xml.proyeccion)
	require.Len(t, xml.eventos, 2)
	assert.Equal(t, entity.EventoRecepcion, xml.eventos[0].Tipo)
}

func TestLedgerXML_TarimaInexistente(t *testing.T) {
	uc := nuevoUseCase(nuevoEscenario(), &capturaPDF{}, &capturaXML{})
	_, err := uc.LedgerXML(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrTarimaNoEncontrada)
}
