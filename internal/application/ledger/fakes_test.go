package ledger

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/distrisur/bodega-api/internal/domain/entity"
	"github.com/distrisur/bodega-api/internal/domain/inventory"
	"github.com/distrisur/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria — reproducen el contrato de los repos sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memoria struct {
	mu           sync.Mutex
	eventos      []*entity.Evento
	tarimas      map[string]*entity.Tarima
	asignaciones map[string]*entity.AsignacionPick
	productos    map[string]*entity.Producto
	bodegas      map[string]*entity.Bodega
}

func nuevaMemoria() *memoria {
	return &memoria{
		tarimas:      make(map[string]*entity.Tarima),
		asignaciones: make(map[string]*entity.AsignacionPick),
		productos:    make(map[string]*entity.Producto),
		bodegas:      make(map[string]*entity.Bodega),
	}
}

type fakeEventoRepo struct{ m *memoria }

func (r *fakeEventoRepo) Create(e *entity.Evento) error {
	r.m.eventos = append(r.m.eventos, e)
	return nil
}

func (r *fakeEventoRepo) ListByTarima(tarimaID string) ([]*entity.Evento, error) {
	var out []*entity.Evento
	for _, e := range r.m.eventos {
		if e.TarimaID == tarimaID {
			out = append(out, e)
		}
	}
	inventory.OrdenarEventos(out)
	return out, nil
}

func (r *fakeEventoRepo) ListByBatch(batchID string) ([]*entity.Evento, error) {
	var out []*entity.Evento
	for _, e := range r.m.eventos {
		if e.SyncBatchID == batchID {
			out = append(out, e)
		}
	}
	inventory.OrdenarEventos(out)
	return out, nil
}

type fakeTarimaRepo struct{ m *memoria }

func (r *fakeTarimaRepo) Create(t *entity.Tarima) error {
	r.m.tarimas[t.ID] = t
	return nil
}

func (r *fakeTarimaRepo) GetByID(id string) (*entity.Tarima, error) {
	return r.m.tarimas[id], nil
}

func (r *fakeTarimaRepo) GetForUpdate(id string) (*entity.Tarima, error) {
	return r.m.tarimas[id], nil
}

func (r *fakeTarimaRepo) UpdateEstado(id, estado string) error {
	if t := r.m.tarimas[id]; t != nil {
		t.Estado = estado
	}
	return nil
}

func (r *fakeTarimaRepo) UpdateUbicacion(id, ubicacion string) error {
	if t := r.m.tarimas[id]; t != nil {
		t.Ubicacion = ubicacion
	}
	return nil
}

func (r *fakeTarimaRepo) UpdatePrecio(id string, precio decimal.Decimal) error {
	if t := r.m.tarimas[id]; t != nil {
		t.PrecioUnitario = precio
	}
	return nil
}

func (r *fakeTarimaRepo) ListByBodega(bodegaID string, limit, offset int) ([]*entity.Tarima, error) {
	var out []*entity.Tarima
	for _, t := range r.m.tarimas {
		if t.BodegaID == bodegaID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeAsignacionRepo struct{ m *memoria }

func (r *fakeAsignacionRepo) Create(a *entity.AsignacionPick) error {
	r.m.asignaciones[a.ID] = a
	return nil
}

func (r *fakeAsignacionRepo) GetByID(id string) (*entity.AsignacionPick, error) {
	return r.m.asignaciones[id], nil
}

func (r *fakeAsignacionRepo) GetForUpdate(id string) (*entity.AsignacionPick, error) {
	return r.m.asignaciones[id], nil
}

func (r *fakeAsignacionRepo) Update(a *entity.AsignacionPick) error {
	r.m.asignaciones[a.ID] = a
	return nil
}

func (r *fakeAsignacionRepo) ListByLinea(lineaID string) ([]*entity.AsignacionPick, error) {
	var out []*entity.AsignacionPick
	for _, a := range r.m.asignaciones {
		if a.PedidoLineaID == lineaID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAsignacionRepo) CountAbiertasByTarima(tarimaID string) (int, error) {
	n := 0
	for _, a := range r.m.asignaciones {
		if a.TarimaID == tarimaID && a.Estado == entity.AsignacionAbierta {
			n++
		}
	}
	return n, nil
}

type fakeProductoRepo struct{ m *memoria }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.m.productos[p.ID] = p
	return nil
}
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.m.productos[id], nil
}
func (r *fakeProductoRepo) GetBySKU(sku string) (*entity.Producto, error) {
	for _, p := range r.m.productos {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductoRepo) UpdatePrecio(id string, precio decimal.Decimal) error { return nil }
func (r *fakeProductoRepo) List(limit, offset int) ([]*entity.Producto, error)   { return nil, nil }

type fakeBodegaRepo struct{ m *memoria }

func (r *fakeBodegaRepo) Create(b *entity.Bodega) error             { r.m.bodegas[b.ID] = b; return nil }
func (r *fakeBodegaRepo) GetByID(id string) (*entity.Bodega, error) { return r.m.bodegas[id], nil }
func (r *fakeBodegaRepo) List() ([]*entity.Bodega, error)           { return nil, nil }

// fakeTxRunner ejecuta el callback directamente sobre los fakes; la
// serialización la da el mutex de memoria.
type fakeTxRunner struct{ m *memoria }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	eventoRepo repository.EventoRepository,
	tarimaRepo repository.TarimaRepository,
	asignacionRepo repository.AsignacionRepository,
) error) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return fn(&fakeEventoRepo{r.m}, &fakeTarimaRepo{r.m}, &fakeAsignacionRepo{r.m})
}

// entorno de test con todo armado.
type entorno struct {
	m  *memoria
	uc *UseCase
}

func nuevoEntorno() *entorno {
	m := nuevaMemoria()
	uc := NewUseCase(&fakeTxRunner{m}, &fakeProductoRepo{m}, &fakeBodegaRepo{m})
	return &entorno{m: m, uc: uc}
}

func (e *entorno) conCatalogo(productoID, bodegaID string) {
	e.m.productos[productoID] = &entity.Producto{ID: productoID, SKU: "SKU-1", Nombre: "Caja retornable 24"}
	e.m.bodegas[bodegaID] = &entity.Bodega{ID: bodegaID, Nombre: "Bodega Norte"}
}
