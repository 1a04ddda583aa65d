package services

import (
	"context"
	"time"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/types"
)

// Dobles en memoria de los repositorios, suficientes para ejercitar los
// servicios sin base de datos.

type fakeEquipoRepo struct {
	equipos map[string]*entities.Equipo
}

func newFakeEquipoRepo(equipos ...*entities.Equipo) *fakeEquipoRepo {
	r := &fakeEquipoRepo{equipos: make(map[string]*entities.Equipo)}
	for _, e := range equipos {
		r.equipos[e.ID] = e
	}
	return r
}

func (r *fakeEquipoRepo) GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error) {
	out := make([]entities.Equipo, 0, len(r.equipos))
	for _, e := range r.equipos {
		out = append(out, *e)
	}
	return out, uint64(len(out)), nil
}

func (r *fakeEquipoRepo) GetEquiposIndex(ctx context.Context) (map[string]*entities.Equipo, error) {
	return r.equipos, nil
}

func (r *fakeEquipoRepo) FindEquipo(ctx context.Context, id string) (*entities.Equipo, error) {
	if e, ok := r.equipos[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipoRepo) CreateEquipo(ctx context.Context, equipo entities.Equipo) error {
	if _, ok := r.equipos[equipo.ID]; ok {
		return apperrors.ErrAlreadyExists
	}
	r.equipos[equipo.ID] = &equipo
	return nil
}

func (r *fakeEquipoRepo) UpdateEquipo(ctx context.Context, id string, payload dto.UpdateEquipoDTO) error {
	e, ok := r.equipos[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Tipo.Valid {
		e.Tipo = payload.Tipo.String
	}
	if payload.Demerito.Valid {
		e.Demerito = payload.Demerito.Float64
	}
	return nil
}

func (r *fakeEquipoRepo) DeleteEquipo(ctx context.Context, id string) error {
	if _, ok := r.equipos[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.equipos, id)
	return nil
}

type fakeIngresoRepo struct {
	ingresos map[string]*entities.Ingreso
	orden    []string
}

func newFakeIngresoRepo(ingresos ...*entities.Ingreso) *fakeIngresoRepo {
	r := &fakeIngresoRepo{ingresos: make(map[string]*entities.Ingreso)}
	for _, ing := range ingresos {
		r.ingresos[ing.ID] = ing
		r.orden = append(r.orden, ing.ID)
	}
	return r
}

func (r *fakeIngresoRepo) listado() []entities.Ingreso {
	out := make([]entities.Ingreso, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, *r.ingresos[id])
	}
	return out
}

func (r *fakeIngresoRepo) GetIngresos(ctx context.Context, filter types.Filter) ([]entities.Ingreso, uint64, error) {
	todos := r.listado()
	return todos, uint64(len(todos)), nil
}

func (r *fakeIngresoRepo) GetIngresosConAcciones(ctx context.Context) ([]entities.Ingreso, error) {
	return r.listado(), nil
}

func (r *fakeIngresoRepo) FindIngreso(ctx context.Context, id string) (*entities.Ingreso, error) {
	if ing, ok := r.ingresos[id]; ok {
		copia := *ing
		return &copia, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeIngresoRepo) CreateIngreso(ctx context.Context, ingreso entities.Ingreso, primera entities.Accion) error {
	ingreso.Acciones = []entities.Accion{primera}
	r.ingresos[ingreso.ID] = &ingreso
	r.orden = append(r.orden, ingreso.ID)
	return nil
}

func (r *fakeIngresoRepo) UpdateIngreso(ctx context.Context, id string, payload dto.UpdateIngresoDTO) error {
	ing, ok := r.ingresos[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.ObraAsignada.Valid {
		obra := payload.ObraAsignada.String
		ing.ObraAsignada = &obra
	}
	if payload.InformeFallas.Valid {
		ing.InformeFallas = payload.InformeFallas.String
	}
	return nil
}

func (r *fakeIngresoRepo) DeleteIngreso(ctx context.Context, id string) error {
	if _, ok := r.ingresos[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.ingresos, id)
	for i, otro := range r.orden {
		if otro == id {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeIngresoRepo) CreateAccion(ctx context.Context, accion entities.Accion) error {
	ing, ok := r.ingresos[accion.IngresoID]
	if !ok {
		return apperrors.ErrNotFound
	}
	ing.Acciones = append(ing.Acciones, accion)
	return nil
}

func (r *fakeIngresoRepo) UpdateAccion(ctx context.Context, ingresoID, accionID string, payload dto.UpdateAccionDTO) error {
	ing, ok := r.ingresos[ingresoID]
	if !ok {
		return apperrors.ErrNotFound
	}
	for i := range ing.Acciones {
		if ing.Acciones[i].ID != accionID {
			continue
		}
		if payload.Descripcion.Valid {
			ing.Acciones[i].Descripcion = payload.Descripcion.String
		}
		if payload.FechaAccion.Valid {
			ing.Acciones[i].FechaAccion = payload.FechaAccion.String
		}
		if payload.Responsable.Valid {
			ing.Acciones[i].Responsable = payload.Responsable.String
		}
		return nil
	}
	return apperrors.ErrNotFound
}

type fakeInformeRepo struct {
	informes map[string]*entities.InformeTaller
}

func newFakeInformeRepo() *fakeInformeRepo {
	return &fakeInformeRepo{informes: make(map[string]*entities.InformeTaller)}
}

func (r *fakeInformeRepo) FindInforme(ctx context.Context, ingresoID string) (*entities.InformeTaller, error) {
	if inf, ok := r.informes[ingresoID]; ok {
		return inf, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeInformeRepo) UpsertInforme(ctx context.Context, informe entities.InformeTaller) error {
	r.informes[informe.IngresoID] = &informe
	return nil
}

type fakeCache struct {
	datos map[string]string
	gets  int
	sets  int
	dels  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{datos: make(map[string]string)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (string, error) {
	c.gets++
	if v, ok := c.datos[key]; ok {
		return v, nil
	}
	return "", apperrors.ErrNotFound
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	c.sets++
	switch v := value.(type) {
	case []byte:
		c.datos[key] = string(v)
	case string:
		c.datos[key] = v
	}
	return nil
}

func (c *fakeCache) Del(ctx context.Context, keys ...string) error {
	c.dels++
	for _, k := range keys {
		delete(c.datos, k)
	}
	return nil
}
