package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	"github.com/brunoadrover/gestiontaller/internal/infrastructure/db"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/types"
)

const equipoTable = "equipos"

// Mapa único de campos permitidos para filtro y orden.
var equipoMap = map[string]string{
	"id":          "e.id",
	"tipo":        "e.tipo",
	"marca":       "e.marca",
	"modelo":      "e.modelo",
	"horas":       "e.horas",
	"valor_nuevo": "e.valor_nuevo",
	"created_at":  "e.created_at",
}

type EquipoRepositoryInterface interface {
	GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error)
	GetEquiposIndex(ctx context.Context) (map[string]*entities.Equipo, error)
	FindEquipo(ctx context.Context, id string) (*entities.Equipo, error)
	CreateEquipo(ctx context.Context, equipo entities.Equipo) error
	UpdateEquipo(ctx context.Context, id string, payload dto.UpdateEquipoDTO) error
	DeleteEquipo(ctx context.Context, id string) error
}

type EquipoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipoRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipoRepositoryInterface {
	return &EquipoRepository{storage: storage, logger: logger}
}

func scanEquipo(row pgx.Row) (*entities.Equipo, error) {
	var e entities.Equipo
	var comentario sql.NullString

	err := row.Scan(
		&e.ID, &e.Tipo, &e.Marca, &e.Modelo, &e.Horas,
		&e.ValorNuevo, &e.Demerito, &comentario,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error escaneando equipo: %w", err)
	}

	if comentario.Valid {
		e.ComentarioGeneral = &comentario.String
	}
	return &e, nil
}

var equipoColumns = []string{
	"e.id", "e.tipo", "e.marca", "e.modelo", "e.horas",
	"e.valor_nuevo", "e.demerito", "e.comentario_general",
	"e.created_at", "e.updated_at",
}

func (r *EquipoRepository) GetEquipos(ctx context.Context, filter types.Filter) ([]entities.Equipo, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"e.id": pat},
				sq.ILike{"e.tipo": pat},
				sq.ILike{"e.marca": pat},
				sq.ILike{"e.modelo": pat},
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(e.id)").From(equipoTable + " AS e")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, equipoMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Equipo{}, 0, nil
	}

	baseBuilder := psql.Select(equipoColumns...).From(equipoTable + " AS e")
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("e.id ASC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, equipoMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	equipos := make([]entities.Equipo, 0, filter.Limit)
	for rows.Next() {
		equipo, err := scanEquipo(rows)
		if err != nil {
			return nil, 0, err
		}
		equipos = append(equipos, *equipo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return equipos, total, nil
}

// GetEquiposIndex trae el catálogo entero como lookup por interno. El motor
// de agregación lo usa para resolver la referencia débil de cada ingreso.
func (r *EquipoRepository) GetEquiposIndex(ctx context.Context) (map[string]*entities.Equipo, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(equipoColumns...).From(equipoTable + " AS e").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[string]*entities.Equipo)
	for rows.Next() {
		equipo, err := scanEquipo(rows)
		if err != nil {
			return nil, err
		}
		index[equipo.ID] = equipo
	}
	return index, rows.Err()
}

func (r *EquipoRepository) FindEquipo(ctx context.Context, id string) (*entities.Equipo, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(equipoColumns...).
		From(equipoTable + " AS e").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipo(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipoRepository) CreateEquipo(ctx context.Context, equipo entities.Equipo) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(equipoTable).
		Columns("id", "tipo", "marca", "modelo", "horas", "valor_nuevo", "demerito", "comentario_general").
		Values(equipo.ID, equipo.Tipo, equipo.Marca, equipo.Modelo, equipo.Horas,
			equipo.ValorNuevo, equipo.Demerito, equipo.ComentarioGeneral).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *EquipoRepository) UpdateEquipo(ctx context.Context, id string, payload dto.UpdateEquipoDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(equipoTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.Tipo.Valid {
		builder = builder.Set("tipo", payload.Tipo.String)
	}
	if payload.Marca.Valid {
		builder = builder.Set("marca", payload.Marca.String)
	}
	if payload.Modelo.Valid {
		builder = builder.Set("modelo", payload.Modelo.String)
	}
	if payload.Horas.Valid {
		builder = builder.Set("horas", payload.Horas.Int64)
	}
	if payload.ValorNuevo.Valid {
		builder = builder.Set("valor_nuevo", payload.ValorNuevo.Float64)
	}
	if payload.Demerito.Valid {
		builder = builder.Set("demerito", payload.Demerito.Float64)
	}
	if payload.ComentarioGral.Valid {
		builder = builder.Set("comentario_general", payload.ComentarioGral.String)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEquipo borra sólo el registro del catálogo. Los ingresos que apuntan
// a este interno quedan huérfanos a propósito: la historia del taller no se
// pierde porque el equipo se dé de baja.
func (r *EquipoRepository) DeleteEquipo(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", equipoTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
