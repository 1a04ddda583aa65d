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

const ingresoTable = "ingresos"
const accionTable = "acciones_taller"

var ingresoMap = map[string]string{
	"id":            "i.id",
	"equipo_id":     "i.equipo_id",
	"fecha_ingreso": "i.fecha_ingreso",
	"obra_asignada": "i.obra_asignada",
	"created_at":    "i.created_at",
}

type IngresoRepositoryInterface interface {
	GetIngresos(ctx context.Context, filter types.Filter) ([]entities.Ingreso, uint64, error)
	GetIngresosConAcciones(ctx context.Context) ([]entities.Ingreso, error)
	FindIngreso(ctx context.Context, id string) (*entities.Ingreso, error)
	CreateIngreso(ctx context.Context, ingreso entities.Ingreso, primera entities.Accion) error
	UpdateIngreso(ctx context.Context, id string, payload dto.UpdateIngresoDTO) error
	DeleteIngreso(ctx context.Context, id string) error

	CreateAccion(ctx context.Context, accion entities.Accion) error
	UpdateAccion(ctx context.Context, ingresoID, accionID string, payload dto.UpdateAccionDTO) error
}

type IngresoRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewIngresoRepository(storage *pgxpool.Pool, logger *zap.Logger) IngresoRepositoryInterface {
	return &IngresoRepository{storage: storage, logger: logger}
}

var ingresoColumns = []string{
	"i.id", "i.equipo_id", "i.fecha_ingreso", "i.obra_asignada",
	"i.informe_fallas", "i.observaciones", "i.fecha_salida",
	"i.created_at", "i.updated_at",
}

func scanIngreso(row pgx.Row) (*entities.Ingreso, error) {
	var ing entities.Ingreso
	var obra, observaciones, fechaSalida sql.NullString

	err := row.Scan(
		&ing.ID, &ing.EquipoID, &ing.FechaIngreso, &obra,
		&ing.InformeFallas, &observaciones, &fechaSalida,
		&ing.CreatedAt, &ing.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error escaneando ingreso: %w", err)
	}

	if obra.Valid {
		ing.ObraAsignada = &obra.String
	}
	if observaciones.Valid {
		ing.Observaciones = &observaciones.String
	}
	if fechaSalida.Valid {
		ing.FechaSalida = &fechaSalida.String
	}
	return &ing, nil
}

func (r *IngresoRepository) GetIngresos(ctx context.Context, filter types.Filter) ([]entities.Ingreso, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	// La búsqueda cruza interno, texto de falla, obra, tipo y marca del
	// equipo y descripciones de acciones, como el buscador del historial.
	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.LeftJoin("equipos e ON e.id = i.equipo_id").Where(sq.Or{
				sq.ILike{"i.equipo_id": pat},
				sq.ILike{"i.informe_fallas": pat},
				sq.ILike{"i.obra_asignada": pat},
				sq.ILike{"e.tipo": pat},
				sq.ILike{"e.marca": pat},
				sq.Expr("EXISTS (SELECT 1 FROM "+accionTable+" a WHERE a.ingreso_id = i.id AND a.descripcion ILIKE ?)", pat),
			})
		}
		return b
	}

	countBuilder := psql.Select("COUNT(i.id)").From(ingresoTable + " AS i")
	countBuilder = applySearch(countBuilder)

	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, ingresoMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Ingreso{}, 0, nil
	}

	baseBuilder := psql.Select(ingresoColumns...).From(ingresoTable + " AS i")
	baseBuilder = applySearch(baseBuilder)

	if len(filter.Sort) == 0 {
		baseBuilder = baseBuilder.OrderBy("i.fecha_ingreso DESC", "i.id DESC")
	}
	baseBuilder = db.ApplyListParams(baseBuilder, filter, ingresoMap)

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	ingresos := make([]entities.Ingreso, 0, filter.Limit)
	for rows.Next() {
		ingreso, err := scanIngreso(rows)
		if err != nil {
			return nil, 0, err
		}
		ingresos = append(ingresos, *ingreso)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachAcciones(ctx, ingresos); err != nil {
		return nil, 0, err
	}
	return ingresos, total, nil
}

// GetIngresosConAcciones trae la historia completa para el dashboard y los
// reportes: todos los ingresos con sus acciones ya colgadas.
func (r *IngresoRepository) GetIngresosConAcciones(ctx context.Context) ([]entities.Ingreso, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(ingresoColumns...).
		From(ingresoTable + " AS i").
		OrderBy("i.fecha_ingreso ASC", "i.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingresos []entities.Ingreso
	for rows.Next() {
		ingreso, err := scanIngreso(rows)
		if err != nil {
			return nil, err
		}
		ingresos = append(ingresos, *ingreso)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachAcciones(ctx, ingresos); err != nil {
		return nil, err
	}
	return ingresos, nil
}

// attachAcciones cuelga las acciones de cada ingreso en una sola consulta.
// El orden es por posición de inserción: la cronología del historial la
// define el usuario, nunca se reordena por fecha.
func (r *IngresoRepository) attachAcciones(ctx context.Context, ingresos []entities.Ingreso) error {
	if len(ingresos) == 0 {
		return nil
	}

	ids := make([]string, 0, len(ingresos))
	porID := make(map[string]*entities.Ingreso, len(ingresos))
	for i := range ingresos {
		ids = append(ids, ingresos[i].ID)
		porID[ingresos[i].ID] = &ingresos[i]
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select("a.id", "a.ingreso_id", "a.descripcion", "a.fecha_accion", "a.responsable").
		From(accionTable + " AS a").
		Where(sq.Eq{"a.ingreso_id": ids}).
		OrderBy("a.ingreso_id", "a.posicion ASC").
		ToSql()
	if err != nil {
		return err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var accion entities.Accion
		if err := rows.Scan(&accion.ID, &accion.IngresoID, &accion.Descripcion, &accion.FechaAccion, &accion.Responsable); err != nil {
			return fmt.Errorf("error escaneando acción: %w", err)
		}
		if ingreso, ok := porID[accion.IngresoID]; ok {
			ingreso.Acciones = append(ingreso.Acciones, accion)
		}
	}
	return rows.Err()
}

func (r *IngresoRepository) FindIngreso(ctx context.Context, id string) (*entities.Ingreso, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Select(ingresoColumns...).
		From(ingresoTable + " AS i").
		Where(sq.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	ingreso, err := scanIngreso(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	unico := []entities.Ingreso{*ingreso}
	if err := r.attachAcciones(ctx, unico); err != nil {
		return nil, err
	}
	return &unico[0], nil
}

// CreateIngreso inserta el ingreso y su primera acción en una transacción:
// un ingreso sin historia no existe.
func (r *IngresoRepository) CreateIngreso(ctx context.Context, ingreso entities.Ingreso, primera entities.Accion) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	query, args, err := psql.Insert(ingresoTable).
		Columns("id", "equipo_id", "fecha_ingreso", "obra_asignada", "informe_fallas", "observaciones", "fecha_salida").
		Values(ingreso.ID, ingreso.EquipoID, ingreso.FechaIngreso, ingreso.ObraAsignada,
			ingreso.InformeFallas, ingreso.Observaciones, ingreso.FechaSalida).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyExists
		}
		return err
	}

	if err := insertAccion(ctx, tx, primera); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertAccion(ctx context.Context, tx pgx.Tx, accion entities.Accion) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, ingreso_id, descripcion, fecha_accion, responsable, posicion)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(posicion), 0) + 1 FROM %s WHERE ingreso_id = $2))
	`, accionTable, accionTable)

	_, err := tx.Exec(ctx, query, accion.ID, accion.IngresoID, accion.Descripcion, accion.FechaAccion, accion.Responsable)
	return err
}

func (r *IngresoRepository) UpdateIngreso(ctx context.Context, id string, payload dto.UpdateIngresoDTO) error {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(ingresoTable).Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if payload.ObraAsignada.Valid {
		builder = builder.Set("obra_asignada", payload.ObraAsignada.String)
	}
	if payload.InformeFallas.Valid {
		builder = builder.Set("informe_fallas", payload.InformeFallas.String)
	}
	if payload.Observaciones.Valid {
		builder = builder.Set("observaciones", payload.Observaciones.String)
	}
	if payload.FechaSalida.Valid {
		builder = builder.Set("fecha_salida", payload.FechaSalida.String)
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

// DeleteIngreso borra el ingreso; las acciones caen en cascada por FK.
func (r *IngresoRepository) DeleteIngreso(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", ingresoTable), id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CreateAccion agrega al final del historial. No hay delete de acciones: la
// historia sólo crece o se corrige en el lugar.
func (r *IngresoRepository) CreateAccion(ctx context.Context, accion entities.Accion) error {
	tx, err := r.storage.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var existe bool
	if err := tx.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)", ingresoTable), accion.IngresoID).Scan(&existe); err != nil {
		return err
	}
	if !existe {
		return apperrors.ErrNotFound
	}

	if err := insertAccion(ctx, tx, accion); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *IngresoRepository) UpdateAccion(ctx context.Context, ingresoID, accionID string, payload dto.UpdateAccionDTO) error {
	if !payload.Descripcion.Valid && !payload.FechaAccion.Valid && !payload.Responsable.Valid {
		return nil
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	builder := psql.Update(accionTable)

	if payload.Descripcion.Valid {
		builder = builder.Set("descripcion", payload.Descripcion.String)
	}
	if payload.FechaAccion.Valid {
		builder = builder.Set("fecha_accion", payload.FechaAccion.String)
	}
	if payload.Responsable.Valid {
		builder = builder.Set("responsable", payload.Responsable.String)
	}

	query, args, err := builder.Where(sq.Eq{"id": accionID, "ingreso_id": ingresoID}).ToSql()
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
