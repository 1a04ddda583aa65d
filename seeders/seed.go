package seeders

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seed carga el catálogo inicial y los historiales de muestra. Es
// idempotente: lo que ya existe se deja como está.
func Seed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	insertados := 0
	for _, equipo := range CatalogoInicial() {
		tag, err := pool.Exec(ctx, `
			INSERT INTO equipos (id, tipo, marca, modelo, horas, valor_nuevo, demerito, comentario_general)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, equipo.ID, equipo.Tipo, equipo.Marca, equipo.Modelo, equipo.Horas,
			equipo.ValorNuevo, equipo.Demerito, equipo.ComentarioGeneral)
		if err != nil {
			return err
		}
		insertados += int(tag.RowsAffected())
	}
	logger.Info("catálogo de equipos sembrado", zap.Int("nuevos", insertados))

	for _, semilla := range ingresosIniciales() {
		tag, err := pool.Exec(ctx, `
			INSERT INTO ingresos (id, equipo_id, fecha_ingreso, obra_asignada, informe_fallas, observaciones, fecha_salida)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, semilla.Ingreso.ID, semilla.Ingreso.EquipoID, semilla.Ingreso.FechaIngreso,
			semilla.Ingreso.ObraAsignada, semilla.Ingreso.InformeFallas,
			semilla.Ingreso.Observaciones, semilla.Ingreso.FechaSalida)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			continue
		}

		for posicion, accion := range semilla.Acciones {
			if _, err := pool.Exec(ctx, `
				INSERT INTO acciones_taller (id, ingreso_id, descripcion, fecha_accion, responsable, posicion)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, accion.ID, semilla.Ingreso.ID, accion.Descripcion, accion.FechaAccion,
				accion.Responsable, posicion+1); err != nil {
				return err
			}
		}
		logger.Info("ingreso de muestra sembrado", zap.String("ingreso_id", semilla.Ingreso.ID))
	}

	return nil
}
