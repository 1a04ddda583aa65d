package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/entities"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
)

const informeTable = "informes_taller"

const informeFields = `ingreso_id, motor, sistema_hidraulico, sistema_electrico,
	sistema_neumatico, estructura, cabina, tren_rodante, elementos_desgaste,
	componentes_especificos, observaciones, created_at, updated_at`

type InformeRepositoryInterface interface {
	FindInforme(ctx context.Context, ingresoID string) (*entities.InformeTaller, error)
	UpsertInforme(ctx context.Context, informe entities.InformeTaller) error
}

type InformeRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewInformeRepository(storage *pgxpool.Pool, logger *zap.Logger) InformeRepositoryInterface {
	return &InformeRepository{storage: storage, logger: logger}
}

func (r *InformeRepository) FindInforme(ctx context.Context, ingresoID string) (*entities.InformeTaller, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE ingreso_id = $1`, informeFields, informeTable)

	var inf entities.InformeTaller
	err := r.storage.QueryRow(ctx, query, ingresoID).Scan(
		&inf.IngresoID, &inf.Motor, &inf.SistemaHidraulico, &inf.SistemaElectrico,
		&inf.SistemaNeumatico, &inf.Estructura, &inf.Cabina, &inf.TrenRodante,
		&inf.ElementosDesgaste, &inf.ComponentesEspecificos, &inf.Observaciones,
		&inf.CreatedAt, &inf.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error escaneando informe: %w", err)
	}
	return &inf, nil
}

// UpsertInforme inserta o pisa la planilla del ingreso. A lo sumo un informe
// por ingreso, la PK es ingreso_id.
func (r *InformeRepository) UpsertInforme(ctx context.Context, informe entities.InformeTaller) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (ingreso_id, motor, sistema_hidraulico, sistema_electrico,
			sistema_neumatico, estructura, cabina, tren_rodante, elementos_desgaste,
			componentes_especificos, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (ingreso_id) DO UPDATE SET
			motor = EXCLUDED.motor,
			sistema_hidraulico = EXCLUDED.sistema_hidraulico,
			sistema_electrico = EXCLUDED.sistema_electrico,
			sistema_neumatico = EXCLUDED.sistema_neumatico,
			estructura = EXCLUDED.estructura,
			cabina = EXCLUDED.cabina,
			tren_rodante = EXCLUDED.tren_rodante,
			elementos_desgaste = EXCLUDED.elementos_desgaste,
			componentes_especificos = EXCLUDED.componentes_especificos,
			observaciones = EXCLUDED.observaciones,
			updated_at = CURRENT_TIMESTAMP
	`, informeTable)

	_, err := r.storage.Exec(ctx, query,
		informe.IngresoID, informe.Motor, informe.SistemaHidraulico, informe.SistemaElectrico,
		informe.SistemaNeumatico, informe.Estructura, informe.Cabina, informe.TrenRodante,
		informe.ElementosDesgaste, informe.ComponentesEspecificos, informe.Observaciones,
	)
	return err
}
