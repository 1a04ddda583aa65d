package repositories

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	"github.com/brunoadrover/gestiontaller/internal/entities"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/types"

	"github.com/aarondl/null/v8"
	"github.com/pressly/goose/v3"

	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var testPool *pgxpool.Pool

// TestMain conecta a la base de test indicada por TEST_DATABASE_URL y aplica
// las migraciones. Sin esa variable los tests de integración se saltean.
func TestMain(m *testing.M) {
	testDbUrl := os.Getenv("TEST_DATABASE_URL")
	if testDbUrl == "" {
		os.Exit(m.Run())
	}

	var err error
	testPool, err = pgxpool.New(context.Background(), testDbUrl)
	if err != nil {
		log.Fatalf("no se pudo conectar a la BD de test: %v", err)
	}
	defer testPool.Close()

	applyMigrations(testDbUrl)

	os.Exit(m.Run())
}

func applyMigrations(dsn string) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("no se pudo abrir la conexión para migraciones: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if err := goose.Up(db, "../../migrations"); err != nil {
		log.Fatalf("no se pudieron aplicar las migraciones de test: %v", err)
	}
}

func requirePool(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL no configurada, test de integración salteado")
	}
}

func cleanupTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `TRUNCATE TABLE informes_taller, acciones_taller, ingresos, equipos CASCADE;`)
	require.NoError(t, err, "no se pudieron limpiar las tablas")
}

func seedEquipo(t *testing.T, pool *pgxpool.Pool, interno string) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO equipos (id, tipo, marca, modelo, horas, valor_nuevo, demerito)
		VALUES ($1, 'EXCAVADORA S/ORUGAS 30 ≤ Tn < 40', 'VOLVO', 'EC290 BLC PRIME', 11882, 320000, 0.75)
	`, interno)
	require.NoError(t, err)
}

func nuevoIngreso(equipoID string) (entities.Ingreso, entities.Accion) {
	ingreso := entities.Ingreso{
		ID:            uuid.NewString(),
		EquipoID:      equipoID,
		FechaIngreso:  "2025-05-12",
		InformeFallas: "Ruidos anormales en el motor",
	}
	primera := entities.Accion{
		ID:          uuid.NewString(),
		IngresoID:   ingreso.ID,
		Descripcion: "Ingreso a taller - Diagnóstico inicial",
		FechaAccion: "2025-05-12",
		Responsable: "Juan Pérez",
	}
	return ingreso, primera
}

func TestIngresoRepository_Integration_CreateYFind(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	repo := NewIngresoRepository(testPool, zap.NewNop())

	ingreso, primera := nuevoIngreso("E1402")
	require.NoError(t, repo.CreateIngreso(context.Background(), ingreso, primera))

	encontrado, err := repo.FindIngreso(context.Background(), ingreso.ID)
	require.NoError(t, err)
	assert.Equal(t, ingreso.EquipoID, encontrado.EquipoID)
	assert.Equal(t, "2025-05-12", encontrado.FechaIngreso)
	require.Len(t, encontrado.Acciones, 1)
	assert.Equal(t, primera.Descripcion, encontrado.Acciones[0].Descripcion)
}

func TestIngresoRepository_Integration_AccionesEnOrdenDeInsercion(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	repo := NewIngresoRepository(testPool, zap.NewNop())

	ingreso, primera := nuevoIngreso("E1402")
	require.NoError(t, repo.CreateIngreso(context.Background(), ingreso, primera))

	// La segunda acción lleva una fecha ANTERIOR a la primera: el orden de
	// lectura tiene que seguir siendo el de inserción.
	fueraDeOrden := entities.Accion{
		ID:          uuid.NewString(),
		IngresoID:   ingreso.ID,
		Descripcion: "Corrección de carga histórica",
		FechaAccion: "2025-04-01",
		Responsable: "Oficina",
	}
	require.NoError(t, repo.CreateAccion(context.Background(), fueraDeOrden))

	encontrado, err := repo.FindIngreso(context.Background(), ingreso.ID)
	require.NoError(t, err)
	require.Len(t, encontrado.Acciones, 2)
	assert.Equal(t, primera.Descripcion, encontrado.Acciones[0].Descripcion)
	assert.Equal(t, fueraDeOrden.Descripcion, encontrado.Acciones[1].Descripcion)
}

func TestIngresoRepository_Integration_DeleteCascadaAcciones(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	repo := NewIngresoRepository(testPool, zap.NewNop())

	ingreso, primera := nuevoIngreso("E1402")
	require.NoError(t, repo.CreateIngreso(context.Background(), ingreso, primera))
	require.NoError(t, repo.DeleteIngreso(context.Background(), ingreso.ID))

	_, err := repo.FindIngreso(context.Background(), ingreso.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var restantes int
	require.NoError(t, testPool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM acciones_taller WHERE ingreso_id = $1", ingreso.ID).Scan(&restantes))
	assert.Zero(t, restantes, "las acciones tienen que caer con el ingreso")
}

func TestIngresoRepository_Integration_BorrarEquipoNoTocaIngresos(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	ingresoRepo := NewIngresoRepository(testPool, zap.NewNop())
	equipoRepo := NewEquipoRepository(testPool, zap.NewNop())

	ingreso, primera := nuevoIngreso("E1402")
	require.NoError(t, ingresoRepo.CreateIngreso(context.Background(), ingreso, primera))

	require.NoError(t, equipoRepo.DeleteEquipo(context.Background(), "E1402"))

	huerfano, err := ingresoRepo.FindIngreso(context.Background(), ingreso.ID)
	require.NoError(t, err, "el ingreso sobrevive a la baja del equipo")
	assert.Equal(t, "E1402", huerfano.EquipoID)
}

func TestIngresoRepository_Integration_UpdateParcial(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	repo := NewIngresoRepository(testPool, zap.NewNop())

	ingreso, primera := nuevoIngreso("E1402")
	require.NoError(t, repo.CreateIngreso(context.Background(), ingreso, primera))

	require.NoError(t, repo.UpdateIngreso(context.Background(), ingreso.ID, dto.UpdateIngresoDTO{
		ObraAsignada: null.StringFrom("Obra Ruta 40"),
	}))

	encontrado, err := repo.FindIngreso(context.Background(), ingreso.ID)
	require.NoError(t, err)
	require.NotNil(t, encontrado.ObraAsignada)
	assert.Equal(t, "Obra Ruta 40", *encontrado.ObraAsignada)
	assert.Equal(t, ingreso.InformeFallas, encontrado.InformeFallas, "lo no enviado no cambia")
}

func TestIngresoRepository_Integration_Busqueda(t *testing.T) {
	requirePool(t)
	cleanupTables(t, testPool)
	seedEquipo(t, testPool, "E1402")
	seedEquipo(t, testPool, "E1403")
	repo := NewIngresoRepository(testPool, zap.NewNop())

	primero, accion1 := nuevoIngreso("E1402")
	require.NoError(t, repo.CreateIngreso(context.Background(), primero, accion1))

	segundo := entities.Ingreso{
		ID:            uuid.NewString(),
		EquipoID:      "E1403",
		FechaIngreso:  "2025-10-10",
		InformeFallas: "Pérdida de fluido hidráulico",
	}
	accion2 := entities.Accion{
		ID:          uuid.NewString(),
		IngresoID:   segundo.ID,
		Descripcion: "Revisión de sellos",
		FechaAccion: "2025-10-11",
		Responsable: "S. Técnico",
	}
	require.NoError(t, repo.CreateIngreso(context.Background(), segundo, accion2))

	resultados, total, err := repo.GetIngresos(context.Background(), types.Filter{Search: "hidráulico"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, resultados, 1)
	assert.Equal(t, segundo.ID, resultados[0].ID)

	// También encuentra por descripción de acción.
	resultados, total, err = repo.GetIngresos(context.Background(), types.Filter{Search: "sellos"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, resultados, 1)
	assert.Equal(t, segundo.ID, resultados[0].ID)
}
