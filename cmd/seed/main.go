package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/pkg/config"
	"github.com/brunoadrover/gestiontaller/pkg/database/postgresql"
	applogger "github.com/brunoadrover/gestiontaller/pkg/logger"
	"github.com/brunoadrover/gestiontaller/seeders"
)

// Carga el catálogo inicial de maquinaria y unos historiales de muestra.
// Correr después de las migraciones; es seguro correrlo más de una vez.
func main() {
	logger := applogger.NewLogger()
	cfg := config.New()

	if err := postgresql.RunMigrations(cfg.Postgres.DSN, "migrations"); err != nil {
		logger.Fatal("no se pudieron aplicar las migraciones", zap.Error(err))
	}

	pool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer pool.Close()

	if err := seeders.Seed(context.Background(), pool, logger); err != nil {
		logger.Fatal("falló la siembra de datos", zap.Error(err))
	}
	logger.Info("siembra completa")
}
