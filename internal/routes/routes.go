package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/brunoadrover/gestiontaller/internal/controllers"
	"github.com/brunoadrover/gestiontaller/internal/engine"
	"github.com/brunoadrover/gestiontaller/internal/repositories"
	"github.com/brunoadrover/gestiontaller/internal/services"
	"github.com/brunoadrover/gestiontaller/pkg/config"
	"github.com/brunoadrover/gestiontaller/pkg/middleware"
	"github.com/brunoadrover/gestiontaller/pkg/service"
)

// InitRouter arma toda la cadena repositorio → servicio → controlador y
// registra las rutas. Sólo el login queda fuera del middleware de sesión.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")
	authMW := middleware.NewAuthMiddleware(jwtSvc, logger)

	equipoRepo := repositories.NewEquipoRepository(dbConn, logger)
	ingresoRepo := repositories.NewIngresoRepository(dbConn, logger)
	informeRepo := repositories.NewInformeRepository(dbConn, logger)

	var cacheRepo repositories.CacheRepositoryInterface
	if redisClient != nil {
		cacheRepo = repositories.NewRedisCacheRepository(redisClient)
	}

	classifier := engine.NewClassifier(engine.DefaultKeywords())
	clock := services.SystemClock{}

	authService := services.NewAuthService(cfg.Taller.PasswordHash, jwtSvc, logger)
	equipoService := services.NewEquipoService(equipoRepo, logger)
	ingresoService := services.NewIngresoService(ingresoRepo, equipoRepo, informeRepo, classifier, clock, logger)
	dashboardService := services.NewDashboardService(ingresoRepo, equipoRepo, cacheRepo, classifier, clock, cfg.Taller.DashboardCacheTTL, logger)
	reporteService := services.NewReporteService(ingresoRepo, equipoRepo, classifier, clock, logger)

	authCtrl := controllers.NewAuthController(authService, logger)
	equipoCtrl := controllers.NewEquipoController(equipoService, logger)
	ingresoCtrl := controllers.NewIngresoController(ingresoService, dashboardService, logger)
	dashboardCtrl := controllers.NewDashboardController(dashboardService, logger)
	reportCtrl := controllers.NewReportController(reporteService, logger)

	runAuthRouter(api, authCtrl)

	protegido := api.Group("", authMW.Auth)
	runEquipoRouter(protegido, equipoCtrl)
	runIngresoRouter(protegido, ingresoCtrl)
	runDashboardRouter(protegido, dashboardCtrl)
	runReporteRouter(protegido, reportCtrl)

	logger.Info("rutas registradas")
}
