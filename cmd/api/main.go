package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/malithvisio/magcin-api/internal/application/analytics"
	"github.com/malithvisio/magcin-api/internal/application/auth"
	appbooking "github.com/malithvisio/magcin-api/internal/application/booking"
	"github.com/malithvisio/magcin-api/internal/application/quota"
	"github.com/malithvisio/magcin-api/internal/application/tenant"
	"github.com/malithvisio/magcin-api/internal/application/usecase"
	"github.com/malithvisio/magcin-api/internal/domain"
	infrapdf "github.com/malithvisio/magcin-api/internal/infrastructure/pdf"
	"github.com/malithvisio/magcin-api/internal/infrastructure/postgres"
	httpRouter "github.com/malithvisio/magcin-api/internal/interfaces/http"
	"github.com/malithvisio/magcin-api/pkg/config"
	"github.com/malithvisio/magcin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Service: cfg.App.Name,
		Env:     cfg.App.Env,
		Level:   "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	packageRepo := postgres.NewPackageRepository(pool)
	destinationRepo := postgres.NewDestinationRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	blogRepo := postgres.NewBlogRepository(pool)
	testimonialRepo := postgres.NewTestimonialRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledger := quota.NewLedger(userRepo, domain.DefaultPlanTable())
	resolver := tenant.NewResolver(userRepo)

	packageUC := usecase.NewPackageUseCase(packageRepo, categoryRepo, ledger, txRunner)
	destinationUC := usecase.NewDestinationUseCase(destinationRepo, ledger, txRunner)
	activityUC := usecase.NewActivityUseCase(activityRepo, ledger, txRunner)
	blogUC := usecase.NewBlogUseCase(blogRepo, ledger, txRunner)
	testimonialUC := usecase.NewTestimonialUseCase(testimonialRepo, ledger, txRunner)
	teamUC := usecase.NewTeamUseCase(teamRepo, ledger, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)

	voucherGen := infrapdf.NewMarotoVoucherGenerator()
	bookingUC := appbooking.NewUseCase(bookingRepo, packageRepo, userRepo, voucherGen)

	statsUC := analytics.NewStatsUseCase(statsRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Magcin API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		PackageUC:      packageUC,
		DestinationUC:  destinationUC,
		ActivityUC:     activityUC,
		BlogUC:         blogUC,
		TestimonialUC:  testimonialUC,
		TeamUC:         teamUC,
		CategoryUC:     categoryUC,
		BookingUC:      bookingUC,
		StatsUC:        statsUC,
		Ledger:         ledger,
		TenantResolver: resolver,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
