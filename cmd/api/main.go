package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	appanalytics "github.com/tu-usuario/gestion-pro/internal/application/analytics"
	"github.com/tu-usuario/gestion-pro/internal/application/auth"
	"github.com/tu-usuario/gestion-pro/internal/application/expenses"
	"github.com/tu-usuario/gestion-pro/internal/application/inventory"
	"github.com/tu-usuario/gestion-pro/internal/application/ports"
	"github.com/tu-usuario/gestion-pro/internal/application/sales"
	"github.com/tu-usuario/gestion-pro/internal/application/usecase"
	infraamqp "github.com/tu-usuario/gestion-pro/internal/infrastructure/amqp"
	"github.com/tu-usuario/gestion-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gestion-pro/internal/interfaces/http"
	"github.com/tu-usuario/gestion-pro/pkg/config"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
	"github.com/tu-usuario/gestion-pro/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB); err != nil {
		log.Fatal().Err(err).Msg("migraciones de base de datos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	metrics.Init("gestion_pro")

	// Broker de eventos opcional: sin AMQP_URL los casos de uso omiten la
	// publicación.
	var publisher ports.EventPublisher
	if cfg.AMQP.URL != "" {
		p, err := infraamqp.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn().Msg("AMQP_URL vacío, eventos de dominio deshabilitados")
	}

	clubRepo := postgres.NewClubRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewInventoryMovementRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	recurringRepo := postgres.NewRecurringExpenseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, clubRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clubUC := usecase.NewClubUseCase(clubRepo)
	productUC := usecase.NewProductUseCase(productRepo, stockRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, productRepo, movementRepo, publisher)
	saleUC := sales.NewCreateSaleUseCase(txRunner, productRepo, clientRepo, saleRepo, publisher)
	expenseUC := expenses.NewExpenseUseCase(expenseRepo, publisher)
	summaryUC := expenses.NewSummaryUseCase(expenseRepo)
	recurringUC := expenses.NewRecurringUseCase(recurringRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	// Gastos recurrentes: el procesador corre a diario y materializa las
	// plantillas cuyo día del mes ya llegó.
	processor := expenses.NewRecurringProcessor(recurringRepo, expenseRepo)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("30 2 * * *", func() {
		created, err := processor.ProcessDue(context.Background(), time.Now())
		if err != nil {
			log.Error().Err(err).Msg("procesar gastos recurrentes")
			return
		}
		if created > 0 {
			log.Info().Int("created", created).Msg("gastos recurrentes materializados")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("programar gastos recurrentes")
	}
	scheduler.Start()
	defer scheduler.Stop()

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("crear directorio de comprobantes")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClubUC:      clubUC,
		ProductUC:   productUC,
		ClientUC:    clientUC,
		EmployeeUC:  employeeUC,
		AdjustStock: adjustStockUC,
		SaleUC:      saleUC,
		ExpenseUC:   expenseUC,
		SummaryUC:   summaryUC,
		RecurringUC: recurringUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
		UploadDir:   cfg.Upload.Dir,
		UploadBase:  cfg.Upload.BaseURL,
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
