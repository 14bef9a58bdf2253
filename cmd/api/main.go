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

	"github.com/jcastellanos/conecta-api/internal/application/auth"
	"github.com/jcastellanos/conecta-api/internal/application/invitation"
	"github.com/jcastellanos/conecta-api/internal/application/usecase"
	"github.com/jcastellanos/conecta-api/internal/infrastructure/email"
	"github.com/jcastellanos/conecta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastellanos/conecta-api/internal/interfaces/http"
	"github.com/jcastellanos/conecta-api/pkg/config"
	"github.com/jcastellanos/conecta-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Dependencias explícitas, sin globals: cada componente recibe lo suyo
	// por constructor para que los tests puedan sustituir fakes.
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	mailer := email.NewSMTPMailer(cfg.SMTP)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, licenseRepo)
	invitationUC := invitation.NewInvitationUseCase(companyRepo, userRepo, mailer, invitation.Config{
		Secret:      cfg.JWT.Secret,
		FrontendURL: cfg.App.FrontendURL,
	})
	ownerGuard := usecase.NewOwnerLimitGuard(userRepo)
	roleUC := usecase.NewRoleUseCase(userRepo, ownerGuard, txRunner)
	companyUsersUC := usecase.NewCompanyUsersUseCase(companyRepo, userRepo)

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
		Title:    "Conecta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		InvitationUC:   invitationUC,
		CompanyUsersUC: companyUsersUC,
		RoleUC:         roleUC,
		JWTCfg:         cfg.JWT,
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
