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

	appauth "github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/escuelas"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/perfil"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/solicitudes"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/verificacion"
	"github.com/aalvarez-ortega/sisaep-api/internal/infrastructure/authlocal"
	"github.com/aalvarez-ortega/sisaep-api/internal/infrastructure/gotrue"
	"github.com/aalvarez-ortega/sisaep-api/internal/infrastructure/postgres"
	"github.com/aalvarez-ortega/sisaep-api/internal/infrastructure/queue"
	httpRouter "github.com/aalvarez-ortega/sisaep-api/internal/interfaces/http"
	"github.com/aalvarez-ortega/sisaep-api/pkg/config"
	"github.com/aalvarez-ortega/sisaep-api/pkg/logger"
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

	// Proyecto primario: solicitudes, escuelas, perfiles.
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL (SISAP)")
	}
	defer pool.Close()

	// Segundo proyecto: padrón oficial, solo lectura.
	padronPool, err := postgres.NewPool(ctx, cfg.Padron)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL (padrón)")
	}
	defer padronPool.Close()

	solicitudRepo := postgres.NewSolicitudRepository(pool)
	escuelaRepo := postgres.NewEscuelaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	padronRepo := postgres.NewPadronRepository(padronPool)

	// Plataforma de auth: hospedada por defecto, en memoria para dev/tests.
	var authSvc appauth.Service
	if cfg.Auth.Mode == "local" {
		log.Warn().Msg("AUTH_MODE=local: las cuentas viven en memoria")
		authSvc = authlocal.NewProvider()
	} else {
		authSvc = gotrue.NewClient(cfg.Auth.BaseURL, cfg.Auth.AnonKey)
	}

	// Productor de eventos; con broker vacío queda inerte.
	producer := queue.NewProducer(cfg.Kafka.Broker, cfg.Kafka.Topic, cfg.Kafka.Username, cfg.Kafka.Password)
	defer producer.Close()

	jwtCfg := appauth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}
	authUC := appauth.NewAuthUseCase(authSvc, jwtCfg, cfg.Auth.RedirectURL)
	escuelasUC := escuelas.NewEscuelasUseCase(escuelaRepo)
	perfilUC := perfil.NewPerfilUseCase(usuarioRepo)
	solicitudesUC := solicitudes.NewSolicitudesUseCase(solicitudRepo)
	verificarUC := verificacion.NewVerificacionUseCase(
		solicitudRepo, padronRepo, authSvc, producer, cfg.Auth.RedirectURL, log.Zerolog(),
	)

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
		Title:    "SISAEP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		EscuelasUC:    escuelasUC,
		PerfilUC:      perfilUC,
		SolicitudesUC: solicitudesUC,
		VerificarUC:   verificarUC,
		JWTSecret:     cfg.JWT.Secret,
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
