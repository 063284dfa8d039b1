package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/escuelas"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/perfil"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/solicitudes"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/verificacion"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EscuelasUC    *escuelas.EscuelasUseCase
	PerfilUC      *perfil.PerfilUseCase
	SolicitudesUC *solicitudes.SolicitudesUseCase
	VerificarUC   *verificacion.VerificacionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Registro)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/recuperar", authHandler.Recuperar)
	authGroup.Post("/contrasena", authHandler.CambiarContrasena)

	// Envío de solicitud de registro (público: la hace quien aún no tiene cuenta)
	solicitudHandler := NewSolicitudHandler(deps.SolicitudesUC, deps.VerificarUC)
	api.Post("/solicitudes", solicitudHandler.Crear)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Escuelas (protegido)
	escuelasGroup := protected.Group("/escuelas")
	escuelaHandler := NewEscuelaHandler(deps.EscuelasUC)
	escuelasGroup.Get("/", escuelaHandler.List)

	// Perfil (protegido)
	perfilGroup := protected.Group("/perfil")
	perfilHandler := NewPerfilHandler(deps.PerfilUC)
	perfilGroup.Get("/", perfilHandler.Get)
	perfilGroup.Put("/", perfilHandler.Actualizar)

	// Solicitudes (protegido, solo administradores)
	solicitudesGroup := protected.Group("/solicitudes", RequireTipo(entity.TipoAdministrador))
	solicitudesGroup.Get("/", solicitudHandler.List)
	solicitudesGroup.Get("/:id", solicitudHandler.GetByID)
	solicitudesGroup.Post("/:id/verificar", solicitudHandler.Verificar)
	solicitudesGroup.Post("/:id/rechazar", solicitudHandler.Rechazar)
}
