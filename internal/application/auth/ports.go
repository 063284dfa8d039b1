package auth

import (
	"context"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// SignUpParams parámetros del alta de cuenta en la plataforma de autenticación.
// Metadata viaja como user_metadata de la cuenta; RedirectURL es el destino del
// botón del correo de confirmación.
type SignUpParams struct {
	Email       string
	Password    string
	RedirectURL string
	Metadata    map[string]any
}

// Sesion resultado de un inicio de sesión contra la plataforma.
// AccessToken es el token de la plataforma (no el JWT de esta API).
type Sesion struct {
	UserID      string
	Email       string
	TipoUsuario string
	AccessToken string
}

// Service es el puerto de salida hacia la plataforma de autenticación hospedada.
// La implementación real llama al API REST del proyecto; para dev/tests hay un
// proveedor local en memoria. Los errores vienen tipados: domain.ErrEmailYaExiste
// cuando el correo ya tiene cuenta y domain.ErrUnauthorized en credenciales inválidas.
type Service interface {
	SignUp(ctx context.Context, p SignUpParams) (*entity.CuentaProvisionada, error)
	SignIn(ctx context.Context, email, password string) (*Sesion, error)
	// Recover dispara el correo de restablecimiento. No revela si el correo existe.
	Recover(ctx context.Context, email, redirectURL string) error
	// UpdatePassword cambia la contraseña usando el access token de la sesión
	// temporal de recuperación que la plataforma emitió al seguir el enlace.
	UpdatePassword(ctx context.Context, accessToken, nueva string) error
}
