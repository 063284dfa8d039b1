package auth

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/pkg/jwt"
	"github.com/aalvarez-ortega/sisaep-api/pkg/password"
)

// JWTConfig configuración para generación de tokens de la API.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

var telefonoRe = regexp.MustCompile(`^\d{10,15}$`)

// AuthUseCase casos de uso de autenticación: auto-registro, login, recuperación
// y cambio de contraseña. Las cuentas viven en la plataforma hospedada.
type AuthUseCase struct {
	platform    Service
	jwtCfg      JWTConfig
	redirectURL string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(platform Service, jwtCfg JWTConfig, redirectURL string) *AuthUseCase {
	return &AuthUseCase{platform: platform, jwtCfg: jwtCfg, redirectURL: redirectURL}
}

// Registro da de alta una cuenta de auto-registro. Valida la política de contraseña
// (mínimo 8, 1 mayúscula, 1 símbolo), mayoría de edad y teléfono de 10 a 15 dígitos.
// La plataforma envía el correo de confirmación; aquí no se persiste nada local.
func (uc *AuthUseCase) Registro(ctx context.Context, in dto.RegistroRequest) (*dto.RegistroResponse, error) {
	if !password.CumplePolitica(in.Contrasena) {
		return nil, domain.ErrInvalidInput
	}
	if !telefonoRe.MatchString(strings.TrimSpace(in.Telefono)) {
		return nil, domain.ErrInvalidInput
	}
	nacimiento, err := time.Parse("2006-01-02", in.FechaNacimiento)
	if err != nil || edad(nacimiento, time.Now()) < 18 {
		return nil, domain.ErrInvalidInput
	}

	cuenta, err := uc.platform.SignUp(ctx, SignUpParams{
		Email:       strings.ToLower(strings.TrimSpace(in.Correo)),
		Password:    in.Contrasena,
		RedirectURL: uc.redirectURL,
		Metadata: map[string]any{
			"nombre":           strings.TrimSpace(in.Nombre),
			"apellido_paterno": strings.TrimSpace(in.ApellidoPaterno),
			"apellido_materno": strings.TrimSpace(in.ApellidoMaterno),
			"fecha_nacimiento": in.FechaNacimiento,
			"telefono":         strings.TrimSpace(in.Telefono),
		},
	})
	if err != nil {
		return nil, err
	}
	return &dto.RegistroResponse{
		UserID:  cuenta.UserID,
		Correo:  cuenta.Email,
		Mensaje: "Cuenta creada. Revisa tu correo para confirmar.",
	}, nil
}

// Login verifica credenciales contra la plataforma y emite el JWT de la API
// con el tipo de usuario para las decisiones RBAC del middleware.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	ses, err := uc.platform.SignIn(ctx, strings.ToLower(strings.TrimSpace(in.Correo)), in.Contrasena)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, ses.UserID, ses.Email, ses.TipoUsuario, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		UserID:      ses.UserID,
		Correo:      ses.Email,
		TipoUsuario: ses.TipoUsuario,
	}, nil
}

// Recuperar dispara el correo de restablecimiento. Nunca indica si el correo
// existe: un fallo de la plataforma se registra pero la respuesta es la misma.
func (uc *AuthUseCase) Recuperar(ctx context.Context, correo string) {
	_ = uc.platform.Recover(ctx, strings.ToLower(strings.TrimSpace(correo)), uc.redirectURL)
}

// CambiarContrasena actualiza la contraseña usando la sesión temporal de recovery.
func (uc *AuthUseCase) CambiarContrasena(ctx context.Context, accessToken string, in dto.CambiarContrasenaRequest) error {
	if in.Nueva != in.Confirmar {
		return domain.ErrInvalidInput
	}
	if !password.CumplePolitica(in.Nueva) {
		return domain.ErrInvalidInput
	}
	return uc.platform.UpdatePassword(ctx, accessToken, in.Nueva)
}

// edad calcula años cumplidos a la fecha ref.
func edad(nacimiento, ref time.Time) int {
	years := ref.Year() - nacimiento.Year()
	aniversario := nacimiento.AddDate(years, 0, 0)
	if aniversario.After(ref) {
		years--
	}
	return years
}
