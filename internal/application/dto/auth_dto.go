package dto

// RegistroRequest entrada del auto-registro de cuenta (password en texto, lo recibe la plataforma).
type RegistroRequest struct {
	Nombre          string `json:"nombre" validate:"required,min=1,max=200"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required,max=100"`
	ApellidoMaterno string `json:"apellido_materno" validate:"required,max=100"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"required"` // YYYY-MM-DD
	Telefono        string `json:"telefono" validate:"required"`
	Correo          string `json:"correo" validate:"required,email"`
	Contrasena      string `json:"contrasena" validate:"required,min=8"`
}

// RegistroResponse salida del auto-registro.
type RegistroResponse struct {
	UserID  string `json:"user_id"`
	Correo  string `json:"correo"`
	Mensaje string `json:"mensaje"`
}

// LoginRequest entrada para iniciar sesión.
type LoginRequest struct {
	Correo     string `json:"correo" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required"`
}

// LoginResponse salida con el token JWT de la API.
type LoginResponse struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	Correo      string `json:"correo"`
	TipoUsuario string `json:"tipo_usuario"`
}

// RecuperarRequest entrada de la recuperación de contraseña.
type RecuperarRequest struct {
	Correo string `json:"correo" validate:"required,email"`
}

// CambiarContrasenaRequest entrada para actualizar la contraseña (sesión de recovery).
type CambiarContrasenaRequest struct {
	Nueva     string `json:"nueva" validate:"required,min=8"`
	Confirmar string `json:"confirmar" validate:"required"`
}
