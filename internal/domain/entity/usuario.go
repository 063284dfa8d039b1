package entity

import "time"

// Tipos de usuario derivados de la longitud de la boleta/número de empleado.
const (
	TipoAlumno        = "alumno"
	TipoProfesor      = "profesor"
	TipoAdministrador = "administrador"
	TipoDesconocido   = "desconocido"
)

// Usuario es el perfil local asociado a una cuenta de la plataforma de auth.
// La cuenta (email, contraseña) vive en la plataforma; aquí solo los datos editables.
type Usuario struct {
	UserID          string // uuid asignado por la plataforma de auth
	Nombre          string
	Telefono        string
	FechaNacimiento *time.Time
	CreadoEn        time.Time
	ActualizadoEn   time.Time
}

// CuentaProvisionada es la identidad creada en la plataforma de auth durante la
// verificación. La contraseña temporal se devuelve una sola vez y nunca se persiste.
type CuentaProvisionada struct {
	UserID string
	Email  string
}
