package dto

import "time"

// EscuelaResumen escuela embebida en una solicitud.
type EscuelaResumen struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Siglas string `json:"siglas"`
	CCT    string `json:"cct"`
}

// CrearSolicitudRequest entrada del formulario de solicitud de registro.
type CrearSolicitudRequest struct {
	Nombre          string `json:"nombre" validate:"required,max=200"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required,max=100"`
	ApellidoMaterno string `json:"apellido_materno" validate:"required,max=100"`
	BoletaOEmpleado string `json:"boleta_o_empleado" validate:"required"`
	Correo          string `json:"correo" validate:"required,email"`
	CURP            string `json:"curp" validate:"required,len=18"`
	EscuelaID       string `json:"escuela_id" validate:"required,uuid"`
}

// SolicitudResponse una solicitud de la cola de revisión.
type SolicitudResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	ApellidoPaterno string          `json:"apellido_paterno"`
	ApellidoMaterno string          `json:"apellido_materno"`
	NombreCompleto  string          `json:"nombre_completo"`
	BoletaOEmpleado string          `json:"boleta_o_empleado"`
	Correo          string          `json:"correo"`
	CURP            string          `json:"curp"`
	Estado          string          `json:"estado"`
	CreadoEn        time.Time       `json:"creado_en"`
	Escuela         *EscuelaResumen `json:"escuela,omitempty"`
}

// SolicitudListResponse listado con el total visible (para el contador de la pantalla).
type SolicitudListResponse struct {
	Solicitudes []SolicitudResponse `json:"solicitudes"`
	Total       int                 `json:"total"`
}

// VerificacionResponse resultado de la verificación de una solicitud.
// La contraseña temporal viaja aquí una sola vez; no puede recuperarse después.
type VerificacionResponse struct {
	OK                 bool   `json:"ok"`
	Reason             string `json:"reason,omitempty"`
	Detalle            string `json:"detalle,omitempty"`
	Correo             string `json:"correo,omitempty"`
	Contrasena         string `json:"contrasena,omitempty"`
	UserID             string `json:"user_id,omitempty"`
	TipoUsuario        string `json:"tipo_usuario,omitempty"`
	EscuelaCCT         string `json:"escuela_cct,omitempty"`
	RedirectURL        string `json:"redirect_url,omitempty"`
	EnlaceRespaldoHint string `json:"fallback_link_hint,omitempty"`
}
