package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrEmailYaExiste        = errors.New("el correo ya tiene una cuenta en la plataforma de auth")
	ErrSolicitudYaProcesada = errors.New("la solicitud ya no está Pendiente")
)
