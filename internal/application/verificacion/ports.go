package verificacion

import (
	"context"
	"time"
)

// EventoSolicitud evento de ciclo de vida publicado cuando una solicitud cambia de
// estado, para que el servicio de correo aguas abajo notifique al interesado.
// Nunca lleva la contraseña temporal.
type EventoSolicitud struct {
	SolicitudID string    `json:"solicitud_id"`
	Correo      string    `json:"correo"`
	Estado      string    `json:"estado"`
	TipoUsuario string    `json:"tipo_usuario,omitempty"`
	EscuelaCCT  string    `json:"escuela_cct,omitempty"`
	Fecha       time.Time `json:"fecha"`
}

// Publisher puerto de salida hacia el broker de eventos. Puede ser nil: la
// publicación es best-effort y nunca afecta el resultado de la verificación.
type Publisher interface {
	PublicarEventoSolicitud(ctx context.Context, ev EventoSolicitud) error
}
