package repository

import (
	"context"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// SolicitudFiltro criterios del listado de la cola de revisión.
// Estado vacío significa sin filtro; el caso de uso aplica Pendiente por defecto.
type SolicitudFiltro struct {
	Estado    string
	EscuelaID string
}

// SolicitudRepository define el puerto de persistencia para Solicitud (proyecto primario).
//
// Los cambios de estado son actualizaciones condicionales: solo proceden si la fila
// sigue en Pendiente. Devuelven domain.ErrSolicitudYaProcesada cuando cero filas
// resultaron afectadas, para que dos revisores concurrentes no aprueben dos veces.
type SolicitudRepository interface {
	Create(ctx context.Context, s *entity.Solicitud) error
	GetByID(ctx context.Context, id string) (*entity.Solicitud, error)
	// List devuelve las solicitudes que cumplen el filtro ordenadas por creado_en
	// ascendente (la más antigua primero), con la escuela embebida.
	List(ctx context.Context, filtro SolicitudFiltro) ([]*entity.Solicitud, error)
	// Aceptar pasa la solicitud de Pendiente a Aceptado.
	Aceptar(ctx context.Context, id string) error
	// Rechazar pasa la solicitud de Pendiente a Rechazado.
	Rechazar(ctx context.Context, id string) error
}
