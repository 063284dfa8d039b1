package repository

import (
	"context"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// PadronRepository define el puerto de solo lectura contra el padrón autoritativo
// (segundo proyecto hospedado). La búsqueda espera 0 o 1 resultado.
type PadronRepository interface {
	// FindByBoletaYCCT busca el registro con esa boleta/empleado en ese plantel.
	// Devuelve (nil, nil) cuando no existe.
	FindByBoletaYCCT(ctx context.Context, boletaOEmpleado, cct string) (*entity.PadronRegistro, error)
}
