package repository

import (
	"context"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// EscuelaRepository define el puerto de lectura del catálogo de escuelas.
type EscuelaRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Escuela, error)
	// List devuelve el catálogo completo ordenado por siglas.
	List(ctx context.Context) ([]*entity.Escuela, error)
}
