package escuelas

import (
	"context"
	"strings"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
)

// EscuelasUseCase catálogo de escuelas con búsqueda por siglas o nombre.
type EscuelasUseCase struct {
	repo repository.EscuelaRepository
}

// NewEscuelasUseCase construye el caso de uso.
func NewEscuelasUseCase(repo repository.EscuelaRepository) *EscuelasUseCase {
	return &EscuelasUseCase{repo: repo}
}

// List devuelve el catálogo; q filtra por subcadena en siglas o nombre, sin
// distinguir mayúsculas (mismo comportamiento que el buscador de la pantalla).
func (uc *EscuelasUseCase) List(ctx context.Context, q string) (*dto.EscuelaListResponse, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q = strings.ToLower(strings.TrimSpace(q))
	out := &dto.EscuelaListResponse{Escuelas: make([]dto.EscuelaResponse, 0, len(items))}
	for _, e := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Siglas), q) &&
			!strings.Contains(strings.ToLower(e.Nombre), q) {
			continue
		}
		out.Escuelas = append(out.Escuelas, dto.EscuelaResponse{
			ID:     e.ID,
			Nombre: e.Nombre,
			Siglas: e.Siglas,
			CCT:    e.CCT,
		})
	}
	out.Total = len(out.Escuelas)
	return out, nil
}
