package perfil

import (
	"context"
	"strings"
	"time"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
)

// PerfilUseCase lectura y edición del perfil local del usuario autenticado.
type PerfilUseCase struct {
	repo repository.UsuarioRepository
}

// NewPerfilUseCase construye el caso de uso.
func NewPerfilUseCase(repo repository.UsuarioRepository) *PerfilUseCase {
	return &PerfilUseCase{repo: repo}
}

// Get devuelve el perfil; si aún no hay fila local, responde solo con los datos
// de la sesión (la fila se crea en el primer guardado).
func (uc *PerfilUseCase) Get(ctx context.Context, userID, correo string) (*dto.PerfilResponse, error) {
	u, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := &dto.PerfilResponse{UserID: userID, Correo: correo}
	if u != nil {
		resp.Nombre = u.Nombre
		resp.Telefono = u.Telefono
		if u.FechaNacimiento != nil {
			resp.FechaNacimiento = u.FechaNacimiento.Format("2006-01-02")
		}
	}
	return resp, nil
}

// Actualizar guarda nombre, teléfono y fecha de nacimiento (upsert por user_id).
func (uc *PerfilUseCase) Actualizar(ctx context.Context, userID, correo string, in dto.ActualizarPerfilRequest) (*dto.PerfilResponse, error) {
	var nacimiento *time.Time
	if in.FechaNacimiento != "" {
		t, err := time.Parse("2006-01-02", in.FechaNacimiento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		nacimiento = &t
	}

	now := time.Now()
	u := &entity.Usuario{
		UserID:          userID,
		Nombre:          strings.TrimSpace(in.Nombre),
		Telefono:        strings.TrimSpace(in.Telefono),
		FechaNacimiento: nacimiento,
		ActualizadoEn:   now,
		CreadoEn:        now,
	}
	if err := uc.repo.Upsert(ctx, u); err != nil {
		return nil, err
	}
	return uc.Get(ctx, userID, correo)
}
