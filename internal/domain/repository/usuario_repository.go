package repository

import (
	"context"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia del perfil local de usuario.
// La fila se crea en el primer guardado (upsert por user_id).
type UsuarioRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Usuario, error)
	Upsert(ctx context.Context, u *entity.Usuario) error
}
