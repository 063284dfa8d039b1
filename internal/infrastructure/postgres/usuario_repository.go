package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository (perfil local).
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador del perfil de usuario.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// GetByUserID obtiene el perfil. Devuelve (nil, nil) si aún no hay fila.
func (r *UsuarioRepo) GetByUserID(ctx context.Context, userID string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, nombre, COALESCE(telefono, ''), fecha_nacimiento, creado_en, actualizado_en
		FROM usuarios WHERE user_id = $1`, userID,
	).Scan(&u.UserID, &u.Nombre, &u.Telefono, &u.FechaNacimiento, &u.CreadoEn, &u.ActualizadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by user_id: %w", err)
	}
	return &u, nil
}

// Upsert crea o actualiza el perfil por user_id.
func (r *UsuarioRepo) Upsert(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (user_id, nombre, telefono, fecha_nacimiento, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			nombre = EXCLUDED.nombre,
			telefono = EXCLUDED.telefono,
			fecha_nacimiento = EXCLUDED.fecha_nacimiento,
			actualizado_en = EXCLUDED.actualizado_en`
	_, err := r.pool.Exec(ctx, query,
		u.UserID, u.Nombre, u.Telefono, u.FechaNacimiento, u.CreadoEn, u.ActualizadoEn,
	)
	if err != nil {
		return fmt.Errorf("upsert usuario: %w", err)
	}
	return nil
}
