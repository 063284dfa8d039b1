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

var _ repository.EscuelaRepository = (*EscuelaRepo)(nil)

// EscuelaRepo implementación del puerto EscuelaRepository sobre el proyecto primario.
type EscuelaRepo struct {
	pool *pgxpool.Pool
}

// NewEscuelaRepository construye el adaptador del catálogo de escuelas.
func NewEscuelaRepository(pool *pgxpool.Pool) *EscuelaRepo {
	return &EscuelaRepo{pool: pool}
}

// GetByID obtiene una escuela. Devuelve (nil, nil) si no existe.
func (r *EscuelaRepo) GetByID(ctx context.Context, id string) (*entity.Escuela, error) {
	var e entity.Escuela
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, siglas, cct FROM escuelas WHERE id = $1`, id,
	).Scan(&e.ID, &e.Nombre, &e.Siglas, &e.CCT)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get escuela by id: %w", err)
	}
	return &e, nil
}

// List devuelve el catálogo completo ordenado por siglas.
func (r *EscuelaRepo) List(ctx context.Context) ([]*entity.Escuela, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, siglas, cct FROM escuelas ORDER BY siglas ASC`)
	if err != nil {
		return nil, fmt.Errorf("list escuelas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Escuela
	for rows.Next() {
		var e entity.Escuela
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Siglas, &e.CCT); err != nil {
			return nil, fmt.Errorf("scan escuela: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
