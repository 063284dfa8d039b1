package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
)

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementación del puerto SolicitudRepository sobre el proyecto primario.
type SolicitudRepo struct {
	pool *pgxpool.Pool
}

// NewSolicitudRepository construye el adaptador de persistencia para solicitudes.
func NewSolicitudRepository(pool *pgxpool.Pool) *SolicitudRepo {
	return &SolicitudRepo{pool: pool}
}

const solicitudColumns = `
	s.id, s.nombre, s.apellido_paterno, s.apellido_materno, s.boleta_o_empleado,
	s.correo, s.curp, s.escuela_id, s.estado, s.creado_en,
	e.id, e.nombre, e.siglas, e.cct`

// Create persiste una solicitud nueva en estado Pendiente.
func (r *SolicitudRepo) Create(ctx context.Context, s *entity.Solicitud) error {
	query := `
		INSERT INTO solicitudes (id, nombre, apellido_paterno, apellido_materno,
			boleta_o_empleado, correo, curp, escuela_id, estado, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Nombre, s.ApellidoPaterno, s.ApellidoMaterno, s.BoletaOEmpleado,
		s.Correo, s.CURP, s.EscuelaID, s.Estado, s.CreadoEn,
	)
	if err != nil {
		return fmt.Errorf("insert solicitud: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud con su escuela embebida. Devuelve (nil, nil) si no existe.
func (r *SolicitudRepo) GetByID(ctx context.Context, id string) (*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudColumns + `
		FROM solicitudes s
		JOIN escuelas e ON e.id = s.escuela_id
		WHERE s.id = $1`
	var s entity.Solicitud
	var e entity.Escuela
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Nombre, &s.ApellidoPaterno, &s.ApellidoMaterno, &s.BoletaOEmpleado,
		&s.Correo, &s.CURP, &s.EscuelaID, &s.Estado, &s.CreadoEn,
		&e.ID, &e.Nombre, &e.Siglas, &e.CCT,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitud by id: %w", err)
	}
	s.Escuela = &e
	return &s, nil
}

// List devuelve las solicitudes del filtro ordenadas de la más antigua a la más nueva.
func (r *SolicitudRepo) List(ctx context.Context, filtro repository.SolicitudFiltro) ([]*entity.Solicitud, error) {
	query := `
		SELECT ` + solicitudColumns + `
		FROM solicitudes s
		JOIN escuelas e ON e.id = s.escuela_id
		WHERE ($1 = '' OR s.estado = $1)
		  AND ($2 = '' OR s.escuela_id::text = $2)
		ORDER BY s.creado_en ASC`
	rows, err := r.pool.Query(ctx, query, filtro.Estado, filtro.EscuelaID)
	if err != nil {
		return nil, fmt.Errorf("list solicitudes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Solicitud
	for rows.Next() {
		var s entity.Solicitud
		var e entity.Escuela
		if err := rows.Scan(
			&s.ID, &s.Nombre, &s.ApellidoPaterno, &s.ApellidoMaterno, &s.BoletaOEmpleado,
			&s.Correo, &s.CURP, &s.EscuelaID, &s.Estado, &s.CreadoEn,
			&e.ID, &e.Nombre, &e.Siglas, &e.CCT,
		); err != nil {
			return nil, fmt.Errorf("scan solicitud: %w", err)
		}
		s.Escuela = &e
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Aceptar pasa la solicitud a Aceptado solo si sigue Pendiente.
func (r *SolicitudRepo) Aceptar(ctx context.Context, id string) error {
	return r.cambiarEstado(ctx, id, entity.EstadoAceptado)
}

// Rechazar pasa la solicitud a Rechazado solo si sigue Pendiente.
func (r *SolicitudRepo) Rechazar(ctx context.Context, id string) error {
	return r.cambiarEstado(ctx, id, entity.EstadoRechazado)
}

// cambiarEstado es la actualización condicional: cero filas afectadas significa
// que la solicitud ya no estaba Pendiente (otro revisor llegó primero).
func (r *SolicitudRepo) cambiarEstado(ctx context.Context, id, estado string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE solicitudes SET estado = $2 WHERE id = $1 AND estado = $3`,
		id, estado, entity.EstadoPendiente,
	)
	if err != nil {
		return fmt.Errorf("update estado solicitud: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSolicitudYaProcesada
	}
	return nil
}
