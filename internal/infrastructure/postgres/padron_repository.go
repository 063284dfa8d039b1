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

var _ repository.PadronRepository = (*PadronRepo)(nil)

// PadronRepo implementación de solo lectura contra el proyecto App-SISAEP.
// Recibe su propio pool: el padrón vive en otro proyecto hospedado.
type PadronRepo struct {
	pool *pgxpool.Pool
}

// NewPadronRepository construye el adaptador del padrón.
func NewPadronRepository(pool *pgxpool.Pool) *PadronRepo {
	return &PadronRepo{pool: pool}
}

// FindByBoletaYCCT busca el registro autoritativo. A lo sumo un resultado; (nil, nil) si no hay.
func (r *PadronRepo) FindByBoletaYCCT(ctx context.Context, boletaOEmpleado, cct string) (*entity.PadronRegistro, error) {
	query := `
		SELECT id, nombre, apellido_paterno, apellido_materno, boleta_o_empleado, correo, curp, escuela_cct
		FROM app_solicitudes
		WHERE boleta_o_empleado = $1 AND escuela_cct = $2
		LIMIT 1`
	var p entity.PadronRegistro
	err := r.pool.QueryRow(ctx, query, boletaOEmpleado, cct).Scan(
		&p.ID, &p.Nombre, &p.ApellidoPaterno, &p.ApellidoMaterno,
		&p.BoletaOEmpleado, &p.Correo, &p.CURP, &p.EscuelaCCT,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consulta padrón: %w", err)
	}
	return &p, nil
}
