package solicitudes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/verificacion"
)

// ListParams criterios del listado de la cola de revisión.
type ListParams struct {
	Estado    string // Pendiente por defecto
	EscuelaID string
	Boleta    string // búsqueda por dígitos contenidos en boleta_o_empleado
}

// SolicitudesUseCase listados y consulta de la cola de revisión.
type SolicitudesUseCase struct {
	repo repository.SolicitudRepository
}

// NewSolicitudesUseCase construye el caso de uso.
func NewSolicitudesUseCase(repo repository.SolicitudRepository) *SolicitudesUseCase {
	return &SolicitudesUseCase{repo: repo}
}

// Crear registra una solicitud nueva en estado Pendiente. La boleta debe ser
// clasificable (10 dígitos alumno, 8/9 profesor) para no encolar solicitudes que
// la verificación rechazaría de entrada.
func (uc *SolicitudesUseCase) Crear(ctx context.Context, in dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error) {
	boleta := strings.TrimSpace(in.BoletaOEmpleado)
	correo := strings.ToLower(strings.TrimSpace(in.Correo))
	if in.Nombre == "" || in.ApellidoPaterno == "" || boleta == "" || correo == "" ||
		in.CURP == "" || in.EscuelaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if verificacion.ClasificarTipoUsuario(boleta) == entity.TipoDesconocido {
		return nil, domain.ErrInvalidInput
	}

	s := &entity.Solicitud{
		ID:              uuid.New().String(),
		Nombre:          strings.TrimSpace(in.Nombre),
		ApellidoPaterno: strings.TrimSpace(in.ApellidoPaterno),
		ApellidoMaterno: strings.TrimSpace(in.ApellidoMaterno),
		BoletaOEmpleado: boleta,
		Correo:          correo,
		CURP:            strings.ToUpper(strings.TrimSpace(in.CURP)),
		EscuelaID:       in.EscuelaID,
		Estado:          entity.EstadoPendiente,
		CreadoEn:        time.Now(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	resp := toResponse(s)
	return &resp, nil
}

// List devuelve las solicitudes filtradas, de la más antigua a la más nueva.
// El filtro de boleta se aplica sobre el resultado: se extraen los dígitos del
// término y se buscan como subcadena (tolera espacios y guiones pegados).
func (uc *SolicitudesUseCase) List(ctx context.Context, p ListParams) (*dto.SolicitudListResponse, error) {
	estado := p.Estado
	if estado == "" {
		estado = entity.EstadoPendiente
	}
	if estado != entity.EstadoPendiente && estado != entity.EstadoAceptado && estado != entity.EstadoRechazado {
		return nil, domain.ErrInvalidInput
	}

	items, err := uc.repo.List(ctx, repository.SolicitudFiltro{Estado: estado, EscuelaID: p.EscuelaID})
	if err != nil {
		return nil, err
	}

	if q := soloDigitos(p.Boleta); q != "" {
		filtradas := items[:0]
		for _, s := range items {
			if strings.Contains(s.BoletaOEmpleado, q) {
				filtradas = append(filtradas, s)
			}
		}
		items = filtradas
	}

	out := &dto.SolicitudListResponse{
		Solicitudes: make([]dto.SolicitudResponse, 0, len(items)),
		Total:       len(items),
	}
	for _, s := range items {
		out.Solicitudes = append(out.Solicitudes, toResponse(s))
	}
	return out, nil
}

// GetByID devuelve una solicitud con su escuela embebida.
func (uc *SolicitudesUseCase) GetByID(ctx context.Context, id string) (*dto.SolicitudResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toResponse(s)
	return &resp, nil
}

func toResponse(s *entity.Solicitud) dto.SolicitudResponse {
	resp := dto.SolicitudResponse{
		ID:              s.ID,
		Nombre:          s.Nombre,
		ApellidoPaterno: s.ApellidoPaterno,
		ApellidoMaterno: s.ApellidoMaterno,
		NombreCompleto:  s.NombreCompleto(),
		BoletaOEmpleado: s.BoletaOEmpleado,
		Correo:          s.Correo,
		CURP:            s.CURP,
		Estado:          s.Estado,
		CreadoEn:        s.CreadoEn,
	}
	if s.Escuela != nil {
		resp.Escuela = &dto.EscuelaResumen{
			ID:     s.Escuela.ID,
			Nombre: s.Escuela.Nombre,
			Siglas: s.Escuela.Siglas,
			CCT:    s.Escuela.CCT,
		}
	}
	return resp
}

func soloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
