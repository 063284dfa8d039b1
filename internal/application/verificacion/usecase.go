package verificacion

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
	domver "github.com/aalvarez-ortega/sisaep-api/internal/domain/verificacion"
	"github.com/aalvarez-ortega/sisaep-api/pkg/password"
)

// VerificacionUseCase orquesta la verificación de una solicitud:
//
//	relectura fresca → precondiciones → búsqueda en padrón → comparación →
//	alta en la plataforma de auth → write-back condicional del estado
//
// Ningún fallo remoto escapa como error: cada paso se convierte en un resultado
// etiquetado (AUTH_ERROR, NO_EXISTE_PADRON, DATOS_NO_COINCIDEN, EMAIL_YA_EXISTE,
// SOLICITUD_YA_PROCESADA) que el handler traduce a mensaje de usuario.
type VerificacionUseCase struct {
	solicitudes repository.SolicitudRepository
	padron      repository.PadronRepository
	authSvc     auth.Service
	publisher   Publisher // puede ser nil
	redirectURL string
	log         zerolog.Logger
}

// NewVerificacionUseCase construye el orquestador con sus puertos.
func NewVerificacionUseCase(
	solicitudes repository.SolicitudRepository,
	padron repository.PadronRepository,
	authSvc auth.Service,
	publisher Publisher,
	redirectURL string,
	log zerolog.Logger,
) *VerificacionUseCase {
	return &VerificacionUseCase{
		solicitudes: solicitudes,
		padron:      padron,
		authSvc:     authSvc,
		publisher:   publisher,
		redirectURL: redirectURL,
		log:         log,
	}
}

// falla construye el resultado etiquetado de un paso fallido.
func falla(reason, detalle string) *dto.VerificacionResponse {
	return &dto.VerificacionResponse{OK: false, Reason: reason, Detalle: detalle}
}

// VerificarRegistro ejecuta la verificación completa de la solicitud.
// Devuelve domain.ErrNotFound solo si la solicitud no existe; cualquier otro
// desenlace, exitoso o no, viene en el resultado etiquetado.
func (uc *VerificacionUseCase) VerificarRegistro(ctx context.Context, solicitudID string) (*dto.VerificacionResponse, error) {
	// Relectura fresca: el estado pudo cambiar desde que el revisor cargó la lista.
	sol, err := uc.solicitudes.GetByID(ctx, solicitudID)
	if err != nil {
		return falla(domver.RazonAuthError, "No se pudo consultar la solicitud."), nil
	}
	if sol == nil {
		return nil, domain.ErrNotFound
	}
	if sol.Estado != entity.EstadoPendiente {
		return falla(domver.RazonSolicitudProcesada, "La solicitud ya fue procesada por otro revisor."), nil
	}

	// 1. Precondiciones: campos mínimos y tipo de usuario clasificable.
	cct := strings.TrimSpace(sol.CCT())
	boleta := strings.TrimSpace(sol.BoletaOEmpleado)
	email := strings.ToLower(strings.TrimSpace(sol.Correo))
	if cct == "" || boleta == "" || email == "" {
		return falla(domver.RazonAuthError, "Datos incompletos en la solicitud."), nil
	}
	tipoUsuario := domver.ClasificarTipoUsuario(boleta)
	if tipoUsuario == entity.TipoDesconocido {
		return falla(domver.RazonAuthError,
			"boleta_o_empleado debe tener 10 dígitos (alumno) o 8/9 dígitos (profesor)."), nil
	}

	// 2. Búsqueda en el padrón: 0 o 1 resultado esperado.
	padron, err := uc.padron.FindByBoletaYCCT(ctx, boleta, cct)
	if err != nil {
		uc.log.Error().Err(err).Str("solicitud_id", solicitudID).Msg("consulta al padrón")
		return falla(domver.RazonAuthError, ""), nil
	}
	if padron == nil {
		return falla(domver.RazonNoExistePadron, ""), nil
	}

	// 3. Comparación estricta campo a campo.
	if !domver.DatosCoinciden(sol, padron) {
		return falla(domver.RazonDatosNoCoinciden, ""), nil
	}

	// 4. Alta de cuenta con contraseña temporal. La plataforma manda el correo
	// de confirmación al destino configurado.
	pwd, err := password.GenerarTemporal(password.LongitudTemporal)
	if err != nil {
		return falla(domver.RazonAuthError, "No se pudo generar la contraseña temporal."), nil
	}
	cuenta, err := uc.authSvc.SignUp(ctx, auth.SignUpParams{
		Email:       email,
		Password:    pwd,
		RedirectURL: uc.redirectURL,
		Metadata: map[string]any{
			"temp_password":     pwd,
			"nombre":            sol.Nombre,
			"apellido_paterno":  sol.ApellidoPaterno,
			"apellido_materno":  sol.ApellidoMaterno,
			"boleta_o_empleado": boleta,
			"curp":              sol.CURP,
			"escuela_cct":       cct,
			"tipo_usuario":      tipoUsuario,
		},
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailYaExiste) {
			return falla(domver.RazonEmailYaExiste, ""), nil
		}
		uc.log.Error().Err(err).Str("solicitud_id", solicitudID).Msg("alta en plataforma de auth")
		return falla(domver.RazonAuthError, ""), nil
	}
	if cuenta == nil || cuenta.UserID == "" {
		return falla(domver.RazonAuthError, "No se recibió UID."), nil
	}

	// 5. Write-back condicional: solo si la fila sigue Pendiente. Cero filas
	// afectadas significa que otro revisor ganó la carrera después del alta.
	if err := uc.solicitudes.Aceptar(ctx, sol.ID); err != nil {
		if errors.Is(err, domain.ErrSolicitudYaProcesada) {
			uc.log.Error().Str("solicitud_id", solicitudID).Str("user_id", cuenta.UserID).
				Msg("usuario creado pero la solicitud ya había sido procesada")
			return falla(domver.RazonSolicitudProcesada,
				"Usuario creado pero la solicitud ya había sido procesada."), nil
		}
		// Ventana de inconsistencia conocida: cuenta provisionada con la solicitud
		// aún Pendiente. Se reporta explícitamente, no se oculta.
		uc.log.Error().Err(err).Str("solicitud_id", solicitudID).Str("user_id", cuenta.UserID).
			Msg("usuario creado pero no se pudo actualizar el estado")
		return falla(domver.RazonAuthError, "Usuario creado pero no se pudo actualizar el estado."), nil
	}

	uc.publicar(ctx, EventoSolicitud{
		SolicitudID: sol.ID,
		Correo:      email,
		Estado:      entity.EstadoAceptado,
		TipoUsuario: tipoUsuario,
		EscuelaCCT:  cct,
		Fecha:       time.Now(),
	})

	return &dto.VerificacionResponse{
		OK:                 true,
		Correo:             email,
		Contrasena:         pwd, // única vez que viaja; no se persiste
		UserID:             cuenta.UserID,
		TipoUsuario:        tipoUsuario,
		EscuelaCCT:         cct,
		RedirectURL:        uc.redirectURL,
		EnlaceRespaldoHint: domver.MensajeEnlaceRespaldo(),
	}, nil
}

// Rechazar pasa una solicitud Pendiente a Rechazado. Sin consulta al padrón ni
// alta de cuenta. Devuelve domain.ErrNotFound si no existe y
// domain.ErrSolicitudYaProcesada si ya no está Pendiente.
func (uc *VerificacionUseCase) Rechazar(ctx context.Context, solicitudID string) error {
	sol, err := uc.solicitudes.GetByID(ctx, solicitudID)
	if err != nil {
		return err
	}
	if sol == nil {
		return domain.ErrNotFound
	}
	if err := uc.solicitudes.Rechazar(ctx, sol.ID); err != nil {
		return err
	}
	uc.publicar(ctx, EventoSolicitud{
		SolicitudID: sol.ID,
		Correo:      strings.ToLower(strings.TrimSpace(sol.Correo)),
		Estado:      entity.EstadoRechazado,
		EscuelaCCT:  sol.CCT(),
		Fecha:       time.Now(),
	})
	return nil
}

func (uc *VerificacionUseCase) publicar(ctx context.Context, ev EventoSolicitud) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublicarEventoSolicitud(ctx, ev); err != nil {
		uc.log.Warn().Err(err).Str("solicitud_id", ev.SolicitudID).Msg("no se pudo publicar el evento")
	}
}
