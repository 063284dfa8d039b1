package verificacion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/auth"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/verificacion"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de puertos
// ──────────────────────────────────────────────────────────────────────────────

type fakeSolicitudes struct {
	solicitud  *entity.Solicitud
	getErr     error
	aceptarErr error
	aceptadas  []string
	rechazadas []string
}

func (f *fakeSolicitudes) Create(ctx context.Context, s *entity.Solicitud) error { return nil }

func (f *fakeSolicitudes) GetByID(ctx context.Context, id string) (*entity.Solicitud, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.solicitud == nil || f.solicitud.ID != id {
		return nil, nil
	}
	return f.solicitud, nil
}

func (f *fakeSolicitudes) List(ctx context.Context, _ repository.SolicitudFiltro) ([]*entity.Solicitud, error) {
	return nil, nil
}

func (f *fakeSolicitudes) Aceptar(ctx context.Context, id string) error {
	if f.aceptarErr != nil {
		return f.aceptarErr
	}
	f.aceptadas = append(f.aceptadas, id)
	return nil
}

func (f *fakeSolicitudes) Rechazar(ctx context.Context, id string) error {
	if f.solicitud != nil && f.solicitud.Estado != entity.EstadoPendiente {
		return domain.ErrSolicitudYaProcesada
	}
	f.rechazadas = append(f.rechazadas, id)
	return nil
}

type fakePadron struct {
	registro *entity.PadronRegistro
	err      error
	llamadas int
}

func (f *fakePadron) FindByBoletaYCCT(ctx context.Context, boleta, cct string) (*entity.PadronRegistro, error) {
	f.llamadas++
	if f.err != nil {
		return nil, f.err
	}
	if f.registro == nil || f.registro.BoletaOEmpleado != boleta || f.registro.EscuelaCCT != cct {
		return nil, nil
	}
	return f.registro, nil
}

type fakeAuth struct {
	signUpErr error
	userID    string
	altas     []auth.SignUpParams
}

func (f *fakeAuth) SignUp(ctx context.Context, p auth.SignUpParams) (*entity.CuentaProvisionada, error) {
	f.altas = append(f.altas, p)
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &entity.CuentaProvisionada{UserID: f.userID, Email: p.Email}, nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*auth.Sesion, error) {
	return nil, domain.ErrUnauthorized
}

func (f *fakeAuth) Recover(ctx context.Context, email, redirectURL string) error { return nil }

func (f *fakeAuth) UpdatePassword(ctx context.Context, accessToken, nueva string) error { return nil }

type fakePublisher struct {
	eventos []verificacion.EventoSolicitud
}

func (f *fakePublisher) PublicarEventoSolicitud(ctx context.Context, ev verificacion.EventoSolicitud) error {
	f.eventos = append(f.eventos, ev)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos base: solicitud de alumno que coincide con el padrón
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSolicitudID = "sol-001"
	testRedirectURL = "https://escuela.example/Bienvenido.html"
)

func solicitudAlumno() *entity.Solicitud {
	return &entity.Solicitud{
		ID:              testSolicitudID,
		Nombre:          "María",
		ApellidoPaterno: "García",
		ApellidoMaterno: "López",
		BoletaOEmpleado: "2023630123", // 10 dígitos -> alumno
		Correo:          "maria.garcia@alumno.ipn.mx",
		CURP:            "GALM050101MDFRPR01",
		EscuelaID:       "esc-1",
		Estado:          entity.EstadoPendiente,
		Escuela:         &entity.Escuela{ID: "esc-1", Siglas: "ESCOM", Nombre: "Escuela Superior de Cómputo", CCT: "09DIT0019K"},
	}
}

func registroPadron() *entity.PadronRegistro {
	return &entity.PadronRegistro{
		ID:              "pad-001",
		Nombre:          "MARÍA",
		ApellidoPaterno: "GARCÍA",
		ApellidoMaterno: "LÓPEZ",
		BoletaOEmpleado: "2023630123",
		Correo:          "MARIA.GARCIA@ALUMNO.IPN.MX", // solo difiere en mayúsculas
		CURP:            "GALM050101MDFRPR01",
		EscuelaCCT:      "09DIT0019K",
	}
}

type fixture struct {
	solicitudes *fakeSolicitudes
	padron      *fakePadron
	authSvc     *fakeAuth
	publisher   *fakePublisher
	uc          *verificacion.VerificacionUseCase
}

func newFixture(sol *entity.Solicitud, reg *entity.PadronRegistro) *fixture {
	f := &fixture{
		solicitudes: &fakeSolicitudes{solicitud: sol},
		padron:      &fakePadron{registro: reg},
		authSvc:     &fakeAuth{userID: "uid-123"},
		publisher:   &fakePublisher{},
	}
	f.uc = verificacion.NewVerificacionUseCase(
		f.solicitudes, f.padron, f.authSvc, f.publisher, testRedirectURL, zerolog.Nop(),
	)
	return f
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests VerificarRegistro
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: la solicitud coincide con el padrón (el correo solo difiere en
// mayúsculas, lo cual es válido) → cuenta creada, solicitud Aceptada y evento publicado.
func TestVerificarRegistro_Exito(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Empty(t, out.Reason)
	assert.Equal(t, "maria.garcia@alumno.ipn.mx", out.Correo)
	assert.Equal(t, "uid-123", out.UserID)
	assert.Equal(t, entity.TipoAlumno, out.TipoUsuario)
	assert.Equal(t, "09DIT0019K", out.EscuelaCCT)
	assert.Equal(t, testRedirectURL, out.RedirectURL)
	assert.Len(t, out.Contrasena, 12, "la contraseña temporal viaja una sola vez en la respuesta")
	assert.NotEmpty(t, out.EnlaceRespaldoHint)

	// Efectos: alta con metadata completa, write-back y evento.
	require.Len(t, f.authSvc.altas, 1)
	alta := f.authSvc.altas[0]
	assert.Equal(t, out.Contrasena, alta.Metadata["temp_password"])
	assert.Equal(t, entity.TipoAlumno, alta.Metadata["tipo_usuario"])
	assert.Equal(t, "09DIT0019K", alta.Metadata["escuela_cct"])

	assert.Equal(t, []string{testSolicitudID}, f.solicitudes.aceptadas)

	require.Len(t, f.publisher.eventos, 1)
	ev := f.publisher.eventos[0]
	assert.Equal(t, entity.EstadoAceptado, ev.Estado)
	assert.Equal(t, testSolicitudID, ev.SolicitudID)
}

// Solicitud inexistente → domain.ErrNotFound (el único desenlace que es error).
func TestVerificarRegistro_NoExiste(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())

	_, err := f.uc.VerificarRegistro(context.Background(), "sol-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.authSvc.altas, "no debe crearse cuenta")
}

// Solicitud ya procesada al releer → SOLICITUD_YA_PROCESADA sin tocar padrón ni auth.
func TestVerificarRegistro_YaProcesadaAlReleer(t *testing.T) {
	sol := solicitudAlumno()
	sol.Estado = entity.EstadoAceptado
	f := newFixture(sol, registroPadron())

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "SOLICITUD_YA_PROCESADA", out.Reason)
	assert.Zero(t, f.padron.llamadas, "no debe consultarse el padrón")
	assert.Empty(t, f.authSvc.altas, "no debe crearse cuenta")
}

// Boleta con longitud no clasificable → AUTH_ERROR terminal, sin llamadas remotas.
func TestVerificarRegistro_BoletaNoClasificable(t *testing.T) {
	sol := solicitudAlumno()
	sol.BoletaOEmpleado = "12345" // ni 10 ni 8/9 dígitos
	f := newFixture(sol, registroPadron())

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "AUTH_ERROR", out.Reason)
	assert.Contains(t, out.Detalle, "10 dígitos")
	assert.Zero(t, f.padron.llamadas)
	assert.Empty(t, f.authSvc.altas)
}

// Sin registro en el padrón para (boleta, cct) → NO_EXISTE_PADRON y ninguna cuenta creada.
func TestVerificarRegistro_NoExisteEnPadron(t *testing.T) {
	f := newFixture(solicitudAlumno(), nil)

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "NO_EXISTE_PADRON", out.Reason)
	assert.Empty(t, f.authSvc.altas, "sin coincidencia en el padrón no se crea cuenta")
	assert.Empty(t, f.solicitudes.aceptadas, "la solicitud sigue Pendiente")
}

// Un campo comparado difiere (CURP) → DATOS_NO_COINCIDEN y ninguna cuenta creada.
func TestVerificarRegistro_DatosNoCoinciden(t *testing.T) {
	reg := registroPadron()
	reg.CURP = "XXXX050101MDFRPR01"
	f := newFixture(solicitudAlumno(), reg)

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "DATOS_NO_COINCIDEN", out.Reason)
	assert.Empty(t, f.authSvc.altas)
	assert.Empty(t, f.solicitudes.aceptadas)
}

// El correo ya tiene cuenta en la plataforma → EMAIL_YA_EXISTE y la solicitud queda Pendiente.
func TestVerificarRegistro_EmailYaExiste(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())
	f.authSvc.signUpErr = domain.ErrEmailYaExiste

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "EMAIL_YA_EXISTE", out.Reason)
	assert.Empty(t, f.solicitudes.aceptadas, "el estado no debe cambiar")
	assert.Empty(t, f.publisher.eventos)
}

// Fallo genérico de la plataforma en el alta → AUTH_ERROR, nunca error sin tipar.
func TestVerificarRegistro_FalloPlataforma(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())
	f.authSvc.signUpErr = errors.New("503 service unavailable")

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "AUTH_ERROR", out.Reason)
	assert.Empty(t, f.solicitudes.aceptadas)
}

// Otro revisor ganó la carrera después del alta: el update condicional no afecta
// filas → SOLICITUD_YA_PROCESADA con el detalle de que la cuenta sí se creó.
func TestVerificarRegistro_CarreraEnWriteBack(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())
	f.solicitudes.aceptarErr = domain.ErrSolicitudYaProcesada

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "SOLICITUD_YA_PROCESADA", out.Reason)
	assert.Contains(t, out.Detalle, "Usuario creado")
	require.Len(t, f.authSvc.altas, 1, "la cuenta sí llegó a crearse")
}

// El write-back falla con un error real de DB: la inconsistencia (cuenta creada,
// solicitud Pendiente) se reporta de forma observable, no se oculta.
func TestVerificarRegistro_WriteBackFalla(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())
	f.solicitudes.aceptarErr = errors.New("connection reset by peer")

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.False(t, out.OK)
	assert.Equal(t, "AUTH_ERROR", out.Reason)
	assert.Equal(t, "Usuario creado pero no se pudo actualizar el estado.", out.Detalle)
	assert.Empty(t, f.publisher.eventos, "sin write-back no hay evento")
}

// Boleta de 8 dígitos → la cuenta se provisiona como profesor.
func TestVerificarRegistro_ProfesorPorLongitud(t *testing.T) {
	sol := solicitudAlumno()
	sol.BoletaOEmpleado = "90123456"
	reg := registroPadron()
	reg.BoletaOEmpleado = "90123456"
	f := newFixture(sol, reg)

	out, err := f.uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, entity.TipoProfesor, out.TipoUsuario)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Rechazar
// ──────────────────────────────────────────────────────────────────────────────

// Rechazo directo: sin consulta al padrón ni alta de cuenta; se publica el evento.
func TestRechazar_SinLlamadasRemotas(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())

	err := f.uc.Rechazar(context.Background(), testSolicitudID)
	require.NoError(t, err)

	assert.Zero(t, f.padron.llamadas, "rechazar no consulta el padrón")
	assert.Empty(t, f.authSvc.altas, "rechazar no crea cuentas")
	assert.Equal(t, []string{testSolicitudID}, f.solicitudes.rechazadas)

	require.Len(t, f.publisher.eventos, 1)
	assert.Equal(t, entity.EstadoRechazado, f.publisher.eventos[0].Estado)
}

func TestRechazar_NoExiste(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())

	err := f.uc.Rechazar(context.Background(), "sol-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRechazar_YaProcesada(t *testing.T) {
	sol := solicitudAlumno()
	sol.Estado = entity.EstadoRechazado
	f := newFixture(sol, registroPadron())

	err := f.uc.Rechazar(context.Background(), testSolicitudID)
	assert.ErrorIs(t, err, domain.ErrSolicitudYaProcesada)
}

// El publisher es opcional: con nil la verificación termina igual de bien.
func TestVerificarRegistro_SinPublisher(t *testing.T) {
	f := newFixture(solicitudAlumno(), registroPadron())
	uc := verificacion.NewVerificacionUseCase(
		f.solicitudes, f.padron, f.authSvc, nil, testRedirectURL, zerolog.Nop(),
	)

	out, err := uc.VerificarRegistro(context.Background(), testSolicitudID)
	require.NoError(t, err)
	assert.True(t, out.OK)
}
