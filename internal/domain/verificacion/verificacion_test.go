package verificacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain/verificacion"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: una pareja solicitud/padrón que coincide campo a campo.
// ──────────────────────────────────────────────────────────────────────────────

func solicitudBase() *entity.Solicitud {
	return &entity.Solicitud{
		ID:              "sol-1",
		Nombre:          "María Fernanda",
		ApellidoPaterno: "García",
		ApellidoMaterno: "López",
		BoletaOEmpleado: "2020630123",
		Correo:          "maria@alumno.ipn.mx",
		CURP:            "GALM040101MDFRPR09",
	}
}

func padronBase() *entity.PadronRegistro {
	return &entity.PadronRegistro{
		ID:              "pad-1",
		Nombre:          "María Fernanda",
		ApellidoPaterno: "García",
		ApellidoMaterno: "López",
		BoletaOEmpleado: "2020630123",
		Correo:          "maria@alumno.ipn.mx",
		CURP:            "GALM040101MDFRPR09",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ClasificarTipoUsuario
// ──────────────────────────────────────────────────────────────────────────────

func TestClasificarTipoUsuario_PorLongitud(t *testing.T) {
	cases := []struct {
		nombre  string
		entrada string
		want    string
	}{
		{"boleta de 10 dígitos es alumno", "2020630123", entity.TipoAlumno},
		{"empleado de 8 dígitos es profesor", "12345678", entity.TipoProfesor},
		{"empleado de 9 dígitos es profesor", "123456789", entity.TipoProfesor},
		{"7 dígitos es desconocido", "1234567", entity.TipoDesconocido},
		{"11 dígitos es desconocido", "12345678901", entity.TipoDesconocido},
		{"vacío es desconocido", "", entity.TipoDesconocido},
		{"solo letras es desconocido", "ABCDEFGHIJ", entity.TipoDesconocido},
		{"se ignoran separadores", "2020-63-0123", entity.TipoAlumno},
		{"dígitos con espacios intercalados", " 12 34 56 78 ", entity.TipoProfesor},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, verificacion.ClasificarTipoUsuario(tc.entrada))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// DatosCoinciden — igualdad total de todos los campos comparados (trim + mayúsculas;
// boleta solo trim). Sin coincidencia parcial.
// ──────────────────────────────────────────────────────────────────────────────

func TestDatosCoinciden_IgualdadExacta(t *testing.T) {
	assert.True(t, verificacion.DatosCoinciden(solicitudBase(), padronBase()))
}

func TestDatosCoinciden_CorreoSoloDifiereEnMayusculas(t *testing.T) {
	s := solicitudBase()
	p := padronBase()
	s.Correo = "MARIA@Alumno.IPN.mx"
	p.Correo = "maria@alumno.ipn.mx"
	assert.True(t, verificacion.DatosCoinciden(s, p),
		"el correo debe compararse sin distinguir mayúsculas")
}

func TestDatosCoinciden_EspaciosAlrededorNoImportan(t *testing.T) {
	s := solicitudBase()
	s.Nombre = "  maría fernanda  "
	s.BoletaOEmpleado = " 2020630123 "
	assert.True(t, verificacion.DatosCoinciden(s, padronBase()))
}

func TestDatosCoinciden_CURPDistintaFalla(t *testing.T) {
	p := padronBase()
	p.CURP = "GALM040101MDFRPR00"
	assert.False(t, verificacion.DatosCoinciden(solicitudBase(), p))
}

func TestDatosCoinciden_CadaCampoCuenta(t *testing.T) {
	muta := []struct {
		nombre string
		f      func(*entity.PadronRegistro)
	}{
		{"nombre", func(p *entity.PadronRegistro) { p.Nombre = "Otra" }},
		{"apellido paterno", func(p *entity.PadronRegistro) { p.ApellidoPaterno = "Otro" }},
		{"apellido materno", func(p *entity.PadronRegistro) { p.ApellidoMaterno = "Otro" }},
		{"curp", func(p *entity.PadronRegistro) { p.CURP = "XXXX000000XXXXXX00" }},
		{"correo", func(p *entity.PadronRegistro) { p.Correo = "otro@alumno.ipn.mx" }},
		{"boleta", func(p *entity.PadronRegistro) { p.BoletaOEmpleado = "2020630124" }},
	}
	for _, m := range muta {
		t.Run(m.nombre, func(t *testing.T) {
			p := padronBase()
			m.f(p)
			assert.False(t, verificacion.DatosCoinciden(solicitudBase(), p),
				"cambiar %s debe romper la coincidencia", m.nombre)
		})
	}
}

// La comparación es simétrica: comparar (solicitud, padrón) y (padrón con los datos
// de la solicitud, solicitud con los datos del padrón) da el mismo resultado.
func TestDatosCoinciden_Simetrica(t *testing.T) {
	s := solicitudBase()
	p := padronBase()
	p.Correo = "MARIA@ALUMNO.IPN.MX" // difiere solo en mayúsculas

	espejoS := &entity.Solicitud{
		Nombre:          p.Nombre,
		ApellidoPaterno: p.ApellidoPaterno,
		ApellidoMaterno: p.ApellidoMaterno,
		BoletaOEmpleado: p.BoletaOEmpleado,
		Correo:          p.Correo,
		CURP:            p.CURP,
	}
	espejoP := &entity.PadronRegistro{
		Nombre:          s.Nombre,
		ApellidoPaterno: s.ApellidoPaterno,
		ApellidoMaterno: s.ApellidoMaterno,
		BoletaOEmpleado: s.BoletaOEmpleado,
		Correo:          s.Correo,
		CURP:            s.CURP,
	}
	assert.Equal(t,
		verificacion.DatosCoinciden(s, p),
		verificacion.DatosCoinciden(espejoS, espejoP))
}

func TestDatosCoinciden_NilNoCoincide(t *testing.T) {
	assert.False(t, verificacion.DatosCoinciden(nil, padronBase()))
	assert.False(t, verificacion.DatosCoinciden(solicitudBase(), nil))
}

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "GARCÍA", verificacion.Normalizar("  garcía "))
	assert.Equal(t, "", verificacion.Normalizar("   "))
}
