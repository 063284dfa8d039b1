// Package verificacion contiene la lógica pura de la verificación de registros:
// normalización y comparación de identidad contra el padrón, y clasificación del
// tipo de usuario por la longitud de la boleta o número de empleado.
package verificacion

import (
	"strings"

	"github.com/aalvarez-ortega/sisaep-api/internal/domain/entity"
)

// Razones con las que la verificación puede terminar. Todas se devuelven como
// resultado etiquetado, nunca como panic ni error sin tipar.
const (
	RazonAuthError          = "AUTH_ERROR"
	RazonNoExistePadron     = "NO_EXISTE_PADRON"
	RazonDatosNoCoinciden   = "DATOS_NO_COINCIDEN"
	RazonEmailYaExiste      = "EMAIL_YA_EXISTE"
	RazonSolicitudProcesada = "SOLICITUD_YA_PROCESADA"
)

// Normalizar prepara un campo de texto para comparación: recorta espacios y pasa a mayúsculas.
func Normalizar(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ClasificarTipoUsuario determina el tipo de usuario a partir de la boleta o número
// de empleado: 10 dígitos -> alumno, 8 o 9 -> profesor, cualquier otra longitud ->
// desconocido (falla terminal, sin llamadas remotas). Se ignoran los caracteres no numéricos.
func ClasificarTipoUsuario(boletaOEmpleado string) string {
	var digits int
	for _, r := range boletaOEmpleado {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch {
	case digits == 10:
		return entity.TipoAlumno
	case digits == 8 || digits == 9:
		return entity.TipoProfesor
	default:
		return entity.TipoDesconocido
	}
}

// DatosCoinciden compara campo a campo una solicitud contra su registro del padrón.
// Nombre, apellidos, CURP y correo se comparan normalizados (trim + mayúsculas);
// la boleta solo con trim. Igualdad total de todos los campos, sin coincidencia parcial.
func DatosCoinciden(s *entity.Solicitud, p *entity.PadronRegistro) bool {
	if s == nil || p == nil {
		return false
	}
	return Normalizar(s.Nombre) == Normalizar(p.Nombre) &&
		Normalizar(s.ApellidoPaterno) == Normalizar(p.ApellidoPaterno) &&
		Normalizar(s.ApellidoMaterno) == Normalizar(p.ApellidoMaterno) &&
		Normalizar(s.CURP) == Normalizar(p.CURP) &&
		Normalizar(s.Correo) == Normalizar(p.Correo) &&
		strings.TrimSpace(s.BoletaOEmpleado) == strings.TrimSpace(p.BoletaOEmpleado)
}

// MensajeEnlaceRespaldo es la pista que se muestra al revisor cuando el botón del
// correo de confirmación no funciona para el usuario recién dado de alta.
func MensajeEnlaceRespaldo() string {
	return "Si el botón no funciona, copia y pega el enlace de confirmación que viene debajo del botón en el correo. " +
		"Es un link de este estilo:\n" +
		"https://TU-PROYECTO.supabase.co/auth/v1/verify?token=...&type=signup&redirect_to=..."
}
