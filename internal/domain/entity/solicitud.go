package entity

import "time"

// Estados válidos para Solicitud.
const (
	EstadoPendiente = "Pendiente"
	EstadoAceptado  = "Aceptado"
	EstadoRechazado = "Rechazado"
)

// Solicitud representa una petición de registro pendiente de revisión.
// Se crea por auto-registro y solo muta de estado: Pendiente -> Aceptado
// (verificación) o Pendiente -> Rechazado (revisor). Nunca se borra.
type Solicitud struct {
	ID              string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	BoletaOEmpleado string // la longitud en dígitos determina el tipo de usuario
	Correo          string
	CURP            string
	EscuelaID       string
	Estado          string // Pendiente, Aceptado, Rechazado
	CreadoEn        time.Time

	// Escuela embebida cuando el repositorio hace el join (listados y verificación).
	Escuela *Escuela
}

// NombreCompleto concatena nombre y apellidos para mostrar en listados.
func (s *Solicitud) NombreCompleto() string {
	full := s.Nombre
	if s.ApellidoPaterno != "" {
		full += " " + s.ApellidoPaterno
	}
	if s.ApellidoMaterno != "" {
		full += " " + s.ApellidoMaterno
	}
	return full
}

// CCT devuelve el código de centro de trabajo de la escuela asociada, si está cargada.
func (s *Solicitud) CCT() string {
	if s.Escuela == nil {
		return ""
	}
	return s.Escuela.CCT
}
