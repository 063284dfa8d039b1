package entity

// PadronRegistro es el registro autoritativo del padrón (proyecto App-SISAEP).
// Una solicitud solo se aprueba si existe un registro con la misma
// (boleta_o_empleado, escuela_cct) y todos los campos comparados coinciden.
type PadronRegistro struct {
	ID              string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	BoletaOEmpleado string
	Correo          string
	CURP            string
	EscuelaCCT      string
}
