package entity

// Escuela catálogo de planteles. CCT es el código oficial del centro de trabajo
// y funciona como llave de cruce contra el padrón.
type Escuela struct {
	ID     string
	Nombre string
	Siglas string
	CCT    string
}
