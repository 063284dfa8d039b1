package dto

// PerfilResponse perfil del usuario autenticado.
type PerfilResponse struct {
	UserID          string `json:"user_id"`
	Correo          string `json:"correo"`
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty"` // YYYY-MM-DD
}

// ActualizarPerfilRequest campos editables del perfil.
type ActualizarPerfilRequest struct {
	Nombre          string `json:"nombre" validate:"omitempty,max=200"`
	Telefono        string `json:"telefono" validate:"omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento" validate:"omitempty"` // YYYY-MM-DD
}
