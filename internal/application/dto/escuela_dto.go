package dto

// EscuelaResponse una escuela del catálogo.
type EscuelaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Siglas string `json:"siglas"`
	CCT    string `json:"cct"`
}

// EscuelaListResponse listado de escuelas.
type EscuelaListResponse struct {
	Escuelas []EscuelaResponse `json:"escuelas"`
	Total    int               `json:"total"`
}
