package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/escuelas"
)

// EscuelaHandler catálogo de escuelas.
type EscuelaHandler struct {
	uc *escuelas.EscuelasUseCase
}

// NewEscuelaHandler construye el handler de escuelas.
func NewEscuelaHandler(uc *escuelas.EscuelasUseCase) *EscuelaHandler {
	return &EscuelaHandler{uc: uc}
}

// List godoc
// @Summary      Listar escuelas
// @Tags         escuelas
// @Produce      json
// @Param        q  query  string  false  "búsqueda por siglas o nombre"
// @Success      200  {object}  dto.EscuelaListResponse
// @Security     BearerAuth
// @Router       /api/escuelas [get]
func (h *EscuelaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
