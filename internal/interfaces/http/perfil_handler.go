package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/perfil"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
)

// PerfilHandler perfil del usuario autenticado.
type PerfilHandler struct {
	uc *perfil.PerfilUseCase
}

// NewPerfilHandler construye el handler de perfil.
func NewPerfilHandler(uc *perfil.PerfilUseCase) *PerfilHandler {
	return &PerfilHandler{uc: uc}
}

// Get godoc
// @Summary      Perfil del usuario autenticado
// @Tags         perfil
// @Produce      json
// @Success      200  {object}  dto.PerfilResponse
// @Security     BearerAuth
// @Router       /api/perfil [get]
func (h *PerfilHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c), GetEmail(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Actualizar perfil
// @Tags         perfil
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ActualizarPerfilRequest  true  "campos editables"
// @Success      200  {object}  dto.PerfilResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/perfil [put]
func (h *PerfilHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarPerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Context(), GetUserID(c), GetEmail(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha_nacimiento debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
