package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aalvarez-ortega/sisaep-api/internal/application/dto"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/solicitudes"
	"github.com/aalvarez-ortega/sisaep-api/internal/application/verificacion"
	"github.com/aalvarez-ortega/sisaep-api/internal/domain"
)

// SolicitudHandler cola de revisión: listado, detalle, verificación y rechazo.
type SolicitudHandler struct {
	listado *solicitudes.SolicitudesUseCase
	verif   *verificacion.VerificacionUseCase
}

// NewSolicitudHandler construye el handler de solicitudes.
func NewSolicitudHandler(listado *solicitudes.SolicitudesUseCase, verif *verificacion.VerificacionUseCase) *SolicitudHandler {
	return &SolicitudHandler{listado: listado, verif: verif}
}

// Crear godoc
// @Summary      Enviar una solicitud de registro
// @Description  Encola la solicitud en estado Pendiente para revisión del administrador.
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearSolicitudRequest  true  "datos de la solicitud"
// @Success      201  {object}  dto.SolicitudResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.listado.Crear(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "todos los campos son requeridos y boleta_o_empleado debe tener 10 dígitos (alumno) o 8/9 dígitos (profesor)",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes de registro
// @Tags         solicitudes
// @Produce      json
// @Param        estado      query  string  false  "Pendiente | Aceptado | Rechazado (default Pendiente)"
// @Param        escuela_id  query  string  false  "filtrar por escuela"
// @Param        boleta      query  string  false  "búsqueda por boleta o número de empleado"
// @Success      200  {object}  dto.SolicitudListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	out, err := h.listado.List(c.Context(), solicitudes.ListParams{
		Estado:    c.Query("estado"),
		EscuelaID: c.Query("escuela_id"),
		Boleta:    c.Query("boleta"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una solicitud
// @Tags         solicitudes
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.SolicitudResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/solicitudes/{id} [get]
func (h *SolicitudHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.listado.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Verificar godoc
// @Summary      Verificar una solicitud contra el padrón
// @Description  Relee la solicitud, la compara con el padrón oficial y, si todo
// @Description  coincide, crea la cuenta y marca la solicitud como Aceptada. La
// @Description  contraseña temporal de la respuesta no puede recuperarse después.
// @Tags         solicitudes
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  dto.VerificacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.VerificacionResponse
// @Failure      422  {object}  dto.VerificacionResponse
// @Security     BearerAuth
// @Router       /api/solicitudes/{id}/verificar [post]
func (h *SolicitudHandler) Verificar(c *fiber.Ctx) error {
	out, err := h.verif.VerificarRegistro(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(statusVerificacion(out)).JSON(out)
}

// statusVerificacion traduce el resultado etiquetado a un código HTTP. El cuerpo
// lleva siempre el resultado completo; el código solo orienta al cliente.
func statusVerificacion(out *dto.VerificacionResponse) int {
	if out.OK {
		return fiber.StatusOK
	}
	switch out.Reason {
	case "NO_EXISTE_PADRON", "DATOS_NO_COINCIDEN":
		return fiber.StatusUnprocessableEntity
	case "EMAIL_YA_EXISTE", "SOLICITUD_YA_PROCESADA":
		return fiber.StatusConflict
	default:
		return fiber.StatusBadGateway
	}
}

// Rechazar godoc
// @Summary      Rechazar una solicitud
// @Description  Marca la solicitud como Rechazada sin consultar el padrón ni crear cuenta.
// @Tags         solicitudes
// @Produce      json
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/solicitudes/{id}/rechazar [post]
func (h *SolicitudHandler) Rechazar(c *fiber.Ctx) error {
	if err := h.verif.Rechazar(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		}
		if errors.Is(err, domain.ErrSolicitudYaProcesada) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_PROCESSED", Message: "la solicitud ya fue procesada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"mensaje": "Solicitud rechazada"})
}
