package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// ContrapartesHandler maneja clientes y distribuidores (CRM).
type ContrapartesHandler struct {
	motor *orquestador.Orquestador
}

// NewContrapartesHandler construye el handler.
func NewContrapartesHandler(motor *orquestador.Orquestador) *ContrapartesHandler {
	return &ContrapartesHandler{motor: motor}
}

// List godoc
// @Summary      Listar contrapartes
// @Tags         contrapartes
// @Produce      json
// @Param        tipo  query  string  false  "cliente | distribuidor (vacío = ambos)"
// @Success      200   {array}  entity.Contraparte
// @Router       /api/contrapartes [get]
func (h *ContrapartesHandler) List(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	switch c.Query("tipo") {
	case entity.ContraparteCliente.String():
		return c.JSON(snap.Clientes)
	case entity.ContraparteDistribuidor.String():
		return c.JSON(snap.Distribuidores)
	default:
		return c.JSON(fiber.Map{
			"clientes":       snap.Clientes,
			"distribuidores": snap.Distribuidores,
		})
	}
}

// Renombrar godoc
// @Summary      Renombrar contraparte
// @Description  Cambia el nombre conservando identidad, adeudo e historial.
//
//	Falla con 409 si otro registro ya usa ese nombre.
//
// @Tags         contrapartes
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la contraparte"
// @Param        body  body  dto.RenombrarRequest  true  "tipo y nombre nuevo"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contrapartes/{id}/nombre [put]
func (h *ContrapartesHandler) Renombrar(c *fiber.Ctx) error {
	var in dto.RenombrarRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tipo := entity.TipoContraparte(in.Tipo)
	if !tipo.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo desconocido"})
	}
	if err := h.motor.RenombrarContraparte(tipo, c.Params("id"), in.Nombre); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"message": "contraparte renombrada"})
}
