package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// PagosHandler maneja abonos y liquidaciones de contrapartes.
type PagosHandler struct {
	motor *orquestador.Orquestador
}

// NewPagosHandler construye el handler.
func NewPagosHandler(motor *orquestador.Orquestador) *PagosHandler {
	return &PagosHandler{motor: motor}
}

// Create godoc
// @Summary      Registrar pago/abono
// @Description  Abona al adeudo de la contraparte y registra la pata bancaria:
//
//	abono de cliente acredita la cuenta, pago a distribuidor la carga.
//
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PagoRequest  true  "tipo (cliente|distribuidor), nombre, monto, cuenta"
// @Success      201   {object}  entity.Contraparte
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pagos [post]
func (h *PagosHandler) Create(c *fiber.Ctx) error {
	var in dto.PagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contraparte, err := h.motor.RegisterPayment(orquestador.PagoInput{
		Tipo:   entity.TipoContraparte(in.Tipo),
		Nombre: in.Nombre,
		Monto:  in.Monto,
		Cuenta: in.Cuenta,
	})
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(contraparte)
}

// Liquidar godoc
// @Summary      Liquidar adeudo completo
// @Tags         pagos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LiquidacionRequest  true  "tipo, nombre, cuenta"
// @Success      200   {object}  entity.Contraparte
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pagos/liquidar [post]
func (h *PagosHandler) Liquidar(c *fiber.Ctx) error {
	var in dto.LiquidacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	contraparte, err := h.motor.LiquidarContraparte(entity.TipoContraparte(in.Tipo), in.Nombre, in.Cuenta)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(contraparte)
}
