package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
)

// BancosHandler maneja cuentas bancarias: snapshot, transferencias, gastos e
// ingresos.
type BancosHandler struct {
	motor *orquestador.Orquestador
}

// NewBancosHandler construye el handler.
func NewBancosHandler(motor *orquestador.Orquestador) *BancosHandler {
	return &BancosHandler{motor: motor}
}

// List godoc
// @Summary      Snapshot de cuentas bancarias
// @Tags         bancos
// @Produce      json
// @Success      200  {object}  map[string]entity.Banco
// @Router       /api/bancos [get]
func (h *BancosHandler) List(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	return c.JSON(snap.Bancos)
}

// Transferir godoc
// @Summary      Transferir entre cuentas
// @Tags         bancos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferenciaRequest  true  "origen, destino, monto, concepto"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/transferencias [post]
func (h *BancosHandler) Transferir(c *fiber.Ctx) error {
	var in dto.TransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.motor.RegisterTransfer(in.Origen, in.Destino, in.Monto, in.Concepto); err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "transferencia registrada"})
}

// Gasto godoc
// @Summary      Registrar gasto
// @Tags         bancos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoRequest  true  "cuenta, monto, concepto"
// @Success      201   {object}  map[string]string
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *BancosHandler) Gasto(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.motor.RegisterExpense(in.Cuenta, in.Monto, in.Concepto); err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "gasto registrado"})
}

// Ingreso godoc
// @Summary      Registrar ingreso
// @Tags         bancos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoRequest  true  "cuenta, monto, concepto"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingresos [post]
func (h *BancosHandler) Ingreso(c *fiber.Ctx) error {
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.motor.RegisterIncome(in.Cuenta, in.Monto, in.Concepto); err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ingreso registrado"})
}
