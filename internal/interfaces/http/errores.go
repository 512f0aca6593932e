package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/domain"
)

// respuestaError traduce un error de dominio a su respuesta HTTP. Todos los
// handlers pasan por aquí para que cada clase de error tenga siempre el
// mismo código y el mismo status.
func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrMontoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: "monto inválido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el nombre ya está en uso"})
	case errors.Is(err, domain.ErrFondosInsuficientes):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_FUNDS", Message: "fondos insuficientes"})
	case errors.Is(err, domain.ErrStockInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrPagoExcesivo):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EXCESS_PAYMENT", Message: "el pago excede el adeudo"})
	case errors.Is(err, domain.ErrOperacionInvalida):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_OPERATION", Message: "operación inválida"})
	case errors.Is(err, domain.ErrRespaldoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_BACKUP", Message: "respaldo inválido o incompleto"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
