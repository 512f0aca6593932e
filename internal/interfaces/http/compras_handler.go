package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
)

// ComprasHandler maneja las peticiones HTTP de órdenes de compra.
type ComprasHandler struct {
	motor *orquestador.Orquestador
}

// NewComprasHandler construye el handler.
func NewComprasHandler(motor *orquestador.Orquestador) *ComprasHandler {
	return &ComprasHandler{motor: motor}
}

// Create godoc
// @Summary      Registrar orden de compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearOrdenRequest  true  "distribuidor e items (clave, cantidad, costoUnitario)"
// @Success      201   {object}  entity.OrdenCompra
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *ComprasHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearOrdenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]orquestador.ItemOrden, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orquestador.ItemOrden{
			Clave:         it.Clave,
			Cantidad:      it.Cantidad,
			CostoUnitario: it.CostoUnitario,
		})
	}
	orden, err := h.motor.RegisterPurchaseOrder(orquestador.OrdenInput{
		Distribuidor: in.Distribuidor,
		Items:        items,
	})
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orden)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         compras
// @Produce      json
// @Success      200  {array}  entity.OrdenCompra
// @Router       /api/ordenes-compra [get]
func (h *ComprasHandler) List(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	return c.JSON(snap.OrdenesCompra)
}
