package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
	"github.com/gestormx/gestor-comercial/internal/infrastructure/pdf"
)

// VentasHandler maneja las peticiones HTTP de ventas.
type VentasHandler struct {
	motor *orquestador.Orquestador
	nota  *pdf.NotaVentaGenerator
}

// NewVentasHandler construye el handler.
func NewVentasHandler(motor *orquestador.Orquestador, nota *pdf.NotaVentaGenerator) *VentasHandler {
	return &VentasHandler{motor: motor, nota: nota}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearVentaRequest  true  "cliente, items, estadoPago (completo|parcial|pendiente), montoPagado (parcial)"
// @Success      201   {object}  entity.Venta
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentasHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	items := make([]orquestador.ItemVenta, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orquestador.ItemVenta{
			Clave:          it.Clave,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			CostoUnitario:  it.CostoUnitario,
			FletePorUnidad: it.FletePorUnidad,
		})
	}
	venta, err := h.motor.RegisterSale(orquestador.VentaInput{
		Cliente:     in.Cliente,
		Items:       items,
		EstadoPago:  entity.EstadoPago(in.EstadoPago),
		MontoPagado: in.MontoPagado,
	})
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  entity.Venta
// @Router       /api/ventas [get]
func (h *VentasHandler) List(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	return c.JSON(snap.Ventas)
}

// Nota godoc
// @Summary      Nota de venta en PDF
// @Tags         ventas
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/nota [get]
func (h *VentasHandler) Nota(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := h.motor.Snapshot()
	var venta *entity.Venta
	for _, v := range snap.Ventas {
		if v.ID == id {
			venta = v
			break
		}
	}
	if venta == nil {
		return respuestaError(c, domain.ErrNotFound)
	}
	contenido, err := h.nota.Generar(venta)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="nota-`+id+`.pdf"`)
	return c.Send(contenido)
}
