package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/almacen"
	"github.com/gestormx/gestor-comercial/internal/application/dto"
	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// AlmacenHandler maneja consultas de inventario.
type AlmacenHandler struct {
	motor   *orquestador.Orquestador
	almacen *almacen.Servicio
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(motor *orquestador.Orquestador) *AlmacenHandler {
	return &AlmacenHandler{motor: motor, almacen: almacen.NuevoServicio()}
}

// List godoc
// @Summary      Snapshot del almacén
// @Tags         almacen
// @Produce      json
// @Success      200  {object}  map[string]entity.Articulo
// @Router       /api/almacen [get]
func (h *AlmacenHandler) List(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	return c.JSON(snap.Almacen)
}

// Umbrales godoc
// @Summary      Fijar cantidades mínima y máxima de un artículo
// @Tags         almacen
// @Accept       json
// @Produce      json
// @Param        clave  path  string               true  "ID o nombre del artículo"
// @Param        body   body  dto.UmbralesRequest  true  "cantidadMinima, cantidadMaxima (cero = sin tope)"
// @Success      200    {object}  entity.Articulo
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/almacen/{clave}/umbrales [put]
func (h *AlmacenHandler) Umbrales(c *fiber.Ctx) error {
	var in dto.UmbralesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	articulo, err := h.motor.FijarUmbrales(c.Params("clave"), in.CantidadMinima, in.CantidadMaxima)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(articulo)
}

// StockBajo godoc
// @Summary      Artículos en o por debajo del mínimo
// @Tags         almacen
// @Produce      json
// @Success      200  {array}  entity.Articulo
// @Router       /api/almacen/stock-bajo [get]
func (h *AlmacenHandler) StockBajo(c *fiber.Ctx) error {
	snap := h.motor.Snapshot()
	bajos := h.almacen.StockBajo(snap)
	if bajos == nil {
		bajos = []*entity.Articulo{}
	}
	return c.JSON(bajos)
}
