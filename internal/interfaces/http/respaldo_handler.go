package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/respaldo"
)

// RespaldoHandler exporta e importa respaldos completos del estado.
type RespaldoHandler struct {
	servicio *respaldo.Servicio
}

// NewRespaldoHandler construye el handler.
func NewRespaldoHandler(servicio *respaldo.Servicio) *RespaldoHandler {
	return &RespaldoHandler{servicio: servicio}
}

// Exportar godoc
// @Summary      Exportar respaldo
// @Tags         respaldo
// @Produce      json
// @Success      200  {object}  respaldo.Documento
// @Router       /api/respaldo [get]
func (h *RespaldoHandler) Exportar(c *fiber.Ctx) error {
	doc := h.servicio.Exportar()
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="respaldo-`+doc.Fecha+`.json"`)
	return c.JSON(doc)
}

// Importar godoc
// @Summary      Importar respaldo
// @Description  Valida la forma completa del respaldo antes de aplicarlo; un
//
//	documento malformado se rechaza entero sin importar nada.
//
// @Tags         respaldo
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/respaldo [post]
func (h *RespaldoHandler) Importar(c *fiber.Ctx) error {
	if err := h.servicio.Importar(c.Body()); err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"message": "respaldo importado"})
}
