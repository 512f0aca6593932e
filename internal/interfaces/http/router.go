package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestormx/gestor-comercial/internal/application/orquestador"
	"github.com/gestormx/gestor-comercial/internal/application/respaldo"
	"github.com/gestormx/gestor-comercial/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Motor    *orquestador.Orquestador
	Respaldo *respaldo.Servicio
	NotaPDF  *pdf.NotaVentaGenerator
}

// Router registra las rutas de la API. Los paneles de UI consumen estos
// puntos de entrada y reciben snapshots actualizados; ningún colaborador
// muta un almacén hoja directamente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	ventasHandler := NewVentasHandler(deps.Motor, deps.NotaPDF)
	ventas := api.Group("/ventas")
	ventas.Post("/", ventasHandler.Create)
	ventas.Get("/", ventasHandler.List)
	ventas.Get("/:id/nota", ventasHandler.Nota)

	comprasHandler := NewComprasHandler(deps.Motor)
	compras := api.Group("/ordenes-compra")
	compras.Post("/", comprasHandler.Create)
	compras.Get("/", comprasHandler.List)

	pagosHandler := NewPagosHandler(deps.Motor)
	pagos := api.Group("/pagos")
	pagos.Post("/", pagosHandler.Create)
	pagos.Post("/liquidar", pagosHandler.Liquidar)

	bancosHandler := NewBancosHandler(deps.Motor)
	api.Get("/bancos", bancosHandler.List)
	api.Post("/transferencias", bancosHandler.Transferir)
	api.Post("/gastos", bancosHandler.Gasto)
	api.Post("/ingresos", bancosHandler.Ingreso)

	contrapartesHandler := NewContrapartesHandler(deps.Motor)
	contrapartes := api.Group("/contrapartes")
	contrapartes.Get("/", contrapartesHandler.List)
	contrapartes.Put("/:id/nombre", contrapartesHandler.Renombrar)

	almacenHandler := NewAlmacenHandler(deps.Motor)
	almacenGroup := api.Group("/almacen")
	almacenGroup.Get("/", almacenHandler.List)
	almacenGroup.Get("/stock-bajo", almacenHandler.StockBajo)
	almacenGroup.Put("/:clave/umbrales", almacenHandler.Umbrales)

	respaldoHandler := NewRespaldoHandler(deps.Respaldo)
	api.Get("/respaldo", respaldoHandler.Exportar)
	api.Post("/respaldo", respaldoHandler.Importar)
}
