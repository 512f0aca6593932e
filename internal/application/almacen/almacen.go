// Package almacen lleva las existencias del inventario con sus registros de
// entrada y salida. Almacén hoja: recibe clones del estado y nunca toca
// bancos ni contrapartes.
package almacen

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// Servicio opera sobre el almacén.
type Servicio struct{}

// NuevoServicio construye el servicio.
func NuevoServicio() *Servicio { return &Servicio{} }

// ReceiveStock registra una entrada de mercancía. Si el artículo no existe lo
// crea (alta por primera referencia); si existe, suma la cantidad y actualiza
// el costo unitario al promedio ponderado.
func (s *Servicio) ReceiveStock(e *entity.Estado, clave string, cantidad, costoUnitario decimal.Decimal, proveedor string) (*entity.Articulo, error) {
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if costoUnitario.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	ahora := time.Now()
	a := e.BuscarArticulo(clave)
	if a == nil {
		a = &entity.Articulo{
			ID:             uuid.New().String(),
			Nombre:         clave,
			NombreNorm:     entity.NormalizarNombre(clave),
			Cantidad:       decimal.Zero,
			CostoUnitario:  costoUnitario,
			PrecioUnitario: decimal.Zero,
			Entradas:       []entity.Entrada{},
			Salidas:        []entity.Salida{},
			CreadoEn:       ahora,
		}
		e.Almacen[a.ID] = a
	} else {
		a.CostoUnitario = entity.CostoPromedio(a.Cantidad, a.CostoUnitario, cantidad, costoUnitario)
	}
	a.Cantidad = a.Cantidad.Add(cantidad)
	a.Entradas = append(a.Entradas, entity.Entrada{
		ID:            uuid.New().String(),
		Cantidad:      cantidad,
		CostoUnitario: costoUnitario,
		Proveedor:     proveedor,
		Fecha:         ahora,
	})
	return a, nil
}

// IssueStock registra una salida de mercancía. Falla con ErrStockInsuficiente
// si la cantidad solicitada excede la existencia actual.
func (s *Servicio) IssueStock(e *entity.Estado, clave string, cantidad decimal.Decimal, referencia string) (*entity.Articulo, error) {
	if cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	a := e.BuscarArticulo(clave)
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if cantidad.GreaterThan(a.Cantidad) {
		return nil, domain.ErrStockInsuficiente
	}
	a.Cantidad = a.Cantidad.Sub(cantidad)
	a.Salidas = append(a.Salidas, entity.Salida{
		ID:         uuid.New().String(),
		Cantidad:   cantidad,
		Referencia: referencia,
		Fecha:      time.Now(),
	})
	return a, nil
}

// FijarUmbrales actualiza las cantidades mínima y máxima del artículo. La
// máxima en cero significa sin tope; si no, debe ser al menos la mínima.
func (s *Servicio) FijarUmbrales(e *entity.Estado, clave string, minima, maxima decimal.Decimal) (*entity.Articulo, error) {
	if minima.LessThan(decimal.Zero) || maxima.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if maxima.GreaterThan(decimal.Zero) && maxima.LessThan(minima) {
		return nil, domain.ErrEntradaInvalida
	}
	a := e.BuscarArticulo(clave)
	if a == nil {
		return nil, domain.ErrNotFound
	}
	a.CantidadMinima = minima
	a.CantidadMaxima = maxima
	return a, nil
}

// StockBajo devuelve los artículos en o por debajo de su cantidad mínima.
func (s *Servicio) StockBajo(e *entity.Estado) []*entity.Articulo {
	var bajos []*entity.Articulo
	for _, a := range e.Almacen {
		if a.StockBajo() {
			bajos = append(bajos, a)
		}
	}
	return bajos
}
