package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entrada es una recepción de mercancía al almacén. Inmutable.
type Entrada struct {
	ID            string          `json:"id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	Proveedor     string          `json:"proveedor"`
	Fecha         time.Time       `json:"fecha"`
}

// Salida es una baja de mercancía del almacén. Inmutable.
type Salida struct {
	ID         string          `json:"id"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	Referencia string          `json:"referencia"` // venta u operación que la originó
	Fecha      time.Time       `json:"fecha"`
}

// Articulo es un producto del almacén con su existencia y umbrales.
type Articulo struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	NombreNorm     string          `json:"nombreNorm"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	CantidadMinima decimal.Decimal `json:"cantidadMinima"`
	CantidadMaxima decimal.Decimal `json:"cantidadMaxima"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Entradas       []Entrada       `json:"entradas"`
	Salidas        []Salida        `json:"salidas"`
	CreadoEn       time.Time       `json:"creadoEn"`
}

// StockBajo indica si la existencia está en o por debajo del mínimo.
// Es un predicado derivado, no estado almacenado.
func (a *Articulo) StockBajo() bool {
	return a.Cantidad.LessThanOrEqual(a.CantidadMinima)
}

// Clone devuelve una copia profunda del artículo.
func (a *Articulo) Clone() *Articulo {
	c := *a
	c.Entradas = append([]Entrada(nil), a.Entradas...)
	c.Salidas = append([]Salida(nil), a.Salidas...)
	return &c
}

// CostoPromedio calcula el costo promedio ponderado tras una entrada.
// NuevoCosto = ((StockActual·CostoActual) + (CantEntrada·CostoEntrada)) / (StockActual + CantEntrada)
func CostoPromedio(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	suma := stockActual.Add(cantEntrada)
	if suma.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(suma)
}
