package dto

import "github.com/shopspring/decimal"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// VentaItemRequest línea de venta. Clave acepta el ID del artículo o su nombre.
type VentaItemRequest struct {
	Clave          string          `json:"clave"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	FletePorUnidad decimal.Decimal `json:"fletePorUnidad"`
}

// CrearVentaRequest registrar una venta.
type CrearVentaRequest struct {
	Cliente     string             `json:"cliente"`
	Items       []VentaItemRequest `json:"items"`
	EstadoPago  string             `json:"estadoPago"`  // completo | parcial | pendiente
	MontoPagado decimal.Decimal    `json:"montoPagado"` // solo con estadoPago parcial
}

// OrdenItemRequest línea de orden de compra.
type OrdenItemRequest struct {
	Clave         string          `json:"clave"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// CrearOrdenRequest registrar una orden de compra.
type CrearOrdenRequest struct {
	Distribuidor string             `json:"distribuidor"`
	Items        []OrdenItemRequest `json:"items"`
}

// PagoRequest registrar un abono/pago contra el adeudo de una contraparte.
type PagoRequest struct {
	Tipo   string          `json:"tipo"` // cliente | distribuidor
	Nombre string          `json:"nombre"`
	Monto  decimal.Decimal `json:"monto"`
	Cuenta string          `json:"cuenta"`
}

// LiquidacionRequest liquidar el adeudo completo de una contraparte.
type LiquidacionRequest struct {
	Tipo   string `json:"tipo"`
	Nombre string `json:"nombre"`
	Cuenta string `json:"cuenta"`
}

// TransferenciaRequest mover fondos entre cuentas.
type TransferenciaRequest struct {
	Origen   string          `json:"origen"`
	Destino  string          `json:"destino"`
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
}

// MovimientoRequest registrar un gasto o un ingreso en una cuenta.
type MovimientoRequest struct {
	Cuenta   string          `json:"cuenta"`
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
}

// UmbralesRequest fijar las cantidades mínima y máxima de un artículo.
type UmbralesRequest struct {
	CantidadMinima decimal.Decimal `json:"cantidadMinima"`
	CantidadMaxima decimal.Decimal `json:"cantidadMaxima"` // cero = sin tope
}

// RenombrarRequest cambiar el nombre de una contraparte.
type RenombrarRequest struct {
	Tipo   string `json:"tipo"`
	Nombre string `json:"nombre"`
}
