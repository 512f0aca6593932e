package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstadoPago es el estado de cobro de una venta.
// Transiciones válidas: pendiente → parcial → completo. Nunca retrocede;
// completo es terminal.
type EstadoPago string

const (
	PagoPendiente EstadoPago = "pendiente"
	PagoParcial   EstadoPago = "parcial"
	PagoCompleto  EstadoPago = "completo"
)

// IsValid indica si el estado es uno de los conocidos.
func (e EstadoPago) IsValid() bool {
	return e == PagoPendiente || e == PagoParcial || e == PagoCompleto
}

// String devuelve la representación en texto del estado.
func (e EstadoPago) String() string { return string(e) }

// IsTerminal indica si ya no admite más abonos.
func (e EstadoPago) IsTerminal() bool { return e == PagoCompleto }

// VentaItem es una línea de venta con precio, costo y flete por unidad.
type VentaItem struct {
	ArticuloID     string          `json:"articuloId,omitempty"`
	Nombre         string          `json:"nombre"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	CostoUnitario  decimal.Decimal `json:"costoUnitario"`
	FletePorUnidad decimal.Decimal `json:"fletePorUnidad"`
}

// Venta es una venta registrada con sus totales derivados y el saldo que el
// cliente aún debe por ella.
type Venta struct {
	ID              string          `json:"id"`
	ClienteID       string          `json:"clienteId"`
	Cliente         string          `json:"cliente"`
	Items           []VentaItem     `json:"items"`
	TotalVenta      decimal.Decimal `json:"totalVenta"`
	TotalFletes     decimal.Decimal `json:"totalFletes"`
	TotalUtilidades decimal.Decimal `json:"totalUtilidades"`
	EstadoPago      EstadoPago      `json:"estadoPago"`
	MontoPagado     decimal.Decimal `json:"montoPagado"`
	SaldoPendiente  decimal.Decimal `json:"saldoPendiente"`
	Fecha           time.Time       `json:"fecha"`
}

// AplicarAbono descuenta hasta `monto` del saldo pendiente de la venta y
// avanza el estado de pago (pendiente → parcial → completo). Devuelve la
// porción del monto efectivamente aplicada a esta venta.
func (v *Venta) AplicarAbono(monto decimal.Decimal) decimal.Decimal {
	if v.EstadoPago.IsTerminal() || monto.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	aplicado := decimal.Min(monto, v.SaldoPendiente)
	v.SaldoPendiente = v.SaldoPendiente.Sub(aplicado)
	v.MontoPagado = v.MontoPagado.Add(aplicado)
	if v.SaldoPendiente.IsZero() {
		v.EstadoPago = PagoCompleto
	} else if aplicado.GreaterThan(decimal.Zero) {
		v.EstadoPago = PagoParcial
	}
	return aplicado
}

// Clone devuelve una copia profunda de la venta.
func (v *Venta) Clone() *Venta {
	c := *v
	c.Items = append([]VentaItem(nil), v.Items...)
	return &c
}
