package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenItem es una línea de orden de compra.
type OrdenItem struct {
	ArticuloID    string          `json:"articuloId,omitempty"`
	Nombre        string          `json:"nombre"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// OrdenCompra es una compra a un distribuidor; su total queda como adeudo
// del negocio hacia el distribuidor.
type OrdenCompra struct {
	ID             string          `json:"id"`
	DistribuidorID string          `json:"distribuidorId"`
	Distribuidor   string          `json:"distribuidor"`
	Items          []OrdenItem     `json:"items"`
	Total          decimal.Decimal `json:"total"`
	Fecha          time.Time       `json:"fecha"`
}

// Clone devuelve una copia profunda de la orden.
func (o *OrdenCompra) Clone() *OrdenCompra {
	c := *o
	c.Items = append([]OrdenItem(nil), o.Items...)
	return &c
}
