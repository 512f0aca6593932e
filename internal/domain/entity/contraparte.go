package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoContraparte distingue clientes (nos deben) de distribuidores (les debemos).
type TipoContraparte string

const (
	ContraparteCliente      TipoContraparte = "cliente"
	ContraparteDistribuidor TipoContraparte = "distribuidor"
)

// IsValid indica si el tipo es uno de los conocidos.
func (t TipoContraparte) IsValid() bool {
	return t == ContraparteCliente || t == ContraparteDistribuidor
}

// String devuelve la representación en texto del tipo.
func (t TipoContraparte) String() string { return string(t) }

// Tipos de operación que originan un cargo al adeudo.
const (
	OperacionVenta       = "venta"
	OperacionOrdenCompra = "ordenCompra"
)

// OperacionRef referencia inmutable a la operación que originó un cargo.
type OperacionRef struct {
	ID    string          `json:"id"`
	Tipo  string          `json:"tipo"` // venta | ordenCompra
	Ref   string          `json:"ref"`  // ID de la venta u orden de compra
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}

// Abono es un pago que reduce el adeudo. Inmutable una vez registrado.
type Abono struct {
	ID    string          `json:"id"`
	Monto decimal.Decimal `json:"monto"`
	Fecha time.Time       `json:"fecha"`
}

// Contraparte es un cliente o distribuidor con su saldo pendiente.
// La identidad es el ID (UUID); Nombre es un atributo renombrable y
// NombreNorm su forma canónica para detectar colisiones.
// Invariante: Adeudo = Σ cargos − Σ abonos, nunca menor que cero.
type Contraparte struct {
	ID          string          `json:"id"`
	Tipo        TipoContraparte `json:"tipo"`
	Nombre      string          `json:"nombre"`
	NombreNorm  string          `json:"nombreNorm"`
	Adeudo      decimal.Decimal `json:"adeudo"`
	Operaciones []OperacionRef  `json:"operaciones"`
	Abonos      []Abono         `json:"abonos"`
	CreadoEn    time.Time       `json:"creadoEn"`
}

// Clone devuelve una copia profunda de la contraparte.
func (c *Contraparte) Clone() *Contraparte {
	d := *c
	d.Operaciones = append([]OperacionRef(nil), c.Operaciones...)
	d.Abonos = append([]Abono(nil), c.Abonos...)
	return &d
}
