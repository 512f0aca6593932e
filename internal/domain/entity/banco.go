package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de una transferencia vista desde la cuenta que la registra.
const (
	TransferenciaSalida  = "salida"
	TransferenciaEntrada = "entrada"
)

// Gasto es un egreso de una cuenta. Inmutable una vez registrado.
type Gasto struct {
	ID       string          `json:"id"`
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
	Fecha    time.Time       `json:"fecha"`
}

// Registro es un ingreso genérico de una cuenta. Inmutable una vez registrado.
type Registro struct {
	ID       string          `json:"id"`
	Monto    decimal.Decimal `json:"monto"`
	Concepto string          `json:"concepto"`
	Fecha    time.Time       `json:"fecha"`
}

// Transferencia es un movimiento entre dos cuentas. Cada transferencia se
// registra como un par enlazado: salida en la cuenta origen y entrada en la
// destino, con el mismo concepto y la misma fecha.
type Transferencia struct {
	ID          string          `json:"id"`
	Direccion   string          `json:"direccion"` // salida | entrada
	Contraparte string          `json:"contraparte"`
	Monto       decimal.Decimal `json:"monto"`
	Concepto    string          `json:"concepto"`
	Fecha       time.Time       `json:"fecha"`
}

// Banco es una cuenta nominal con saldo disponible y acumulado histórico.
// CapitalActual nunca queda negativo tras una operación; Historico solo crece.
type Banco struct {
	Clave          string          `json:"clave"`
	CapitalActual  decimal.Decimal `json:"capitalActual"`
	Historico      decimal.Decimal `json:"historico"`
	Gastos         []Gasto         `json:"gastos"`
	Transferencias []Transferencia `json:"transferencias"`
	Registros      []Registro      `json:"registros"`
}

// NuevoBanco crea una cuenta con saldo e histórico en cero.
func NuevoBanco(clave string) *Banco {
	return &Banco{
		Clave:          clave,
		CapitalActual:  decimal.Zero,
		Historico:      decimal.Zero,
		Gastos:         []Gasto{},
		Transferencias: []Transferencia{},
		Registros:      []Registro{},
	}
}

// Clone devuelve una copia profunda de la cuenta.
func (b *Banco) Clone() *Banco {
	c := *b
	c.Gastos = append([]Gasto(nil), b.Gastos...)
	c.Transferencias = append([]Transferencia(nil), b.Transferencias...)
	c.Registros = append([]Registro(nil), b.Registros...)
	return &c
}
