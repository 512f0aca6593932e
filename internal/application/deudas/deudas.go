// Package deudas lleva el adeudo de cada contraparte (clientes y
// distribuidores) con su historial de operaciones y abonos. Almacén hoja:
// recibe clones del estado y nunca toca bancos ni almacén.
package deudas

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// Servicio opera sobre contrapartes y sus adeudos.
type Servicio struct{}

// NuevoServicio construye el servicio.
func NuevoServicio() *Servicio { return &Servicio{} }

// EnsureCounterparty devuelve la contraparte cuyo nombre normalizado coincide
// o la crea con adeudo cero si no existe. La creación es explícita e
// idempotente: referirse dos veces al mismo nombre (con o sin acentos,
// mayúsculas o espacios extra) produce la misma contraparte.
func (s *Servicio) EnsureCounterparty(e *entity.Estado, tipo entity.TipoContraparte, nombre string) (*entity.Contraparte, error) {
	if !tipo.IsValid() || nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if existente := e.BuscarContraparteNombre(tipo, nombre); existente != nil {
		return existente, nil
	}
	c := &entity.Contraparte{
		ID:          uuid.New().String(),
		Tipo:        tipo,
		Nombre:      nombre,
		NombreNorm:  entity.NormalizarNombre(nombre),
		Adeudo:      decimal.Zero,
		Operaciones: []entity.OperacionRef{},
		Abonos:      []entity.Abono{},
		CreadoEn:    time.Now(),
	}
	if tipo == entity.ContraparteDistribuidor {
		e.Distribuidores = append(e.Distribuidores, c)
	} else {
		e.Clientes = append(e.Clientes, c)
	}
	return c, nil
}

// RecordCharge suma monto al adeudo y agrega la referencia de la operación
// que lo originó (venta u orden de compra).
func (s *Servicio) RecordCharge(c *entity.Contraparte, monto decimal.Decimal, tipoOperacion, ref string) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return domain.ErrMontoInvalido
	}
	c.Adeudo = c.Adeudo.Add(monto)
	c.Operaciones = append(c.Operaciones, entity.OperacionRef{
		ID:    uuid.New().String(),
		Tipo:  tipoOperacion,
		Ref:   ref,
		Monto: monto,
		Fecha: time.Now(),
	})
	return nil
}

// RecordPayment descuenta monto del adeudo. Falla con ErrMontoInvalido si el
// monto no es positivo y con ErrPagoExcesivo si excede el adeudo actual.
func (s *Servicio) RecordPayment(c *entity.Contraparte, monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return domain.ErrMontoInvalido
	}
	if monto.GreaterThan(c.Adeudo) {
		return domain.ErrPagoExcesivo
	}
	c.Adeudo = c.Adeudo.Sub(monto)
	c.Abonos = append(c.Abonos, entity.Abono{
		ID:    uuid.New().String(),
		Monto: monto,
		Fecha: time.Now(),
	})
	return nil
}

// Settle liquida la contraparte: un abono por el adeudo exacto pendiente.
// Devuelve el monto liquidado.
func (s *Servicio) Settle(c *entity.Contraparte) (decimal.Decimal, error) {
	monto := c.Adeudo
	if monto.IsZero() {
		return decimal.Zero, nil
	}
	if err := s.RecordPayment(c, monto); err != nil {
		return decimal.Zero, err
	}
	return monto, nil
}

// Rename cambia el nombre de la contraparte. Falla con ErrDuplicado si otro
// registro del mismo tipo ya usa ese nombre normalizado: las colisiones son
// explícitas, nunca una fusión implícita.
func (s *Servicio) Rename(e *entity.Estado, tipo entity.TipoContraparte, id, nuevoNombre string) error {
	if nuevoNombre == "" {
		return domain.ErrEntradaInvalida
	}
	c := e.BuscarContraparte(tipo, id)
	if c == nil {
		return domain.ErrNotFound
	}
	if otro := e.BuscarContraparteNombre(tipo, nuevoNombre); otro != nil && otro.ID != c.ID {
		return domain.ErrDuplicado
	}
	c.Nombre = nuevoNombre
	c.NombreNorm = entity.NormalizarNombre(nuevoNombre)
	return nil
}
