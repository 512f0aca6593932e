// Package ledger implementa el libro de cuentas bancarias: abonos, cargos y
// transferencias sobre el mapa de bancos. Es un almacén hoja: no conoce
// ventas, deudas ni almacén; el orquestador le pasa siempre un clon del
// estado y descarta el clon completo si cualquier precondición falla, por lo
// que toda operación rechazada deja las cuentas byte a byte intactas.
package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// Servicio opera sobre cuentas bancarias.
type Servicio struct{}

// NuevoServicio construye el servicio.
func NuevoServicio() *Servicio { return &Servicio{} }

// Credit abona monto a la cuenta: sube CapitalActual e Historico y agrega
// un Registro de ingreso.
func (s *Servicio) Credit(bancos map[string]*entity.Banco, cuenta string, monto decimal.Decimal, concepto string) error {
	b, err := validar(bancos, cuenta, monto, concepto)
	if err != nil {
		return err
	}
	b.CapitalActual = b.CapitalActual.Add(monto)
	b.Historico = b.Historico.Add(monto)
	b.Registros = append(b.Registros, entity.Registro{
		ID:       uuid.New().String(),
		Monto:    monto,
		Concepto: concepto,
		Fecha:    time.Now(),
	})
	return nil
}

// HistoricoCredit sube solo el acumulado histórico de la cuenta, sin tocar
// CapitalActual. Es la pata de ingreso diferido que usa el orquestador para
// la porción no cobrada de una venta.
func (s *Servicio) HistoricoCredit(bancos map[string]*entity.Banco, cuenta string, monto decimal.Decimal) error {
	b, ok := bancos[cuenta]
	if !ok {
		return domain.ErrNotFound
	}
	if monto.LessThanOrEqual(decimal.Zero) {
		return domain.ErrMontoInvalido
	}
	b.Historico = b.Historico.Add(monto)
	return nil
}

// Debit carga monto a la cuenta: falla con ErrFondosInsuficientes si el
// monto excede CapitalActual; si no, lo descuenta y agrega un Gasto.
func (s *Servicio) Debit(bancos map[string]*entity.Banco, cuenta string, monto decimal.Decimal, concepto string) error {
	b, err := validar(bancos, cuenta, monto, concepto)
	if err != nil {
		return err
	}
	if monto.GreaterThan(b.CapitalActual) {
		return domain.ErrFondosInsuficientes
	}
	b.CapitalActual = b.CapitalActual.Sub(monto)
	b.Gastos = append(b.Gastos, entity.Gasto{
		ID:       uuid.New().String(),
		Monto:    monto,
		Concepto: concepto,
		Fecha:    time.Now(),
	})
	return nil
}

// Transfer mueve monto de origen a destino registrando el par enlazado de
// transferencias (salida en origen, entrada en destino) con el mismo
// concepto y la misma fecha. La suma de capitales se conserva.
func (s *Servicio) Transfer(bancos map[string]*entity.Banco, origen, destino string, monto decimal.Decimal, concepto string) error {
	if origen == destino {
		return domain.ErrOperacionInvalida
	}
	de, err := validar(bancos, origen, monto, concepto)
	if err != nil {
		return err
	}
	hacia, ok := bancos[destino]
	if !ok {
		return domain.ErrNotFound
	}
	if monto.GreaterThan(de.CapitalActual) {
		return domain.ErrFondosInsuficientes
	}

	ahora := time.Now()
	de.CapitalActual = de.CapitalActual.Sub(monto)
	hacia.CapitalActual = hacia.CapitalActual.Add(monto)
	de.Transferencias = append(de.Transferencias, entity.Transferencia{
		ID:          uuid.New().String(),
		Direccion:   entity.TransferenciaSalida,
		Contraparte: destino,
		Monto:       monto,
		Concepto:    concepto,
		Fecha:       ahora,
	})
	hacia.Transferencias = append(hacia.Transferencias, entity.Transferencia{
		ID:          uuid.New().String(),
		Direccion:   entity.TransferenciaEntrada,
		Contraparte: origen,
		Monto:       monto,
		Concepto:    concepto,
		Fecha:       ahora,
	})
	return nil
}

// validar aplica las precondiciones comunes: cuenta existente, monto
// positivo y concepto presente.
func validar(bancos map[string]*entity.Banco, cuenta string, monto decimal.Decimal, concepto string) (*entity.Banco, error) {
	b, ok := bancos[cuenta]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if monto.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrMontoInvalido
	}
	if concepto == "" {
		return nil, domain.ErrOperacionInvalida
	}
	return b, nil
}
