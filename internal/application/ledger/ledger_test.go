package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestormx/gestor-comercial/internal/application/ledger"
	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del libro de cuentas: abonos, cargos y transferencias sobre el mapa
// de bancos. La propiedad central es que toda operación rechazada deja las
// cuentas intactas y que una transferencia conserva la suma de capitales.
// ──────────────────────────────────────────────────────────────────────────────

func TestCredit_SubeCapitalEHistorico(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Credit(bancos, "caja", decimal.NewFromInt(500), "Venta de contado")
	require.NoError(t, err)

	assert.True(t, bancos["caja"].CapitalActual.Equal(decimal.NewFromInt(1500)),
		"CapitalActual debe subir por el monto abonado")
	assert.True(t, bancos["caja"].Historico.Equal(decimal.NewFromInt(1500)),
		"Historico debe subir por el mismo monto")
	require.Len(t, bancos["caja"].Registros, 1)
	assert.Equal(t, "Venta de contado", bancos["caja"].Registros[0].Concepto)
	assert.NotEmpty(t, bancos["caja"].Registros[0].ID, "cada registro lleva su propio ID")
}

func TestHistoricoCredit_NoTocaCapital(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.HistoricoCredit(bancos, "caja", decimal.NewFromInt(300))
	require.NoError(t, err)

	assert.True(t, bancos["caja"].CapitalActual.Equal(decimal.NewFromInt(1000)),
		"el ingreso diferido no debe mover CapitalActual")
	assert.True(t, bancos["caja"].Historico.Equal(decimal.NewFromInt(1300)),
		"el ingreso diferido sube solo el acumulado histórico")
}

func TestDebit_DescuentaYRegistraGasto(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Debit(bancos, "caja", decimal.NewFromInt(400), "Pago de renta")
	require.NoError(t, err)

	assert.True(t, bancos["caja"].CapitalActual.Equal(decimal.NewFromInt(600)))
	assert.True(t, bancos["caja"].Historico.Equal(decimal.NewFromInt(1000)),
		"un gasto no debe tocar el histórico de ingresos")
	require.Len(t, bancos["caja"].Gastos, 1)
	assert.Equal(t, "Pago de renta", bancos["caja"].Gastos[0].Concepto)
}

func TestDebit_RechazaFondosInsuficientes(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Debit(bancos, "caja", decimal.NewFromInt(1001), "Pago de renta")
	require.ErrorIs(t, err, domain.ErrFondosInsuficientes)

	assert.True(t, bancos["caja"].CapitalActual.Equal(decimal.NewFromInt(1000)),
		"un cargo rechazado no debe mover el capital")
	assert.Empty(t, bancos["caja"].Gastos, "un cargo rechazado no debe dejar gasto registrado")
}

func TestTransfer_ConservaLaSumaDeCapitales(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()
	sumaAntes := bancos["caja"].CapitalActual.Add(bancos["ventas"].CapitalActual)

	err := svc.Transfer(bancos, "caja", "ventas", decimal.NewFromInt(250), "Corte de caja")
	require.NoError(t, err)

	sumaDespues := bancos["caja"].CapitalActual.Add(bancos["ventas"].CapitalActual)
	assert.True(t, sumaAntes.Equal(sumaDespues), "la transferencia debe conservar la suma de capitales")
	assert.True(t, bancos["caja"].CapitalActual.Equal(decimal.NewFromInt(750)))
	assert.True(t, bancos["ventas"].CapitalActual.Equal(decimal.NewFromInt(250)))
}

func TestTransfer_RegistraElParEnlazado(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Transfer(bancos, "caja", "ventas", decimal.NewFromInt(100), "Corte de caja")
	require.NoError(t, err)

	require.Len(t, bancos["caja"].Transferencias, 1)
	require.Len(t, bancos["ventas"].Transferencias, 1)

	salida := bancos["caja"].Transferencias[0]
	entrada := bancos["ventas"].Transferencias[0]
	assert.Equal(t, entity.TransferenciaSalida, salida.Direccion)
	assert.Equal(t, entity.TransferenciaEntrada, entrada.Direccion)
	assert.Equal(t, "ventas", salida.Contraparte)
	assert.Equal(t, "caja", entrada.Contraparte)
	assert.Equal(t, salida.Concepto, entrada.Concepto, "ambas patas comparten concepto")
	assert.True(t, salida.Fecha.Equal(entrada.Fecha), "ambas patas comparten fecha")
}

func TestTransfer_RechazaMismaCuenta(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Transfer(bancos, "caja", "caja", decimal.NewFromInt(100), "Corte de caja")
	assert.ErrorIs(t, err, domain.ErrOperacionInvalida)
}

func TestTransfer_RechazaFondosInsuficientesSinMoverNada(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	err := svc.Transfer(bancos, "ventas", "caja", decimal.NewFromInt(1), "Corte de caja")
	require.ErrorIs(t, err, domain.ErrFondosInsuficientes)

	assert.True(t, bancos["ventas"].CapitalActual.IsZero())
	assert.Empty(t, bancos["ventas"].Transferencias)
	assert.Empty(t, bancos["caja"].Transferencias)
}

// ── Precondiciones comunes ────────────────────────────────────────────────────

func TestValidaciones_CuentaInexistente(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	assert.ErrorIs(t, svc.Credit(bancos, "fantasma", decimal.NewFromInt(1), "x"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Debit(bancos, "fantasma", decimal.NewFromInt(1), "x"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.HistoricoCredit(bancos, "fantasma", decimal.NewFromInt(1)), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Transfer(bancos, "caja", "fantasma", decimal.NewFromInt(1), "x"), domain.ErrNotFound)
}

func TestValidaciones_MontoNoPositivo(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	assert.ErrorIs(t, svc.Credit(bancos, "caja", decimal.Zero, "x"), domain.ErrMontoInvalido)
	assert.ErrorIs(t, svc.Debit(bancos, "caja", decimal.NewFromInt(-5), "x"), domain.ErrMontoInvalido)
	assert.ErrorIs(t, svc.HistoricoCredit(bancos, "caja", decimal.Zero), domain.ErrMontoInvalido)
}

func TestValidaciones_ConceptoVacio(t *testing.T) {
	svc := ledger.NuevoServicio()
	bancos := bancosDePrueba()

	assert.ErrorIs(t, svc.Credit(bancos, "caja", decimal.NewFromInt(1), ""), domain.ErrOperacionInvalida)
	assert.ErrorIs(t, svc.Debit(bancos, "caja", decimal.NewFromInt(1), ""), domain.ErrOperacionInvalida)
}

// ── helper ────────────────────────────────────────────────────────────────────

// bancosDePrueba arma dos cuentas: caja con saldo inicial de 1000 y ventas
// en cero.
func bancosDePrueba() map[string]*entity.Banco {
	caja := entity.NuevoBanco("caja")
	caja.CapitalActual = decimal.NewFromInt(1000)
	caja.Historico = decimal.NewFromInt(1000)
	return map[string]*entity.Banco{
		"caja":   caja,
		"ventas": entity.NuevoBanco("ventas"),
	}
}
