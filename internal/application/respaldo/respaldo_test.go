package respaldo_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestormx/gestor-comercial/internal/application/respaldo"
	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// motorFake implementa respaldo.Motor sobre un estado en memoria.
type motorFake struct {
	estado     *entity.Estado
	restaurado bool
}

func (m *motorFake) Snapshot() *entity.Estado { return m.estado.Clone() }

func (m *motorFake) Restaurar(e *entity.Estado) error {
	m.estado = e
	m.restaurado = true
	return nil
}

func TestExportar_FormaDelDocumento(t *testing.T) {
	motor := &motorFake{estado: estadoDePrueba()}
	svc := respaldo.NuevoServicio(motor, "1.2.0")

	doc := svc.Exportar()

	assert.Equal(t, "1.2.0", doc.Version)
	assert.NotEmpty(t, doc.Fecha, "la fecha de exportación viaja en el documento")
	require.NotNil(t, doc.Datos)
	assert.Contains(t, doc.Datos.Bancos, "caja")

	// El documento serializado lleva el bloque datos con las seis claves.
	datos, err := respaldo.Serializar(doc)
	require.NoError(t, err)

	var crudo map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(datos, &crudo))
	require.Contains(t, crudo, "datos")

	var bloque map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(crudo["datos"], &bloque))
	for _, clave := range entity.Claves() {
		assert.Contains(t, bloque, clave)
	}
}

func TestImportar_RoundTrip(t *testing.T) {
	origen := &motorFake{estado: estadoDePrueba()}
	svc := respaldo.NuevoServicio(origen, "1.2.0")

	datos, err := respaldo.Serializar(svc.Exportar())
	require.NoError(t, err)

	destino := &motorFake{estado: entity.NuevoEstado()}
	err = respaldo.NuevoServicio(destino, "1.2.0").Importar(datos)
	require.NoError(t, err)

	require.True(t, destino.restaurado)
	caja, ok := destino.estado.Bancos["caja"]
	require.True(t, ok, "el banco exportado debe sobrevivir el viaje completo")
	assert.True(t, caja.CapitalActual.Equal(decimal.NewFromInt(1000)))
	require.Len(t, destino.estado.Clientes, 1)
	assert.Equal(t, "María Pérez", destino.estado.Clientes[0].Nombre)
	assert.True(t, destino.estado.Clientes[0].Adeudo.Equal(decimal.NewFromInt(550)))
}

func TestImportar_RechazaJSONInvalido(t *testing.T) {
	motor := &motorFake{estado: entity.NuevoEstado()}
	svc := respaldo.NuevoServicio(motor, "1.2.0")

	err := svc.Importar([]byte("{esto no es json"))
	require.ErrorIs(t, err, domain.ErrRespaldoInvalido)
	assert.False(t, motor.restaurado, "un respaldo rechazado no debe aplicarse ni parcialmente")
}

func TestImportar_RechazaSinBloqueDatos(t *testing.T) {
	motor := &motorFake{estado: entity.NuevoEstado()}
	svc := respaldo.NuevoServicio(motor, "1.2.0")

	err := svc.Importar([]byte(`{"version":"1.0","fecha":"2026-01-01T00:00:00Z"}`))
	require.ErrorIs(t, err, domain.ErrRespaldoInvalido)
	assert.False(t, motor.restaurado)
}

func TestImportar_RechazaClaveFaltante(t *testing.T) {
	// Documento válido al que se le quita una clave de primer nivel.
	datos, err := respaldo.Serializar(respaldo.NuevoServicio(&motorFake{estado: estadoDePrueba()}, "1.0").Exportar())
	require.NoError(t, err)

	var crudo map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(datos, &crudo))
	var bloque map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(crudo["datos"], &bloque))
	delete(bloque, entity.ClaveAlmacen)
	crudo["datos"], err = json.Marshal(bloque)
	require.NoError(t, err)
	mutilado, err := json.Marshal(crudo)
	require.NoError(t, err)

	motor := &motorFake{estado: entity.NuevoEstado()}
	err = respaldo.NuevoServicio(motor, "1.0").Importar(mutilado)
	require.ErrorIs(t, err, domain.ErrRespaldoInvalido)
	assert.False(t, motor.restaurado)
}

func TestImportar_RechazaClaveConTipoIncorrecto(t *testing.T) {
	malo := []byte(`{
		"version": "1.0",
		"fecha": "2026-01-01T00:00:00Z",
		"datos": {
			"bancos": {},
			"ordenesCompra": [],
			"distribuidores": [],
			"ventas": "esto debería ser una lista",
			"clientes": [],
			"almacen": {}
		}
	}`)

	motor := &motorFake{estado: entity.NuevoEstado()}
	err := respaldo.NuevoServicio(motor, "1.0").Importar(malo)
	require.ErrorIs(t, err, domain.ErrRespaldoInvalido)
	assert.False(t, motor.restaurado)
}

func TestValidar_ReponeContenedoresNulos(t *testing.T) {
	minimo := []byte(`{
		"version": "1.0",
		"fecha": "2026-01-01T00:00:00Z",
		"datos": {
			"bancos": null,
			"ordenesCompra": null,
			"distribuidores": null,
			"ventas": null,
			"clientes": null,
			"almacen": null
		}
	}`)

	estado, err := respaldo.Validar(minimo)
	require.NoError(t, err)

	assert.NotNil(t, estado.Bancos)
	assert.NotNil(t, estado.Almacen)
	assert.NotNil(t, estado.Ventas)
	assert.NotNil(t, estado.Clientes)
	assert.NotNil(t, estado.Distribuidores)
	assert.NotNil(t, estado.OrdenesCompra)
}

// ── helper ────────────────────────────────────────────────────────────────────

func estadoDePrueba() *entity.Estado {
	e := entity.NuevoEstado()
	caja := entity.NuevoBanco("caja")
	caja.CapitalActual = decimal.NewFromInt(1000)
	caja.Historico = decimal.NewFromInt(1000)
	e.Bancos["caja"] = caja
	e.Clientes = append(e.Clientes, &entity.Contraparte{
		ID:         "c-1",
		Tipo:       entity.ContraparteCliente,
		Nombre:     "María Pérez",
		NombreNorm: entity.NormalizarNombre("María Pérez"),
		Adeudo:     decimal.NewFromInt(550),
	})
	return e
}
