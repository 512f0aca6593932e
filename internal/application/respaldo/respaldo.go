// Package respaldo exporta e importa el estado completo en el formato de
// archivo de respaldo: { version, fecha, datos: { bancos, ordenesCompra,
// distribuidores, ventas, clientes, almacen } }. La importación valida la
// forma completa antes de aplicar: un respaldo malformado se rechaza entero,
// nunca se importa parcialmente.
package respaldo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// Motor es la vista del orquestador que necesita el respaldo: leer el
// snapshot vigente y reemplazar el estado completo.
type Motor interface {
	Snapshot() *entity.Estado
	Restaurar(e *entity.Estado) error
}

// Documento es el archivo de respaldo serializable.
type Documento struct {
	Version string         `json:"version"`
	Fecha   string         `json:"fecha"` // ISO-8601
	Datos   *entity.Estado `json:"datos"`
}

// Servicio implementa exportar/importar sobre el motor.
type Servicio struct {
	motor   Motor
	version string
}

// NuevoServicio construye el servicio. version etiqueta los respaldos
// exportados (normalmente la versión de la aplicación).
func NuevoServicio(motor Motor, version string) *Servicio {
	return &Servicio{motor: motor, version: version}
}

// Exportar arma el documento de respaldo con el snapshot vigente.
func (s *Servicio) Exportar() *Documento {
	return &Documento{
		Version: s.version,
		Fecha:   time.Now().Format(time.RFC3339),
		Datos:   s.motor.Snapshot(),
	}
}

// Importar valida el respaldo crudo y, solo si su forma es completa,
// reemplaza el estado del motor. Cualquier defecto devuelve
// ErrRespaldoInvalido sin aplicar nada.
func (s *Servicio) Importar(raw []byte) error {
	estado, err := Validar(raw)
	if err != nil {
		return err
	}
	return s.motor.Restaurar(estado)
}

// Serializar codifica el documento con sangría, listo para escribirse como
// archivo de respaldo.
func Serializar(doc *Documento) ([]byte, error) {
	datos, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializar respaldo: %w", err)
	}
	return datos, nil
}

// esquema refleja el documento con los datos sin decodificar, para poder
// verificar la presencia de cada clave antes de interpretarla.
type esquema struct {
	Version string                     `json:"version"`
	Fecha   string                     `json:"fecha"`
	Datos   map[string]json.RawMessage `json:"datos"`
}

// Validar verifica la forma del respaldo y devuelve el estado que contiene.
// Exige el bloque `datos` con las seis claves de primer nivel presentes y
// decodificables.
func Validar(raw []byte) (*entity.Estado, error) {
	var doc esquema
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRespaldoInvalido, err)
	}
	if doc.Datos == nil {
		return nil, fmt.Errorf("%w: falta el bloque datos", domain.ErrRespaldoInvalido)
	}
	for _, clave := range entity.Claves() {
		if _, ok := doc.Datos[clave]; !ok {
			return nil, fmt.Errorf("%w: falta la clave %q", domain.ErrRespaldoInvalido, clave)
		}
	}

	estado := entity.NuevoEstado()
	decodificar := map[string]any{
		entity.ClaveBancos:         &estado.Bancos,
		entity.ClaveOrdenesCompra:  &estado.OrdenesCompra,
		entity.ClaveDistribuidores: &estado.Distribuidores,
		entity.ClaveVentas:         &estado.Ventas,
		entity.ClaveClientes:       &estado.Clientes,
		entity.ClaveAlmacen:        &estado.Almacen,
	}
	for clave, destino := range decodificar {
		if err := json.Unmarshal(doc.Datos[clave], destino); err != nil {
			return nil, fmt.Errorf("%w: clave %q: %v", domain.ErrRespaldoInvalido, clave, err)
		}
	}
	normalizar(estado)
	return estado, nil
}

// normalizar repone contenedores nulos tras la decodificación para que el
// resto del sistema nunca vea mapas o listas nil.
func normalizar(e *entity.Estado) {
	if e.Bancos == nil {
		e.Bancos = map[string]*entity.Banco{}
	}
	if e.Almacen == nil {
		e.Almacen = map[string]*entity.Articulo{}
	}
	if e.OrdenesCompra == nil {
		e.OrdenesCompra = []*entity.OrdenCompra{}
	}
	if e.Distribuidores == nil {
		e.Distribuidores = []*entity.Contraparte{}
	}
	if e.Ventas == nil {
		e.Ventas = []*entity.Venta{}
	}
	if e.Clientes == nil {
		e.Clientes = []*entity.Contraparte{}
	}
}
