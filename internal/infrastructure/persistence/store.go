// Package persistence implementa el colaborador de persistencia del estado:
// un valor JSON serializable por almacén de primer nivel, bajo claves
// estables, leído al arrancar y reescrito tras cada operación confirmada.
// Dos adaptadores: archivos JSON locales y PostgreSQL (jsonb por clave).
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gestormx/gestor-comercial/internal/domain/entity"
)

// SnapshotStore es el puerto de persistencia del estado completo.
type SnapshotStore interface {
	// Cargar reconstruye el estado desde las claves persistidas; las claves
	// ausentes quedan como contenedores vacíos.
	Cargar(ctx context.Context) (*entity.Estado, error)
	// Guardar reescribe el valor de cada clave con el snapshot recibido.
	Guardar(ctx context.Context, e *entity.Estado) error
}

// fragmentos serializa el estado en un documento JSON por clave estable.
func fragmentos(e *entity.Estado) (map[string][]byte, error) {
	porClave := map[string]any{
		entity.ClaveBancos:         e.Bancos,
		entity.ClaveOrdenesCompra:  e.OrdenesCompra,
		entity.ClaveDistribuidores: e.Distribuidores,
		entity.ClaveVentas:         e.Ventas,
		entity.ClaveClientes:       e.Clientes,
		entity.ClaveAlmacen:        e.Almacen,
	}
	out := make(map[string][]byte, len(porClave))
	for clave, valor := range porClave {
		datos, err := json.Marshal(valor)
		if err != nil {
			return nil, fmt.Errorf("serializar %s: %w", clave, err)
		}
		out[clave] = datos
	}
	return out, nil
}

// armar reconstruye el estado desde los documentos leídos; las claves
// ausentes se quedan con el contenedor vacío de NuevoEstado.
func armar(docs map[string][]byte) (*entity.Estado, error) {
	e := entity.NuevoEstado()
	destinos := map[string]any{
		entity.ClaveBancos:         &e.Bancos,
		entity.ClaveOrdenesCompra:  &e.OrdenesCompra,
		entity.ClaveDistribuidores: &e.Distribuidores,
		entity.ClaveVentas:         &e.Ventas,
		entity.ClaveClientes:       &e.Clientes,
		entity.ClaveAlmacen:        &e.Almacen,
	}
	for clave, datos := range docs {
		destino, ok := destinos[clave]
		if !ok {
			continue
		}
		if err := json.Unmarshal(datos, destino); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", clave, err)
		}
	}
	if e.Bancos == nil {
		e.Bancos = map[string]*entity.Banco{}
	}
	if e.Almacen == nil {
		e.Almacen = map[string]*entity.Articulo{}
	}
	return e, nil
}
