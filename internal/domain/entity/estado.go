package entity

// Claves estables bajo las que se persiste cada almacén de primer nivel.
// Coinciden con las claves del bloque `datos` del formato de respaldo.
const (
	ClaveBancos         = "bancos"
	ClaveOrdenesCompra  = "ordenesCompra"
	ClaveDistribuidores = "distribuidores"
	ClaveVentas         = "ventas"
	ClaveClientes       = "clientes"
	ClaveAlmacen        = "almacen"
)

// Claves devuelve las claves de persistencia en orden estable.
func Claves() []string {
	return []string{
		ClaveBancos, ClaveOrdenesCompra, ClaveDistribuidores,
		ClaveVentas, ClaveClientes, ClaveAlmacen,
	}
}

// Estado es el agregado autoritativo completo del negocio. Solo el
// orquestador lo muta; los colaboradores reciben copias.
type Estado struct {
	Bancos         map[string]*Banco    `json:"bancos"`
	OrdenesCompra  []*OrdenCompra       `json:"ordenesCompra"`
	Distribuidores []*Contraparte       `json:"distribuidores"`
	Ventas         []*Venta             `json:"ventas"`
	Clientes       []*Contraparte       `json:"clientes"`
	Almacen        map[string]*Articulo `json:"almacen"`
}

// NuevoEstado crea un estado vacío con todos los contenedores inicializados.
func NuevoEstado() *Estado {
	return &Estado{
		Bancos:         map[string]*Banco{},
		OrdenesCompra:  []*OrdenCompra{},
		Distribuidores: []*Contraparte{},
		Ventas:         []*Venta{},
		Clientes:       []*Contraparte{},
		Almacen:        map[string]*Articulo{},
	}
}

// Clone devuelve una copia profunda del estado completo. El orquestador
// trabaja siempre sobre un clon y solo lo promueve a autoritativo si toda
// la operación compuesta valida.
func (e *Estado) Clone() *Estado {
	c := NuevoEstado()
	for clave, b := range e.Bancos {
		c.Bancos[clave] = b.Clone()
	}
	for _, o := range e.OrdenesCompra {
		c.OrdenesCompra = append(c.OrdenesCompra, o.Clone())
	}
	for _, d := range e.Distribuidores {
		c.Distribuidores = append(c.Distribuidores, d.Clone())
	}
	for _, v := range e.Ventas {
		c.Ventas = append(c.Ventas, v.Clone())
	}
	for _, cl := range e.Clientes {
		c.Clientes = append(c.Clientes, cl.Clone())
	}
	for clave, a := range e.Almacen {
		c.Almacen[clave] = a.Clone()
	}
	return c
}

// BuscarContraparte localiza una contraparte por ID dentro de la lista del
// tipo indicado. Devuelve nil si no existe.
func (e *Estado) BuscarContraparte(tipo TipoContraparte, id string) *Contraparte {
	for _, c := range e.lista(tipo) {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// BuscarContraparteNombre localiza una contraparte por nombre normalizado.
func (e *Estado) BuscarContraparteNombre(tipo TipoContraparte, nombre string) *Contraparte {
	norm := NormalizarNombre(nombre)
	for _, c := range e.lista(tipo) {
		if c.NombreNorm == norm {
			return c
		}
	}
	return nil
}

func (e *Estado) lista(tipo TipoContraparte) []*Contraparte {
	if tipo == ContraparteDistribuidor {
		return e.Distribuidores
	}
	return e.Clientes
}

// BuscarArticulo localiza un artículo por ID o, en su defecto, por nombre
// normalizado (los flujos históricos usan ambas claves indistintamente).
func (e *Estado) BuscarArticulo(clave string) *Articulo {
	if a, ok := e.Almacen[clave]; ok {
		return a
	}
	norm := NormalizarNombre(clave)
	for _, a := range e.Almacen {
		if a.NombreNorm == norm {
			return a
		}
	}
	return nil
}
