// Package orquestador traduce cada evento de negocio (venta, orden de
// compra, pago, gasto, ingreso, transferencia) en un conjunto coordinado de
// mutaciones sobre los tres almacenes hoja: bancos, deudas y almacén.
//
// Es el único componente autorizado a mutar más de un almacén por evento.
// Todas las operaciones se serializan con un mutex sobre el estado
// autoritativo: cada comando clona el estado vigente, aplica todas las
// mutaciones sobre el clon y solo si todas validan promueve el clon a
// autoritativo. Una precondición fallida descarta el clon completo, de modo
// que la operación compuesta es todo-o-nada sin transacción de base de datos.
// El estado confirmado se entrega al colaborador de persistencia sin esperar
// su resultado.
package orquestador

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestormx/gestor-comercial/internal/application/almacen"
	"github.com/gestormx/gestor-comercial/internal/application/deudas"
	"github.com/gestormx/gestor-comercial/internal/application/ledger"
	"github.com/gestormx/gestor-comercial/internal/domain"
	"github.com/gestormx/gestor-comercial/internal/domain/entity"
	"github.com/gestormx/gestor-comercial/pkg/logger"
)

// Persistidor guarda el estado confirmado tras cada operación. El orquestador
// no espera el resultado: un fallo de escritura se registra en el log pero no
// revierte la operación ya confirmada.
type Persistidor interface {
	Guardar(ctx context.Context, e *entity.Estado) error
}

// Cuentas son las claves de las cuentas designadas para los repartos de una
// venta.
type Cuentas struct {
	Ventas     string
	Fletes     string
	Utilidades string
}

// Orquestador serializa y aplica los comandos de negocio.
type Orquestador struct {
	mu      sync.Mutex
	estado  *entity.Estado
	ledger  *ledger.Servicio
	deudas  *deudas.Servicio
	almacen *almacen.Servicio
	store   Persistidor
	log     *logger.Logger
	cuentas Cuentas
}

// Nuevo construye el orquestador sobre un estado inicial (normalmente el
// cargado desde persistencia al arrancar).
func Nuevo(estado *entity.Estado, store Persistidor, log *logger.Logger, cuentas Cuentas) *Orquestador {
	if estado == nil {
		estado = entity.NuevoEstado()
	}
	return &Orquestador{
		estado:  estado,
		ledger:  ledger.NuevoServicio(),
		deudas:  deudas.NuevoServicio(),
		almacen: almacen.NuevoServicio(),
		store:   store,
		log:     log,
		cuentas: cuentas,
	}
}

// AsegurarCuentas crea con saldo cero las cuentas bancarias que falten.
func (o *Orquestador) AsegurarCuentas(claves ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	creadas := false
	for _, clave := range claves {
		if _, ok := o.estado.Bancos[clave]; !ok {
			o.estado.Bancos[clave] = entity.NuevoBanco(clave)
			creadas = true
		}
	}
	if creadas {
		o.persistir(o.estado.Clone())
	}
}

// Snapshot devuelve una copia profunda del estado completo para los
// colaboradores de solo lectura.
func (o *Orquestador) Snapshot() *entity.Estado {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.estado.Clone()
}

// confirmar promueve el clon a estado autoritativo y dispara la persistencia.
// Debe llamarse con el mutex tomado.
func (o *Orquestador) confirmar(clon *entity.Estado, operacion string) {
	o.estado = clon
	o.log.Info().Str("operacion", operacion).Msg("operación confirmada")
	o.persistir(clon.Clone())
}

// persistir entrega el snapshot al colaborador de persistencia sin bloquear
// al llamador. Recibe su propio clon, por lo que no compite con mutaciones
// posteriores.
func (o *Orquestador) persistir(snap *entity.Estado) {
	if o.store == nil {
		return
	}
	go func() {
		if err := o.store.Guardar(context.Background(), snap); err != nil {
			o.log.Error().Err(err).Msg("persistir estado")
		}
	}()
}

// ── Venta ─────────────────────────────────────────────────────────────────────

// ItemVenta es una línea de venta de entrada al orquestador. Clave acepta el
// ID del artículo o su nombre.
type ItemVenta struct {
	Clave          string
	Cantidad       decimal.Decimal
	PrecioUnitario decimal.Decimal
	CostoUnitario  decimal.Decimal
	FletePorUnidad decimal.Decimal
}

// VentaInput es el comando de registrar venta.
type VentaInput struct {
	Cliente     string
	Items       []ItemVenta
	EstadoPago  entity.EstadoPago
	MontoPagado decimal.Decimal // solo se lee cuando EstadoPago es parcial
}

// RegisterSale registra una venta como unidad lógica: descuenta existencias
// por cada línea, calcula totales, carga al cliente el saldo no pagado y
// reparte en las cuentas designadas. Si la salida de almacén de cualquier
// línea falla, no se conserva ninguna mutación de la venta.
//
// Reparto: la cuenta de ventas recibe en CapitalActual el monto pagado y en
// Historico el total nominal; fletes y utilidades reciben en CapitalActual
// solo su proporción pagada y en Historico su total nominal. La porción no
// cobrada sube únicamente el histórico (ingreso diferido).
func (o *Orquestador) RegisterSale(in VentaInput) (*entity.Venta, error) {
	if in.Cliente == "" || len(in.Items) == 0 || !in.EstadoPago.IsValid() {
		return nil, domain.ErrEntradaInvalida
	}
	for _, it := range in.Items {
		if it.Clave == "" || it.Cantidad.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		if it.PrecioUnitario.LessThan(decimal.Zero) || it.CostoUnitario.LessThan(decimal.Zero) ||
			it.FletePorUnidad.LessThan(decimal.Zero) {
			return nil, domain.ErrMontoInvalido
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	ventaID := uuid.New().String()
	ahora := time.Now()

	totalVenta, totalFletes, totalUtilidades := decimal.Zero, decimal.Zero, decimal.Zero
	items := make([]entity.VentaItem, 0, len(in.Items))
	for _, it := range in.Items {
		articulo, err := o.almacen.IssueStock(clon, it.Clave, it.Cantidad, ventaID)
		if err != nil {
			return nil, err
		}
		totalVenta = totalVenta.Add(it.Cantidad.Mul(it.PrecioUnitario.Add(it.FletePorUnidad)))
		totalFletes = totalFletes.Add(it.Cantidad.Mul(it.FletePorUnidad))
		totalUtilidades = totalUtilidades.Add(it.Cantidad.Mul(it.PrecioUnitario.Sub(it.CostoUnitario)))
		items = append(items, entity.VentaItem{
			ArticuloID:     articulo.ID,
			Nombre:         articulo.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			CostoUnitario:  it.CostoUnitario,
			FletePorUnidad: it.FletePorUnidad,
		})
	}

	montoPagado, err := montoPagadoSegunEstado(in.EstadoPago, in.MontoPagado, totalVenta)
	if err != nil {
		return nil, err
	}

	cliente, err := o.deudas.EnsureCounterparty(clon, entity.ContraparteCliente, in.Cliente)
	if err != nil {
		return nil, err
	}
	saldo := totalVenta.Sub(montoPagado)
	if saldo.GreaterThan(decimal.Zero) {
		if err := o.deudas.RecordCharge(cliente, saldo, entity.OperacionVenta, ventaID); err != nil {
			return nil, err
		}
	}

	concepto := "Venta a " + cliente.Nombre
	if err := o.repartir(clon.Bancos, o.cuentas.Ventas, totalVenta, montoPagado, concepto); err != nil {
		return nil, err
	}
	var proporcionPagada decimal.Decimal
	if totalVenta.GreaterThan(decimal.Zero) {
		proporcionPagada = montoPagado.Div(totalVenta)
	}
	if err := o.repartir(clon.Bancos, o.cuentas.Fletes, totalFletes, totalFletes.Mul(proporcionPagada), concepto); err != nil {
		return nil, err
	}
	if err := o.repartir(clon.Bancos, o.cuentas.Utilidades, totalUtilidades, totalUtilidades.Mul(proporcionPagada), concepto); err != nil {
		return nil, err
	}

	venta := &entity.Venta{
		ID:              ventaID,
		ClienteID:       cliente.ID,
		Cliente:         cliente.Nombre,
		Items:           items,
		TotalVenta:      totalVenta,
		TotalFletes:     totalFletes,
		TotalUtilidades: totalUtilidades,
		EstadoPago:      in.EstadoPago,
		MontoPagado:     montoPagado,
		SaldoPendiente:  saldo,
		Fecha:           ahora,
	}
	clon.Ventas = append(clon.Ventas, venta)

	o.confirmar(clon, "venta")
	return venta.Clone(), nil
}

// montoPagadoSegunEstado deriva el monto pagado del estado de pago declarado:
// completo cobra el total, pendiente nada, y parcial el monto indicado por el
// llamador (estrictamente entre cero y el total).
func montoPagadoSegunEstado(estado entity.EstadoPago, declarado, total decimal.Decimal) (decimal.Decimal, error) {
	switch estado {
	case entity.PagoCompleto:
		return total, nil
	case entity.PagoPendiente:
		return decimal.Zero, nil
	case entity.PagoParcial:
		if declarado.LessThanOrEqual(decimal.Zero) || declarado.GreaterThanOrEqual(total) {
			return decimal.Zero, domain.ErrMontoInvalido
		}
		return declarado, nil
	}
	return decimal.Zero, domain.ErrEntradaInvalida
}

// repartir acredita a la cuenta la porción pagada en CapitalActual y el resto
// nominal solo en Historico.
func (o *Orquestador) repartir(bancos map[string]*entity.Banco, cuenta string, nominal, pagado decimal.Decimal, concepto string) error {
	if nominal.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	if pagado.GreaterThan(decimal.Zero) {
		if err := o.ledger.Credit(bancos, cuenta, pagado, concepto); err != nil {
			return err
		}
	}
	diferido := nominal.Sub(pagado)
	if diferido.GreaterThan(decimal.Zero) {
		if err := o.ledger.HistoricoCredit(bancos, cuenta, diferido); err != nil {
			return err
		}
	}
	return nil
}

// ── Orden de compra ───────────────────────────────────────────────────────────

// ItemOrden es una línea de orden de compra de entrada al orquestador.
type ItemOrden struct {
	Clave         string
	Cantidad      decimal.Decimal
	CostoUnitario decimal.Decimal
}

// OrdenInput es el comando de registrar orden de compra.
type OrdenInput struct {
	Distribuidor string
	Items        []ItemOrden
}

// RegisterPurchaseOrder registra la orden: da entrada al almacén por cada
// línea (creando artículos nuevos si hace falta) y carga el total como
// adeudo del negocio hacia el distribuidor.
func (o *Orquestador) RegisterPurchaseOrder(in OrdenInput) (*entity.OrdenCompra, error) {
	if in.Distribuidor == "" || len(in.Items) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	for _, it := range in.Items {
		if it.Clave == "" || it.Cantidad.LessThanOrEqual(decimal.Zero) || it.CostoUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	ordenID := uuid.New().String()

	total := decimal.Zero
	items := make([]entity.OrdenItem, 0, len(in.Items))
	for _, it := range in.Items {
		articulo, err := o.almacen.ReceiveStock(clon, it.Clave, it.Cantidad, it.CostoUnitario, in.Distribuidor)
		if err != nil {
			return nil, err
		}
		total = total.Add(it.Cantidad.Mul(it.CostoUnitario))
		items = append(items, entity.OrdenItem{
			ArticuloID:    articulo.ID,
			Nombre:        articulo.Nombre,
			Cantidad:      it.Cantidad,
			CostoUnitario: it.CostoUnitario,
		})
	}

	distribuidor, err := o.deudas.EnsureCounterparty(clon, entity.ContraparteDistribuidor, in.Distribuidor)
	if err != nil {
		return nil, err
	}
	if total.GreaterThan(decimal.Zero) {
		if err := o.deudas.RecordCharge(distribuidor, total, entity.OperacionOrdenCompra, ordenID); err != nil {
			return nil, err
		}
	}

	orden := &entity.OrdenCompra{
		ID:             ordenID,
		DistribuidorID: distribuidor.ID,
		Distribuidor:   distribuidor.Nombre,
		Items:          items,
		Total:          total,
		Fecha:          time.Now(),
	}
	clon.OrdenesCompra = append(clon.OrdenesCompra, orden)

	o.confirmar(clon, "ordenCompra")
	return orden.Clone(), nil
}

// ── Pago ──────────────────────────────────────────────────────────────────────

// PagoInput es el comando de registrar un pago/abono contra el adeudo de una
// contraparte, con su pata bancaria en la cuenta indicada.
type PagoInput struct {
	Tipo   entity.TipoContraparte
	Nombre string
	Monto  decimal.Decimal
	Cuenta string
}

// RegisterPayment aplica las dos patas del pago: el abono al adeudo y el
// movimiento bancario (abono de cliente acredita la cuenta; pago a
// distribuidor la carga). Si cualquiera de las dos es inválida no se aplica
// ninguna y se devuelve el error específico de la hoja que falló. Los abonos
// de cliente avanzan además el estado de pago de sus ventas abiertas, de la
// más antigua a la más reciente.
func (o *Orquestador) RegisterPayment(in PagoInput) (*entity.Contraparte, error) {
	if !in.Tipo.IsValid() || in.Nombre == "" || in.Cuenta == "" {
		return nil, domain.ErrEntradaInvalida
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	contraparte := clon.BuscarContraparteNombre(in.Tipo, in.Nombre)
	if contraparte == nil {
		return nil, domain.ErrNotFound
	}
	if err := o.deudas.RecordPayment(contraparte, in.Monto); err != nil {
		return nil, err
	}

	if in.Tipo == entity.ContraparteCliente {
		if err := o.ledger.Credit(clon.Bancos, in.Cuenta, in.Monto, "Abono de "+contraparte.Nombre); err != nil {
			return nil, err
		}
		restante := in.Monto
		for _, v := range clon.Ventas {
			if restante.LessThanOrEqual(decimal.Zero) {
				break
			}
			if v.ClienteID != contraparte.ID {
				continue
			}
			restante = restante.Sub(v.AplicarAbono(restante))
		}
	} else {
		if err := o.ledger.Debit(clon.Bancos, in.Cuenta, in.Monto, "Pago a "+contraparte.Nombre); err != nil {
			return nil, err
		}
	}

	o.confirmar(clon, "pago")
	return contraparte.Clone(), nil
}

// ── Delegaciones simples ──────────────────────────────────────────────────────

// RegisterTransfer mueve fondos entre dos cuentas.
func (o *Orquestador) RegisterTransfer(origen, destino string, monto decimal.Decimal, concepto string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	if err := o.ledger.Transfer(clon.Bancos, origen, destino, monto, concepto); err != nil {
		return err
	}
	o.confirmar(clon, "transferencia")
	return nil
}

// RegisterExpense registra un gasto en la cuenta.
func (o *Orquestador) RegisterExpense(cuenta string, monto decimal.Decimal, concepto string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	if err := o.ledger.Debit(clon.Bancos, cuenta, monto, concepto); err != nil {
		return err
	}
	o.confirmar(clon, "gasto")
	return nil
}

// RegisterIncome registra un ingreso genérico en la cuenta.
func (o *Orquestador) RegisterIncome(cuenta string, monto decimal.Decimal, concepto string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	if err := o.ledger.Credit(clon.Bancos, cuenta, monto, concepto); err != nil {
		return err
	}
	o.confirmar(clon, "ingreso")
	return nil
}

// ── Administración ────────────────────────────────────────────────────────────

// FijarUmbrales actualiza las cantidades mínima y máxima de un artículo.
func (o *Orquestador) FijarUmbrales(clave string, minima, maxima decimal.Decimal) (*entity.Articulo, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	articulo, err := o.almacen.FijarUmbrales(clon, clave, minima, maxima)
	if err != nil {
		return nil, err
	}
	o.confirmar(clon, "fijarUmbrales")
	return articulo.Clone(), nil
}

// RenombrarContraparte cambia el nombre conservando la identidad y el adeudo.
func (o *Orquestador) RenombrarContraparte(tipo entity.TipoContraparte, id, nuevoNombre string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	if err := o.deudas.Rename(clon, tipo, id, nuevoNombre); err != nil {
		return err
	}
	o.confirmar(clon, "renombrarContraparte")
	return nil
}

// LiquidarContraparte abona el adeudo exacto pendiente con su pata bancaria.
// Equivale a RegisterPayment por el adeudo vigente, leído bajo el mismo
// candado para que nada se interponga entre la lectura y el abono.
func (o *Orquestador) LiquidarContraparte(tipo entity.TipoContraparte, nombre, cuenta string) (*entity.Contraparte, error) {
	if !tipo.IsValid() || nombre == "" || cuenta == "" {
		return nil, domain.ErrEntradaInvalida
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	clon := o.estado.Clone()
	contraparte := clon.BuscarContraparteNombre(tipo, nombre)
	if contraparte == nil {
		return nil, domain.ErrNotFound
	}
	monto, err := o.deudas.Settle(contraparte)
	if err != nil {
		return nil, err
	}
	if monto.IsZero() {
		return contraparte.Clone(), nil
	}
	if tipo == entity.ContraparteCliente {
		if err := o.ledger.Credit(clon.Bancos, cuenta, monto, "Liquidación de "+contraparte.Nombre); err != nil {
			return nil, err
		}
		for _, v := range clon.Ventas {
			if v.ClienteID == contraparte.ID {
				v.AplicarAbono(v.SaldoPendiente)
			}
		}
	} else {
		if err := o.ledger.Debit(clon.Bancos, cuenta, monto, "Liquidación a "+contraparte.Nombre); err != nil {
			return nil, err
		}
	}

	o.confirmar(clon, "liquidacion")
	return contraparte.Clone(), nil
}

// Restaurar reemplaza el estado completo (importación de respaldo) y lo
// persiste. El reemplazo es total: nunca se mezcla con el estado anterior.
func (o *Orquestador) Restaurar(e *entity.Estado) error {
	if e == nil {
		return domain.ErrRespaldoInvalido
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirmar(e.Clone(), "restaurar")
	return nil
}
