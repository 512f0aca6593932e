package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrEntradaInvalida     = errors.New("entrada inválida")
	ErrDuplicado           = errors.New("recurso duplicado")
	ErrMontoInvalido       = errors.New("monto inválido")
	ErrFondosInsuficientes = errors.New("fondos insuficientes")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrPagoExcesivo        = errors.New("el pago excede el adeudo pendiente")
	ErrOperacionInvalida   = errors.New("operación inválida")
	ErrRespaldoInvalido    = errors.New("respaldo inválido o incompleto")
)
