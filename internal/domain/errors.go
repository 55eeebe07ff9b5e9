package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables en el borde HTTP: cada uno se traduce a un rechazo de
// la petición con su código; ninguno debe tumbar el proceso ni corromper los archivos.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrValidation         = errors.New("entrada inválida o incompleta")
	ErrInvalidStatus      = errors.New("estado fuera de la lista permitida")
	ErrInvalidTransition  = errors.New("el pedido está en un estado final y no admite cambios")
	ErrInvalidPrice       = errors.New("el precio debe ser mayor a 0")
	ErrInvalidStock       = errors.New("el stock no puede ser negativo")
	ErrDuplicateProduct   = errors.New("el producto ya existe")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrPersistencePartial indica que la devolución de stock ya quedó escrita
	// pero el guardado del pedido falló después. El stock restaurado no se pierde.
	ErrPersistencePartial = errors.New("escritura parcial: stock guardado pero el pedido no")
)
