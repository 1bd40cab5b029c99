package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventario representa un lote físico de stock de un producto: número de lote,
// caducidad, cantidad disponible y ubicación en almacén. Los límites de stock
// viven en Producto (única autoridad); el lote no los duplica.
// Se elimina por soft delete: Activo=false lo excluye del agregado.
type Inventario struct {
	ID                 string
	IDProducto         string
	NumeroLote         string
	FechaCaducidad     time.Time
	CantidadDisponible int64
	UbicacionAlmacen   string
	CostoUnitario      decimal.Decimal
	IVAAplicable       decimal.Decimal
	Activo             bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
