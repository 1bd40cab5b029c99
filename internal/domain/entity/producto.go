package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un medicamento o insumo del catálogo.
// CantidadReal es un agregado derivado: siempre igual a la suma de
// cantidad_disponible de los lotes activos del producto. Solo el libro de
// stock (application/stock) la escribe; nadie más puede asignarla.
type Producto struct {
	ID           string
	Nombre       string
	CodigoBarras string
	Descripcion  string
	IDLaboratorio string
	PrecioVenta  decimal.Decimal
	CantidadReal int64 // derivada de los lotes, no editable vía API
	StockMinimo  int64
	StockMaximo  int64
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
