package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecibirLoteRequest body para POST /api/inventario.
// Producto acepta el UUID del producto o su nombre exacto (sin distinguir
// mayúsculas). Los límites de stock no se aceptan aquí: la autoridad es el producto.
type RecibirLoteRequest struct {
	Producto           string          `json:"producto"`
	NumeroLote         string          `json:"numero_lote"`
	FechaCaducidad     time.Time       `json:"fecha_caducidad"`
	CantidadDisponible int64           `json:"cantidad_disponible"`
	UbicacionAlmacen   string          `json:"ubicacion_almacen"`
	CostoUnitario      decimal.Decimal `json:"costo_unitario"`
	IVAAplicable       decimal.Decimal `json:"iva_aplicable"`
}

// AjustarLoteRequest body para PUT /api/inventario/:id.
type AjustarLoteRequest struct {
	CantidadDisponible *int64  `json:"cantidad_disponible"`
	UbicacionAlmacen   *string `json:"ubicacion_almacen"`
}

// LoteResponse salida de un lote de inventario.
type LoteResponse struct {
	ID                 string          `json:"id_inventario"`
	IDProducto         string          `json:"id_producto"`
	NombreProducto     string          `json:"nombre_producto,omitempty"`
	NumeroLote         string          `json:"numero_lote"`
	FechaCaducidad     time.Time       `json:"fecha_caducidad"`
	CantidadDisponible int64           `json:"cantidad_disponible"`
	UbicacionAlmacen   string          `json:"ubicacion_almacen"`
	CostoUnitario      decimal.Decimal `json:"costo_unitario"`
	IVAAplicable       decimal.Decimal `json:"iva_aplicable"`
	Activo             bool            `json:"activo"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
