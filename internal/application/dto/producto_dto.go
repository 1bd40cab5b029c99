package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
// La cantidad real no se acepta: es derivada de los lotes de inventario.
type CreateProductoRequest struct {
	Nombre        string          `json:"nombre"`
	CodigoBarras  string          `json:"codigo_barras"`
	Descripcion   string          `json:"descripcion"`
	IDLaboratorio string          `json:"id_laboratorio"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	StockMinimo   int64           `json:"stock_minimo"`
	StockMaximo   int64           `json:"stock_maximo"`
}

// UpdateProductoRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductoRequest struct {
	Nombre        *string          `json:"nombre"`
	CodigoBarras  *string          `json:"codigo_barras"`
	Descripcion   *string          `json:"descripcion"`
	IDLaboratorio *string          `json:"id_laboratorio"`
	PrecioVenta   *decimal.Decimal `json:"precio_venta"`
	StockMinimo   *int64           `json:"stock_minimo"`
	StockMaximo   *int64           `json:"stock_maximo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID            string          `json:"id_producto"`
	Nombre        string          `json:"nombre"`
	CodigoBarras  string          `json:"codigo_barras"`
	Descripcion   string          `json:"descripcion"`
	IDLaboratorio string          `json:"id_laboratorio,omitempty"`
	PrecioVenta   decimal.Decimal `json:"precio_venta"`
	CantidadReal  int64           `json:"cantidad_real"`
	StockMinimo   int64           `json:"stock_minimo"`
	StockMaximo   int64           `json:"stock_maximo"`
	Activo        bool            `json:"activo"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
