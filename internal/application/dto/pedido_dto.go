package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaPedidoRequest una línea dentro de la creación de un pedido.
type LineaPedidoRequest struct {
	IDProducto string `json:"id_producto"`
	Cantidad   int64  `json:"cantidad"`
}

// CreatePedidoRequest body para POST /api/pedidos. El subtotal nunca viene del
// cliente: se calcula de las líneas. Los datos de envío se resuelven del
// cliente y su dirección.
type CreatePedidoRequest struct {
	IDCliente        string               `json:"id_cliente"`
	IDDireccionEnvio string               `json:"id_direccion_envio"`
	FormaPago        string               `json:"forma_pago"`
	Detalles         []LineaPedidoRequest `json:"detalles"`
}

// UpdatePedidoRequest body para PUT /api/pedidos/:id (campos de ejecutivo y
// transición de estado).
type UpdatePedidoRequest struct {
	Estado               *string          `json:"estado"`
	IDPaqueteria         *string          `json:"id_paqueteria"`
	CostoEnvio           *decimal.Decimal `json:"costo_envio"`
	GuiaEntrega          *string          `json:"guia_entrega"`
	NotasAdministrativas *string          `json:"notas_administrativas"`
	FechaEntrega         *time.Time       `json:"fecha_entrega"`
}

// PedidoResponse salida de un pedido.
type PedidoResponse struct {
	ID                   string            `json:"id_pedido"`
	IDCliente            string            `json:"id_cliente"`
	IDDireccionEnvio     string            `json:"id_direccion_envio"`
	IDPaqueteria         string            `json:"id_paqueteria,omitempty"`
	Estado               string            `json:"estado"`
	FechaPedido          time.Time         `json:"fecha_pedido"`
	FechaEntrega         *time.Time        `json:"fecha_entrega,omitempty"`
	FormaPago            string            `json:"forma_pago"`
	Subtotal             decimal.Decimal   `json:"subtotal"`
	CostoEnvio           decimal.Decimal   `json:"costo_envio"`
	Total                decimal.Decimal   `json:"total"`
	GuiaEntrega          string            `json:"guia_entrega,omitempty"`
	NotasAdministrativas string            `json:"notas_administrativas,omitempty"`
	EnvioContacto        string            `json:"envio_contacto"`
	EnvioDireccion       string            `json:"envio_direccion"`
	EnvioReferencias     string            `json:"envio_referencias,omitempty"`
	Activo               bool              `json:"activo"`
	Detalles             []DetalleResponse `json:"detalles,omitempty"`
}

// CreateDetalleRequest body para POST /api/detalles.
type CreateDetalleRequest struct {
	IDPedido   string `json:"id_pedido"`
	IDProducto string `json:"id_producto"`
	Cantidad   int64  `json:"cantidad"`
}

// UpdateDetalleRequest body para PUT /api/detalles/:id.
type UpdateDetalleRequest struct {
	Cantidad *int64  `json:"cantidad"`
	Factura  *string `json:"factura"`
}

// DetalleResponse salida de una línea de pedido.
type DetalleResponse struct {
	ID         string          `json:"id_detalle_pedido"`
	IDPedido   string          `json:"id_pedido"`
	IDProducto string          `json:"id_producto"`
	Cantidad   int64           `json:"cantidad"`
	Total      decimal.Decimal `json:"total"`
	Factura    string          `json:"factura,omitempty"`
	Activo     bool            `json:"activo"`
}
