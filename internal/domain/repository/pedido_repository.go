package repository

import (
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// PedidoRepository define el puerto de persistencia para pedidos.
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	Update(pedido *entity.Pedido) error
	// UpdateTotales actualiza solo subtotal y total (subtotal + costo de envío).
	// Usado por el caso de uso de líneas tras recalcular el agregado.
	UpdateTotales(id string, subtotal, total decimal.Decimal) error
	List(limit, offset int) ([]*entity.Pedido, error)
	ListByCliente(clienteID string) ([]*entity.Pedido, error)
	SoftDelete(id string) error
}

// DetallePedidoRepository define el puerto de persistencia para líneas de pedido.
type DetallePedidoRepository interface {
	Create(detalle *entity.DetallePedido) error
	GetByID(id string) (*entity.DetallePedido, error)
	// GetActivoByPedidoProducto busca una línea activa del pedido para ese producto
	// (un producto solo puede aparecer una vez por pedido).
	GetActivoByPedidoProducto(pedidoID, productoID string) (*entity.DetallePedido, error)
	Update(detalle *entity.DetallePedido) error
	List(limit, offset int) ([]*entity.DetallePedido, error)
	ListByPedido(pedidoID string) ([]*entity.DetallePedido, error)
	// SumActivoByPedido suma los totales de las líneas activas del pedido.
	// Fuente de verdad para recalcular Pedido.Subtotal.
	SumActivoByPedido(pedidoID string) (decimal.Decimal, error)
	SoftDelete(id string) error
}
