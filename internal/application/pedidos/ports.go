package pedidos

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios de pedidos y detalles atados a esa tx. La línea y el recálculo
// del subtotal del pedido se confirman o revierten juntos.
type TxRunner interface {
	RunPedidos(ctx context.Context, fn func(
		pedidos repository.PedidoRepository,
		detalles repository.DetallePedidoRepository,
	) error) error
}

// LineaComprobante una línea del comprobante PDF de un pedido.
type LineaComprobante struct {
	NombreProducto string
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	Total          decimal.Decimal
}

// ComprobanteGenerator genera la representación PDF de un pedido.
type ComprobanteGenerator interface {
	GenerarComprobante(ctx context.Context, pedido *entity.Pedido, lineas []LineaComprobante) ([]byte, error)
}
