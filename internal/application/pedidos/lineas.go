package pedidos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// AgregarLinea añade una línea a un pedido existente. El total de la línea es
// cantidad × precio_venta vigente del producto; es una fotografía histórica.
// Un producto que ya tiene línea activa en el pedido devuelve ErrDuplicate.
func (uc *UseCase) AgregarLinea(ctx context.Context, in dto.CreateDetalleRequest) (*entity.DetallePedido, error) {
	if in.IDPedido == "" || in.IDProducto == "" || in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	pedido, err := uc.pedidos.GetByID(in.IDPedido)
	if err != nil {
		return nil, err
	}
	if pedido == nil || !pedido.Activo {
		return nil, domain.ErrNotFound
	}
	producto, err := uc.productos.GetByID(in.IDProducto)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	existente, err := uc.detalles.GetActivoByPedidoProducto(pedido.ID, producto.ID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	detalle := &entity.DetallePedido{
		ID:         uuid.New().String(),
		IDPedido:   pedido.ID,
		IDProducto: producto.ID,
		Cantidad:   in.Cantidad,
		Total:      decimal.NewFromInt(in.Cantidad).Mul(producto.PrecioVenta),
		Activo:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunPedidos(ctx, func(pedidos repository.PedidoRepository, detalles repository.DetallePedidoRepository) error {
		if err := detalles.Create(detalle); err != nil {
			return err
		}
		return recalcularSubtotal(pedidos, detalles, pedido)
	})
	if err != nil {
		return nil, err
	}
	return detalle, nil
}

// ActualizarLinea cambia la cantidad o la factura de una línea. La cantidad
// conserva el precio unitario con que se creó: el nuevo total se deriva de
// total/cantidad anterior, no del precio_venta vigente del producto.
func (uc *UseCase) ActualizarLinea(ctx context.Context, id string, in dto.UpdateDetalleRequest) (*entity.DetallePedido, error) {
	detalle, err := uc.detalles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil || !detalle.Activo {
		return nil, domain.ErrNotFound
	}
	if in.Cantidad == nil && in.Factura == nil {
		return detalle, nil
	}
	if in.Cantidad != nil && *in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}

	pedido, err := uc.pedidos.GetByID(detalle.IDPedido)
	if err != nil {
		return nil, err
	}
	if pedido == nil || !pedido.Activo {
		return nil, domain.ErrNotFound
	}

	if in.Factura != nil {
		detalle.Factura = *in.Factura
	}
	if in.Cantidad != nil {
		precioUnitario := detalle.Total.Div(decimal.NewFromInt(detalle.Cantidad))
		detalle.Cantidad = *in.Cantidad
		detalle.Total = decimal.NewFromInt(*in.Cantidad).Mul(precioUnitario)
	}
	detalle.UpdatedAt = time.Now()

	err = uc.txRunner.RunPedidos(ctx, func(pedidos repository.PedidoRepository, detalles repository.DetallePedidoRepository) error {
		if err := detalles.Update(detalle); err != nil {
			return err
		}
		return recalcularSubtotal(pedidos, detalles, pedido)
	})
	if err != nil {
		return nil, err
	}
	return detalle, nil
}

// BajaLinea desactiva una línea (soft delete) y recalcula el subtotal del pedido.
func (uc *UseCase) BajaLinea(ctx context.Context, id string) error {
	detalle, err := uc.detalles.GetByID(id)
	if err != nil {
		return err
	}
	if detalle == nil || !detalle.Activo {
		return domain.ErrNotFound
	}
	pedido, err := uc.pedidos.GetByID(detalle.IDPedido)
	if err != nil {
		return err
	}
	if pedido == nil {
		return domain.ErrNotFound
	}

	return uc.txRunner.RunPedidos(ctx, func(pedidos repository.PedidoRepository, detalles repository.DetallePedidoRepository) error {
		if err := detalles.SoftDelete(detalle.ID); err != nil {
			return err
		}
		return recalcularSubtotal(pedidos, detalles, pedido)
	})
}

// LineaPorID obtiene una línea por su identificador.
func (uc *UseCase) LineaPorID(id string) (*entity.DetallePedido, error) {
	detalle, err := uc.detalles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	return detalle, nil
}

// ListarLineas lista líneas activas con paginación.
func (uc *UseCase) ListarLineas(limit, offset int) ([]*entity.DetallePedido, error) {
	return uc.detalles.List(limit, offset)
}
