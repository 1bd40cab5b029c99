// Package pedidos implementa los casos de uso de pedidos y sus líneas:
// creación con datos de envío resueltos del cliente, máquina de estados del
// pedido y el recálculo del subtotal como suma completa de líneas activas.
package pedidos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// UseCase casos de uso de pedidos.
type UseCase struct {
	txRunner    TxRunner
	pedidos     repository.PedidoRepository
	detalles    repository.DetallePedidoRepository
	productos   repository.ProductoRepository
	clientes    repository.ClienteRepository
	usuarios    repository.UsuarioRepository
	direcciones repository.DireccionRepository
	comprobante ComprobanteGenerator
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(
	txRunner TxRunner,
	pedidos repository.PedidoRepository,
	detalles repository.DetallePedidoRepository,
	productos repository.ProductoRepository,
	clientes repository.ClienteRepository,
	usuarios repository.UsuarioRepository,
	direcciones repository.DireccionRepository,
	comprobante ComprobanteGenerator,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		pedidos:     pedidos,
		detalles:    detalles,
		productos:   productos,
		clientes:    clientes,
		usuarios:    usuarios,
		direcciones: direcciones,
		comprobante: comprobante,
	}
}

// Crear genera un pedido nuevo en estado pendiente. Resuelve el contacto y la
// dirección de envío del cliente, valida las líneas iniciales y lo persiste
// todo en una sola transacción con el subtotal ya calculado.
func (uc *UseCase) Crear(ctx context.Context, in dto.CreatePedidoRequest) (*entity.Pedido, []*entity.DetallePedido, error) {
	if in.IDCliente == "" || in.IDDireccionEnvio == "" || in.FormaPago == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clientes.GetByID(in.IDCliente)
	if err != nil {
		return nil, nil, err
	}
	if cliente == nil || !cliente.Activo {
		return nil, nil, domain.ErrNotFound
	}
	usuario, err := uc.usuarios.GetByID(cliente.IDUsuario)
	if err != nil {
		return nil, nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, nil, domain.ErrNotFound
	}
	direccion, err := uc.direcciones.GetByID(in.IDDireccionEnvio)
	if err != nil {
		return nil, nil, err
	}
	if direccion == nil || !direccion.Activo || direccion.IDCliente != cliente.ID {
		return nil, nil, domain.ErrNotFound
	}

	// Validar y cotizar las líneas antes de escribir nada.
	lineas, err := uc.cotizarLineas(in.Detalles)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	pedido := &entity.Pedido{
		ID:               uuid.New().String(),
		IDCliente:        cliente.ID,
		IDDireccionEnvio: direccion.ID,
		Estado:           entity.EstadoPendiente,
		FechaPedido:      now,
		FormaPago:        in.FormaPago,
		Subtotal:         decimal.Zero,
		CostoEnvio:       decimal.Zero,
		Total:            decimal.Zero,
		EnvioContacto: fmt.Sprintf("%s %s %s Tel. %s",
			usuario.Nombre, usuario.ApellidoPaterno, usuario.ApellidoMaterno, usuario.Telefono),
		EnvioDireccion:   direccion.Formatear(),
		EnvioReferencias: direccion.Referencias,
		Activo:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	for _, l := range lineas {
		l.IDPedido = pedido.ID
	}

	err = uc.txRunner.RunPedidos(ctx, func(pedidos repository.PedidoRepository, detalles repository.DetallePedidoRepository) error {
		if err := pedidos.Create(pedido); err != nil {
			return err
		}
		for _, l := range lineas {
			if err := detalles.Create(l); err != nil {
				return err
			}
		}
		return recalcularSubtotal(pedidos, detalles, pedido)
	})
	if err != nil {
		return nil, nil, err
	}
	return pedido, lineas, nil
}

// cotizarLineas valida las líneas solicitadas y calcula cada total como
// cantidad × precio_venta vigente del producto (fotografía histórica).
func (uc *UseCase) cotizarLineas(in []dto.LineaPedidoRequest) ([]*entity.DetallePedido, error) {
	vistos := make(map[string]bool, len(in))
	lineas := make([]*entity.DetallePedido, 0, len(in))
	now := time.Now()
	for _, l := range in {
		if l.IDProducto == "" || l.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if vistos[l.IDProducto] {
			return nil, domain.ErrDuplicate
		}
		vistos[l.IDProducto] = true

		producto, err := uc.productos.GetByID(l.IDProducto)
		if err != nil {
			return nil, err
		}
		if producto == nil || !producto.Activo {
			return nil, domain.ErrNotFound
		}
		lineas = append(lineas, &entity.DetallePedido{
			ID:         uuid.New().String(),
			IDProducto: producto.ID,
			Cantidad:   l.Cantidad,
			Total:      decimal.NewFromInt(l.Cantidad).Mul(producto.PrecioVenta),
			Activo:     true,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return lineas, nil
}

// PorID obtiene un pedido con sus líneas activas.
func (uc *UseCase) PorID(id string) (*entity.Pedido, []*entity.DetallePedido, error) {
	pedido, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if pedido == nil {
		return nil, nil, domain.ErrNotFound
	}
	detalles, err := uc.detalles.ListByPedido(pedido.ID)
	if err != nil {
		return nil, nil, err
	}
	return pedido, detalles, nil
}

// Listar lista pedidos activos con paginación.
func (uc *UseCase) Listar(limit, offset int) ([]*entity.Pedido, error) {
	return uc.pedidos.List(limit, offset)
}

// PorCliente lista los pedidos de un cliente. ErrNotFound si el cliente no existe.
func (uc *UseCase) PorCliente(clienteID string) ([]*entity.Pedido, error) {
	cliente, err := uc.clientes.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pedidos.ListByCliente(clienteID)
}

// Actualizar aplica campos de ejecutivo (paquetería, guía, costo de envío,
// notas) y transiciones de estado. Una transición inválida según la máquina
// de estados devuelve ErrConflict.
func (uc *UseCase) Actualizar(ctx context.Context, id string, in dto.UpdatePedidoRequest) (*entity.Pedido, error) {
	pedido, err := uc.pedidos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pedido == nil || !pedido.Activo {
		return nil, domain.ErrNotFound
	}

	if in.Estado != nil && *in.Estado != pedido.Estado {
		if !entity.EstadoValido(*in.Estado) {
			return nil, domain.ErrInvalidInput
		}
		if !entity.PuedeTransicionar(pedido.Estado, *in.Estado) {
			return nil, domain.ErrConflict
		}
		pedido.Estado = *in.Estado
		if *in.Estado == entity.EstadoEntregado && in.FechaEntrega == nil {
			now := time.Now()
			pedido.FechaEntrega = &now
		}
	}
	if in.IDPaqueteria != nil {
		pedido.IDPaqueteria = *in.IDPaqueteria
	}
	if in.CostoEnvio != nil {
		if in.CostoEnvio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		pedido.CostoEnvio = *in.CostoEnvio
		pedido.Total = pedido.Subtotal.Add(pedido.CostoEnvio)
	}
	if in.GuiaEntrega != nil {
		pedido.GuiaEntrega = *in.GuiaEntrega
	}
	if in.NotasAdministrativas != nil {
		pedido.NotasAdministrativas = *in.NotasAdministrativas
	}
	if in.FechaEntrega != nil {
		pedido.FechaEntrega = in.FechaEntrega
	}
	pedido.UpdatedAt = time.Now()

	if err := uc.pedidos.Update(pedido); err != nil {
		return nil, err
	}
	return pedido, nil
}

// Cancelar marca el pedido como cancelado y lo desactiva (soft delete).
// Un pedido en estado terminal (entregado o cancelado) devuelve ErrConflict.
func (uc *UseCase) Cancelar(ctx context.Context, id string) error {
	pedido, err := uc.pedidos.GetByID(id)
	if err != nil {
		return err
	}
	if pedido == nil || !pedido.Activo {
		return domain.ErrNotFound
	}
	if !entity.PuedeTransicionar(pedido.Estado, entity.EstadoCancelado) {
		return domain.ErrConflict
	}
	pedido.Estado = entity.EstadoCancelado
	pedido.Activo = false
	pedido.UpdatedAt = time.Now()
	return uc.pedidos.Update(pedido)
}

// Comprobante genera el PDF del pedido con sus líneas activas.
func (uc *UseCase) Comprobante(ctx context.Context, id string) ([]byte, error) {
	pedido, detalles, err := uc.PorID(id)
	if err != nil {
		return nil, err
	}
	lineas := make([]LineaComprobante, 0, len(detalles))
	for _, d := range detalles {
		if !d.Activo {
			continue
		}
		nombre := d.IDProducto
		if producto, err := uc.productos.GetByID(d.IDProducto); err == nil && producto != nil {
			nombre = producto.Nombre
		}
		precio := decimal.Zero
		if d.Cantidad > 0 {
			precio = d.Total.Div(decimal.NewFromInt(d.Cantidad))
		}
		lineas = append(lineas, LineaComprobante{
			NombreProducto: nombre,
			Cantidad:       d.Cantidad,
			PrecioUnitario: precio,
			Total:          d.Total,
		})
	}
	return uc.comprobante.GenerarComprobante(ctx, pedido, lineas)
}

// recalcularSubtotal fija Pedido.Subtotal a la suma de las líneas activas y
// Total a subtotal + costo de envío. Siempre suma completa, nunca incremental.
func recalcularSubtotal(pedidos repository.PedidoRepository, detalles repository.DetallePedidoRepository, pedido *entity.Pedido) error {
	subtotal, err := detalles.SumActivoByPedido(pedido.ID)
	if err != nil {
		return err
	}
	pedido.Subtotal = subtotal
	pedido.Total = subtotal.Add(pedido.CostoEnvio)
	return pedidos.UpdateTotales(pedido.ID, pedido.Subtotal, pedido.Total)
}
