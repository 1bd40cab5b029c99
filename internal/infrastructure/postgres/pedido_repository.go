package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, id_cliente, id_direccion_envio, id_paqueteria, estado, fecha_pedido, fecha_entrega, forma_pago, subtotal, costo_envio, total, guia_entrega, notas_administrativas, envio_contacto, envio_direccion, envio_referencias, activo, created_at, updated_at`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste un pedido nuevo.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, id_cliente, id_direccion_envio, id_paqueteria, estado, fecha_pedido, fecha_entrega, forma_pago, subtotal, costo_envio, total, guia_entrega, notas_administrativas, envio_contacto, envio_direccion, envio_referencias, activo, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.IDCliente, pedido.IDDireccionEnvio, pedido.IDPaqueteria, pedido.Estado,
		pedido.FechaPedido, pedido.FechaEntrega, pedido.FormaPago, pedido.Subtotal, pedido.CostoEnvio,
		pedido.Total, pedido.GuiaEntrega, pedido.NotasAdministrativas, pedido.EnvioContacto,
		pedido.EnvioDireccion, pedido.EnvioReferencias, pedido.Activo, pedido.CreatedAt, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

func (r *PedidoRepo) scanRow(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	var idPaqueteria *string
	err := row.Scan(
		&p.ID, &p.IDCliente, &p.IDDireccionEnvio, &idPaqueteria, &p.Estado, &p.FechaPedido,
		&p.FechaEntrega, &p.FormaPago, &p.Subtotal, &p.CostoEnvio, &p.Total, &p.GuiaEntrega,
		&p.NotasAdministrativas, &p.EnvioContacto, &p.EnvioDireccion, &p.EnvioReferencias,
		&p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if idPaqueteria != nil {
		p.IDPaqueteria = *idPaqueteria
	}
	return &p, nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// Update actualiza un pedido existente.
func (r *PedidoRepo) Update(pedido *entity.Pedido) error {
	query := `
		UPDATE pedidos SET id_paqueteria = NULLIF($2, ''), estado = $3, fecha_entrega = $4, forma_pago = $5,
			subtotal = $6, costo_envio = $7, total = $8, guia_entrega = $9, notas_administrativas = $10,
			activo = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.IDPaqueteria, pedido.Estado, pedido.FechaEntrega, pedido.FormaPago,
		pedido.Subtotal, pedido.CostoEnvio, pedido.Total, pedido.GuiaEntrega,
		pedido.NotasAdministrativas, pedido.Activo, pedido.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pedido: %w", err)
	}
	return nil
}

// UpdateTotales actualiza solo subtotal y total (usado por el recálculo de líneas).
func (r *PedidoRepo) UpdateTotales(id string, subtotal, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET subtotal = $2, total = $3, updated_at = now() WHERE id = $1`,
		id, subtotal, total,
	)
	if err != nil {
		return fmt.Errorf("update totales pedido: %w", err)
	}
	return nil
}

// List lista pedidos activos con paginación, más recientes primero.
func (r *PedidoRepo) List(limit, offset int) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE activo ORDER BY fecha_pedido DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByCliente lista los pedidos activos de un cliente.
func (r *PedidoRepo) ListByCliente(clienteID string) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE activo AND id_cliente = $1 ORDER BY fecha_pedido DESC`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list pedidos by cliente: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *PedidoRepo) collect(rows pgx.Rows) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un pedido.
func (r *PedidoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete pedido: %w", err)
	}
	return nil
}

var _ repository.DetallePedidoRepository = (*DetallePedidoRepo)(nil)

const detalleColumns = `id, id_pedido, id_producto, cantidad, total, factura, activo, created_at, updated_at`

// DetallePedidoRepo implementación del puerto DetallePedidoRepository sobre PostgreSQL.
type DetallePedidoRepo struct {
	q Querier
}

// NewDetallePedidoRepository construye el adaptador de persistencia para líneas de pedido.
func NewDetallePedidoRepository(q Querier) *DetallePedidoRepo {
	return &DetallePedidoRepo{q: q}
}

// Create persiste una línea nueva.
func (r *DetallePedidoRepo) Create(detalle *entity.DetallePedido) error {
	query := `
		INSERT INTO detalles_pedido (id, id_pedido, id_producto, cantidad, total, factura, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.IDPedido, detalle.IDProducto, detalle.Cantidad, detalle.Total,
		detalle.Factura, detalle.Activo, detalle.CreatedAt, detalle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert detalle: %w", err)
	}
	return nil
}

func (r *DetallePedidoRepo) scanRow(row pgx.Row) (*entity.DetallePedido, error) {
	var d entity.DetallePedido
	err := row.Scan(
		&d.ID, &d.IDPedido, &d.IDProducto, &d.Cantidad, &d.Total, &d.Factura,
		&d.Activo, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID obtiene una línea por ID.
func (r *DetallePedidoRepo) GetByID(id string) (*entity.DetallePedido, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalles_pedido WHERE id = $1`
	d, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle: %w", err)
	}
	return d, nil
}

// GetActivoByPedidoProducto busca la línea activa de un producto en un pedido.
func (r *DetallePedidoRepo) GetActivoByPedidoProducto(pedidoID, productoID string) (*entity.DetallePedido, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalles_pedido WHERE activo AND id_pedido = $1 AND id_producto = $2`
	d, err := r.scanRow(r.q.QueryRow(context.Background(), query, pedidoID, productoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle by pedido y producto: %w", err)
	}
	return d, nil
}

// Update actualiza una línea existente.
func (r *DetallePedidoRepo) Update(detalle *entity.DetallePedido) error {
	query := `
		UPDATE detalles_pedido SET cantidad = $2, total = $3, factura = $4, activo = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.Cantidad, detalle.Total, detalle.Factura, detalle.Activo, detalle.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update detalle: %w", err)
	}
	return nil
}

// List lista líneas activas con paginación.
func (r *DetallePedidoRepo) List(limit, offset int) ([]*entity.DetallePedido, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalles_pedido WHERE activo ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list detalles: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByPedido lista las líneas activas de un pedido.
func (r *DetallePedidoRepo) ListByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	query := `SELECT ` + detalleColumns + ` FROM detalles_pedido WHERE activo AND id_pedido = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list detalles by pedido: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// SumActivoByPedido suma los totales de las líneas activas del pedido.
// Fuente de verdad para recalcular el subtotal.
func (r *DetallePedidoRepo) SumActivoByPedido(pedidoID string) (decimal.Decimal, error) {
	var suma decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total), 0) FROM detalles_pedido WHERE activo AND id_pedido = $1`,
		pedidoID,
	).Scan(&suma)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum detalles activos: %w", err)
	}
	return suma, nil
}

func (r *DetallePedidoRepo) collect(rows pgx.Rows) ([]*entity.DetallePedido, error) {
	var list []*entity.DetallePedido
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SoftDelete desactiva una línea, excluyéndola del subtotal.
func (r *DetallePedidoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE detalles_pedido SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete detalle: %w", err)
	}
	return nil
}
