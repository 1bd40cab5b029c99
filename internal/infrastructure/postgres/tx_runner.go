package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casamedica/distribucion-api/internal/application/pedidos"
	"github.com/casamedica/distribucion-api/internal/application/stock"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and pedidos.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ pedidos.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de productos y lotes atados
// a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productos repository.ProductoRepository,
	lotes repository.InventarioRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productos := NewProductoRepository(tx)
	lotes := NewInventarioRepository(tx)

	if err := fn(productos, lotes); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPedidos inicia una transacción con repos de pedidos y detalles (para
// creación de pedidos y recálculo de subtotales).
func (r *TxRunner) RunPedidos(ctx context.Context, fn func(
	pedidos repository.PedidoRepository,
	detalles repository.DetallePedidoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	pedidosRepo := NewPedidoRepository(tx)
	detallesRepo := NewDetallePedidoRepository(tx)

	if err := fn(pedidosRepo, detallesRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
