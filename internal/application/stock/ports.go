package stock

import (
	"context"

	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la mutación del lote y el
// recálculo del agregado del producto se confirmen o reviertan juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productos repository.ProductoRepository,
		lotes repository.InventarioRepository,
	) error) error
}
