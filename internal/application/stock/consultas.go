package stock

import (
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// ListarLotes lista lotes con paginación (incluye inactivos, como el histórico).
func (l *Ledger) ListarLotes(limit, offset int) ([]*entity.Inventario, error) {
	return l.lotes.List(limit, offset)
}

// LotePorID obtiene un lote por su ID. Devuelve ErrNotFound si no existe.
func (l *Ledger) LotePorID(id string) (*entity.Inventario, error) {
	lote, err := l.lotes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, domain.ErrNotFound
	}
	return lote, nil
}

// LotesPorProducto devuelve los lotes del producto referenciado por UUID o
// nombre exacto. ErrNotFound si el producto no existe o no tiene lotes.
func (l *Ledger) LotesPorProducto(productoRef string) (*entity.Producto, []*entity.Inventario, error) {
	producto, err := l.ResolverProducto(productoRef)
	if err != nil {
		return nil, nil, err
	}
	lotes, err := l.lotes.ListByProducto(producto.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(lotes) == 0 {
		return nil, nil, domain.ErrNotFound
	}
	return producto, lotes, nil
}
