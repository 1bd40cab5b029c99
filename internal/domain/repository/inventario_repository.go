package repository

import "github.com/casamedica/distribucion-api/internal/domain/entity"

// InventarioRepository define el puerto de persistencia para lotes de inventario.
type InventarioRepository interface {
	Create(lote *entity.Inventario) error
	GetByID(id string) (*entity.Inventario, error)
	Update(lote *entity.Inventario) error
	List(limit, offset int) ([]*entity.Inventario, error)
	ListByProducto(productoID string) ([]*entity.Inventario, error)
	// SumActivoByProducto suma cantidad_disponible de los lotes activos del producto.
	// Es la fuente de verdad para recalcular Producto.CantidadReal.
	SumActivoByProducto(productoID string) (int64, error)
	SoftDelete(id string) error
}
