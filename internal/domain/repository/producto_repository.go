package repository

import "github.com/casamedica/distribucion-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// CantidadReal solo se escribe vía UpdateCantidadReal, invocado por el libro
// de stock; Create y Update no la tocan.
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetByNombre busca por nombre exacto, insensible a mayúsculas/minúsculas.
	GetByNombre(nombre string) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	UpdateCantidadReal(id string, cantidad int64) error
	List(limit, offset int) ([]*entity.Producto, error)
	// Search busca por coincidencia parcial de nombre (ILIKE %q%), solo activos.
	Search(q string, limit, offset int) ([]*entity.Producto, error)
	SoftDelete(id string) error
}
