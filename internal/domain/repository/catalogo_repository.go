package repository

import "github.com/casamedica/distribucion-api/internal/domain/entity"

// LaboratorioRepository define el puerto de persistencia para laboratorios.
type LaboratorioRepository interface {
	Create(laboratorio *entity.Laboratorio) error
	GetByID(id string) (*entity.Laboratorio, error)
	GetByNombre(nombre string) (*entity.Laboratorio, error)
	Update(laboratorio *entity.Laboratorio) error
	List(limit, offset int) ([]*entity.Laboratorio, error)
	Search(q string, limit, offset int) ([]*entity.Laboratorio, error)
	SoftDelete(id string) error
}

// PaqueteriaRepository define el puerto de persistencia para paqueterías.
type PaqueteriaRepository interface {
	Create(paqueteria *entity.Paqueteria) error
	GetByID(id string) (*entity.Paqueteria, error)
	Update(paqueteria *entity.Paqueteria) error
	List(limit, offset int) ([]*entity.Paqueteria, error)
	SoftDelete(id string) error
}

// PromocionRepository define el puerto de persistencia para promociones.
type PromocionRepository interface {
	Create(promocion *entity.Promocion) error
	GetByID(id string) (*entity.Promocion, error)
	Update(promocion *entity.Promocion) error
	List(limit, offset int) ([]*entity.Promocion, error)
	ListByProducto(productoID string) ([]*entity.Promocion, error)
	SoftDelete(id string) error
}
