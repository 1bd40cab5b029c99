package repository

import "github.com/casamedica/distribucion-api/internal/domain/entity"

// DireccionRepository define el puerto de persistencia para direcciones de envío.
type DireccionRepository interface {
	Create(direccion *entity.Direccion) error
	GetByID(id string) (*entity.Direccion, error)
	Update(direccion *entity.Direccion) error
	List(limit, offset int) ([]*entity.Direccion, error)
	ListByCliente(clienteID string) ([]*entity.Direccion, error)
	SoftDelete(id string) error
}
