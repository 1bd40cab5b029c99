package usecase

import (
	"time"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// ClienteUseCase consultas y actualización del registro satélite de clientes.
// El alta de clientes ocurre en el registro de usuarios.
type ClienteUseCase struct {
	repo     repository.ClienteRepository
	usuarios repository.UsuarioRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, usuarios repository.UsuarioRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, usuarios: usuarios}
}

// GetByID obtiene un cliente con sus datos de usuario.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	usuario, err := uc.usuarios.GetByID(cliente.IDUsuario)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return toClienteResponse(cliente, usuario), nil
}

// List lista clientes activos con sus datos de usuario.
func (uc *ClienteUseCase) List(limit, offset int) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		usuario, err := uc.usuarios.GetByID(c.IDUsuario)
		if err != nil {
			return nil, err
		}
		if usuario == nil {
			continue
		}
		items = append(items, *toClienteResponse(c, usuario))
	}
	return items, nil
}

// Search busca clientes activos por nombre o apellido.
func (uc *ClienteUseCase) Search(q string, limit, offset int) ([]dto.ClienteResponse, error) {
	list, err := uc.repo.Search(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		usuario, err := uc.usuarios.GetByID(c.IDUsuario)
		if err != nil {
			return nil, err
		}
		if usuario == nil {
			continue
		}
		items = append(items, *toClienteResponse(c, usuario))
	}
	return items, nil
}

// Delete da de baja al cliente y a su usuario. El historial de pedidos se conserva.
func (uc *ClienteUseCase) Delete(id string) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil || !cliente.Activo {
		return domain.ErrNotFound
	}
	if err := uc.repo.SoftDelete(cliente.ID); err != nil {
		return err
	}
	return uc.usuarios.SoftDelete(cliente.IDUsuario)
}

// ActualizarNotas actualiza las notas administrativas del cliente.
func (uc *ClienteUseCase) ActualizarNotas(id, notas string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil || !cliente.Activo {
		return nil, domain.ErrNotFound
	}
	cliente.Notas = notas
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	usuario, err := uc.usuarios.GetByID(cliente.IDUsuario)
	if err != nil {
		return nil, err
	}
	return toClienteResponse(cliente, usuario), nil
}

func toClienteResponse(c *entity.Cliente, u *entity.Usuario) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	resp := &dto.ClienteResponse{
		ID:        c.ID,
		IDUsuario: c.IDUsuario,
		Genero:    c.Genero,
		Notas:     c.Notas,
		Activo:    c.Activo,
	}
	if u != nil {
		resp.Nombre = u.Nombre
		resp.ApellidoPaterno = u.ApellidoPaterno
		resp.Telefono = u.Telefono
		resp.Email = u.Email
	}
	return resp
}
