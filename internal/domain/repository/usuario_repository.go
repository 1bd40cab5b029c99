package repository

import "github.com/casamedica/distribucion-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para la cuenta base.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	// GetByEmail busca por email (minúsculas), incluyendo inactivos: el registro
	// reactiva cuentas dadas de baja.
	GetByEmail(email string) (*entity.Usuario, error)
	GetByRFC(rfc string) (*entity.Usuario, error)
	GetByTelefono(telefono string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List(limit, offset int) ([]*entity.Usuario, error)
	SoftDelete(id string) error
}

// ClienteRepository puerto para el registro satélite de clientes.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByUsuario(usuarioID string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List(limit, offset int) ([]*entity.Cliente, error)
	// Search busca clientes activos por nombre o apellido de su usuario.
	Search(q string, limit, offset int) ([]*entity.Cliente, error)
	SoftDelete(id string) error
}

// MedicoRepository puerto para el registro satélite de médicos.
type MedicoRepository interface {
	Create(medico *entity.Medico) error
	GetByUsuario(usuarioID string) (*entity.Medico, error)
	Update(medico *entity.Medico) error
	SoftDelete(id string) error
}

// RepresentanteRepository puerto para el registro satélite de representantes.
type RepresentanteRepository interface {
	Create(representante *entity.Representante) error
	GetByUsuario(usuarioID string) (*entity.Representante, error)
	Update(representante *entity.Representante) error
	SoftDelete(id string) error
}

// InternoRepository puerto para el registro satélite de personal interno.
type InternoRepository interface {
	Create(interno *entity.Interno) error
	GetByUsuario(usuarioID string) (*entity.Interno, error)
	Update(interno *entity.Interno) error
	SoftDelete(id string) error
}
