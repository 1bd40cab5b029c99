// Package auth implementa registro y autenticación de usuarios: cuenta base
// más registro satélite según tipo, hash bcrypt y emisión de tokens JWT.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
	"github.com/casamedica/distribucion-api/pkg/jwt"
	"github.com/casamedica/distribucion-api/pkg/textutil"
)

// Config parámetros de emisión de tokens.
type Config struct {
	Secret            string
	Issuer            string
	ExpirationMinutes int
}

// UseCase casos de uso de registro y login.
type UseCase struct {
	cfg            Config
	usuarios       repository.UsuarioRepository
	clientes       repository.ClienteRepository
	medicos        repository.MedicoRepository
	representantes repository.RepresentanteRepository
	internos       repository.InternoRepository
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(
	cfg Config,
	usuarios repository.UsuarioRepository,
	clientes repository.ClienteRepository,
	medicos repository.MedicoRepository,
	representantes repository.RepresentanteRepository,
	internos repository.InternoRepository,
) *UseCase {
	return &UseCase{
		cfg:            cfg,
		usuarios:       usuarios,
		clientes:       clientes,
		medicos:        medicos,
		representantes: representantes,
		internos:       internos,
	}
}

// Registrar crea la cuenta base y su registro satélite según el tipo. Email,
// RFC y teléfono son únicos en todo el sistema. Si el email pertenece a una
// cuenta dada de baja del mismo tipo, la cuenta se reactiva con los datos
// nuevos en lugar de crear otra.
func (uc *UseCase) Registrar(in dto.RegisterRequest) (*entity.Usuario, error) {
	if in.Nombre == "" || in.ApellidoPaterno == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.TipoUsuarioValido(in.TipoUsuario) {
		return nil, domain.ErrInvalidInput
	}
	if in.TipoUsuario == entity.TipoInterno && !entity.RolInternoValido(in.Rol) {
		return nil, domain.ErrInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil && existente.Activo {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existente != nil && existente.TipoUsuario != in.TipoUsuario {
		return nil, domain.ErrEmailAlreadyExists
	}

	if in.RFC != "" {
		porRFC, err := uc.usuarios.GetByRFC(strings.ToUpper(in.RFC))
		if err != nil {
			return nil, err
		}
		if porRFC != nil && (existente == nil || porRFC.ID != existente.ID) {
			return nil, domain.ErrDuplicate
		}
	}
	if in.Telefono != "" {
		porTelefono, err := uc.usuarios.GetByTelefono(in.Telefono)
		if err != nil {
			return nil, err
		}
		if porTelefono != nil && (existente == nil || porTelefono.ID != existente.ID) {
			return nil, domain.ErrDuplicate
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if existente != nil {
		// Reactivación de una cuenta dada de baja.
		existente.Nombre = textutil.CapitalizarPalabras(in.Nombre)
		existente.ApellidoPaterno = textutil.CapitalizarPalabras(in.ApellidoPaterno)
		existente.ApellidoMaterno = textutil.CapitalizarPalabras(in.ApellidoMaterno)
		existente.Telefono = in.Telefono
		existente.RFC = strings.ToUpper(in.RFC)
		existente.PasswordHash = string(hash)
		existente.Activo = true
		existente.UpdatedAt = now
		if err := uc.usuarios.Update(existente); err != nil {
			return nil, err
		}
		if err := uc.reactivarSatelite(existente, in); err != nil {
			return nil, err
		}
		return existente, nil
	}

	usuario := &entity.Usuario{
		ID:              uuid.New().String(),
		Nombre:          textutil.CapitalizarPalabras(in.Nombre),
		ApellidoPaterno: textutil.CapitalizarPalabras(in.ApellidoPaterno),
		ApellidoMaterno: textutil.CapitalizarPalabras(in.ApellidoMaterno),
		Telefono:        in.Telefono,
		RFC:             strings.ToUpper(in.RFC),
		Email:           email,
		PasswordHash:    string(hash),
		TipoUsuario:     in.TipoUsuario,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	if err := uc.crearSatelite(usuario, in); err != nil {
		return nil, err
	}
	return usuario, nil
}

func (uc *UseCase) crearSatelite(usuario *entity.Usuario, in dto.RegisterRequest) error {
	now := time.Now()
	switch usuario.TipoUsuario {
	case entity.TipoCliente:
		return uc.clientes.Create(&entity.Cliente{
			ID: uuid.New().String(), IDUsuario: usuario.ID,
			Genero: in.Genero, Activo: true, CreatedAt: now, UpdatedAt: now,
		})
	case entity.TipoMedico:
		return uc.medicos.Create(&entity.Medico{
			ID: uuid.New().String(), IDUsuario: usuario.ID,
			Cedula: in.Cedula, Especialidad: in.Especialidad,
			Activo: true, CreatedAt: now, UpdatedAt: now,
		})
	case entity.TipoRepresentante:
		return uc.representantes.Create(&entity.Representante{
			ID: uuid.New().String(), IDUsuario: usuario.ID,
			Zona: in.Zona, Activo: true, CreatedAt: now, UpdatedAt: now,
		})
	case entity.TipoInterno:
		return uc.internos.Create(&entity.Interno{
			ID: uuid.New().String(), IDUsuario: usuario.ID,
			Rol: in.Rol, Activo: true, CreatedAt: now, UpdatedAt: now,
		})
	}
	return domain.ErrInvalidInput
}

func (uc *UseCase) reactivarSatelite(usuario *entity.Usuario, in dto.RegisterRequest) error {
	now := time.Now()
	switch usuario.TipoUsuario {
	case entity.TipoCliente:
		cliente, err := uc.clientes.GetByUsuario(usuario.ID)
		if err != nil {
			return err
		}
		if cliente == nil {
			return uc.crearSatelite(usuario, in)
		}
		cliente.Genero = in.Genero
		cliente.Activo = true
		cliente.UpdatedAt = now
		return uc.clientes.Update(cliente)
	case entity.TipoMedico:
		medico, err := uc.medicos.GetByUsuario(usuario.ID)
		if err != nil {
			return err
		}
		if medico == nil {
			return uc.crearSatelite(usuario, in)
		}
		medico.Cedula = in.Cedula
		medico.Especialidad = in.Especialidad
		medico.Activo = true
		medico.UpdatedAt = now
		return uc.medicos.Update(medico)
	case entity.TipoRepresentante:
		representante, err := uc.representantes.GetByUsuario(usuario.ID)
		if err != nil {
			return err
		}
		if representante == nil {
			return uc.crearSatelite(usuario, in)
		}
		representante.Zona = in.Zona
		representante.Activo = true
		representante.UpdatedAt = now
		return uc.representantes.Update(representante)
	case entity.TipoInterno:
		interno, err := uc.internos.GetByUsuario(usuario.ID)
		if err != nil {
			return err
		}
		if interno == nil {
			return uc.crearSatelite(usuario, in)
		}
		interno.Rol = in.Rol
		interno.Activo = true
		interno.UpdatedAt = now
		return uc.internos.Update(interno)
	}
	return domain.ErrInvalidInput
}

// Login valida credenciales y emite un token JWT. La respuesta incluye
// información extra del registro satélite según el tipo de usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarios.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	rol := ""
	extra := map[string]any{}
	switch usuario.TipoUsuario {
	case entity.TipoCliente:
		cliente, err := uc.clientes.GetByUsuario(usuario.ID)
		if err != nil {
			return nil, err
		}
		if cliente != nil {
			extra["id_cliente"] = cliente.ID
			extra["genero"] = cliente.Genero
		}
	case entity.TipoMedico:
		medico, err := uc.medicos.GetByUsuario(usuario.ID)
		if err != nil {
			return nil, err
		}
		if medico != nil {
			extra["id_medico"] = medico.ID
		}
	case entity.TipoRepresentante:
		representante, err := uc.representantes.GetByUsuario(usuario.ID)
		if err != nil {
			return nil, err
		}
		if representante != nil {
			extra["id_representante"] = representante.ID
		}
	case entity.TipoInterno:
		interno, err := uc.internos.GetByUsuario(usuario.ID)
		if err != nil {
			return nil, err
		}
		if interno == nil || !interno.Activo {
			return nil, domain.ErrUnauthorized
		}
		rol = interno.Rol
		extra["rol"] = rol
	}

	token, err := jwt.Generate(uc.cfg.Secret, usuario.ID, usuario.TipoUsuario, rol, uc.cfg.Issuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:              usuario.ID,
			Nombre:          usuario.Nombre,
			ApellidoPaterno: usuario.ApellidoPaterno,
			ApellidoMaterno: usuario.ApellidoMaterno,
			Telefono:        usuario.Telefono,
			RFC:             usuario.RFC,
			Email:           usuario.Email,
			TipoUsuario:     usuario.TipoUsuario,
			Activo:          usuario.Activo,
			CreatedAt:       usuario.CreatedAt,
		},
		Extra: extra,
	}, nil
}

// PorID obtiene un usuario por identificador.
func (uc *UseCase) PorID(id string) (*entity.Usuario, error) {
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return usuario, nil
}

// Listar lista usuarios activos con paginación.
func (uc *UseCase) Listar(limit, offset int) ([]*entity.Usuario, error) {
	return uc.usuarios.List(limit, offset)
}

// Baja desactiva al usuario y su registro satélite.
func (uc *UseCase) Baja(id string) error {
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil || !usuario.Activo {
		return domain.ErrUserNotFound
	}
	if err := uc.usuarios.SoftDelete(id); err != nil {
		return err
	}
	switch usuario.TipoUsuario {
	case entity.TipoCliente:
		if cliente, err := uc.clientes.GetByUsuario(id); err == nil && cliente != nil {
			return uc.clientes.SoftDelete(cliente.ID)
		}
	case entity.TipoMedico:
		if medico, err := uc.medicos.GetByUsuario(id); err == nil && medico != nil {
			return uc.medicos.SoftDelete(medico.ID)
		}
	case entity.TipoRepresentante:
		if representante, err := uc.representantes.GetByUsuario(id); err == nil && representante != nil {
			return uc.representantes.SoftDelete(representante.ID)
		}
	case entity.TipoInterno:
		if interno, err := uc.internos.GetByUsuario(id); err == nil && interno != nil {
			return uc.internos.SoftDelete(interno.ID)
		}
	}
	return nil
}
