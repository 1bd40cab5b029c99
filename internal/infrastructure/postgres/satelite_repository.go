package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// Adaptadores de persistencia para los registros satélite de usuarios
// (clientes, médicos, representantes e internos).

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes.
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, id_usuario, genero, notas, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.IDUsuario, cliente.Genero, cliente.Notas,
		cliente.Activo, cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

func (r *ClienteRepo) scanRow(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	err := row.Scan(&c.ID, &c.IDUsuario, &c.Genero, &c.Notas, &c.Activo, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	query := `SELECT id, id_usuario, genero, notas, activo, created_at, updated_at FROM clientes WHERE id = $1`
	c, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByUsuario obtiene el cliente asociado a un usuario.
func (r *ClienteRepo) GetByUsuario(usuarioID string) (*entity.Cliente, error) {
	query := `SELECT id, id_usuario, genero, notas, activo, created_at, updated_at FROM clientes WHERE id_usuario = $1`
	c, err := r.scanRow(r.q.QueryRow(context.Background(), query, usuarioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente by usuario: %w", err)
	}
	return c, nil
}

// Update actualiza un cliente existente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `UPDATE clientes SET genero = $2, notas = $3, activo = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Genero, cliente.Notas, cliente.Activo, cliente.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista clientes activos con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT id, id_usuario, genero, notas, activo, created_at, updated_at FROM clientes WHERE activo ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Search busca clientes activos por nombre o apellido de su usuario.
func (r *ClienteRepo) Search(q string, limit, offset int) ([]*entity.Cliente, error) {
	query := `
		SELECT c.id, c.id_usuario, c.genero, c.notas, c.activo, c.created_at, c.updated_at
		FROM clientes c
		JOIN usuarios u ON u.id = c.id_usuario
		WHERE c.activo AND (u.nombre ILIKE '%' || $1 || '%'
			OR u.apellido_paterno ILIKE '%' || $1 || '%'
			OR u.apellido_materno ILIKE '%' || $1 || '%')
		ORDER BY u.nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un cliente.
func (r *ClienteRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete cliente: %w", err)
	}
	return nil
}

var _ repository.MedicoRepository = (*MedicoRepo)(nil)

// MedicoRepo implementación del puerto MedicoRepository sobre PostgreSQL.
type MedicoRepo struct {
	q Querier
}

// NewMedicoRepository construye el adaptador de persistencia para médicos.
func NewMedicoRepository(q Querier) *MedicoRepo {
	return &MedicoRepo{q: q}
}

// Create persiste un médico nuevo.
func (r *MedicoRepo) Create(medico *entity.Medico) error {
	query := `
		INSERT INTO medicos (id, id_usuario, cedula, especialidad, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		medico.ID, medico.IDUsuario, medico.Cedula, medico.Especialidad,
		medico.Activo, medico.CreatedAt, medico.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert medico: %w", err)
	}
	return nil
}

// GetByUsuario obtiene el médico asociado a un usuario.
func (r *MedicoRepo) GetByUsuario(usuarioID string) (*entity.Medico, error) {
	query := `SELECT id, id_usuario, cedula, especialidad, activo, created_at, updated_at FROM medicos WHERE id_usuario = $1`
	var m entity.Medico
	err := r.q.QueryRow(context.Background(), query, usuarioID).Scan(
		&m.ID, &m.IDUsuario, &m.Cedula, &m.Especialidad, &m.Activo, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medico by usuario: %w", err)
	}
	return &m, nil
}

// Update actualiza un médico existente.
func (r *MedicoRepo) Update(medico *entity.Medico) error {
	query := `UPDATE medicos SET cedula = $2, especialidad = $3, activo = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		medico.ID, medico.Cedula, medico.Especialidad, medico.Activo, medico.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update medico: %w", err)
	}
	return nil
}

// SoftDelete desactiva un médico.
func (r *MedicoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE medicos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete medico: %w", err)
	}
	return nil
}

var _ repository.RepresentanteRepository = (*RepresentanteRepo)(nil)

// RepresentanteRepo implementación del puerto RepresentanteRepository sobre PostgreSQL.
type RepresentanteRepo struct {
	q Querier
}

// NewRepresentanteRepository construye el adaptador de persistencia para representantes.
func NewRepresentanteRepository(q Querier) *RepresentanteRepo {
	return &RepresentanteRepo{q: q}
}

// Create persiste un representante nuevo.
func (r *RepresentanteRepo) Create(representante *entity.Representante) error {
	query := `
		INSERT INTO representantes (id, id_usuario, zona, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		representante.ID, representante.IDUsuario, representante.Zona,
		representante.Activo, representante.CreatedAt, representante.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert representante: %w", err)
	}
	return nil
}

// GetByUsuario obtiene el representante asociado a un usuario.
func (r *RepresentanteRepo) GetByUsuario(usuarioID string) (*entity.Representante, error) {
	query := `SELECT id, id_usuario, zona, activo, created_at, updated_at FROM representantes WHERE id_usuario = $1`
	var rep entity.Representante
	err := r.q.QueryRow(context.Background(), query, usuarioID).Scan(
		&rep.ID, &rep.IDUsuario, &rep.Zona, &rep.Activo, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get representante by usuario: %w", err)
	}
	return &rep, nil
}

// Update actualiza un representante existente.
func (r *RepresentanteRepo) Update(representante *entity.Representante) error {
	query := `UPDATE representantes SET zona = $2, activo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		representante.ID, representante.Zona, representante.Activo, representante.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update representante: %w", err)
	}
	return nil
}

// SoftDelete desactiva un representante.
func (r *RepresentanteRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE representantes SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete representante: %w", err)
	}
	return nil
}

var _ repository.InternoRepository = (*InternoRepo)(nil)

// InternoRepo implementación del puerto InternoRepository sobre PostgreSQL.
type InternoRepo struct {
	q Querier
}

// NewInternoRepository construye el adaptador de persistencia para personal interno.
func NewInternoRepository(q Querier) *InternoRepo {
	return &InternoRepo{q: q}
}

// Create persiste un interno nuevo.
func (r *InternoRepo) Create(interno *entity.Interno) error {
	query := `
		INSERT INTO internos (id, id_usuario, rol, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		interno.ID, interno.IDUsuario, interno.Rol,
		interno.Activo, interno.CreatedAt, interno.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert interno: %w", err)
	}
	return nil
}

// GetByUsuario obtiene el interno asociado a un usuario.
func (r *InternoRepo) GetByUsuario(usuarioID string) (*entity.Interno, error) {
	query := `SELECT id, id_usuario, rol, activo, created_at, updated_at FROM internos WHERE id_usuario = $1`
	var i entity.Interno
	err := r.q.QueryRow(context.Background(), query, usuarioID).Scan(
		&i.ID, &i.IDUsuario, &i.Rol, &i.Activo, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get interno by usuario: %w", err)
	}
	return &i, nil
}

// Update actualiza un interno existente.
func (r *InternoRepo) Update(interno *entity.Interno) error {
	query := `UPDATE internos SET rol = $2, activo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		interno.ID, interno.Rol, interno.Activo, interno.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update interno: %w", err)
	}
	return nil
}

// SoftDelete desactiva un interno.
func (r *InternoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE internos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete interno: %w", err)
	}
	return nil
}
