package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioColumns = `id, nombre, apellido_paterno, apellido_materno, telefono, rfc, email, password_hash, tipo_usuario, activo, created_at, updated_at`

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, apellido_paterno, apellido_materno, telefono, rfc, email, password_hash, tipo_usuario, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombre, usuario.ApellidoPaterno, usuario.ApellidoMaterno,
		usuario.Telefono, usuario.RFC, usuario.Email, usuario.PasswordHash, usuario.TipoUsuario,
		usuario.Activo, usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) scanRow(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	var telefono, rfc *string
	err := row.Scan(
		&u.ID, &u.Nombre, &u.ApellidoPaterno, &u.ApellidoMaterno, &telefono, &rfc,
		&u.Email, &u.PasswordHash, &u.TipoUsuario, &u.Activo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if telefono != nil {
		u.Telefono = *telefono
	}
	if rfc != nil {
		u.RFC = *rfc
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE id = $1`
	u, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

// GetByEmail obtiene un usuario por email, incluyendo inactivos (el registro
// reactiva cuentas dadas de baja).
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE LOWER(email) = LOWER($1)`
	u, err := r.scanRow(r.q.QueryRow(context.Background(), query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return u, nil
}

// GetByRFC obtiene un usuario por RFC.
func (r *UsuarioRepo) GetByRFC(rfc string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE UPPER(rfc) = UPPER($1)`
	u, err := r.scanRow(r.q.QueryRow(context.Background(), query, rfc))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by rfc: %w", err)
	}
	return u, nil
}

// GetByTelefono obtiene un usuario por teléfono.
func (r *UsuarioRepo) GetByTelefono(telefono string) (*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE telefono = $1`
	u, err := r.scanRow(r.q.QueryRow(context.Background(), query, telefono))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by telefono: %w", err)
	}
	return u, nil
}

// Update actualiza un usuario existente.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, apellido_paterno = $3, apellido_materno = $4,
			telefono = NULLIF($5, ''), rfc = NULLIF($6, ''), password_hash = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombre, usuario.ApellidoPaterno, usuario.ApellidoMaterno,
		usuario.Telefono, usuario.RFC, usuario.PasswordHash, usuario.Activo, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios activos con paginación.
func (r *UsuarioRepo) List(limit, offset int) ([]*entity.Usuario, error) {
	query := `SELECT ` + usuarioColumns + ` FROM usuarios WHERE activo ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		u, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un usuario.
func (r *UsuarioRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE usuarios SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete usuario: %w", err)
	}
	return nil
}
