package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

var _ repository.DireccionRepository = (*DireccionRepo)(nil)

const direccionColumns = `id, id_cliente, calle, numero_exterior, numero_interior, colonia, municipio, estado, codigo_postal, referencias, activo, created_at, updated_at`

// DireccionRepo implementación del puerto DireccionRepository sobre PostgreSQL.
type DireccionRepo struct {
	q Querier
}

// NewDireccionRepository construye el adaptador de persistencia para direcciones.
func NewDireccionRepository(q Querier) *DireccionRepo {
	return &DireccionRepo{q: q}
}

// Create persiste una dirección nueva.
func (r *DireccionRepo) Create(direccion *entity.Direccion) error {
	query := `
		INSERT INTO direcciones (id, id_cliente, calle, numero_exterior, numero_interior, colonia, municipio, estado, codigo_postal, referencias, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		direccion.ID, direccion.IDCliente, direccion.Calle, direccion.NumeroExterior,
		direccion.NumeroInterior, direccion.Colonia, direccion.Municipio, direccion.Estado,
		direccion.CodigoPostal, direccion.Referencias, direccion.Activo, direccion.CreatedAt, direccion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert direccion: %w", err)
	}
	return nil
}

func (r *DireccionRepo) scanRow(row pgx.Row) (*entity.Direccion, error) {
	var d entity.Direccion
	err := row.Scan(
		&d.ID, &d.IDCliente, &d.Calle, &d.NumeroExterior, &d.NumeroInterior, &d.Colonia,
		&d.Municipio, &d.Estado, &d.CodigoPostal, &d.Referencias, &d.Activo, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID obtiene una dirección por ID.
func (r *DireccionRepo) GetByID(id string) (*entity.Direccion, error) {
	query := `SELECT ` + direccionColumns + ` FROM direcciones WHERE id = $1`
	d, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get direccion: %w", err)
	}
	return d, nil
}

// Update actualiza una dirección existente.
func (r *DireccionRepo) Update(direccion *entity.Direccion) error {
	query := `
		UPDATE direcciones SET calle = $2, numero_exterior = $3, numero_interior = $4, colonia = $5,
			municipio = $6, estado = $7, codigo_postal = $8, referencias = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		direccion.ID, direccion.Calle, direccion.NumeroExterior, direccion.NumeroInterior,
		direccion.Colonia, direccion.Municipio, direccion.Estado, direccion.CodigoPostal,
		direccion.Referencias, direccion.Activo, direccion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update direccion: %w", err)
	}
	return nil
}

// List lista direcciones activas con paginación.
func (r *DireccionRepo) List(limit, offset int) ([]*entity.Direccion, error) {
	query := `SELECT ` + direccionColumns + ` FROM direcciones WHERE activo ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list direcciones: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByCliente lista las direcciones activas de un cliente.
func (r *DireccionRepo) ListByCliente(clienteID string) ([]*entity.Direccion, error) {
	query := `SELECT ` + direccionColumns + ` FROM direcciones WHERE activo AND id_cliente = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, clienteID)
	if err != nil {
		return nil, fmt.Errorf("list direcciones by cliente: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *DireccionRepo) collect(rows pgx.Rows) ([]*entity.Direccion, error) {
	var list []*entity.Direccion
	for rows.Next() {
		d, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan direccion: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// SoftDelete desactiva una dirección.
func (r *DireccionRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE direcciones SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete direccion: %w", err)
	}
	return nil
}
