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

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

const inventarioColumns = `id, id_producto, numero_lote, fecha_caducidad, cantidad_disponible, ubicacion_almacen, costo_unitario, iva_aplicable, activo, created_at, updated_at`

// InventarioRepo implementación del puerto InventarioRepository sobre PostgreSQL (usable con pool o tx).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository construye el adaptador de persistencia para lotes. Pasar pool o tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *InventarioRepo) Create(lote *entity.Inventario) error {
	query := `
		INSERT INTO inventario (id, id_producto, numero_lote, fecha_caducidad, cantidad_disponible, ubicacion_almacen, costo_unitario, iva_aplicable, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.IDProducto, lote.NumeroLote, lote.FechaCaducidad, lote.CantidadDisponible,
		lote.UbicacionAlmacen, lote.CostoUnitario, lote.IVAAplicable, lote.Activo, lote.CreatedAt, lote.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

func (r *InventarioRepo) scanRow(row pgx.Row) (*entity.Inventario, error) {
	var l entity.Inventario
	err := row.Scan(
		&l.ID, &l.IDProducto, &l.NumeroLote, &l.FechaCaducidad, &l.CantidadDisponible,
		&l.UbicacionAlmacen, &l.CostoUnitario, &l.IVAAplicable, &l.Activo, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetByID obtiene un lote por ID.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario WHERE id = $1`
	l, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return l, nil
}

// Update actualiza un lote existente.
func (r *InventarioRepo) Update(lote *entity.Inventario) error {
	query := `
		UPDATE inventario SET numero_lote = $2, fecha_caducidad = $3, cantidad_disponible = $4,
			ubicacion_almacen = $5, costo_unitario = $6, iva_aplicable = $7, activo = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lote.ID, lote.NumeroLote, lote.FechaCaducidad, lote.CantidadDisponible,
		lote.UbicacionAlmacen, lote.CostoUnitario, lote.IVAAplicable, lote.Activo, lote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// List lista lotes activos con paginación.
func (r *InventarioRepo) List(limit, offset int) ([]*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario WHERE activo ORDER BY fecha_caducidad LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByProducto lista los lotes activos de un producto, próximos a caducar primero.
func (r *InventarioRepo) ListByProducto(productoID string) ([]*entity.Inventario, error) {
	query := `SELECT ` + inventarioColumns + ` FROM inventario WHERE activo AND id_producto = $1 ORDER BY fecha_caducidad`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list lotes by producto: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// SumActivoByProducto suma la cantidad disponible de los lotes activos del
// producto. Fuente de verdad para el agregado cantidad_real.
func (r *InventarioRepo) SumActivoByProducto(productoID string) (int64, error) {
	var suma int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad_disponible), 0) FROM inventario WHERE activo AND id_producto = $1`,
		productoID,
	).Scan(&suma)
	if err != nil {
		return 0, fmt.Errorf("sum lotes activos: %w", err)
	}
	return suma, nil
}

func (r *InventarioRepo) collect(rows pgx.Rows) ([]*entity.Inventario, error) {
	var list []*entity.Inventario
	for rows.Next() {
		l, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un lote, excluyéndolo del agregado.
func (r *InventarioRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE inventario SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete lote: %w", err)
	}
	return nil
}
