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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, codigo_barras, descripcion, id_laboratorio, precio_venta, cantidad_real, stock_minimo, stock_maximo, activo, created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto. La cantidad real nace en cero.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, codigo_barras, descripcion, id_laboratorio, precio_venta, cantidad_real, stock_minimo, stock_maximo, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.CodigoBarras, producto.Descripcion, producto.IDLaboratorio,
		producto.PrecioVenta, producto.CantidadReal, producto.StockMinimo, producto.StockMaximo,
		producto.Activo, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) scanRow(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	var idLaboratorio *string
	err := row.Scan(
		&p.ID, &p.Nombre, &p.CodigoBarras, &p.Descripcion, &idLaboratorio, &p.PrecioVenta,
		&p.CantidadReal, &p.StockMinimo, &p.StockMaximo, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if idLaboratorio != nil {
		p.IDLaboratorio = *idLaboratorio
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByNombre obtiene un producto por nombre exacto, insensible a mayúsculas.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE LOWER(nombre) = LOWER($1)`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto by nombre: %w", err)
	}
	return p, nil
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 FOR UPDATE`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto for update: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente. No toca cantidad_real.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, codigo_barras = $3, descripcion = $4, id_laboratorio = NULLIF($5, ''),
			precio_venta = $6, stock_minimo = $7, stock_maximo = $8, activo = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.CodigoBarras, producto.Descripcion, producto.IDLaboratorio,
		producto.PrecioVenta, producto.StockMinimo, producto.StockMaximo, producto.Activo, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateCantidadReal actualiza solo el agregado de existencias (usado por el libro de stock).
func (r *ProductoRepo) UpdateCantidadReal(id string, cantidad int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad_real = $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad real: %w", err)
	}
	return nil
}

// List lista productos activos con paginación.
func (r *ProductoRepo) List(limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// Search busca productos activos por coincidencia parcial de nombre.
func (r *ProductoRepo) Search(q string, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE activo AND nombre ILIKE '%' || $1 || '%' ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *ProductoRepo) collect(rows pgx.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un producto.
func (r *ProductoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	return nil
}
