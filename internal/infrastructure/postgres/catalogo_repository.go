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

// Adaptadores de persistencia para los catálogos auxiliares: laboratorios,
// paqueterías y promociones.

var _ repository.LaboratorioRepository = (*LaboratorioRepo)(nil)

// LaboratorioRepo implementación del puerto LaboratorioRepository sobre PostgreSQL.
type LaboratorioRepo struct {
	q Querier
}

// NewLaboratorioRepository construye el adaptador de persistencia para laboratorios.
func NewLaboratorioRepository(q Querier) *LaboratorioRepo {
	return &LaboratorioRepo{q: q}
}

// Create persiste un laboratorio nuevo.
func (r *LaboratorioRepo) Create(laboratorio *entity.Laboratorio) error {
	query := `INSERT INTO laboratorios (id, nombre, activo, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		laboratorio.ID, laboratorio.Nombre, laboratorio.Activo, laboratorio.CreatedAt, laboratorio.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert laboratorio: %w", err)
	}
	return nil
}

// GetByID obtiene un laboratorio por ID.
func (r *LaboratorioRepo) GetByID(id string) (*entity.Laboratorio, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM laboratorios WHERE id = $1`
	var l entity.Laboratorio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Nombre, &l.Activo, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get laboratorio: %w", err)
	}
	return &l, nil
}

// GetByNombre obtiene un laboratorio por nombre exacto, insensible a mayúsculas.
func (r *LaboratorioRepo) GetByNombre(nombre string) (*entity.Laboratorio, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM laboratorios WHERE LOWER(nombre) = LOWER($1)`
	var l entity.Laboratorio
	err := r.q.QueryRow(context.Background(), query, nombre).Scan(
		&l.ID, &l.Nombre, &l.Activo, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get laboratorio by nombre: %w", err)
	}
	return &l, nil
}

// Update actualiza un laboratorio existente.
func (r *LaboratorioRepo) Update(laboratorio *entity.Laboratorio) error {
	query := `UPDATE laboratorios SET nombre = $2, activo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		laboratorio.ID, laboratorio.Nombre, laboratorio.Activo, laboratorio.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update laboratorio: %w", err)
	}
	return nil
}

// List lista laboratorios activos con paginación.
func (r *LaboratorioRepo) List(limit, offset int) ([]*entity.Laboratorio, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM laboratorios WHERE activo ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list laboratorios: %w", err)
	}
	defer rows.Close()
	return collectLaboratorios(rows)
}

// Search busca laboratorios activos por coincidencia parcial de nombre.
func (r *LaboratorioRepo) Search(q string, limit, offset int) ([]*entity.Laboratorio, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM laboratorios WHERE activo AND nombre ILIKE '%' || $1 || '%' ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search laboratorios: %w", err)
	}
	defer rows.Close()
	return collectLaboratorios(rows)
}

func collectLaboratorios(rows pgx.Rows) ([]*entity.Laboratorio, error) {
	var list []*entity.Laboratorio
	for rows.Next() {
		var l entity.Laboratorio
		if err := rows.Scan(&l.ID, &l.Nombre, &l.Activo, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan laboratorio: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SoftDelete desactiva un laboratorio.
func (r *LaboratorioRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE laboratorios SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete laboratorio: %w", err)
	}
	return nil
}

var _ repository.PaqueteriaRepository = (*PaqueteriaRepo)(nil)

// PaqueteriaRepo implementación del puerto PaqueteriaRepository sobre PostgreSQL.
type PaqueteriaRepo struct {
	q Querier
}

// NewPaqueteriaRepository construye el adaptador de persistencia para paqueterías.
func NewPaqueteriaRepository(q Querier) *PaqueteriaRepo {
	return &PaqueteriaRepo{q: q}
}

// Create persiste una paquetería nueva.
func (r *PaqueteriaRepo) Create(paqueteria *entity.Paqueteria) error {
	query := `INSERT INTO paqueterias (id, nombre, activo, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		paqueteria.ID, paqueteria.Nombre, paqueteria.Activo, paqueteria.CreatedAt, paqueteria.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert paqueteria: %w", err)
	}
	return nil
}

// GetByID obtiene una paquetería por ID.
func (r *PaqueteriaRepo) GetByID(id string) (*entity.Paqueteria, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM paqueterias WHERE id = $1`
	var p entity.Paqueteria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Activo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get paqueteria: %w", err)
	}
	return &p, nil
}

// Update actualiza una paquetería existente.
func (r *PaqueteriaRepo) Update(paqueteria *entity.Paqueteria) error {
	query := `UPDATE paqueterias SET nombre = $2, activo = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		paqueteria.ID, paqueteria.Nombre, paqueteria.Activo, paqueteria.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update paqueteria: %w", err)
	}
	return nil
}

// List lista paqueterías activas con paginación.
func (r *PaqueteriaRepo) List(limit, offset int) ([]*entity.Paqueteria, error) {
	query := `SELECT id, nombre, activo, created_at, updated_at FROM paqueterias WHERE activo ORDER BY nombre LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list paqueterias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Paqueteria
	for rows.Next() {
		var p entity.Paqueteria
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Activo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan paqueteria: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// SoftDelete desactiva una paquetería.
func (r *PaqueteriaRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE paqueterias SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete paqueteria: %w", err)
	}
	return nil
}

var _ repository.PromocionRepository = (*PromocionRepo)(nil)

const promocionColumns = `id, id_producto, tipo_promocion, descripcion, unidades_requeridas, unidades_obsequiadas, cantidad_descuento, porcentaje_descuento, minimo_compra, acumulable, activo, created_at, updated_at`

// PromocionRepo implementación del puerto PromocionRepository sobre PostgreSQL.
type PromocionRepo struct {
	q Querier
}

// NewPromocionRepository construye el adaptador de persistencia para promociones.
func NewPromocionRepository(q Querier) *PromocionRepo {
	return &PromocionRepo{q: q}
}

// Create persiste una promoción nueva.
func (r *PromocionRepo) Create(promocion *entity.Promocion) error {
	query := `
		INSERT INTO promociones (id, id_producto, tipo_promocion, descripcion, unidades_requeridas, unidades_obsequiadas, cantidad_descuento, porcentaje_descuento, minimo_compra, acumulable, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		promocion.ID, promocion.IDProducto, promocion.TipoPromocion, promocion.Descripcion,
		promocion.UnidadesRequeridas, promocion.UnidadesObsequiadas, promocion.CantidadDescuento,
		promocion.PorcentajeDescuento, promocion.MinimoCompra, promocion.Acumulable,
		promocion.Activo, promocion.CreatedAt, promocion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promocion: %w", err)
	}
	return nil
}

func (r *PromocionRepo) scanRow(row pgx.Row) (*entity.Promocion, error) {
	var p entity.Promocion
	err := row.Scan(
		&p.ID, &p.IDProducto, &p.TipoPromocion, &p.Descripcion, &p.UnidadesRequeridas,
		&p.UnidadesObsequiadas, &p.CantidadDescuento, &p.PorcentajeDescuento, &p.MinimoCompra,
		&p.Acumulable, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID obtiene una promoción por ID.
func (r *PromocionRepo) GetByID(id string) (*entity.Promocion, error) {
	query := `SELECT ` + promocionColumns + ` FROM promociones WHERE id = $1`
	p, err := r.scanRow(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promocion: %w", err)
	}
	return p, nil
}

// Update actualiza una promoción existente.
func (r *PromocionRepo) Update(promocion *entity.Promocion) error {
	query := `
		UPDATE promociones SET descripcion = $2, unidades_requeridas = $3, unidades_obsequiadas = $4,
			cantidad_descuento = $5, porcentaje_descuento = $6, minimo_compra = $7, acumulable = $8,
			activo = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		promocion.ID, promocion.Descripcion, promocion.UnidadesRequeridas, promocion.UnidadesObsequiadas,
		promocion.CantidadDescuento, promocion.PorcentajeDescuento, promocion.MinimoCompra,
		promocion.Acumulable, promocion.Activo, promocion.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update promocion: %w", err)
	}
	return nil
}

// List lista promociones activas con paginación.
func (r *PromocionRepo) List(limit, offset int) ([]*entity.Promocion, error) {
	query := `SELECT ` + promocionColumns + ` FROM promociones WHERE activo ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list promociones: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

// ListByProducto lista las promociones activas de un producto.
func (r *PromocionRepo) ListByProducto(productoID string) ([]*entity.Promocion, error) {
	query := `SELECT ` + promocionColumns + ` FROM promociones WHERE activo AND id_producto = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productoID)
	if err != nil {
		return nil, fmt.Errorf("list promociones by producto: %w", err)
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *PromocionRepo) collect(rows pgx.Rows) ([]*entity.Promocion, error) {
	var list []*entity.Promocion
	for rows.Next() {
		p, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promocion: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// SoftDelete desactiva una promoción.
func (r *PromocionRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE promociones SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete promocion: %w", err)
	}
	return nil
}
