// Package stock implementa el libro de stock: la única autoridad sobre la
// relación entre los lotes de inventario y la cantidad real agregada del
// producto. Toda alta, ajuste o baja de lote pasa por aquí; el agregado se
// recalcula siempre como suma completa de los lotes activos, nunca de forma
// incremental, para que no haya deriva si un lote se toca por fuera.
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// Ledger casos de uso de lotes de inventario: recibir, ajustar y dar de baja,
// manteniendo Producto.CantidadReal consistente dentro de la misma transacción
// con la fila del producto bloqueada (SELECT FOR UPDATE).
type Ledger struct {
	txRunner  TxRunner
	productos repository.ProductoRepository
	lotes     repository.InventarioRepository
}

// NewLedger construye el libro de stock.
func NewLedger(txRunner TxRunner, productos repository.ProductoRepository, lotes repository.InventarioRepository) *Ledger {
	return &Ledger{txRunner: txRunner, productos: productos, lotes: lotes}
}

// LoteInput datos para recibir un lote nuevo.
type LoteInput struct {
	NumeroLote         string
	FechaCaducidad     time.Time
	CantidadDisponible int64
	UbicacionAlmacen   string
	CostoUnitario      decimal.Decimal
	IVAAplicable       decimal.Decimal
}

// ResolverProducto resuelve una referencia de producto: UUID o nombre exacto
// sin distinguir mayúsculas. Devuelve ErrNotFound si nada coincide.
func (l *Ledger) ResolverProducto(ref string) (*entity.Producto, error) {
	if ref == "" {
		return nil, domain.ErrInvalidInput
	}
	var producto *entity.Producto
	var err error
	if _, parseErr := uuid.Parse(ref); parseErr == nil {
		producto, err = l.productos.GetByID(ref)
	} else {
		producto, err = l.productos.GetByNombre(ref)
	}
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	return producto, nil
}

// RecibirLote registra un lote nuevo para el producto referenciado y recalcula
// el agregado. Falla con ErrOutOfBounds si la proyección supera el stock
// máximo del producto; la igualdad exacta con el máximo es válida.
func (l *Ledger) RecibirLote(ctx context.Context, productoRef string, in LoteInput) (*entity.Inventario, error) {
	// Validación antes de cualquier escritura: nunca hay escrituras parciales.
	if in.NumeroLote == "" || in.UbicacionAlmacen == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FechaCaducidad.IsZero() || in.CantidadDisponible < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostoUnitario.IsNegative() || in.IVAAplicable.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	producto, err := l.ResolverProducto(productoRef)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lote := &entity.Inventario{
		ID:                 uuid.New().String(),
		IDProducto:         producto.ID,
		NumeroLote:         in.NumeroLote,
		FechaCaducidad:     in.FechaCaducidad,
		CantidadDisponible: in.CantidadDisponible,
		UbicacionAlmacen:   in.UbicacionAlmacen,
		CostoUnitario:      in.CostoUnitario,
		IVAAplicable:       in.IVAAplicable,
		Activo:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err = l.txRunner.Run(ctx, func(productos repository.ProductoRepository, lotes repository.InventarioRepository) error {
		bloqueado, err := productos.GetForUpdate(producto.ID)
		if err != nil {
			return err
		}
		if bloqueado == nil {
			return domain.ErrNotFound
		}
		proyectado := bloqueado.CantidadReal + in.CantidadDisponible
		if proyectado > bloqueado.StockMaximo {
			return domain.ErrOutOfBounds
		}
		if err := lotes.Create(lote); err != nil {
			return err
		}
		return recalcular(productos, lotes, producto.ID)
	})
	if err != nil {
		return nil, err
	}
	return lote, nil
}

// AjustarLote cambia la cantidad disponible de un lote existente. Un delta
// positivo se valida contra el stock máximo del producto; uno negativo contra
// el mínimo. Tras el ajuste se recalcula el agregado completo.
func (l *Ledger) AjustarLote(ctx context.Context, loteID string, nuevaCantidad int64, nuevaUbicacion *string) (*entity.Inventario, error) {
	if nuevaCantidad < 0 {
		return nil, domain.ErrInvalidInput
	}
	var resultado *entity.Inventario
	err := l.txRunner.Run(ctx, func(productos repository.ProductoRepository, lotes repository.InventarioRepository) error {
		lote, err := lotes.GetByID(loteID)
		if err != nil {
			return err
		}
		if lote == nil || !lote.Activo {
			return domain.ErrNotFound
		}
		producto, err := productos.GetForUpdate(lote.IDProducto)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}

		delta := nuevaCantidad - lote.CantidadDisponible
		if delta > 0 && producto.CantidadReal+delta > producto.StockMaximo {
			return domain.ErrOutOfBounds
		}
		if delta < 0 && producto.CantidadReal+delta < producto.StockMinimo {
			return domain.ErrOutOfBounds
		}

		lote.CantidadDisponible = nuevaCantidad
		if nuevaUbicacion != nil && *nuevaUbicacion != "" {
			lote.UbicacionAlmacen = *nuevaUbicacion
		}
		lote.UpdatedAt = time.Now()
		if err := lotes.Update(lote); err != nil {
			return err
		}
		resultado = lote
		return recalcular(productos, lotes, lote.IDProducto)
	})
	if err != nil {
		return nil, err
	}
	return resultado, nil
}

// BajaLote marca el lote como inactivo (soft delete) y recalcula el agregado.
// La baja no valida límites: retirar un lote vencido siempre debe ser posible.
func (l *Ledger) BajaLote(ctx context.Context, loteID string) error {
	return l.txRunner.Run(ctx, func(productos repository.ProductoRepository, lotes repository.InventarioRepository) error {
		lote, err := lotes.GetByID(loteID)
		if err != nil {
			return err
		}
		if lote == nil || !lote.Activo {
			return domain.ErrNotFound
		}
		if _, err := productos.GetForUpdate(lote.IDProducto); err != nil {
			return err
		}
		if err := lotes.SoftDelete(loteID); err != nil {
			return err
		}
		return recalcular(productos, lotes, lote.IDProducto)
	})
}

// recalcular fija Producto.CantidadReal a la suma de los lotes activos.
// Siempre suma completa sobre la tabla, nunca aritmética incremental.
func recalcular(productos repository.ProductoRepository, lotes repository.InventarioRepository, productoID string) error {
	total, err := lotes.SumActivoByProducto(productoID)
	if err != nil {
		return err
	}
	return productos.UpdateCantidadReal(productoID, total)
}
