package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Laboratorio representa un laboratorio farmacéutico fabricante.
type Laboratorio struct {
	ID        string
	Nombre    string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Paqueteria representa una empresa de mensajería para entrega de pedidos.
type Paqueteria struct {
	ID        string
	Nombre    string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tipos de promoción.
const (
	PromocionNxM        = 1 // 2x1, 3x2, 3+1, etc.
	PromocionDescuento  = 2 // descuento fijo en precio
	PromocionPorcentaje = 3 // porcentaje de descuento
	PromocionVolumen    = 4 // descuento a partir de X unidades
)

// Promocion representa una promoción comercial aplicable a un producto.
// Según TipoPromocion aplican campos distintos; la validación vive en el
// caso de uso de promociones.
type Promocion struct {
	ID                  string
	IDProducto          string
	TipoPromocion       int
	Descripcion         string
	UnidadesRequeridas  int64
	UnidadesObsequiadas int64
	CantidadDescuento   decimal.Decimal
	PorcentajeDescuento decimal.Decimal
	MinimoCompra        int64
	Acumulable          bool
	Activo              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
