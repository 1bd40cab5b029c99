package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLaboratorioRequest body para POST /api/laboratorios.
type CreateLaboratorioRequest struct {
	Nombre string `json:"nombre"`
}

// LaboratorioResponse salida de un laboratorio.
type LaboratorioResponse struct {
	ID        string    `json:"id_laboratorio"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePaqueteriaRequest body para POST /api/paqueterias.
type CreatePaqueteriaRequest struct {
	Nombre string `json:"nombre"`
}

// PaqueteriaResponse salida de una paquetería.
type PaqueteriaResponse struct {
	ID        string    `json:"id_paqueteria"`
	Nombre    string    `json:"nombre"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePromocionRequest body para POST /api/promociones. Los campos aplicables
// dependen de tipo_promocion (1 NxM, 2 descuento fijo, 3 porcentaje, 4 volumen).
type CreatePromocionRequest struct {
	IDProducto          string          `json:"id_producto"`
	TipoPromocion       int             `json:"tipo_promocion"`
	Descripcion         string          `json:"descripcion"`
	UnidadesRequeridas  int64           `json:"unidades_requeridas,omitempty"`
	UnidadesObsequiadas int64           `json:"unidades_obsequiadas,omitempty"`
	CantidadDescuento   decimal.Decimal `json:"cantidad_descuento,omitempty"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento,omitempty"`
	MinimoCompra        int64           `json:"minimo_compra,omitempty"`
	Acumulable          bool            `json:"acumulable"`
}

// UpdatePromocionRequest body para PUT /api/promociones/:id.
type UpdatePromocionRequest struct {
	Descripcion         *string          `json:"descripcion"`
	UnidadesRequeridas  *int64           `json:"unidades_requeridas"`
	UnidadesObsequiadas *int64           `json:"unidades_obsequiadas"`
	CantidadDescuento   *decimal.Decimal `json:"cantidad_descuento"`
	PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`
	MinimoCompra        *int64           `json:"minimo_compra"`
	Acumulable          *bool            `json:"acumulable"`
}

// PromocionResponse salida de una promoción.
type PromocionResponse struct {
	ID                  string          `json:"id_promocion"`
	IDProducto          string          `json:"id_producto"`
	TipoPromocion       int             `json:"tipo_promocion"`
	Descripcion         string          `json:"descripcion"`
	UnidadesRequeridas  int64           `json:"unidades_requeridas,omitempty"`
	UnidadesObsequiadas int64           `json:"unidades_obsequiadas,omitempty"`
	CantidadDescuento   decimal.Decimal `json:"cantidad_descuento,omitempty"`
	PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento,omitempty"`
	MinimoCompra        int64           `json:"minimo_compra,omitempty"`
	Acumulable          bool            `json:"acumulable"`
	Activo              bool            `json:"activo"`
	CreatedAt           time.Time       `json:"created_at"`
}
