package dto

import "time"

// CreateDireccionRequest body para POST /api/direcciones.
type CreateDireccionRequest struct {
	IDCliente      string `json:"id_cliente"`
	Calle          string `json:"calle"`
	NumeroExterior string `json:"numero_exterior"`
	NumeroInterior string `json:"numero_interior,omitempty"`
	Colonia        string `json:"colonia"`
	Municipio      string `json:"municipio"`
	Estado         string `json:"estado"`
	CodigoPostal   string `json:"codigo_postal"`
	Referencias    string `json:"referencias,omitempty"`
}

// UpdateDireccionRequest body para PUT /api/direcciones/:id.
type UpdateDireccionRequest struct {
	Calle          *string `json:"calle"`
	NumeroExterior *string `json:"numero_exterior"`
	NumeroInterior *string `json:"numero_interior"`
	Colonia        *string `json:"colonia"`
	Municipio      *string `json:"municipio"`
	Estado         *string `json:"estado"`
	CodigoPostal   *string `json:"codigo_postal"`
	Referencias    *string `json:"referencias"`
}

// DireccionResponse salida de una dirección.
type DireccionResponse struct {
	ID             string    `json:"id_direccion"`
	IDCliente      string    `json:"id_cliente"`
	Calle          string    `json:"calle"`
	NumeroExterior string    `json:"numero_exterior"`
	NumeroInterior string    `json:"numero_interior,omitempty"`
	Colonia        string    `json:"colonia"`
	Municipio      string    `json:"municipio"`
	Estado         string    `json:"estado"`
	CodigoPostal   string    `json:"codigo_postal"`
	Referencias    string    `json:"referencias,omitempty"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"created_at"`
}
