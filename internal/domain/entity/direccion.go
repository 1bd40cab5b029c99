package entity

import (
	"fmt"
	"time"
)

// Direccion representa una dirección de envío de un cliente.
type Direccion struct {
	ID             string
	IDCliente      string
	Calle          string
	NumeroExterior string
	NumeroInterior string
	Colonia        string
	Municipio      string
	Estado         string
	CodigoPostal   string
	Referencias    string
	Activo         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Formatear devuelve la dirección en una sola línea, como se imprime en la
// guía de envío del pedido. Omite el número interior cuando no existe.
func (d Direccion) Formatear() string {
	if d.NumeroInterior == "" {
		return fmt.Sprintf("%s No. %s, colonia %s C.P. %s. %s, %s",
			d.Calle, d.NumeroExterior, d.Colonia, d.CodigoPostal, d.Municipio, d.Estado)
	}
	return fmt.Sprintf("%s No. %s Int. %s, colonia %s C.P. %s. %s, %s",
		d.Calle, d.NumeroExterior, d.NumeroInterior, d.Colonia, d.CodigoPostal, d.Municipio, d.Estado)
}
