package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	EstadoPendiente  = "pendiente"
	EstadoProcesando = "procesando"
	EstadoEnviado    = "enviado"
	EstadoEntregado  = "entregado"
	EstadoCancelado  = "cancelado"
)

// transiciones válidas: pendiente → procesando → enviado → entregado;
// cancelado alcanzable desde cualquier estado no terminal.
var transiciones = map[string][]string{
	EstadoPendiente:  {EstadoProcesando, EstadoCancelado},
	EstadoProcesando: {EstadoEnviado, EstadoCancelado},
	EstadoEnviado:    {EstadoEntregado, EstadoCancelado},
	EstadoEntregado:  {},
	EstadoCancelado:  {},
}

// EstadoValido indica si s es un estado conocido.
func EstadoValido(s string) bool {
	_, ok := transiciones[s]
	return ok
}

// PuedeTransicionar indica si el cambio de estado desde → hacia es válido.
func PuedeTransicionar(desde, hacia string) bool {
	for _, s := range transiciones[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// Pedido representa una orden de compra de un cliente. Subtotal es un agregado
// derivado: suma de los totales de sus detalles activos, recalculado por el
// caso de uso de líneas tras cada alta/cambio/baja. Total = Subtotal + CostoEnvio.
type Pedido struct {
	ID                   string
	IDCliente            string
	IDDireccionEnvio     string
	IDPaqueteria         string
	Estado               string
	FechaPedido          time.Time
	FechaEntrega         *time.Time
	FormaPago            string
	Subtotal             decimal.Decimal
	CostoEnvio           decimal.Decimal
	Total                decimal.Decimal
	GuiaEntrega          string
	NotasAdministrativas string
	EnvioContacto        string
	EnvioDireccion       string
	EnvioReferencias     string
	Activo               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DetallePedido representa una línea de un pedido: producto, cantidad y total.
// Total = Cantidad × PrecioVenta del producto al momento de crear la línea;
// es una fotografía histórica y no se recalcula si el precio cambia después.
type DetallePedido struct {
	ID         string
	IDPedido   string
	IDProducto string
	Cantidad   int64
	Total      decimal.Decimal
	Factura    string
	Activo     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
