package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/pedidos"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// PedidoHandler maneja pedidos: alta con líneas, consulta, transición de
// estado, cancelación y comprobante en PDF.
type PedidoHandler struct {
	uc *pedidos.UseCase
}

func NewPedidoHandler(uc *pedidos.UseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

func toDetalleResponse(d *entity.DetallePedido) dto.DetalleResponse {
	return dto.DetalleResponse{
		ID:         d.ID,
		IDPedido:   d.IDPedido,
		IDProducto: d.IDProducto,
		Cantidad:   d.Cantidad,
		Total:      d.Total,
		Factura:    d.Factura,
		Activo:     d.Activo,
	}
}

func toPedidoResponse(p *entity.Pedido, detalles []*entity.DetallePedido) dto.PedidoResponse {
	resp := dto.PedidoResponse{
		ID:                   p.ID,
		IDCliente:            p.IDCliente,
		IDDireccionEnvio:     p.IDDireccionEnvio,
		IDPaqueteria:         p.IDPaqueteria,
		Estado:               p.Estado,
		FechaPedido:          p.FechaPedido,
		FechaEntrega:         p.FechaEntrega,
		FormaPago:            p.FormaPago,
		Subtotal:             p.Subtotal,
		CostoEnvio:           p.CostoEnvio,
		Total:                p.Total,
		GuiaEntrega:          p.GuiaEntrega,
		NotasAdministrativas: p.NotasAdministrativas,
		EnvioContacto:        p.EnvioContacto,
		EnvioDireccion:       p.EnvioDireccion,
		EnvioReferencias:     p.EnvioReferencias,
		Activo:               p.Activo,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, toDetalleResponse(d))
	}
	return resp
}

// Create godoc
// @Summary Crear un pedido
// @Description Crea un pedido con sus líneas en una sola transacción. El contacto y la dirección de envío se fotografían del cliente; cada línea fija el precio de venta vigente del producto.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param pedido body dto.CreatePedidoRequest true "Datos del pedido"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos [post]
func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	pedido, detalles, err := h.uc.Crear(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, toPedidoResponse(pedido, detalles))
}

// GetByID godoc
// @Summary Obtener un pedido con sus líneas
// @Tags pedidos
// @Produce json
// @Param id path string true "ID del pedido"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos/{id} [get]
func (h *PedidoHandler) GetByID(c *fiber.Ctx) error {
	pedido, detalles, err := h.uc.PorID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toPedidoResponse(pedido, detalles))
}

// List godoc
// @Summary Listar pedidos activos
// @Tags pedidos
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos [get]
func (h *PedidoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	lista, err := h.uc.Listar(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, toPedidoResponse(p, nil))
	}
	return respondOK(c, out)
}

// PorCliente godoc
// @Summary Listar pedidos de un cliente
// @Tags pedidos
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos/cliente/{id} [get]
func (h *PedidoHandler) PorCliente(c *fiber.Ctx) error {
	lista, err := h.uc.PorCliente(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.PedidoResponse, 0, len(lista))
	for _, p := range lista {
		out = append(out, toPedidoResponse(p, nil))
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary Actualizar un pedido
// @Description Campos administrativos (paquetería, costo de envío, guía de entrega, notas) y transiciones de estado. Una transición fuera del flujo pendiente→procesando→enviado→entregado responde 409.
// @Tags pedidos
// @Accept json
// @Produce json
// @Param id path string true "ID del pedido"
// @Param pedido body dto.UpdatePedidoRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos/{id} [put]
func (h *PedidoHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePedidoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	pedido, err := h.uc.Actualizar(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toPedidoResponse(pedido, nil))
}

// Cancel godoc
// @Summary Cancelar un pedido
// @Description Cancela el pedido si su estado lo permite. Un pedido entregado o ya cancelado responde 409.
// @Tags pedidos
// @Produce json
// @Param id path string true "ID del pedido"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos/{id} [delete]
func (h *PedidoHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancelar(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "pedido cancelado")
}

// Comprobante godoc
// @Summary Descargar el comprobante PDF de un pedido
// @Tags pedidos
// @Produce application/pdf
// @Param id path string true "ID del pedido"
// @Success 200 {file} binary
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/pedidos/{id}/comprobante [get]
func (h *PedidoHandler) Comprobante(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.Comprobante(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="pedido-%s.pdf"`, id))
	return c.Send(pdf)
}
