package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/pedidos"
)

// DetalleHandler maneja líneas de pedido como recurso propio.
type DetalleHandler struct {
	uc *pedidos.UseCase
}

func NewDetalleHandler(uc *pedidos.UseCase) *DetalleHandler {
	return &DetalleHandler{uc: uc}
}

// Create godoc
// @Summary Agregar una línea a un pedido
// @Description La línea fija el precio de venta vigente del producto y recalcula el subtotal del pedido. Un producto repetido en el mismo pedido responde 409.
// @Tags detalles
// @Accept json
// @Produce json
// @Param detalle body dto.CreateDetalleRequest true "Datos de la línea"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/detalles [post]
func (h *DetalleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDetalleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	detalle, err := h.uc.AgregarLinea(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, toDetalleResponse(detalle))
}

// GetByID godoc
// @Summary Obtener una línea por ID
// @Tags detalles
// @Produce json
// @Param id path string true "ID de la línea"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/detalles/{id} [get]
func (h *DetalleHandler) GetByID(c *fiber.Ctx) error {
	detalle, err := h.uc.LineaPorID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toDetalleResponse(detalle))
}

// List godoc
// @Summary Listar líneas de pedido activas
// @Tags detalles
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/detalles [get]
func (h *DetalleHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	detalles, err := h.uc.ListarLineas(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.DetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toDetalleResponse(d))
	}
	return respondOK(c, out)
}

// Update godoc
// @Summary Actualizar la cantidad de una línea
// @Description Cambia la cantidad conservando el precio unitario histórico de la línea y recalcula el subtotal del pedido.
// @Tags detalles
// @Accept json
// @Produce json
// @Param id path string true "ID de la línea"
// @Param detalle body dto.UpdateDetalleRequest true "Nueva cantidad"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/detalles/{id} [put]
func (h *DetalleHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateDetalleRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	detalle, err := h.uc.ActualizarLinea(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toDetalleResponse(detalle))
}

// Delete godoc
// @Summary Dar de baja una línea
// @Description Baja lógica de la línea. El subtotal del pedido se recalcula sin ella.
// @Tags detalles
// @Produce json
// @Param id path string true "ID de la línea"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/detalles/{id} [delete]
func (h *DetalleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.BajaLinea(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "línea dada de baja")
}
