package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
	"github.com/casamedica/distribucion-api/internal/domain"
)

// ClienteHandler maneja la vista de clientes (registro satélite + datos de usuario).
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// GetByID godoc
// @Summary Obtener un cliente por ID
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/clientes/{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, cliente)
}

// List godoc
// @Summary Listar clientes activos
// @Tags clientes
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	clientes, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, clientes)
}

// Search godoc
// @Summary Buscar clientes por nombre o apellido
// @Tags clientes
// @Produce json
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Límite de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/clientes/search [get]
func (h *ClienteHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return respondError(c, domain.ErrInvalidInput)
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	clientes, err := h.uc.Search(q, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, clientes)
}

// Delete godoc
// @Summary Dar de baja un cliente
// @Description Baja lógica del cliente y de su usuario. Los pedidos históricos se conservan.
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "cliente dado de baja")
}

// ActualizarNotas godoc
// @Summary Actualizar las notas administrativas de un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Param notas body object true "Notas"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/clientes/{id}/notas [put]
func (h *ClienteHandler) ActualizarNotas(c *fiber.Ctx) error {
	var req struct {
		Notas string `json:"notas"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	cliente, err := h.uc.ActualizarNotas(c.Params("id"), req.Notas)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, cliente)
}
