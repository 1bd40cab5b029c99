package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
)

// DireccionHandler maneja direcciones de envío de clientes.
type DireccionHandler struct {
	uc *usecase.DireccionUseCase
}

func NewDireccionHandler(uc *usecase.DireccionUseCase) *DireccionHandler {
	return &DireccionHandler{uc: uc}
}

// Create godoc
// @Summary Crear una dirección de envío
// @Tags direcciones
// @Accept json
// @Produce json
// @Param direccion body dto.CreateDireccionRequest true "Datos de la dirección"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones [post]
func (h *DireccionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDireccionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	direccion, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, direccion)
}

// GetByID godoc
// @Summary Obtener una dirección por ID
// @Tags direcciones
// @Produce json
// @Param id path string true "ID de la dirección"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones/{id} [get]
func (h *DireccionHandler) GetByID(c *fiber.Ctx) error {
	direccion, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, direccion)
}

// Update godoc
// @Summary Actualizar una dirección
// @Tags direcciones
// @Accept json
// @Produce json
// @Param id path string true "ID de la dirección"
// @Param direccion body dto.UpdateDireccionRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones/{id} [put]
func (h *DireccionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateDireccionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	direccion, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, direccion)
}

// List godoc
// @Summary Listar direcciones activas
// @Tags direcciones
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones [get]
func (h *DireccionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	direcciones, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, direcciones)
}

// PorCliente godoc
// @Summary Listar las direcciones de un cliente
// @Tags direcciones
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones/cliente/{id} [get]
func (h *DireccionHandler) PorCliente(c *fiber.Ctx) error {
	direcciones, err := h.uc.ListByCliente(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, direcciones)
}

// Delete godoc
// @Summary Dar de baja una dirección
// @Tags direcciones
// @Produce json
// @Param id path string true "ID de la dirección"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/direcciones/{id} [delete]
func (h *DireccionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "dirección dada de baja")
}
