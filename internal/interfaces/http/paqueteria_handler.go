package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
)

// PaqueteriaHandler maneja el catálogo de paqueterías.
type PaqueteriaHandler struct {
	uc *usecase.PaqueteriaUseCase
}

func NewPaqueteriaHandler(uc *usecase.PaqueteriaUseCase) *PaqueteriaHandler {
	return &PaqueteriaHandler{uc: uc}
}

// Create godoc
// @Summary Crear una paquetería
// @Tags paqueterias
// @Accept json
// @Produce json
// @Param paqueteria body dto.CreatePaqueteriaRequest true "Datos de la paquetería"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Security Bearer
// @Router /api/paqueterias [post]
func (h *PaqueteriaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePaqueteriaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	paqueteria, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, paqueteria)
}

// GetByID godoc
// @Summary Obtener una paquetería por ID
// @Tags paqueterias
// @Produce json
// @Param id path string true "ID de la paquetería"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/paqueterias/{id} [get]
func (h *PaqueteriaHandler) GetByID(c *fiber.Ctx) error {
	paqueteria, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, paqueteria)
}

// Update godoc
// @Summary Actualizar una paquetería
// @Tags paqueterias
// @Accept json
// @Produce json
// @Param id path string true "ID de la paquetería"
// @Param paqueteria body dto.CreatePaqueteriaRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/paqueterias/{id} [put]
func (h *PaqueteriaHandler) Update(c *fiber.Ctx) error {
	var req dto.CreatePaqueteriaRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	paqueteria, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, paqueteria)
}

// List godoc
// @Summary Listar paqueterías activas
// @Tags paqueterias
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/paqueterias [get]
func (h *PaqueteriaHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	paqueterias, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, paqueterias)
}

// Delete godoc
// @Summary Dar de baja una paquetería
// @Tags paqueterias
// @Produce json
// @Param id path string true "ID de la paquetería"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/paqueterias/{id} [delete]
func (h *PaqueteriaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "paquetería dada de baja")
}
