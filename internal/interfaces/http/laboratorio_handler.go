package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
	"github.com/casamedica/distribucion-api/internal/domain"
)

// LaboratorioHandler maneja el catálogo de laboratorios.
type LaboratorioHandler struct {
	uc *usecase.LaboratorioUseCase
}

func NewLaboratorioHandler(uc *usecase.LaboratorioUseCase) *LaboratorioHandler {
	return &LaboratorioHandler{uc: uc}
}

// Create godoc
// @Summary Crear un laboratorio
// @Tags laboratorios
// @Accept json
// @Produce json
// @Param laboratorio body dto.CreateLaboratorioRequest true "Datos del laboratorio"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios [post]
func (h *LaboratorioHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLaboratorioRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	laboratorio, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, laboratorio)
}

// GetByID godoc
// @Summary Obtener un laboratorio por ID
// @Tags laboratorios
// @Produce json
// @Param id path string true "ID del laboratorio"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios/{id} [get]
func (h *LaboratorioHandler) GetByID(c *fiber.Ctx) error {
	laboratorio, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, laboratorio)
}

// Update godoc
// @Summary Actualizar un laboratorio
// @Tags laboratorios
// @Accept json
// @Produce json
// @Param id path string true "ID del laboratorio"
// @Param laboratorio body dto.CreateLaboratorioRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios/{id} [put]
func (h *LaboratorioHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateLaboratorioRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	laboratorio, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, laboratorio)
}

// List godoc
// @Summary Listar laboratorios activos
// @Tags laboratorios
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios [get]
func (h *LaboratorioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	laboratorios, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, laboratorios)
}

// Search godoc
// @Summary Buscar laboratorios por nombre
// @Tags laboratorios
// @Produce json
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Límite de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios/search [get]
func (h *LaboratorioHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return respondError(c, domain.ErrInvalidInput)
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	laboratorios, err := h.uc.Search(q, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, laboratorios)
}

// Delete godoc
// @Summary Dar de baja un laboratorio
// @Tags laboratorios
// @Produce json
// @Param id path string true "ID del laboratorio"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/laboratorios/{id} [delete]
func (h *LaboratorioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "laboratorio dado de baja")
}
