package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
)

// PromocionHandler maneja las promociones de productos.
type PromocionHandler struct {
	uc *usecase.PromocionUseCase
}

func NewPromocionHandler(uc *usecase.PromocionUseCase) *PromocionHandler {
	return &PromocionHandler{uc: uc}
}

// Create godoc
// @Summary Crear una promoción
// @Description Tipos: 1 NxM (unidades requeridas y de obsequio), 2 descuento fijo, 3 porcentaje (máx 100), 4 por volumen (mínimo de compra más un descuento).
// @Tags promociones
// @Accept json
// @Produce json
// @Param promocion body dto.CreatePromocionRequest true "Datos de la promoción"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones [post]
func (h *PromocionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePromocionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	promocion, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, promocion)
}

// GetByID godoc
// @Summary Obtener una promoción por ID
// @Tags promociones
// @Produce json
// @Param id path string true "ID de la promoción"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones/{id} [get]
func (h *PromocionHandler) GetByID(c *fiber.Ctx) error {
	promocion, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, promocion)
}

// Update godoc
// @Summary Actualizar una promoción
// @Tags promociones
// @Accept json
// @Produce json
// @Param id path string true "ID de la promoción"
// @Param promocion body dto.UpdatePromocionRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones/{id} [put]
func (h *PromocionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePromocionRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	promocion, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, promocion)
}

// List godoc
// @Summary Listar promociones activas
// @Tags promociones
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones [get]
func (h *PromocionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	promociones, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, promociones)
}

// PorProducto godoc
// @Summary Listar las promociones de un producto
// @Tags promociones
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones/producto/{id} [get]
func (h *PromocionHandler) PorProducto(c *fiber.Ctx) error {
	promociones, err := h.uc.ListByProducto(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, promociones)
}

// Delete godoc
// @Summary Dar de baja una promoción
// @Tags promociones
// @Produce json
// @Param id path string true "ID de la promoción"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/promociones/{id} [delete]
func (h *PromocionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "promoción dada de baja")
}
