package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/usecase"
	"github.com/casamedica/distribucion-api/internal/domain"
)

// ProductoHandler maneja el catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create godoc
// @Summary Crear un producto
// @Description Da de alta un producto en el catálogo. La cantidad real inicia en cero y solo cambia a través de los lotes de inventario.
// @Tags productos
// @Accept json
// @Produce json
// @Param producto body dto.CreateProductoRequest true "Datos del producto"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	producto, err := h.uc.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, producto)
}

// GetByID godoc
// @Summary Obtener un producto por ID
// @Tags productos
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	producto, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, producto)
}

// Update godoc
// @Summary Actualizar un producto
// @Description Actualiza datos del catálogo. La cantidad real no es editable por esta vía.
// @Tags productos
// @Accept json
// @Produce json
// @Param id path string true "ID del producto"
// @Param producto body dto.UpdateProductoRequest true "Campos a actualizar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProductoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	producto, err := h.uc.Update(c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, producto)
}

// List godoc
// @Summary Listar productos activos
// @Tags productos
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	productos, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, productos)
}

// Search godoc
// @Summary Buscar productos por nombre
// @Tags productos
// @Produce json
// @Param q query string true "Texto a buscar"
// @Param limit query int false "Límite de resultados"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos/search [get]
func (h *ProductoHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return respondError(c, domain.ErrInvalidInput)
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	productos, err := h.uc.Search(q, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, productos)
}

// Delete godoc
// @Summary Dar de baja un producto
// @Tags productos
// @Produce json
// @Param id path string true "ID del producto"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "producto dado de baja")
}
