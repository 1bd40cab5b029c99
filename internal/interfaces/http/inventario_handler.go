package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/application/stock"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// InventarioHandler maneja lotes de inventario y el stock agregado por producto.
type InventarioHandler struct {
	ledger *stock.Ledger
}

func NewInventarioHandler(ledger *stock.Ledger) *InventarioHandler {
	return &InventarioHandler{ledger: ledger}
}

func toLoteResponse(lote *entity.Inventario) dto.LoteResponse {
	return dto.LoteResponse{
		ID:                 lote.ID,
		IDProducto:         lote.IDProducto,
		NumeroLote:         lote.NumeroLote,
		FechaCaducidad:     lote.FechaCaducidad,
		CantidadDisponible: lote.CantidadDisponible,
		UbicacionAlmacen:   lote.UbicacionAlmacen,
		CostoUnitario:      lote.CostoUnitario,
		IVAAplicable:       lote.IVAAplicable,
		Activo:             lote.Activo,
		CreatedAt:          lote.CreatedAt,
		UpdatedAt:          lote.UpdatedAt,
	}
}

// RecibirLote godoc
// @Summary Recibir un lote de inventario
// @Description Registra un lote entrante. El campo producto acepta el UUID o el nombre exacto del producto. Falla con 422 si el stock proyectado rebasa el máximo del producto.
// @Tags inventario
// @Accept json
// @Produce json
// @Param lote body dto.RecibirLoteRequest true "Datos del lote"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 422 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario [post]
func (h *InventarioHandler) RecibirLote(c *fiber.Ctx) error {
	var req dto.RecibirLoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	lote, err := h.ledger.RecibirLote(c.UserContext(), req.Producto, stock.LoteInput{
		NumeroLote:         req.NumeroLote,
		FechaCaducidad:     req.FechaCaducidad,
		CantidadDisponible: req.CantidadDisponible,
		UbicacionAlmacen:   req.UbicacionAlmacen,
		CostoUnitario:      req.CostoUnitario,
		IVAAplicable:       req.IVAAplicable,
	})
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, toLoteResponse(lote))
}

// Ajustar godoc
// @Summary Ajustar un lote
// @Description Corrige la cantidad disponible o la ubicación de un lote. El stock agregado del producto se recalcula; falla con 422 si el resultado viola los límites del producto.
// @Tags inventario
// @Accept json
// @Produce json
// @Param id path string true "ID del lote"
// @Param ajuste body dto.AjustarLoteRequest true "Campos a ajustar"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 422 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario/{id} [put]
func (h *InventarioHandler) Ajustar(c *fiber.Ctx) error {
	var req dto.AjustarLoteRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}
	if req.CantidadDisponible == nil && req.UbicacionAlmacen == nil {
		return respondError(c, domain.ErrInvalidInput)
	}

	// Sin cantidad nueva, el ajuste es solo de ubicación: se conserva la actual.
	lote, err := h.ledger.LotePorID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	cantidad := lote.CantidadDisponible
	if req.CantidadDisponible != nil {
		cantidad = *req.CantidadDisponible
	}

	actualizado, err := h.ledger.AjustarLote(c.UserContext(), c.Params("id"), cantidad, req.UbicacionAlmacen)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toLoteResponse(actualizado))
}

// Baja godoc
// @Summary Dar de baja un lote
// @Description Baja lógica del lote. Su cantidad deja de contar en el stock agregado del producto.
// @Tags inventario
// @Produce json
// @Param id path string true "ID del lote"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario/{id} [delete]
func (h *InventarioHandler) Baja(c *fiber.Ctx) error {
	if err := h.ledger.BajaLote(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "lote dado de baja")
}

// List godoc
// @Summary Listar lotes activos
// @Tags inventario
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario [get]
func (h *InventarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	lotes, err := h.ledger.ListarLotes(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.LoteResponse, 0, len(lotes))
	for _, lote := range lotes {
		out = append(out, toLoteResponse(lote))
	}
	return respondOK(c, out)
}

// GetByID godoc
// @Summary Obtener un lote por ID
// @Tags inventario
// @Produce json
// @Param id path string true "ID del lote"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario/{id} [get]
func (h *InventarioHandler) GetByID(c *fiber.Ctx) error {
	lote, err := h.ledger.LotePorID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toLoteResponse(lote))
}

// PorProducto godoc
// @Summary Listar los lotes activos de un producto
// @Description Acepta el UUID o el nombre exacto del producto. Devuelve los lotes ordenados por fecha de caducidad junto con el stock agregado.
// @Tags inventario
// @Produce json
// @Param producto path string true "UUID o nombre del producto"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/inventario/producto/{producto} [get]
func (h *InventarioHandler) PorProducto(c *fiber.Ctx) error {
	producto, lotes, err := h.ledger.LotesPorProducto(c.Params("producto"))
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.LoteResponse, 0, len(lotes))
	for _, lote := range lotes {
		r := toLoteResponse(lote)
		r.NombreProducto = producto.Nombre
		out = append(out, r)
	}
	return respondOK(c, fiber.Map{
		"id_producto":     producto.ID,
		"nombre_producto": producto.Nombre,
		"cantidad_real":   producto.CantidadReal,
		"lotes":           out,
	})
}
