package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
)

// respondOK responde 200 con el envoltorio estándar.
func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(dto.OK(data))
}

// respondCreated responde 201 con el envoltorio estándar.
func respondCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.OK(data))
}

// respondMensaje responde 200 con data y un mensaje legible.
func respondMensaje(c *fiber.Ctx, data any, mensaje string) error {
	return c.JSON(dto.OKMensaje(data, mensaje))
}

// respondError traduce los errores de dominio al status HTTP correspondiente
// y responde con el envoltorio estándar. Un error no reconocido es un 500 y
// además queda en el log.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("datos inválidos", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("credenciales inválidas", err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("acceso denegado", err.Error()))
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fallo("recurso no encontrado", err.Error()))
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fallo("conflicto con el estado actual", err.Error()))
	case errors.Is(err, domain.ErrOutOfBounds):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.Fallo("cantidad fuera de límites", err.Error()))
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error no mapeado en handler")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fallo("error interno", err.Error()))
	}
}

// respondBadBody responde 400 por un cuerpo JSON que no se pudo parsear.
func respondBadBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fallo("cuerpo inválido", "el cuerpo debe ser JSON válido"))
}
