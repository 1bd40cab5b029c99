package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/pkg/jwt"
)

// Locals keys para los claims del token en Fiber.
const (
	LocalUserID      = "user_id"
	LocalTipoUsuario = "tipo_usuario"
	LocalRol         = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae UserID, TipoUsuario y Rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("no autorizado", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("no autorizado", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("no autorizado", "token vacío"))
		}
		userID, tipoUsuario, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("no autorizado", "token inválido o expirado"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalTipoUsuario, tipoUsuario)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireInterno autoriza solo a usuarios internos; con roles, además exige
// que el rol del token sea uno de los indicados. Colocar después de AuthMiddleware.
func RequireInterno(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTipoUsuario(c) != entity.TipoInterno {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("acceso denegado", "se requiere usuario interno"))
		}
		if len(roles) == 0 {
			return c.Next()
		}
		rol := GetRol(c)
		if rol == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("no autorizado", "el token no incluye rol"))
		}
		for _, permitido := range roles {
			if rol == permitido {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("acceso denegado", "rol sin permiso para esta operación"))
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipoUsuario devuelve el tipo de usuario del contexto.
func GetTipoUsuario(c *fiber.Ctx) string {
	v := c.Locals(LocalTipoUsuario)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRol devuelve el rol interno del contexto (vacío para no internos).
func GetRol(c *fiber.Ctx) string {
	v := c.Locals(LocalRol)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
