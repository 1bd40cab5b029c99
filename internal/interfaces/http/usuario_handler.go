package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/casamedica/distribucion-api/internal/application/auth"
	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

// UsuarioHandler maneja registro, login y consulta de usuarios.
type UsuarioHandler struct {
	uc *auth.UseCase
}

func NewUsuarioHandler(uc *auth.UseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

func toUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:              u.ID,
		Nombre:          u.Nombre,
		ApellidoPaterno: u.ApellidoPaterno,
		ApellidoMaterno: u.ApellidoMaterno,
		Telefono:        u.Telefono,
		RFC:             u.RFC,
		Email:           u.Email,
		TipoUsuario:     u.TipoUsuario,
		Activo:          u.Activo,
		CreatedAt:       u.CreatedAt,
	}
}

// Register godoc
// @Summary Registrar un usuario
// @Description Crea un usuario y su registro satélite según tipo_usuario (cliente, medico, representante o interno). Si el correo pertenece a una cuenta dada de baja del mismo tipo, la cuenta se reactiva.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param usuario body dto.RegisterRequest true "Datos de registro"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /api/usuarios [post]
func (h *UsuarioHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	usuario, err := h.uc.Registrar(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, toUsuarioResponse(usuario))
}

// Login godoc
// @Summary Iniciar sesión
// @Description Autentica por email y contraseña. Devuelve un JWT y la información extra según el tipo de usuario.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param credenciales body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /api/usuarios/login [post]
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondBadBody(c)
	}

	resp, err := h.uc.Login(req)
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, resp)
}

// GetByID godoc
// @Summary Obtener un usuario por ID
// @Tags usuarios
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	usuario, err := h.uc.PorID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return respondOK(c, toUsuarioResponse(usuario))
}

// List godoc
// @Summary Listar usuarios activos
// @Tags usuarios
// @Produce json
// @Param limit query int false "Límite de resultados (default 20, máx 100)"
// @Param offset query int false "Desplazamiento"
// @Success 200 {object} dto.Envelope
// @Security Bearer
// @Router /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return respondBadBody(c)
	}
	page.DefaultPage()

	usuarios, err := h.uc.Listar(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}

	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return respondOK(c, out)
}

// Delete godoc
// @Summary Dar de baja un usuario
// @Description Baja lógica del usuario y de su registro satélite. El historial de pedidos se conserva.
// @Tags usuarios
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security Bearer
// @Router /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Baja(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return respondMensaje(c, nil, "usuario dado de baja")
}
