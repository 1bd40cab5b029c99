package dto

import "time"

// RegisterRequest body para POST /api/usuarios. Según TipoUsuario aplican
// campos adicionales: Genero (cliente), Cedula/Especialidad (medico),
// Zona (representante), Rol (interno).
type RegisterRequest struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	Telefono        string `json:"telefono"`
	RFC             string `json:"rfc"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	TipoUsuario     string `json:"tipo_usuario"`
	Genero          string `json:"genero,omitempty"`
	Cedula          string `json:"cedula,omitempty"`
	Especialidad    string `json:"especialidad,omitempty"`
	Zona            string `json:"zona,omitempty"`
	Rol             string `json:"rol,omitempty"`
}

// LoginRequest body para POST /api/usuarios/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UsuarioResponse salida de un usuario (sin hash de contraseña).
type UsuarioResponse struct {
	ID              string    `json:"id_usuario"`
	Nombre          string    `json:"nombre"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno,omitempty"`
	Telefono        string    `json:"telefono,omitempty"`
	RFC             string    `json:"rfc,omitempty"`
	Email           string    `json:"email"`
	TipoUsuario     string    `json:"tipo_usuario"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado. La información extra depende del
// tipo: id_cliente y genero (cliente), id_medico (medico), id_representante
// (representante), rol (interno).
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
	Extra   map[string]any  `json:"info,omitempty"`
}

// ClienteResponse salida de un cliente con sus datos de usuario.
type ClienteResponse struct {
	ID              string `json:"id_cliente"`
	IDUsuario       string `json:"id_usuario"`
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email"`
	Genero          string `json:"genero,omitempty"`
	Notas           string `json:"notas,omitempty"`
	Activo          bool   `json:"activo"`
}
