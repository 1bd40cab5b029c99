package entity

import "time"

// Tipos de usuario del sistema.
const (
	TipoCliente       = "cliente"
	TipoMedico        = "medico"
	TipoRepresentante = "representante"
	TipoInterno       = "interno"
)

// Roles válidos para usuarios internos.
const (
	RolAdministrador = "administrador"
	RolAlmacenista   = "almacenista"
	RolEjecutivo     = "ejecutivo"
)

// TipoUsuarioValido indica si t es uno de los tipos conocidos.
func TipoUsuarioValido(t string) bool {
	switch t {
	case TipoCliente, TipoMedico, TipoRepresentante, TipoInterno:
		return true
	}
	return false
}

// RolInternoValido indica si r es un rol conocido de usuario interno.
func RolInternoValido(r string) bool {
	switch r {
	case RolAdministrador, RolAlmacenista, RolEjecutivo:
		return true
	}
	return false
}

// Usuario representa la cuenta base del sistema. Cada usuario tiene un registro
// satélite según su TipoUsuario (Cliente, Medico, Representante o Interno).
type Usuario struct {
	ID              string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	RFC             string
	Email           string
	PasswordHash    string // bcrypt, nunca en claro después de persistir
	TipoUsuario     string
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Cliente registro satélite de un usuario tipo cliente.
type Cliente struct {
	ID        string
	IDUsuario string
	Genero    string
	Notas     string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Medico registro satélite de un usuario tipo médico.
type Medico struct {
	ID           string
	IDUsuario    string
	Cedula       string
	Especialidad string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Representante registro satélite de un representante de ventas.
type Representante struct {
	ID        string
	IDUsuario string
	Zona      string
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interno registro satélite de personal interno con rol RBAC.
type Interno struct {
	ID        string
	IDUsuario string
	Rol       string // administrador, almacenista, ejecutivo
	Activo    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
