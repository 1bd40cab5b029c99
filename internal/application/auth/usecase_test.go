package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/pkg/jwt"
)

type fakeUsuarios struct {
	porID map[string]*entity.Usuario
}

func (f *fakeUsuarios) Create(u *entity.Usuario) error {
	c := *u
	f.porID[u.ID] = &c
	return nil
}

func (f *fakeUsuarios) GetByID(id string) (*entity.Usuario, error) {
	u, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUsuarios) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarios) GetByRFC(rfc string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.RFC != "" && strings.EqualFold(u.RFC, rfc) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarios) GetByTelefono(telefono string) (*entity.Usuario, error) {
	for _, u := range f.porID {
		if u.Telefono != "" && u.Telefono == telefono {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarios) Update(u *entity.Usuario) error {
	if _, ok := f.porID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	c := *u
	f.porID[u.ID] = &c
	return nil
}

func (f *fakeUsuarios) List(limit, offset int) ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range f.porID {
		if u.Activo {
			c := *u
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeUsuarios) SoftDelete(id string) error {
	u, ok := f.porID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Activo = false
	return nil
}

type fakeClientes struct {
	porID map[string]*entity.Cliente
}

func (f *fakeClientes) Create(c *entity.Cliente) error {
	cc := *c
	f.porID[c.ID] = &cc
	return nil
}

func (f *fakeClientes) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (f *fakeClientes) GetByUsuario(usuarioID string) (*entity.Cliente, error) {
	for _, c := range f.porID {
		if c.IDUsuario == usuarioID {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (f *fakeClientes) Update(c *entity.Cliente) error {
	if _, ok := f.porID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cc := *c
	f.porID[c.ID] = &cc
	return nil
}

func (f *fakeClientes) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }

func (f *fakeClientes) Search(q string, limit, offset int) ([]*entity.Cliente, error) {
	return nil, nil
}

func (f *fakeClientes) SoftDelete(id string) error {
	c, ok := f.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Activo = false
	return nil
}

type fakeMedicos struct{ porID map[string]*entity.Medico }

func (f *fakeMedicos) Create(m *entity.Medico) error {
	c := *m
	f.porID[m.ID] = &c
	return nil
}

func (f *fakeMedicos) GetByUsuario(usuarioID string) (*entity.Medico, error) {
	for _, m := range f.porID {
		if m.IDUsuario == usuarioID {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeMedicos) Update(m *entity.Medico) error {
	c := *m
	f.porID[m.ID] = &c
	return nil
}

func (f *fakeMedicos) SoftDelete(id string) error {
	if m, ok := f.porID[id]; ok {
		m.Activo = false
	}
	return nil
}

type fakeRepresentantes struct{ porID map[string]*entity.Representante }

func (f *fakeRepresentantes) Create(r *entity.Representante) error {
	c := *r
	f.porID[r.ID] = &c
	return nil
}

func (f *fakeRepresentantes) GetByUsuario(usuarioID string) (*entity.Representante, error) {
	for _, r := range f.porID {
		if r.IDUsuario == usuarioID {
			c := *r
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepresentantes) Update(r *entity.Representante) error {
	c := *r
	f.porID[r.ID] = &c
	return nil
}

func (f *fakeRepresentantes) SoftDelete(id string) error {
	if r, ok := f.porID[id]; ok {
		r.Activo = false
	}
	return nil
}

type fakeInternos struct{ porID map[string]*entity.Interno }

func (f *fakeInternos) Create(i *entity.Interno) error {
	c := *i
	f.porID[i.ID] = &c
	return nil
}

func (f *fakeInternos) GetByUsuario(usuarioID string) (*entity.Interno, error) {
	for _, i := range f.porID {
		if i.IDUsuario == usuarioID {
			c := *i
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeInternos) Update(i *entity.Interno) error {
	c := *i
	f.porID[i.ID] = &c
	return nil
}

func (f *fakeInternos) SoftDelete(id string) error {
	if i, ok := f.porID[id]; ok {
		i.Activo = false
	}
	return nil
}

type entornoAuth struct {
	uc             *UseCase
	usuarios       *fakeUsuarios
	clientes       *fakeClientes
	medicos        *fakeMedicos
	representantes *fakeRepresentantes
	internos       *fakeInternos
}

func nuevoEntornoAuth(t *testing.T) *entornoAuth {
	t.Helper()
	e := &entornoAuth{
		usuarios:       &fakeUsuarios{porID: map[string]*entity.Usuario{}},
		clientes:       &fakeClientes{porID: map[string]*entity.Cliente{}},
		medicos:        &fakeMedicos{porID: map[string]*entity.Medico{}},
		representantes: &fakeRepresentantes{porID: map[string]*entity.Representante{}},
		internos:       &fakeInternos{porID: map[string]*entity.Interno{}},
	}
	cfg := Config{Secret: "secreto-de-pruebas", Issuer: "distribucion-api", ExpirationMinutes: 60}
	e.uc = NewUseCase(cfg, e.usuarios, e.clientes, e.medicos, e.representantes, e.internos)
	return e
}

func registroCliente() dto.RegisterRequest {
	return dto.RegisterRequest{
		Nombre:          "laura",
		ApellidoPaterno: "mendoza",
		ApellidoMaterno: "ríos",
		Telefono:        "5512345678",
		RFC:             "merl900101ab1",
		Email:           "Laura@Example.com",
		Password:        "secreta123",
		TipoUsuario:     entity.TipoCliente,
		Genero:          "femenino",
	}
}

func TestRegistrar_ClienteNormalizaDatos(t *testing.T) {
	e := nuevoEntornoAuth(t)

	usuario, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)

	assert.Equal(t, "Laura", usuario.Nombre)
	assert.Equal(t, "Mendoza", usuario.ApellidoPaterno)
	assert.Equal(t, "Ríos", usuario.ApellidoMaterno)
	assert.Equal(t, "laura@example.com", usuario.Email)
	assert.Equal(t, "MERL900101AB1", usuario.RFC)
	assert.NotEqual(t, "secreta123", usuario.PasswordHash)

	cliente, err := e.clientes.GetByUsuario(usuario.ID)
	require.NoError(t, err)
	require.NotNil(t, cliente, "debe crearse el registro satélite")
	assert.Equal(t, "femenino", cliente.Genero)
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	e := nuevoEntornoAuth(t)
	_, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)

	_, err = e.uc.Registrar(registroCliente())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegistrar_TelefonoDuplicado(t *testing.T) {
	e := nuevoEntornoAuth(t)
	_, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)

	otro := registroCliente()
	otro.Email = "otra@example.com"
	otro.RFC = "XAXX010101000"
	_, err = e.uc.Registrar(otro)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegistrar_InternoRequiereRolValido(t *testing.T) {
	e := nuevoEntornoAuth(t)
	in := registroCliente()
	in.TipoUsuario = entity.TipoInterno
	in.Rol = "gerente"

	_, err := e.uc.Registrar(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Rol = entity.RolAlmacenista
	usuario, err := e.uc.Registrar(in)
	require.NoError(t, err)
	interno, err := e.internos.GetByUsuario(usuario.ID)
	require.NoError(t, err)
	require.NotNil(t, interno)
	assert.Equal(t, entity.RolAlmacenista, interno.Rol)
}

func TestRegistrar_ReactivaCuentaDadaDeBaja(t *testing.T) {
	e := nuevoEntornoAuth(t)
	usuario, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)
	require.NoError(t, e.uc.Baja(usuario.ID))

	in := registroCliente()
	in.Password = "otraClave456"
	reactivado, err := e.uc.Registrar(in)
	require.NoError(t, err)

	assert.Equal(t, usuario.ID, reactivado.ID, "debe reutilizar la cuenta existente")
	assert.True(t, reactivado.Activo)

	resp, err := e.uc.Login(dto.LoginRequest{Email: "laura@example.com", Password: "otraClave456"})
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, resp.Usuario.ID)
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	e := nuevoEntornoAuth(t)
	in := registroCliente()
	in.TipoUsuario = entity.TipoInterno
	in.Rol = entity.RolAdministrador
	usuario, err := e.uc.Registrar(in)
	require.NoError(t, err)

	resp, err := e.uc.Login(dto.LoginRequest{Email: "laura@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RolAdministrador, resp.Extra["rol"])

	userID, tipo, rol, err := jwt.Parse("secreto-de-pruebas", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, userID)
	assert.Equal(t, entity.TipoInterno, tipo)
	assert.Equal(t, entity.RolAdministrador, rol)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	e := nuevoEntornoAuth(t)
	_, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)

	_, err = e.uc.Login(dto.LoginRequest{Email: "laura@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = e.uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestBaja_DesactivaUsuarioYSatelite(t *testing.T) {
	e := nuevoEntornoAuth(t)
	usuario, err := e.uc.Registrar(registroCliente())
	require.NoError(t, err)

	require.NoError(t, e.uc.Baja(usuario.ID))

	guardado, err := e.usuarios.GetByID(usuario.ID)
	require.NoError(t, err)
	assert.False(t, guardado.Activo)
	cliente, err := e.clientes.GetByUsuario(usuario.ID)
	require.NoError(t, err)
	assert.False(t, cliente.Activo)

	_, err = e.uc.Login(dto.LoginRequest{Email: "laura@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
