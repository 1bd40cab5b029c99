package pedidos

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// --- fakes en memoria ---

type fakePedidos struct {
	pedidos map[string]*entity.Pedido
}

func (f *fakePedidos) Create(p *entity.Pedido) error {
	c := *p
	f.pedidos[p.ID] = &c
	return nil
}

func (f *fakePedidos) GetByID(id string) (*entity.Pedido, error) {
	p, ok := f.pedidos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePedidos) Update(p *entity.Pedido) error {
	if _, ok := f.pedidos[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	f.pedidos[p.ID] = &c
	return nil
}

func (f *fakePedidos) UpdateTotales(id string, subtotal, total decimal.Decimal) error {
	p, ok := f.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Subtotal = subtotal
	p.Total = total
	return nil
}

func (f *fakePedidos) List(limit, offset int) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Activo {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePedidos) ListByCliente(clienteID string) ([]*entity.Pedido, error) {
	var out []*entity.Pedido
	for _, p := range f.pedidos {
		if p.Activo && p.IDCliente == clienteID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePedidos) SoftDelete(id string) error {
	p, ok := f.pedidos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	return nil
}

type fakeDetalles struct {
	detalles map[string]*entity.DetallePedido
}

func (f *fakeDetalles) Create(d *entity.DetallePedido) error {
	c := *d
	f.detalles[d.ID] = &c
	return nil
}

func (f *fakeDetalles) GetByID(id string) (*entity.DetallePedido, error) {
	d, ok := f.detalles[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (f *fakeDetalles) GetActivoByPedidoProducto(pedidoID, productoID string) (*entity.DetallePedido, error) {
	for _, d := range f.detalles {
		if d.Activo && d.IDPedido == pedidoID && d.IDProducto == productoID {
			c := *d
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeDetalles) Update(d *entity.DetallePedido) error {
	if _, ok := f.detalles[d.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *d
	f.detalles[d.ID] = &c
	return nil
}

func (f *fakeDetalles) List(limit, offset int) ([]*entity.DetallePedido, error) {
	var out []*entity.DetallePedido
	for _, d := range f.detalles {
		if d.Activo {
			c := *d
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeDetalles) ListByPedido(pedidoID string) ([]*entity.DetallePedido, error) {
	var out []*entity.DetallePedido
	for _, d := range f.detalles {
		if d.Activo && d.IDPedido == pedidoID {
			c := *d
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeDetalles) SumActivoByPedido(pedidoID string) (decimal.Decimal, error) {
	suma := decimal.Zero
	for _, d := range f.detalles {
		if d.Activo && d.IDPedido == pedidoID {
			suma = suma.Add(d.Total)
		}
	}
	return suma, nil
}

func (f *fakeDetalles) SoftDelete(id string) error {
	d, ok := f.detalles[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Activo = false
	return nil
}

type fakeProductosCat struct {
	productos map[string]*entity.Producto
}

func (f *fakeProductosCat) Create(p *entity.Producto) error {
	c := *p
	f.productos[p.ID] = &c
	return nil
}

func (f *fakeProductosCat) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakeProductosCat) GetByNombre(nombre string) (*entity.Producto, error) {
	for _, p := range f.productos {
		if strings.EqualFold(p.Nombre, nombre) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeProductosCat) GetForUpdate(id string) (*entity.Producto, error) {
	return f.GetByID(id)
}

func (f *fakeProductosCat) Update(p *entity.Producto) error {
	existente, ok := f.productos[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := *p
	c.CantidadReal = existente.CantidadReal
	f.productos[p.ID] = &c
	return nil
}

func (f *fakeProductosCat) UpdateCantidadReal(id string, cantidad int64) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CantidadReal = cantidad
	return nil
}

func (f *fakeProductosCat) List(limit, offset int) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductosCat) Search(q string, limit, offset int) ([]*entity.Producto, error) {
	return nil, nil
}

func (f *fakeProductosCat) SoftDelete(id string) error {
	p, ok := f.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	return nil
}

type fakeClientes struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClientes) Create(c *entity.Cliente) error {
	cc := *c
	f.clientes[c.ID] = &cc
	return nil
}

func (f *fakeClientes) GetByID(id string) (*entity.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, nil
	}
	cc := *c
	return &cc, nil
}

func (f *fakeClientes) GetByUsuario(usuarioID string) (*entity.Cliente, error) {
	for _, c := range f.clientes {
		if c.IDUsuario == usuarioID {
			cc := *c
			return &cc, nil
		}
	}
	return nil, nil
}

func (f *fakeClientes) Update(c *entity.Cliente) error { return nil }

func (f *fakeClientes) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }

func (f *fakeClientes) Search(q string, limit, offset int) ([]*entity.Cliente, error) {
	return nil, nil
}

func (f *fakeClientes) SoftDelete(id string) error { return nil }

type fakeUsuarios struct {
	usuarios map[string]*entity.Usuario
}

func (f *fakeUsuarios) Create(u *entity.Usuario) error {
	c := *u
	f.usuarios[u.ID] = &c
	return nil
}

func (f *fakeUsuarios) GetByID(id string) (*entity.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok {
		return nil, nil
	}
	c := *u
	return &c, nil
}

func (f *fakeUsuarios) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarios) GetByRFC(rfc string) (*entity.Usuario, error)           { return nil, nil }
func (f *fakeUsuarios) GetByTelefono(telefono string) (*entity.Usuario, error) { return nil, nil }
func (f *fakeUsuarios) Update(u *entity.Usuario) error                         { return nil }
func (f *fakeUsuarios) List(limit, offset int) ([]*entity.Usuario, error)      { return nil, nil }
func (f *fakeUsuarios) SoftDelete(id string) error                             { return nil }

type fakeDirecciones struct {
	direcciones map[string]*entity.Direccion
}

func (f *fakeDirecciones) Create(d *entity.Direccion) error {
	c := *d
	f.direcciones[d.ID] = &c
	return nil
}

func (f *fakeDirecciones) GetByID(id string) (*entity.Direccion, error) {
	d, ok := f.direcciones[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

func (f *fakeDirecciones) Update(d *entity.Direccion) error { return nil }

func (f *fakeDirecciones) List(limit, offset int) ([]*entity.Direccion, error) { return nil, nil }

func (f *fakeDirecciones) ListByCliente(clienteID string) ([]*entity.Direccion, error) {
	return nil, nil
}

func (f *fakeDirecciones) SoftDelete(id string) error { return nil }

type fakeTxPedidos struct {
	pedidos  repository.PedidoRepository
	detalles repository.DetallePedidoRepository
}

func (f *fakeTxPedidos) RunPedidos(ctx context.Context, fn func(repository.PedidoRepository, repository.DetallePedidoRepository) error) error {
	return fn(f.pedidos, f.detalles)
}

// --- entorno de pruebas ---

type entorno struct {
	uc          *UseCase
	pedidos     *fakePedidos
	detalles    *fakeDetalles
	productos   *fakeProductosCat
	clientes    *fakeClientes
	usuarios    *fakeUsuarios
	direcciones *fakeDirecciones
}

func nuevoEntornoPedidos(t *testing.T) *entorno {
	t.Helper()
	e := &entorno{
		pedidos:     &fakePedidos{pedidos: map[string]*entity.Pedido{}},
		detalles:    &fakeDetalles{detalles: map[string]*entity.DetallePedido{}},
		productos:   &fakeProductosCat{productos: map[string]*entity.Producto{}},
		clientes:    &fakeClientes{clientes: map[string]*entity.Cliente{}},
		usuarios:    &fakeUsuarios{usuarios: map[string]*entity.Usuario{}},
		direcciones: &fakeDirecciones{direcciones: map[string]*entity.Direccion{}},
	}
	tx := &fakeTxPedidos{pedidos: e.pedidos, detalles: e.detalles}
	e.uc = NewUseCase(tx, e.pedidos, e.detalles, e.productos, e.clientes, e.usuarios, e.direcciones, nil)
	return e
}

func (e *entorno) sembrarProducto(t *testing.T, nombre, precio string) *entity.Producto {
	t.Helper()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      nombre,
		PrecioVenta: decimal.RequireFromString(precio),
		Activo:      true,
	}
	require.NoError(t, e.productos.Create(p))
	return p
}

func (e *entorno) sembrarCliente(t *testing.T) (*entity.Cliente, *entity.Direccion) {
	t.Helper()
	u := &entity.Usuario{
		ID:              uuid.New().String(),
		Nombre:          "Laura",
		ApellidoPaterno: "Mendoza",
		ApellidoMaterno: "Ríos",
		Telefono:        "5512345678",
		Email:           "laura@example.com",
		TipoUsuario:     entity.TipoCliente,
		Activo:          true,
	}
	require.NoError(t, e.usuarios.Create(u))
	c := &entity.Cliente{ID: uuid.New().String(), IDUsuario: u.ID, Activo: true}
	require.NoError(t, e.clientes.Create(c))
	d := &entity.Direccion{
		ID:             uuid.New().String(),
		IDCliente:      c.ID,
		Calle:          "Av. Reforma",
		NumeroExterior: "120",
		Colonia:        "Centro",
		Municipio:      "Cuauhtémoc",
		Estado:         "CDMX",
		CodigoPostal:   "06000",
		Activo:         true,
	}
	require.NoError(t, e.direcciones.Create(d))
	return c, d
}

func (e *entorno) sembrarPedido(t *testing.T, clienteID string) *entity.Pedido {
	t.Helper()
	p := &entity.Pedido{
		ID:          uuid.New().String(),
		IDCliente:   clienteID,
		Estado:      entity.EstadoPendiente,
		FechaPedido: time.Now(),
		FormaPago:   "transferencia",
		Subtotal:    decimal.Zero,
		CostoEnvio:  decimal.Zero,
		Total:       decimal.Zero,
		Activo:      true,
	}
	require.NoError(t, e.pedidos.Create(p))
	return p
}

// --- pruebas ---

func TestCrearPedido_ConLineasYEnvio(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, direccion := e.sembrarCliente(t)
	p1 := e.sembrarProducto(t, "Paracetamol 500mg", "150.00")
	p2 := e.sembrarProducto(t, "Ibuprofeno 400mg", "75.50")

	pedido, lineas, err := e.uc.Crear(context.Background(), dto.CreatePedidoRequest{
		IDCliente:        cliente.ID,
		IDDireccionEnvio: direccion.ID,
		FormaPago:        "transferencia",
		Detalles: []dto.LineaPedidoRequest{
			{IDProducto: p1.ID, Cantidad: 1},
			{IDProducto: p2.ID, Cantidad: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, lineas, 2)

	assert.Equal(t, entity.EstadoPendiente, pedido.Estado)
	assert.True(t, pedido.Subtotal.Equal(decimal.RequireFromString("225.50")))
	assert.True(t, pedido.Total.Equal(pedido.Subtotal))
	assert.Equal(t, "Laura Mendoza Ríos Tel. 5512345678", pedido.EnvioContacto)
	assert.Equal(t, "Av. Reforma No. 120, colonia Centro C.P. 06000. Cuauhtémoc, CDMX", pedido.EnvioDireccion)

	guardado, err := e.pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Subtotal.Equal(decimal.RequireFromString("225.50")))
}

func TestCrearPedido_ProductoDuplicadoEnLineas(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, direccion := e.sembrarCliente(t)
	p := e.sembrarProducto(t, "Paracetamol 500mg", "150.00")

	_, _, err := e.uc.Crear(context.Background(), dto.CreatePedidoRequest{
		IDCliente:        cliente.ID,
		IDDireccionEnvio: direccion.ID,
		FormaPago:        "transferencia",
		Detalles: []dto.LineaPedidoRequest{
			{IDProducto: p.ID, Cantidad: 1},
			{IDProducto: p.ID, Cantidad: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Empty(t, e.pedidos.pedidos, "nada debe persistirse si las líneas son inválidas")
}

func TestCrearPedido_DireccionDeOtroCliente(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	ajena := &entity.Direccion{ID: uuid.New().String(), IDCliente: uuid.New().String(), Activo: true}
	require.NoError(t, e.direcciones.Create(ajena))

	_, _, err := e.uc.Crear(context.Background(), dto.CreatePedidoRequest{
		IDCliente:        cliente.ID,
		IDDireccionEnvio: ajena.ID,
		FormaPago:        "transferencia",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAgregarLinea_CalculaTotalYSubtotal(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Amoxicilina 500mg", "89.90")

	linea, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido:   pedido.ID,
		IDProducto: producto.ID,
		Cantidad:   3,
	})
	require.NoError(t, err)
	assert.True(t, linea.Total.Equal(decimal.RequireFromString("269.70")))

	guardado, err := e.pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Subtotal.Equal(decimal.RequireFromString("269.70")))
}

func TestAgregarLinea_CantidadInvalida(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Amoxicilina 500mg", "89.90")

	_, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido:   pedido.ID,
		IDProducto: producto.ID,
		Cantidad:   0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, e.detalles.detalles)
}

func TestAgregarLinea_ProductoYaEnPedido(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Amoxicilina 500mg", "89.90")

	_, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: producto.ID, Cantidad: 1,
	})
	require.NoError(t, err)

	_, err = e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: producto.ID, Cantidad: 2,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestActualizarLinea_ConservaPrecioHistorico(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Loratadina 10mg", "50.00")

	linea, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: producto.ID, Cantidad: 2,
	})
	require.NoError(t, err)
	require.True(t, linea.Total.Equal(decimal.RequireFromString("100.00")))

	// El precio del producto sube, pero la línea conserva el precio con que se creó.
	producto.PrecioVenta = decimal.RequireFromString("80.00")
	require.NoError(t, e.productos.Update(producto))

	nueva := int64(5)
	actualizada, err := e.uc.ActualizarLinea(context.Background(), linea.ID, dto.UpdateDetalleRequest{Cantidad: &nueva})
	require.NoError(t, err)
	assert.True(t, actualizada.Total.Equal(decimal.RequireFromString("250.00")),
		"el total debe derivarse del precio histórico de 50.00, no del vigente")

	guardado, err := e.pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Subtotal.Equal(decimal.RequireFromString("250.00")))
}

func TestActualizarLinea_AsignaFactura(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Omeprazol 20mg", "120.00")

	linea, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: producto.ID, Cantidad: 3,
	})
	require.NoError(t, err)

	factura := "FAC-2026-0417"
	actualizada, err := e.uc.ActualizarLinea(context.Background(), linea.ID, dto.UpdateDetalleRequest{Factura: &factura})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2026-0417", actualizada.Factura)

	// Solo cambió la factura: cantidad y total quedan intactos.
	guardada, err := e.detalles.GetByID(linea.ID)
	require.NoError(t, err)
	assert.Equal(t, "FAC-2026-0417", guardada.Factura)
	assert.Equal(t, int64(3), guardada.Cantidad)
	assert.True(t, guardada.Total.Equal(decimal.RequireFromString("360.00")))
}

func TestBajaLinea_RecalculaSubtotal(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	p1 := e.sembrarProducto(t, "Paracetamol 500mg", "150.00")
	p2 := e.sembrarProducto(t, "Ibuprofeno 400mg", "75.50")

	_, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: p1.ID, Cantidad: 1,
	})
	require.NoError(t, err)
	l2, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: p2.ID, Cantidad: 1,
	})
	require.NoError(t, err)

	require.NoError(t, e.uc.BajaLinea(context.Background(), l2.ID))

	guardado, err := e.pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Subtotal.Equal(decimal.RequireFromString("150.00")))

	err = e.uc.BajaLinea(context.Background(), l2.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActualizarPedido_TransicionesDeEstado(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)

	saltado := entity.EstadoEnviado
	_, err := e.uc.Actualizar(context.Background(), pedido.ID, dto.UpdatePedidoRequest{Estado: &saltado})
	assert.ErrorIs(t, err, domain.ErrConflict, "pendiente no puede saltar a enviado")

	procesando := entity.EstadoProcesando
	actualizado, err := e.uc.Actualizar(context.Background(), pedido.ID, dto.UpdatePedidoRequest{Estado: &procesando})
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoProcesando, actualizado.Estado)

	invalido := "perdido"
	_, err = e.uc.Actualizar(context.Background(), pedido.ID, dto.UpdatePedidoRequest{Estado: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarPedido_CostoEnvioRecalculaTotal(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)
	producto := e.sembrarProducto(t, "Paracetamol 500mg", "150.00")

	_, err := e.uc.AgregarLinea(context.Background(), dto.CreateDetalleRequest{
		IDPedido: pedido.ID, IDProducto: producto.ID, Cantidad: 2,
	})
	require.NoError(t, err)

	envio := decimal.RequireFromString("99.00")
	actualizado, err := e.uc.Actualizar(context.Background(), pedido.ID, dto.UpdatePedidoRequest{CostoEnvio: &envio})
	require.NoError(t, err)
	assert.True(t, actualizado.Total.Equal(decimal.RequireFromString("399.00")))
}

func TestCancelarPedido(t *testing.T) {
	e := nuevoEntornoPedidos(t)
	cliente, _ := e.sembrarCliente(t)
	pedido := e.sembrarPedido(t, cliente.ID)

	require.NoError(t, e.uc.Cancelar(context.Background(), pedido.ID))

	guardado, err := e.pedidos.GetByID(pedido.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EstadoCancelado, guardado.Estado)
	assert.False(t, guardado.Activo)

	err = e.uc.Cancelar(context.Background(), pedido.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
