package usecase

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

type fakePromociones struct {
	porID map[string]*entity.Promocion
}

func (f *fakePromociones) Create(p *entity.Promocion) error {
	c := *p
	f.porID[p.ID] = &c
	return nil
}

func (f *fakePromociones) GetByID(id string) (*entity.Promocion, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakePromociones) Update(p *entity.Promocion) error {
	if _, ok := f.porID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	f.porID[p.ID] = &c
	return nil
}

func (f *fakePromociones) List(limit, offset int) ([]*entity.Promocion, error) {
	var out []*entity.Promocion
	for _, p := range f.porID {
		if p.Activo {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePromociones) ListByProducto(productoID string) ([]*entity.Promocion, error) {
	var out []*entity.Promocion
	for _, p := range f.porID {
		if p.Activo && p.IDProducto == productoID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakePromociones) SoftDelete(id string) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	return nil
}

type fakeProductos struct {
	porID map[string]*entity.Producto
}

func (f *fakeProductos) Create(p *entity.Producto) error {
	c := *p
	f.porID[p.ID] = &c
	return nil
}

func (f *fakeProductos) GetByID(id string) (*entity.Producto, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakeProductos) GetByNombre(nombre string) (*entity.Producto, error) {
	for _, p := range f.porID {
		if strings.EqualFold(p.Nombre, nombre) {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeProductos) GetForUpdate(id string) (*entity.Producto, error) { return f.GetByID(id) }

func (f *fakeProductos) Update(p *entity.Producto) error {
	c := *p
	f.porID[p.ID] = &c
	return nil
}

func (f *fakeProductos) UpdateCantidadReal(id string, cantidad int64) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CantidadReal = cantidad
	return nil
}

func (f *fakeProductos) List(limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.porID {
		if p.Activo {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeProductos) Search(q string, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range f.porID {
		if p.Activo && strings.Contains(strings.ToLower(p.Nombre), strings.ToLower(q)) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeProductos) SoftDelete(id string) error {
	p, ok := f.porID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Activo = false
	return nil
}

func nuevaPromocionUC(t *testing.T) (*PromocionUseCase, *entity.Producto) {
	t.Helper()
	productos := &fakeProductos{porID: map[string]*entity.Producto{}}
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      "Paracetamol 500mg",
		PrecioVenta: decimal.RequireFromString("150.00"),
		Activo:      true,
	}
	require.NoError(t, productos.Create(producto))
	return NewPromocionUseCase(&fakePromociones{porID: map[string]*entity.Promocion{}}, productos), producto
}

func TestPromocion_NxMRequiereUnidades(t *testing.T) {
	uc, producto := nuevaPromocionUC(t)

	_, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:    producto.ID,
		TipoPromocion: entity.PromocionNxM,
		Descripcion:   "3x2 en analgésicos",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:         producto.ID,
		TipoPromocion:      entity.PromocionNxM,
		Descripcion:        "3x2 en analgésicos",
		UnidadesRequeridas: 3, UnidadesObsequiadas: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PromocionNxM, resp.TipoPromocion)
}

func TestPromocion_PorcentajeAcotado(t *testing.T) {
	uc, producto := nuevaPromocionUC(t)

	_, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:          producto.ID,
		TipoPromocion:       entity.PromocionPorcentaje,
		Descripcion:         "descuento de temporada",
		PorcentajeDescuento: decimal.RequireFromString("120"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreatePromocionRequest{
		IDProducto:          producto.ID,
		TipoPromocion:       entity.PromocionPorcentaje,
		Descripcion:         "descuento de temporada",
		PorcentajeDescuento: decimal.RequireFromString("15"),
	})
	assert.NoError(t, err)
}

func TestPromocion_VolumenRequiereMinimoYDescuento(t *testing.T) {
	uc, producto := nuevaPromocionUC(t)

	_, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:    producto.ID,
		TipoPromocion: entity.PromocionVolumen,
		Descripcion:   "mayoreo",
		MinimoCompra:  10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "volumen sin descuento asociado")

	_, err = uc.Create(dto.CreatePromocionRequest{
		IDProducto:        producto.ID,
		TipoPromocion:     entity.PromocionVolumen,
		Descripcion:       "mayoreo",
		MinimoCompra:      10,
		CantidadDescuento: decimal.RequireFromString("12.50"),
	})
	assert.NoError(t, err)
}

func TestPromocion_TipoDesconocido(t *testing.T) {
	uc, producto := nuevaPromocionUC(t)

	_, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:    producto.ID,
		TipoPromocion: 9,
		Descripcion:   "misteriosa",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPromocion_ProductoInexistente(t *testing.T) {
	uc, _ := nuevaPromocionUC(t)

	_, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:         uuid.New().String(),
		TipoPromocion:      entity.PromocionNxM,
		Descripcion:        "2x1",
		UnidadesRequeridas: 2, UnidadesObsequiadas: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPromocion_UpdateMantieneValidezPorTipo(t *testing.T) {
	uc, producto := nuevaPromocionUC(t)

	resp, err := uc.Create(dto.CreatePromocionRequest{
		IDProducto:         producto.ID,
		TipoPromocion:      entity.PromocionNxM,
		Descripcion:        "3x2",
		UnidadesRequeridas: 3, UnidadesObsequiadas: 1,
	})
	require.NoError(t, err)

	cero := int64(0)
	_, err = uc.Update(resp.ID, dto.UpdatePromocionRequest{UnidadesRequeridas: &cero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cinco := int64(5)
	actualizada, err := uc.Update(resp.ID, dto.UpdatePromocionRequest{UnidadesRequeridas: &cinco})
	require.NoError(t, err)
	assert.Equal(t, int64(5), actualizada.UnidadesRequeridas)
}
