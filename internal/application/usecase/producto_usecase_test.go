package usecase

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
)

type fakeLaboratorios struct {
	porID map[string]*entity.Laboratorio
}

func (f *fakeLaboratorios) Create(l *entity.Laboratorio) error {
	c := *l
	f.porID[l.ID] = &c
	return nil
}

func (f *fakeLaboratorios) GetByID(id string) (*entity.Laboratorio, error) {
	l, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	c := *l
	return &c, nil
}

func (f *fakeLaboratorios) GetByNombre(nombre string) (*entity.Laboratorio, error) {
	for _, l := range f.porID {
		if l.Nombre == nombre {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeLaboratorios) Update(l *entity.Laboratorio) error { return nil }

func (f *fakeLaboratorios) List(limit, offset int) ([]*entity.Laboratorio, error) { return nil, nil }

func (f *fakeLaboratorios) Search(q string, limit, offset int) ([]*entity.Laboratorio, error) {
	return nil, nil
}

func (f *fakeLaboratorios) SoftDelete(id string) error { return nil }

func nuevoProductoUC(t *testing.T) (*ProductoUseCase, *fakeProductos, *fakeLaboratorios) {
	t.Helper()
	productos := &fakeProductos{porID: map[string]*entity.Producto{}}
	laboratorios := &fakeLaboratorios{porID: map[string]*entity.Laboratorio{}}
	return NewProductoUseCase(productos, laboratorios), productos, laboratorios
}

func TestProducto_CreateNormalizaNombre(t *testing.T) {
	uc, _, _ := nuevoProductoUC(t)

	resp, err := uc.Create(dto.CreateProductoRequest{
		Nombre:      "ácido acetilsalicílico 100mg",
		PrecioVenta: decimal.RequireFromString("45.00"),
		StockMinimo: 10,
		StockMaximo: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ácido Acetilsalicílico 100mg", resp.Nombre)
	assert.Zero(t, resp.CantidadReal, "la cantidad real nace en cero y la escribe el inventario")
}

func TestProducto_CreateNombreDuplicado(t *testing.T) {
	uc, _, _ := nuevoProductoUC(t)

	_, err := uc.Create(dto.CreateProductoRequest{
		Nombre:      "Paracetamol 500mg",
		PrecioVenta: decimal.RequireFromString("150.00"),
		StockMaximo: 100,
	})
	require.NoError(t, err)

	// La unicidad es insensible a mayúsculas.
	_, err = uc.Create(dto.CreateProductoRequest{
		Nombre:      "PARACETAMOL 500MG",
		PrecioVenta: decimal.RequireFromString("150.00"),
		StockMaximo: 100,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProducto_CreateBoundsInvalidos(t *testing.T) {
	uc, _, _ := nuevoProductoUC(t)

	_, err := uc.Create(dto.CreateProductoRequest{
		Nombre:      "Ibuprofeno 400mg",
		PrecioVenta: decimal.RequireFromString("75.50"),
		StockMinimo: 50,
		StockMaximo: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProducto_CreateLaboratorioInexistente(t *testing.T) {
	uc, _, _ := nuevoProductoUC(t)

	_, err := uc.Create(dto.CreateProductoRequest{
		Nombre:        "Ibuprofeno 400mg",
		PrecioVenta:   decimal.RequireFromString("75.50"),
		IDLaboratorio: uuid.New().String(),
		StockMaximo:   100,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProducto_UpdateNoTocaCantidadReal(t *testing.T) {
	uc, productos, _ := nuevoProductoUC(t)

	resp, err := uc.Create(dto.CreateProductoRequest{
		Nombre:      "Loratadina 10mg",
		PrecioVenta: decimal.RequireFromString("50.00"),
		StockMaximo: 100,
	})
	require.NoError(t, err)

	// El inventario reporta existencias fuera del CRUD.
	require.NoError(t, productos.UpdateCantidadReal(resp.ID, 40))

	precio := decimal.RequireFromString("60.00")
	actualizado, err := uc.Update(resp.ID, dto.UpdateProductoRequest{PrecioVenta: &precio})
	require.NoError(t, err)
	assert.Equal(t, int64(40), actualizado.CantidadReal)
}

func TestProducto_DeleteInexistente(t *testing.T) {
	uc, _, _ := nuevoProductoUC(t)
	err := uc.Delete(uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
