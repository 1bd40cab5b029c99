package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
	"github.com/casamedica/distribucion-api/pkg/textutil"
)

// ProductoUseCase casos de uso CRUD para productos del catálogo. La cantidad
// real no se acepta ni en alta ni en actualización: la escribe el libro de stock.
type ProductoUseCase struct {
	repo         repository.ProductoRepository
	laboratorios repository.LaboratorioRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, laboratorios repository.LaboratorioRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, laboratorios: laboratorios}
}

// Create da de alta un producto. El nombre se normaliza con mayúscula inicial
// por palabra y debe ser único entre los productos activos.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.PrecioVenta.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.StockMinimo < 0 || in.StockMaximo < in.StockMinimo {
		return nil, domain.ErrInvalidInput
	}
	nombre := textutil.CapitalizarPalabras(in.Nombre)

	existente, err := uc.repo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil && existente.Activo {
		return nil, domain.ErrDuplicate
	}
	if in.IDLaboratorio != "" {
		laboratorio, err := uc.laboratorios.GetByID(in.IDLaboratorio)
		if err != nil {
			return nil, err
		}
		if laboratorio == nil || !laboratorio.Activo {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	producto := &entity.Producto{
		ID:            uuid.New().String(),
		Nombre:        nombre,
		CodigoBarras:  in.CodigoBarras,
		Descripcion:   in.Descripcion,
		IDLaboratorio: in.IDLaboratorio,
		PrecioVenta:   in.PrecioVenta,
		CantidadReal:  0,
		StockMinimo:   in.StockMinimo,
		StockMaximo:   in.StockMaximo,
		Activo:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto. No permite modificar CantidadReal.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != nil {
		nombre := textutil.CapitalizarPalabras(*in.Nombre)
		if nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		otro, err := uc.repo.GetByNombre(nombre)
		if err != nil {
			return nil, err
		}
		if otro != nil && otro.Activo && otro.ID != producto.ID {
			return nil, domain.ErrDuplicate
		}
		producto.Nombre = nombre
	}
	if in.CodigoBarras != nil {
		producto.CodigoBarras = *in.CodigoBarras
	}
	if in.Descripcion != nil {
		producto.Descripcion = *in.Descripcion
	}
	if in.IDLaboratorio != nil {
		if *in.IDLaboratorio != "" {
			laboratorio, err := uc.laboratorios.GetByID(*in.IDLaboratorio)
			if err != nil {
				return nil, err
			}
			if laboratorio == nil || !laboratorio.Activo {
				return nil, domain.ErrNotFound
			}
		}
		producto.IDLaboratorio = *in.IDLaboratorio
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.PrecioVenta = *in.PrecioVenta
	}
	if in.StockMinimo != nil {
		producto.StockMinimo = *in.StockMinimo
	}
	if in.StockMaximo != nil {
		producto.StockMaximo = *in.StockMaximo
	}
	if producto.StockMinimo < 0 || producto.StockMaximo < producto.StockMinimo {
		return nil, domain.ErrInvalidInput
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista productos activos con paginación.
func (uc *ProductoUseCase) List(limit, offset int) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Search busca productos por coincidencia parcial de nombre.
func (uc *ProductoUseCase) Search(q string, limit, offset int) ([]dto.ProductoResponse, error) {
	if q == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return items, nil
}

// Delete da de baja un producto (soft delete).
func (uc *ProductoUseCase) Delete(id string) error {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil || !producto.Activo {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		CodigoBarras:  p.CodigoBarras,
		Descripcion:   p.Descripcion,
		IDLaboratorio: p.IDLaboratorio,
		PrecioVenta:   p.PrecioVenta,
		CantidadReal:  p.CantidadReal,
		StockMinimo:   p.StockMinimo,
		StockMaximo:   p.StockMaximo,
		Activo:        p.Activo,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
