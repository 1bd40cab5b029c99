package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// PromocionUseCase casos de uso CRUD para promociones comerciales. Cada tipo
// de promoción exige sus propios campos (NxM, descuento fijo, porcentaje,
// volumen); la validación por tipo vive aquí.
type PromocionUseCase struct {
	repo      repository.PromocionRepository
	productos repository.ProductoRepository
}

// NewPromocionUseCase construye el caso de uso.
func NewPromocionUseCase(repo repository.PromocionRepository, productos repository.ProductoRepository) *PromocionUseCase {
	return &PromocionUseCase{repo: repo, productos: productos}
}

// Create da de alta una promoción sobre un producto existente.
func (uc *PromocionUseCase) Create(in dto.CreatePromocionRequest) (*dto.PromocionResponse, error) {
	if in.IDProducto == "" || in.Descripcion == "" {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productos.GetByID(in.IDProducto)
	if err != nil {
		return nil, err
	}
	if producto == nil || !producto.Activo {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	promocion := &entity.Promocion{
		ID:                  uuid.New().String(),
		IDProducto:          producto.ID,
		TipoPromocion:       in.TipoPromocion,
		Descripcion:         in.Descripcion,
		UnidadesRequeridas:  in.UnidadesRequeridas,
		UnidadesObsequiadas: in.UnidadesObsequiadas,
		CantidadDescuento:   in.CantidadDescuento,
		PorcentajeDescuento: in.PorcentajeDescuento,
		MinimoCompra:        in.MinimoCompra,
		Acumulable:          in.Acumulable,
		Activo:              true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := validarPromocion(promocion); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(promocion); err != nil {
		return nil, err
	}
	return toPromocionResponse(promocion), nil
}

// validarPromocion valida los campos requeridos según el tipo.
func validarPromocion(p *entity.Promocion) error {
	switch p.TipoPromocion {
	case entity.PromocionNxM:
		if p.UnidadesRequeridas <= 0 || p.UnidadesObsequiadas <= 0 {
			return domain.ErrInvalidInput
		}
	case entity.PromocionDescuento:
		if !p.CantidadDescuento.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.PromocionPorcentaje:
		if !p.PorcentajeDescuento.IsPositive() || p.PorcentajeDescuento.GreaterThan(decimal.NewFromInt(100)) {
			return domain.ErrInvalidInput
		}
	case entity.PromocionVolumen:
		if p.MinimoCompra <= 0 {
			return domain.ErrInvalidInput
		}
		if !p.CantidadDescuento.IsPositive() && !p.PorcentajeDescuento.IsPositive() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

// GetByID obtiene una promoción por ID.
func (uc *PromocionUseCase) GetByID(id string) (*dto.PromocionResponse, error) {
	promocion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promocion == nil {
		return nil, domain.ErrNotFound
	}
	return toPromocionResponse(promocion), nil
}

// Update actualiza una promoción. El tipo y el producto no cambian; los campos
// resultantes deben seguir siendo válidos para el tipo.
func (uc *PromocionUseCase) Update(id string, in dto.UpdatePromocionRequest) (*dto.PromocionResponse, error) {
	promocion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if promocion == nil || !promocion.Activo {
		return nil, domain.ErrNotFound
	}
	if in.Descripcion != nil {
		if *in.Descripcion == "" {
			return nil, domain.ErrInvalidInput
		}
		promocion.Descripcion = *in.Descripcion
	}
	if in.UnidadesRequeridas != nil {
		promocion.UnidadesRequeridas = *in.UnidadesRequeridas
	}
	if in.UnidadesObsequiadas != nil {
		promocion.UnidadesObsequiadas = *in.UnidadesObsequiadas
	}
	if in.CantidadDescuento != nil {
		promocion.CantidadDescuento = *in.CantidadDescuento
	}
	if in.PorcentajeDescuento != nil {
		promocion.PorcentajeDescuento = *in.PorcentajeDescuento
	}
	if in.MinimoCompra != nil {
		promocion.MinimoCompra = *in.MinimoCompra
	}
	if in.Acumulable != nil {
		promocion.Acumulable = *in.Acumulable
	}
	if err := validarPromocion(promocion); err != nil {
		return nil, err
	}
	promocion.UpdatedAt = time.Now()
	if err := uc.repo.Update(promocion); err != nil {
		return nil, err
	}
	return toPromocionResponse(promocion), nil
}

// List lista promociones activas con paginación.
func (uc *PromocionUseCase) List(limit, offset int) ([]dto.PromocionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromocionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPromocionResponse(p))
	}
	return items, nil
}

// ListByProducto lista las promociones activas de un producto.
func (uc *PromocionUseCase) ListByProducto(productoID string) ([]dto.PromocionResponse, error) {
	producto, err := uc.productos.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByProducto(productoID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PromocionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPromocionResponse(p))
	}
	return items, nil
}

// Delete da de baja una promoción (soft delete).
func (uc *PromocionUseCase) Delete(id string) error {
	promocion, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if promocion == nil || !promocion.Activo {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toPromocionResponse(p *entity.Promocion) *dto.PromocionResponse {
	if p == nil {
		return nil
	}
	return &dto.PromocionResponse{
		ID:                  p.ID,
		IDProducto:          p.IDProducto,
		TipoPromocion:       p.TipoPromocion,
		Descripcion:         p.Descripcion,
		UnidadesRequeridas:  p.UnidadesRequeridas,
		UnidadesObsequiadas: p.UnidadesObsequiadas,
		CantidadDescuento:   p.CantidadDescuento,
		PorcentajeDescuento: p.PorcentajeDescuento,
		MinimoCompra:        p.MinimoCompra,
		Acumulable:          p.Acumulable,
		Activo:              p.Activo,
		CreatedAt:           p.CreatedAt,
	}
}
