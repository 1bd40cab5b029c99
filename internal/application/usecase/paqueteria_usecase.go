package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// PaqueteriaUseCase casos de uso CRUD para empresas de mensajería.
type PaqueteriaUseCase struct {
	repo repository.PaqueteriaRepository
}

// NewPaqueteriaUseCase construye el caso de uso.
func NewPaqueteriaUseCase(repo repository.PaqueteriaRepository) *PaqueteriaUseCase {
	return &PaqueteriaUseCase{repo: repo}
}

// Create da de alta una paquetería.
func (uc *PaqueteriaUseCase) Create(in dto.CreatePaqueteriaRequest) (*dto.PaqueteriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	paqueteria := &entity.Paqueteria{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(paqueteria); err != nil {
		return nil, err
	}
	return toPaqueteriaResponse(paqueteria), nil
}

// GetByID obtiene una paquetería por ID.
func (uc *PaqueteriaUseCase) GetByID(id string) (*dto.PaqueteriaResponse, error) {
	paqueteria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paqueteria == nil {
		return nil, domain.ErrNotFound
	}
	return toPaqueteriaResponse(paqueteria), nil
}

// Update renombra una paquetería.
func (uc *PaqueteriaUseCase) Update(id string, in dto.CreatePaqueteriaRequest) (*dto.PaqueteriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	paqueteria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if paqueteria == nil || !paqueteria.Activo {
		return nil, domain.ErrNotFound
	}
	paqueteria.Nombre = in.Nombre
	paqueteria.UpdatedAt = time.Now()
	if err := uc.repo.Update(paqueteria); err != nil {
		return nil, err
	}
	return toPaqueteriaResponse(paqueteria), nil
}

// List lista paqueterías activas con paginación.
func (uc *PaqueteriaUseCase) List(limit, offset int) ([]dto.PaqueteriaResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaqueteriaResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaqueteriaResponse(p))
	}
	return items, nil
}

// Delete da de baja una paquetería (soft delete).
func (uc *PaqueteriaUseCase) Delete(id string) error {
	paqueteria, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if paqueteria == nil || !paqueteria.Activo {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toPaqueteriaResponse(p *entity.Paqueteria) *dto.PaqueteriaResponse {
	if p == nil {
		return nil
	}
	return &dto.PaqueteriaResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Activo:    p.Activo,
		CreatedAt: p.CreatedAt,
	}
}
