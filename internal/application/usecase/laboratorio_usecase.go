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

// LaboratorioUseCase casos de uso CRUD para laboratorios fabricantes.
type LaboratorioUseCase struct {
	repo repository.LaboratorioRepository
}

// NewLaboratorioUseCase construye el caso de uso.
func NewLaboratorioUseCase(repo repository.LaboratorioRepository) *LaboratorioUseCase {
	return &LaboratorioUseCase{repo: repo}
}

// Create da de alta un laboratorio. El nombre es único entre activos.
func (uc *LaboratorioUseCase) Create(in dto.CreateLaboratorioRequest) (*dto.LaboratorioResponse, error) {
	if in.Nombre == "" {
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
	now := time.Now()
	laboratorio := &entity.Laboratorio{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Activo:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(laboratorio); err != nil {
		return nil, err
	}
	return toLaboratorioResponse(laboratorio), nil
}

// GetByID obtiene un laboratorio por ID.
func (uc *LaboratorioUseCase) GetByID(id string) (*dto.LaboratorioResponse, error) {
	laboratorio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if laboratorio == nil {
		return nil, domain.ErrNotFound
	}
	return toLaboratorioResponse(laboratorio), nil
}

// Update renombra un laboratorio.
func (uc *LaboratorioUseCase) Update(id string, in dto.CreateLaboratorioRequest) (*dto.LaboratorioResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	laboratorio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if laboratorio == nil || !laboratorio.Activo {
		return nil, domain.ErrNotFound
	}
	nombre := textutil.CapitalizarPalabras(in.Nombre)
	otro, err := uc.repo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if otro != nil && otro.Activo && otro.ID != laboratorio.ID {
		return nil, domain.ErrDuplicate
	}
	laboratorio.Nombre = nombre
	laboratorio.UpdatedAt = time.Now()
	if err := uc.repo.Update(laboratorio); err != nil {
		return nil, err
	}
	return toLaboratorioResponse(laboratorio), nil
}

// List lista laboratorios activos con paginación.
func (uc *LaboratorioUseCase) List(limit, offset int) ([]dto.LaboratorioResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LaboratorioResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLaboratorioResponse(l))
	}
	return items, nil
}

// Search busca laboratorios por coincidencia parcial de nombre.
func (uc *LaboratorioUseCase) Search(q string, limit, offset int) ([]dto.LaboratorioResponse, error) {
	if q == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(q, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LaboratorioResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLaboratorioResponse(l))
	}
	return items, nil
}

// Delete da de baja un laboratorio (soft delete).
func (uc *LaboratorioUseCase) Delete(id string) error {
	laboratorio, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if laboratorio == nil || !laboratorio.Activo {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toLaboratorioResponse(l *entity.Laboratorio) *dto.LaboratorioResponse {
	if l == nil {
		return nil
	}
	return &dto.LaboratorioResponse{
		ID:        l.ID,
		Nombre:    l.Nombre,
		Activo:    l.Activo,
		CreatedAt: l.CreatedAt,
	}
}
