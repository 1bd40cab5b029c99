package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/casamedica/distribucion-api/internal/application/dto"
	"github.com/casamedica/distribucion-api/internal/domain"
	"github.com/casamedica/distribucion-api/internal/domain/entity"
	"github.com/casamedica/distribucion-api/internal/domain/repository"
)

// DireccionUseCase casos de uso CRUD para direcciones de envío de clientes.
type DireccionUseCase struct {
	repo     repository.DireccionRepository
	clientes repository.ClienteRepository
}

// NewDireccionUseCase construye el caso de uso.
func NewDireccionUseCase(repo repository.DireccionRepository, clientes repository.ClienteRepository) *DireccionUseCase {
	return &DireccionUseCase{repo: repo, clientes: clientes}
}

// Create da de alta una dirección para un cliente existente.
func (uc *DireccionUseCase) Create(in dto.CreateDireccionRequest) (*dto.DireccionResponse, error) {
	if in.IDCliente == "" || in.Calle == "" || in.NumeroExterior == "" ||
		in.Colonia == "" || in.Municipio == "" || in.Estado == "" || in.CodigoPostal == "" {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clientes.GetByID(in.IDCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil || !cliente.Activo {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	direccion := &entity.Direccion{
		ID:             uuid.New().String(),
		IDCliente:      cliente.ID,
		Calle:          in.Calle,
		NumeroExterior: in.NumeroExterior,
		NumeroInterior: in.NumeroInterior,
		Colonia:        in.Colonia,
		Municipio:      in.Municipio,
		Estado:         in.Estado,
		CodigoPostal:   in.CodigoPostal,
		Referencias:    in.Referencias,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(direccion); err != nil {
		return nil, err
	}
	return toDireccionResponse(direccion), nil
}

// GetByID obtiene una dirección por ID.
func (uc *DireccionUseCase) GetByID(id string) (*dto.DireccionResponse, error) {
	direccion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if direccion == nil {
		return nil, domain.ErrNotFound
	}
	return toDireccionResponse(direccion), nil
}

// Update actualiza los campos de una dirección.
func (uc *DireccionUseCase) Update(id string, in dto.UpdateDireccionRequest) (*dto.DireccionResponse, error) {
	direccion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if direccion == nil || !direccion.Activo {
		return nil, domain.ErrNotFound
	}
	if in.Calle != nil {
		direccion.Calle = *in.Calle
	}
	if in.NumeroExterior != nil {
		direccion.NumeroExterior = *in.NumeroExterior
	}
	if in.NumeroInterior != nil {
		direccion.NumeroInterior = *in.NumeroInterior
	}
	if in.Colonia != nil {
		direccion.Colonia = *in.Colonia
	}
	if in.Municipio != nil {
		direccion.Municipio = *in.Municipio
	}
	if in.Estado != nil {
		direccion.Estado = *in.Estado
	}
	if in.CodigoPostal != nil {
		direccion.CodigoPostal = *in.CodigoPostal
	}
	if in.Referencias != nil {
		direccion.Referencias = *in.Referencias
	}
	if direccion.Calle == "" || direccion.NumeroExterior == "" || direccion.Colonia == "" ||
		direccion.Municipio == "" || direccion.Estado == "" || direccion.CodigoPostal == "" {
		return nil, domain.ErrInvalidInput
	}
	direccion.UpdatedAt = time.Now()
	if err := uc.repo.Update(direccion); err != nil {
		return nil, err
	}
	return toDireccionResponse(direccion), nil
}

// List lista direcciones activas con paginación.
func (uc *DireccionUseCase) List(limit, offset int) ([]dto.DireccionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DireccionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDireccionResponse(d))
	}
	return items, nil
}

// ListByCliente lista las direcciones activas de un cliente.
func (uc *DireccionUseCase) ListByCliente(clienteID string) ([]dto.DireccionResponse, error) {
	cliente, err := uc.clientes.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DireccionResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDireccionResponse(d))
	}
	return items, nil
}

// Delete da de baja una dirección (soft delete).
func (uc *DireccionUseCase) Delete(id string) error {
	direccion, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if direccion == nil || !direccion.Activo {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func toDireccionResponse(d *entity.Direccion) *dto.DireccionResponse {
	if d == nil {
		return nil
	}
	return &dto.DireccionResponse{
		ID:             d.ID,
		IDCliente:      d.IDCliente,
		Calle:          d.Calle,
		NumeroExterior: d.NumeroExterior,
		NumeroInterior: d.NumeroInterior,
		Colonia:        d.Colonia,
		Municipio:      d.Municipio,
		Estado:         d.Estado,
		CodigoPostal:   d.CodigoPostal,
		Referencias:    d.Referencias,
		Activo:         d.Activo,
		CreatedAt:      d.CreatedAt,
	}
}
