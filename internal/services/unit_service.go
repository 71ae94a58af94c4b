package services

import (
	"errors"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

type UnitService interface {
	CreateUnit(unit *models.Unit) error
	GetAllUnits() ([]models.Unit, error)
	UpdateUnit(id uint, input *models.Unit) (*models.Unit, error)
	DeleteUnits(ids []uint) error
}

type unitService struct {
	unitRepo repository.UnitRepository
	cache    *cache.Client
}

func NewUnitService(unitRepo repository.UnitRepository, cacheClient *cache.Client) UnitService {
	return &unitService{unitRepo: unitRepo, cache: cacheClient}
}

func (s *unitService) CreateUnit(unit *models.Unit) error {
	existing, err := s.unitRepo.GetActiveByName(unit.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return httperr.ErrAlreadyExists
	}

	unit.IsDeleted = false
	if err := s.unitRepo.Create(unit); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyUnits)
	return nil
}

func (s *unitService) GetAllUnits() ([]models.Unit, error) {
	var units []models.Unit
	if s.cache.Get(cache.KeyUnits, &units) {
		return units, nil
	}

	units, err := s.unitRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyUnits, units)
	return units, nil
}

// UpdateUnit re-checks the name against other non-deleted units before
// overwriting. A missing description is stored as empty text.
func (s *unitService) UpdateUnit(id uint, input *models.Unit) (*models.Unit, error) {
	unit, err := s.unitRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Unit")
		}
		return nil, err
	}

	conflict, err := s.unitRepo.GetActiveByNameExcluding(input.Name, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if conflict != nil {
		return nil, httperr.ErrAlreadyExists
	}

	unit.Name = input.Name
	unit.Description = input.Description

	if err := s.unitRepo.Update(unit); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyUnits)
	return unit, nil
}

func (s *unitService) DeleteUnits(ids []uint) error {
	if err := s.unitRepo.DeleteByIDs(ids); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyUnits)
	return nil
}
