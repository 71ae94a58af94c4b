package services

import (
	"errors"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

type SupplierService interface {
	CreateSupplier(supplier *models.Supplier) error
	GetAllSuppliers() ([]models.Supplier, error)
	UpdateSupplier(id uint, input *models.Supplier) (*models.Supplier, error)
	DeleteSuppliers(ids []uint) error
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	cache        *cache.Client
}

func NewSupplierService(supplierRepo repository.SupplierRepository, cacheClient *cache.Client) SupplierService {
	return &supplierService{supplierRepo: supplierRepo, cache: cacheClient}
}

func (s *supplierService) CreateSupplier(supplier *models.Supplier) error {
	existing, err := s.supplierRepo.GetActiveByName(supplier.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return httperr.ErrAlreadyExists
	}

	supplier.IsDeleted = false
	if err := s.supplierRepo.Create(supplier); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeySuppliers)
	return nil
}

func (s *supplierService) GetAllSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if s.cache.Get(cache.KeySuppliers, &suppliers) {
		return suppliers, nil
	}

	suppliers, err := s.supplierRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeySuppliers, suppliers)
	return suppliers, nil
}

func (s *supplierService) UpdateSupplier(id uint, input *models.Supplier) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Supplier")
		}
		return nil, err
	}

	supplier.Name = input.Name
	supplier.Contact = input.Contact
	supplier.Address = input.Address

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeySuppliers)
	return supplier, nil
}

func (s *supplierService) DeleteSuppliers(ids []uint) error {
	if err := s.supplierRepo.DeleteByIDs(ids); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeySuppliers)
	return nil
}
