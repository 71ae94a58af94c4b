package services

import (
	"errors"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

type ItemService interface {
	CreateItem(item *models.Item) error
	GetAllItems() ([]models.Item, error)
	UpdateItem(id uint, input *models.Item) (*models.Item, error)
	DeleteItems(ids []uint) error
}

type itemService struct {
	itemRepo repository.ItemRepository
	cache    *cache.Client
}

func NewItemService(itemRepo repository.ItemRepository, cacheClient *cache.Client) ItemService {
	return &itemService{itemRepo: itemRepo, cache: cacheClient}
}

func (s *itemService) CreateItem(item *models.Item) error {
	existing, err := s.itemRepo.GetActiveByName(item.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if existing != nil {
		return httperr.ErrAlreadyExists
	}

	item.IsDeleted = false
	if err := s.itemRepo.Create(item); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyItems)
	return nil
}

func (s *itemService) GetAllItems() ([]models.Item, error) {
	var items []models.Item
	if s.cache.Get(cache.KeyItems, &items) {
		return items, nil
	}

	items, err := s.itemRepo.GetAll()
	if err != nil {
		return nil, err
	}
	s.cache.Set(cache.KeyItems, items)
	return items, nil
}

func (s *itemService) UpdateItem(id uint, input *models.Item) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("Item")
		}
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.VatExcluded = input.VatExcluded

	if err := s.itemRepo.Update(item); err != nil {
		return nil, err
	}
	s.cache.Invalidate(cache.KeyItems)
	return item, nil
}

func (s *itemService) DeleteItems(ids []uint) error {
	if err := s.itemRepo.DeleteByIDs(ids); err != nil {
		return err
	}
	s.cache.Invalidate(cache.KeyItems)
	return nil
}
