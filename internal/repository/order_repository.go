package repository

import (
	"samsip_orders/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	CreateBatch(orders []*models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetAllActive() ([]models.Order, error)
	Update(order *models.Order) error
	DeleteByIDs(ids []uint) error
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) CreateBatch(orders []*models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.Create(&orders).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetAllActive returns non-deleted orders with their supplier, item and unit
// eagerly loaded. Dangling references come back with a nil relation.
func (r *orderRepository) GetAllActive() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("is_deleted = ?", false).
		Preload("Supplier").
		Preload("Item").
		Preload("Unit").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Order{}, ids).Error
}
