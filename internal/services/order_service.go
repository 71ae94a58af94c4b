package services

import (
	"errors"
	"time"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

// OrderUpdate carries the mutable order fields. Supplier, item and unit are
// addressed by name and created on the fly when absent.
type OrderUpdate struct {
	SupplierName    string
	ItemName        string
	UnitName        string
	Quantity        float64
	Price           float64
	Total           float64
	PaymentSchedule string
	PurchaseCycle   string
	PaymentMethod   string
	Client          string
	Notes           string
	Date            string
}

type OrderService interface {
	CreateOrder(order *models.Order) error
	GetAllOrders() ([]models.Order, error)
	UpdateOrder(id uint, update *OrderUpdate) (*models.Order, error)
	DeleteOrders(ids []uint) error
	ApproveOrder(id uint, password string) error
	RejectOrder(id uint, reason string) error
}

type orderService struct {
	db           *gorm.DB
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	itemRepo     repository.ItemRepository
	unitRepo     repository.UnitRepository
	policy       *ApprovalPolicy
	cache        *cache.Client
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	itemRepo repository.ItemRepository,
	unitRepo repository.UnitRepository,
	policy *ApprovalPolicy,
	cacheClient *cache.Client,
) OrderService {
	return &orderService{
		db:           db,
		orderRepo:    orderRepo,
		supplierRepo: supplierRepo,
		itemRepo:     itemRepo,
		unitRepo:     unitRepo,
		policy:       policy,
		cache:        cacheClient,
	}
}

func (s *orderService) CreateOrder(order *models.Order) error {
	order.IsDeleted = false
	return s.orderRepo.Create(order)
}

// GetAllOrders returns non-deleted orders with relations loaded. A relation
// whose row is gone or soft-deleted is replaced with the placeholder record
// in the result only; nothing is written back.
func (s *orderService) GetAllOrders() ([]models.Order, error) {
	orders, err := s.orderRepo.GetAllActive()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Supplier == nil || orders[i].Supplier.IsDeleted {
			orders[i].Supplier = models.DeletedSupplier()
		}
		if orders[i].Item == nil || orders[i].Item.IsDeleted {
			orders[i].Item = models.DeletedItem()
		}
		if orders[i].Unit == nil || orders[i].Unit.IsDeleted {
			orders[i].Unit = models.DeletedUnit()
		}
	}
	return orders, nil
}

func (s *orderService) UpdateOrder(id uint, update *OrderUpdate) (*models.Order, error) {
	var updated *models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)

		order, err := orderRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.NotFound("Order")
			}
			return err
		}

		supplier, err := findOrCreateSupplier(s.supplierRepo.WithTx(tx), update.SupplierName, "")
		if err != nil {
			return err
		}
		item, err := findOrCreateItem(s.itemRepo.WithTx(tx), update.ItemName, 0, false)
		if err != nil {
			return err
		}
		unit, err := findOrCreateUnit(s.unitRepo.WithTx(tx), update.UnitName)
		if err != nil {
			return err
		}

		order.SupplierID = supplier.ID
		order.ItemID = item.ID
		order.UnitID = unit.ID
		order.Quantity = update.Quantity
		order.Price = update.Price
		order.Total = update.Total
		order.PaymentSchedule = update.PaymentSchedule
		order.PurchaseCycle = update.PurchaseCycle
		order.Client = update.Client
		order.Notes = update.Notes
		order.Date = update.Date
		if update.PaymentMethod != "" {
			order.PaymentMethod = update.PaymentMethod
		}

		if err := orderRepo.Update(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The update may have created reference rows.
	s.cache.Invalidate(cache.KeySuppliers, cache.KeyItems, cache.KeyUnits)
	return updated, nil
}

func (s *orderService) DeleteOrders(ids []uint) error {
	return s.orderRepo.DeleteByIDs(ids)
}

func (s *orderService) ApproveOrder(id uint, password string) error {
	if err := s.policy.Authorize(password); err != nil {
		return err
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Order")
		}
		return err
	}

	order.ApprovalStatus = string(models.OrderApproved)
	order.ApprovedBy = s.policy.ApproverName
	order.ApprovedAt = time.Now().Format(models.ApprovedAtLayout)
	return s.orderRepo.Update(order)
}

func (s *orderService) RejectOrder(id uint, reason string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Order")
		}
		return err
	}

	order.ApprovalStatus = string(models.OrderRejected)
	order.RejectionReason = reason
	order.ApprovedAt = time.Now().Format(models.ApprovedAtLayout)
	return s.orderRepo.Update(order)
}
