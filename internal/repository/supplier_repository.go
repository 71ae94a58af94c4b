package repository

import (
	"samsip_orders/internal/models"

	"gorm.io/gorm"
)

type SupplierRepository interface {
	Create(supplier *models.Supplier) error
	GetByID(id uint) (*models.Supplier, error)
	GetActiveByName(name string) (*models.Supplier, error)
	GetAll() ([]models.Supplier, error)
	Update(supplier *models.Supplier) error
	DeleteByIDs(ids []uint) error
	WithTx(tx *gorm.DB) SupplierRepository
}

type supplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) WithTx(tx *gorm.DB) SupplierRepository {
	return &supplierRepository{db: tx}
}

func (r *supplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepository) GetByID(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetActiveByName matches non-deleted rows only; a name held by a deleted
// supplier is considered free.
func (r *supplierRepository) GetActiveByName(name string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.Where("name = ? AND is_deleted = ?", name, false).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepository) Update(supplier *models.Supplier) error {
	return r.db.Save(supplier).Error
}

// DeleteByIDs hard-deletes every listed id that exists; unknown ids are
// silently skipped.
func (r *supplierRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Supplier{}, ids).Error
}
