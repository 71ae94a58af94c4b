package repository

import (
	"samsip_orders/internal/models"

	"gorm.io/gorm"
)

type UnitRepository interface {
	Create(unit *models.Unit) error
	GetByID(id uint) (*models.Unit, error)
	GetActiveByName(name string) (*models.Unit, error)
	GetActiveByNameExcluding(name string, excludeID uint) (*models.Unit, error)
	GetAll() ([]models.Unit, error)
	Update(unit *models.Unit) error
	DeleteByIDs(ids []uint) error
	WithTx(tx *gorm.DB) UnitRepository
}

type unitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) WithTx(tx *gorm.DB) UnitRepository {
	return &unitRepository{db: tx}
}

func (r *unitRepository) Create(unit *models.Unit) error {
	return r.db.Create(unit).Error
}

func (r *unitRepository) GetByID(id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetActiveByName(name string) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.Where("name = ? AND is_deleted = ?", name, false).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// GetActiveByNameExcluding is the update-time conflict check: another
// non-deleted unit already holding the name.
func (r *unitRepository) GetActiveByNameExcluding(name string, excludeID uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.Where("name = ? AND id <> ? AND is_deleted = ?", name, excludeID, false).First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) GetAll() ([]models.Unit, error) {
	var units []models.Unit
	err := r.db.Find(&units).Error
	return units, err
}

func (r *unitRepository) Update(unit *models.Unit) error {
	return r.db.Save(unit).Error
}

func (r *unitRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Unit{}, ids).Error
}
