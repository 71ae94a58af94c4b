package services

import (
	"errors"

	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

// Find-or-create helpers shared by order update and spreadsheet ingestion.
// They must run against the caller's transaction (pass repos bound via
// WithTx) so that rows created for one order are visible to the next and are
// rolled back with the batch on failure.

func findOrCreateSupplier(repo repository.SupplierRepository, name, contact string) (*models.Supplier, error) {
	supplier, err := repo.GetActiveByName(name)
	if err == nil {
		return supplier, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	supplier = &models.Supplier{Name: name, Contact: contact}
	if err := repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func findOrCreateItem(repo repository.ItemRepository, name string, price float64, vatExcluded bool) (*models.Item, error) {
	item, err := repo.GetActiveByName(name)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item = &models.Item{Name: name, Price: price, VatExcluded: vatExcluded}
	if vatExcluded {
		item.Description = models.VatExcludedMarker
	}
	if err := repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func findOrCreateUnit(repo repository.UnitRepository, name string) (*models.Unit, error) {
	if name == "" {
		name = models.DefaultUnitName
	}

	unit, err := repo.GetActiveByName(name)
	if err == nil {
		return unit, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	unit = &models.Unit{Name: name}
	if err := repo.Create(unit); err != nil {
		return nil, err
	}
	return unit, nil
}
