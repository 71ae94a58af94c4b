package services

import (
	"errors"
	"testing"

	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"
)

func TestUpdateUnitChecksNameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(repository.NewUnitRepository(db), nil)

	kg := &models.Unit{Name: "kg"}
	box := &models.Unit{Name: "박스"}
	if err := db.Create(kg).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(box).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.UpdateUnit(box.ID, &models.Unit{Name: "kg"})
	if !errors.Is(err, httperr.ErrAlreadyExists) {
		t.Fatalf("expected already_exists, got %v", err)
	}

	// Renaming to itself is fine
	updated, err := svc.UpdateUnit(box.ID, &models.Unit{Name: "박스", Description: "대형"})
	if err != nil {
		t.Fatalf("self-rename failed: %v", err)
	}
	if updated.Description != "대형" {
		t.Errorf("expected description to update, got %q", updated.Description)
	}
}

func TestUpdateUnitNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUnitService(repository.NewUnitRepository(db), nil)

	_, err := svc.UpdateUnit(42, &models.Unit{Name: "kg"})
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
