package services

import (
	"errors"
	"testing"

	"samsip_orders/internal/httperr"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T) (OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	policy, err := NewApprovalPolicy("admin", "이지은")
	if err != nil {
		t.Fatalf("failed to build policy: %v", err)
	}
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewSupplierRepository(db),
		repository.NewItemRepository(db),
		repository.NewUnitRepository(db),
		policy,
		nil,
	)
	return svc, db
}

func seedOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()
	supplier := &models.Supplier{Name: "농협"}
	item := &models.Item{Name: "쌀"}
	unit := &models.Unit{Name: "kg"}
	for _, row := range []interface{}{supplier, item, unit} {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed reference row: %v", err)
		}
	}
	order := &models.Order{
		Date:            "2024-03-05",
		SupplierID:      supplier.ID,
		ItemID:          item.ID,
		UnitID:          unit.ID,
		Quantity:        10,
		Price:           1200,
		Total:           12000,
		PaymentSchedule: "월말",
		PurchaseCycle:   "weekly",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}
	return order
}

func TestApproveOrderRejectsBadPassword(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	err := svc.ApproveOrder(order.ID, "wrong")
	if !errors.Is(err, httperr.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.ApprovalStatus != "" {
		t.Errorf("approval status should be unchanged, got %q", reloaded.ApprovalStatus)
	}
}

func TestApproveOrderStampsApprover(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	if err := svc.ApproveOrder(order.ID, "admin"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.ApprovalStatus != string(models.OrderApproved) {
		t.Errorf("expected approved, got %q", reloaded.ApprovalStatus)
	}
	if reloaded.ApprovedBy != "이지은" || reloaded.ApprovedAt == "" {
		t.Errorf("expected approver stamp, got by=%q at=%q", reloaded.ApprovedBy, reloaded.ApprovedAt)
	}
}

func TestApproveOrderNotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	err := svc.ApproveOrder(404, "admin")
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRejectOrderStoresReason(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	if err := svc.RejectOrder(order.ID, "수량 오류"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if reloaded.ApprovalStatus != string(models.OrderRejected) || reloaded.RejectionReason != "수량 오류" {
		t.Errorf("unexpected rejection state: %+v", reloaded)
	}
}

func TestGetAllOrdersSubstitutesPlaceholderForDeletedSupplier(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	// Hard-delete the supplier; the order keeps its id
	if err := db.Delete(&models.Supplier{}, order.SupplierID).Error; err != nil {
		t.Fatal(err)
	}

	orders, err := svc.GetAllOrders()
	if err != nil {
		t.Fatalf("GetAllOrders failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	supplier := orders[0].Supplier
	if supplier == nil || supplier.ID != 0 || supplier.Name != "삭제됨" {
		t.Errorf("expected placeholder supplier, got %+v", supplier)
	}
	if orders[0].Item == nil || orders[0].Item.Name != "쌀" {
		t.Errorf("intact relation should load normally, got %+v", orders[0].Item)
	}

	// The placeholder is response shaping only
	var persisted models.Order
	if err := db.First(&persisted, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if persisted.SupplierID != order.SupplierID {
		t.Errorf("supplier id must not be rewritten, got %d", persisted.SupplierID)
	}
}

func TestUpdateOrderFindsOrCreatesByName(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	updated, err := svc.UpdateOrder(order.ID, &OrderUpdate{
		SupplierName:    "새마을",
		ItemName:        "쌀",
		UnitName:        "kg",
		Quantity:        5,
		Price:           1000,
		Total:           5000,
		PaymentSchedule: "미정",
		PurchaseCycle:   "daily",
		Date:            "2024-04-01",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var supplier models.Supplier
	if err := db.Where("name = ?", "새마을").First(&supplier).Error; err != nil {
		t.Fatalf("expected supplier to be created: %v", err)
	}
	if updated.SupplierID != supplier.ID {
		t.Errorf("order should reference new supplier %d, got %d", supplier.ID, updated.SupplierID)
	}
	if updated.ItemID != order.ItemID {
		t.Errorf("existing item should be reused, got %d want %d", updated.ItemID, order.ItemID)
	}
	if updated.Quantity != 5 || updated.Date != "2024-04-01" {
		t.Errorf("fields not overwritten: %+v", updated)
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	svc, _ := newOrderService(t)

	_, err := svc.UpdateOrder(404, &OrderUpdate{SupplierName: "a", ItemName: "b", UnitName: "c"})
	if !errors.Is(err, httperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteOrdersSkipsMissingIDs(t *testing.T) {
	svc, db := newOrderService(t)
	order := seedOrder(t, db)

	if err := svc.DeleteOrders([]uint{order.ID, 9999}); err != nil {
		t.Fatalf("bulk delete should succeed, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("expected no orders left, got %d", count)
	}
}
