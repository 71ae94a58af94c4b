package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"samsip_orders/internal/database"
	"samsip_orders/internal/logger"
	"samsip_orders/internal/models"
	"samsip_orders/internal/repository"
	"samsip_orders/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	url := fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(url, 1, 1)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	logg := logger.New("error")
	supplierRepo := repository.NewSupplierRepository(db)
	itemRepo := repository.NewItemRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	policy, err := services.NewApprovalPolicy("admin", "이지은")
	if err != nil {
		t.Fatalf("failed to build policy: %v", err)
	}

	supplierHandler := NewSupplierHandler(services.NewSupplierService(supplierRepo, nil), logg)
	orderService := services.NewOrderService(db, orderRepo, supplierRepo, itemRepo, unitRepo, policy, nil)
	importService := services.NewImportService(db, orderRepo, supplierRepo, itemRepo, unitRepo, nil, logg)
	orderHandler := NewOrderHandler(orderService, importService, logg)

	router := gin.New()
	suppliers := router.Group("/suppliers")
	{
		suppliers.POST("/", supplierHandler.Create)
		suppliers.GET("/", supplierHandler.List)
		suppliers.DELETE("/bulk-delete", supplierHandler.BulkDelete)
	}
	orders := router.Group("/orders")
	{
		orders.POST("/", orderHandler.Create)
		orders.GET("/", orderHandler.List)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/bulk-delete", orderHandler.BulkDelete)
		orders.POST("/:id", orderHandler.Upload)
		orders.POST("/:id/approve", orderHandler.Approve)
		orders.POST("/:id/reject", orderHandler.Reject)
	}
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateSupplierConflictReturnsAlreadyExists(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/suppliers/", gin.H{"name": "농협"})
	if w.Code != http.StatusOK {
		t.Fatalf("first create: expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/suppliers/", gin.H{"name": "농협"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already_exists") {
		t.Errorf("expected already_exists detail, got %s", w.Body.String())
	}
}

func TestApproveEndpointStatuses(t *testing.T) {
	router, db := newTestRouter(t)

	order := &models.Order{Date: "2024-03-05", SupplierID: 1, ItemID: 1, UnitID: 1}
	if err := db.Create(order).Error; err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/orders/%d/approve", order.ID), gin.H{"password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/orders/999/approve", gin.H{"password": "admin"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/orders/%d/approve", order.ID), gin.H{"password": "admin"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUploadRouteRejectsWrongExtension(t *testing.T) {
	router, _ := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "orders.csv")
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("date,supplier\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/orders/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for .csv upload, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), ".xlsx") {
		t.Errorf("expected extension error detail, got %s", w.Body.String())
	}
}

func TestUploadRouteUnknownActionIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/orders/123", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for POST /orders/123, got %d", w.Code)
	}
}
