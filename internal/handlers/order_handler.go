package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"samsip_orders/internal/httperr"
	"samsip_orders/internal/logger"
	"samsip_orders/internal/models"
	"samsip_orders/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	orderService  services.OrderService
	importService services.ImportService
	logg          *logrus.Logger
}

func NewOrderHandler(orderService services.OrderService, importService services.ImportService, logg *logrus.Logger) *OrderHandler {
	return &OrderHandler{orderService: orderService, importService: importService, logg: logg}
}

type orderCreateRequest struct {
	SupplierID      uint    `json:"supplier_id" binding:"required"`
	ItemID          uint    `json:"item_id" binding:"required"`
	UnitID          uint    `json:"unit_id" binding:"required"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
	PaymentSchedule string  `json:"payment_schedule"`
	PurchaseCycle   string  `json:"purchase_cycle"`
	PaymentMethod   string  `json:"payment_method"`
	Client          string  `json:"client"`
	Notes           string  `json:"notes"`
	Date            string  `json:"date"`
}

type orderUpdateRequest struct {
	SupplierName    string  `json:"supplier_name" binding:"required"`
	ItemName        string  `json:"item_name" binding:"required"`
	UnitName        string  `json:"unit_name" binding:"required"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	Total           float64 `json:"total"`
	PaymentSchedule string  `json:"payment_schedule"`
	PurchaseCycle   string  `json:"purchase_cycle"`
	PaymentMethod   string  `json:"payment_method"`
	Client          string  `json:"client"`
	Notes           string  `json:"notes"`
	Date            string  `json:"date"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req orderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	order := &models.Order{
		Date:            req.Date,
		SupplierID:      req.SupplierID,
		ItemID:          req.ItemID,
		UnitID:          req.UnitID,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Total:           req.Total,
		PaymentSchedule: req.PaymentSchedule,
		PurchaseCycle:   req.PurchaseCycle,
		PaymentMethod:   req.PaymentMethod,
		Client:          req.Client,
		Notes:           req.Notes,
	}
	if err := h.orderService.CreateOrder(order); err != nil {
		logger.LogError(h.logg, "order_handler", "Create", "CreateOrder", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		logger.LogError(h.logg, "order_handler", "List", "GetAllOrders", nil, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req orderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrder(uint(id), &services.OrderUpdate{
		SupplierName:    req.SupplierName,
		ItemName:        req.ItemName,
		UnitName:        req.UnitName,
		Quantity:        req.Quantity,
		Price:           req.Price,
		Total:           req.Total,
		PaymentSchedule: req.PaymentSchedule,
		PurchaseCycle:   req.PurchaseCycle,
		PaymentMethod:   req.PaymentMethod,
		Client:          req.Client,
		Notes:           req.Notes,
		Date:            req.Date,
	})
	if err != nil {
		logger.LogError(h.logg, "order_handler", "Update", "UpdateOrder", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) BulkDelete(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.orderService.DeleteOrders(ids); err != nil {
		logger.LogError(h.logg, "order_handler", "BulkDelete", "DeleteOrders", ids, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Orders deleted successfully"})
}

// Upload is registered as POST /orders/:id because gin cannot mix a static
// "upload" segment with the :id wildcard used by approve/reject. Anything
// other than "upload" in that position is not a route.
func (h *OrderHandler) Upload(c *gin.Context) {
	if c.Param("id") != "upload" {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	defer file.Close()

	count, err := h.importService.ImportOrders(fileHeader.Filename, file)
	if err != nil {
		logger.LogError(h.logg, "order_handler", "Upload", "ImportOrders", fileHeader.Filename, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Successfully uploaded %d orders", count)})
}

type approvalRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *OrderHandler) Approve(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req approvalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.orderService.ApproveOrder(uint(id), req.Password); err != nil {
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order approved successfully"})
}

type rejectionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *OrderHandler) Reject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req rejectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.orderService.RejectOrder(uint(id), req.Reason); err != nil {
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order rejected successfully"})
}
