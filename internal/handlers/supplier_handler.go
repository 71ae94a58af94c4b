package handlers

import (
	"net/http"
	"strconv"

	"samsip_orders/internal/httperr"
	"samsip_orders/internal/logger"
	"samsip_orders/internal/models"
	"samsip_orders/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SupplierHandler struct {
	supplierService services.SupplierService
	logg            *logrus.Logger
}

func NewSupplierHandler(supplierService services.SupplierService, logg *logrus.Logger) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, logg: logg}
}

type supplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	supplier := &models.Supplier{Name: req.Name, Contact: req.Contact, Address: req.Address}
	if err := h.supplierService.CreateSupplier(supplier); err != nil {
		logger.LogError(h.logg, "supplier_handler", "Create", "CreateSupplier", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.supplierService.GetAllSuppliers()
	if err != nil {
		logger.LogError(h.logg, "supplier_handler", "List", "GetAllSuppliers", nil, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(uint(id), &models.Supplier{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
	})
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) BulkDelete(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.supplierService.DeleteSuppliers(ids); err != nil {
		logger.LogError(h.logg, "supplier_handler", "BulkDelete", "DeleteSuppliers", ids, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Suppliers deleted successfully"})
}
