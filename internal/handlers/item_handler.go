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

type ItemHandler struct {
	itemService services.ItemService
	logg        *logrus.Logger
}

func NewItemHandler(itemService services.ItemService, logg *logrus.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, logg: logg}
}

type itemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	VatExcluded bool    `json:"vat_excluded"`
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		VatExcluded: req.VatExcluded,
	}
	if err := h.itemService.CreateItem(item); err != nil {
		logger.LogError(h.logg, "item_handler", "Create", "CreateItem", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.GetAllItems()
	if err != nil {
		logger.LogError(h.logg, "item_handler", "List", "GetAllItems", nil, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	item, err := h.itemService.UpdateItem(uint(id), &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		VatExcluded: req.VatExcluded,
	})
	if err != nil {
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) BulkDelete(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.itemService.DeleteItems(ids); err != nil {
		logger.LogError(h.logg, "item_handler", "BulkDelete", "DeleteItems", ids, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Items deleted successfully"})
}
