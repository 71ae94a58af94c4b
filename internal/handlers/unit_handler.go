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

type UnitHandler struct {
	unitService services.UnitService
	logg        *logrus.Logger
}

func NewUnitHandler(unitService services.UnitService, logg *logrus.Logger) *UnitHandler {
	return &UnitHandler{unitService: unitService, logg: logg}
}

type unitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *UnitHandler) Create(c *gin.Context) {
	var req unitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	unit := &models.Unit{Name: req.Name, Description: req.Description}
	if err := h.unitService.CreateUnit(unit); err != nil {
		logger.LogError(h.logg, "unit_handler", "Create", "CreateUnit", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.unitService.GetAllUnits()
	if err != nil {
		logger.LogError(h.logg, "unit_handler", "List", "GetAllUnits", nil, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, units)
}

func (h *UnitHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return
	}

	var req unitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	unit, err := h.unitService.UpdateUnit(uint(id), &models.Unit{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		logger.LogError(h.logg, "unit_handler", "Update", "UpdateUnit", req, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, unit)
}

func (h *UnitHandler) BulkDelete(c *gin.Context) {
	var ids []uint
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.unitService.DeleteUnits(ids); err != nil {
		logger.LogError(h.logg, "unit_handler", "BulkDelete", "DeleteUnits", ids, err)
		c.JSON(httperr.Status(err), gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Units deleted successfully"})
}
