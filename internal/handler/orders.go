package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/service"
)

type OrderHandler struct{ svc service.OrderService }

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) Open(c *gin.Context) {
	var req dto.OpenOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Open(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List returns every order for a restaurant, or only the open ticket for one
// table when tableId is given.
func (h *OrderHandler) List(c *gin.Context) {
	if tableID := c.Query("tableId"); tableID != "" {
		resp, err := h.svc.GetOpenByTable(c.Request.Context(), tableID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("restaurantId query parameter is required"))
		return
	}
	resp, err := h.svc.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) AddItem(c *gin.Context) {
	var req dto.AddOrderItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.AddItem(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) RemoveItem(c *gin.Context) {
	var req dto.RemoveOrderItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RemoveItem(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Pay(c *gin.Context) {
	resp, err := h.svc.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	resp, err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) BillingSummary(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("restaurantId query parameter is required"))
		return
	}
	resp, err := h.svc.BillingSummary(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
