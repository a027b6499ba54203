package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/registry"
	"restopanel/internal/service"
)

type TableHandler struct {
	svc service.TableService
	reg *registry.Registry
}

func NewTableHandler(svc service.TableService, reg *registry.Registry) *TableHandler {
	return &TableHandler{svc: svc, reg: reg}
}

func (h *TableHandler) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(req.RestaurantID)
	c.JSON(http.StatusCreated, resp)
}

func (h *TableHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TableHandler) List(c *gin.Context) {
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

func (h *TableHandler) Update(c *gin.Context) {
	var req dto.UpdateTableRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(resp.RestaurantID)
	c.JSON(http.StatusOK, resp)
}

// SetStatus drives the floor-plan state machine. Illegal moves (cleaning to
// occupied, for example) answer 409.
func (h *TableHandler) SetStatus(c *gin.Context) {
	var req dto.SetTableStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(resp.RestaurantID)
	c.JSON(http.StatusOK, resp)
}

func (h *TableHandler) Delete(c *gin.Context) {
	table, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), table.ID); err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(table.RestaurantID)
	c.Status(http.StatusNoContent)
}
