package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/registry"
	"restopanel/internal/service"
)

type StaffHandler struct {
	svc service.StaffService
	reg *registry.Registry
}

func NewStaffHandler(svc service.StaffService, reg *registry.Registry) *StaffHandler {
	return &StaffHandler{svc: svc, reg: reg}
}

func (h *StaffHandler) Add(c *gin.Context) {
	var req dto.AddStaffRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Add(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(req.RestaurantID)
	c.JSON(http.StatusCreated, resp)
}

func (h *StaffHandler) List(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("restaurantId query parameter is required"))
		return
	}
	includeInactive := c.Query("includeInactive") == "true"
	resp, err := h.svc.ListByRestaurant(c.Request.Context(), restaurantID, includeInactive)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StaffHandler) Update(c *gin.Context) {
	var req dto.UpdateStaffRequest
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

// Deactivate soft-removes the staff member; the record stays for history.
func (h *StaffHandler) Deactivate(c *gin.Context) {
	if err := h.svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	h.reg.InvalidateAll()
	c.Status(http.StatusNoContent)
}

func (h *StaffHandler) Reactivate(c *gin.Context) {
	if err := h.svc.Reactivate(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	h.reg.InvalidateAll()
	c.Status(http.StatusNoContent)
}
