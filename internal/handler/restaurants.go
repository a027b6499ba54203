package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/dto"
	"restopanel/internal/middleware"
	"restopanel/internal/registry"
	"restopanel/internal/service"
)

type RestaurantHandler struct {
	svc service.RestaurantService
	reg *registry.Registry
}

func NewRestaurantHandler(svc service.RestaurantService, reg *registry.Registry) *RestaurantHandler {
	return &RestaurantHandler{svc: svc, reg: reg}
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.svc.Create(c.Request.Context(), req, req.Images, claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMine returns the restaurants owned by the signed-in user; an owner
// without restaurants gets an empty list, never an error.
func (h *RestaurantHandler) ListMine(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.ListByOwner(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	var req dto.UpdateRestaurantRequest
	if !bindAndValidate(c, &req) {
		return
	}

	id := c.Param("id")
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(id)
	c.JSON(http.StatusOK, resp)
}

// Overview serves the cached operational snapshot the dashboard opens with:
// the restaurant, its floor plan and its staff in one response.
func (h *RestaurantHandler) Overview(c *gin.Context) {
	snap, err := h.reg.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *RestaurantHandler) PutMenuGroup(c *gin.Context) {
	var req dto.MenuGroupRequest
	if !bindAndValidate(c, &req) {
		return
	}

	id := c.Param("id")
	resp, err := h.svc.PutMenuGroup(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(id)
	c.JSON(http.StatusOK, resp)
}

func (h *RestaurantHandler) DeleteMenuGroup(c *gin.Context) {
	id := c.Param("id")
	resp, err := h.svc.RemoveMenuGroup(c.Request.Context(), id, c.Param("title"))
	if err != nil {
		writeError(c, err)
		return
	}
	h.reg.Invalidate(id)
	c.JSON(http.StatusOK, resp)
}
