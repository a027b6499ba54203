package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/dto"
	"restopanel/internal/service"
)

type OnboardingHandler struct{ svc service.OnboardingService }

func NewOnboardingHandler(svc service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

func (h *OnboardingHandler) Start(c *gin.Context) {
	resp, err := h.svc.Start(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OnboardingHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) SubmitAccount(c *gin.Context) {
	var req dto.OnboardingAccountStep
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitAccount(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) SubmitRestaurant(c *gin.Context) {
	var req dto.OnboardingRestaurantStep
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitRestaurant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) SubmitDetails(c *gin.Context) {
	var req dto.OnboardingDetailsStep
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitDetails(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) SubmitImages(c *gin.Context) {
	var req dto.OnboardingImagesStep
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SubmitImages(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OnboardingHandler) Complete(c *gin.Context) {
	resp, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
