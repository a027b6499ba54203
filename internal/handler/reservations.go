package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/service"
)

type ReservationHandler struct{ svc service.ReservationService }

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lookup resolves a reservation by its confirmation number.
func (h *ReservationHandler) Lookup(c *gin.Context) {
	number := c.Query("confirmation")
	if number == "" {
		c.JSON(http.StatusBadRequest, apierror.New("confirmation query parameter is required"))
		return
	}
	resp, err := h.svc.GetByConfirmation(c.Request.Context(), number)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) List(c *gin.Context) {
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

func (h *ReservationHandler) Update(c *gin.Context) {
	var req dto.UpdateReservationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) AssignTable(c *gin.Context) {
	var req dto.AssignTableRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.AssignTable(c.Request.Context(), c.Param("id"), req.TableID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ── Status transitions ───────────────────────────────────────────────────────
// Each endpoint routes through the reservation transition table; a disallowed
// change answers 409 with the current and requested status.

func (h *ReservationHandler) Confirm(c *gin.Context) {
	resp, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Seat(c *gin.Context) {
	resp, err := h.svc.Seat(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	resp, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	var req dto.CancelReservationRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	resp, err := h.svc.MarkNoShow(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
