package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/datamode"
	"restopanel/internal/dto"
)

type DataModeHandler struct{ store *datamode.Store }

func NewDataModeHandler(store *datamode.Store) *DataModeHandler {
	return &DataModeHandler{store: store}
}

func (h *DataModeHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DataModeResponse{
		Mode:             string(h.store.Mode()),
		RemoteConfigured: h.store.RemoteConfigured(),
	})
}

func (h *DataModeHandler) Set(c *gin.Context) {
	var req dto.SetDataModeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.store.SetMode(c.Request.Context(), datamode.Mode(req.Mode)); err != nil {
		writeError(c, err)
		return
	}
	h.Get(c)
}

func (h *DataModeHandler) Toggle(c *gin.Context) {
	mode, err := h.store.Toggle(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataModeResponse{
		Mode:             string(mode),
		RemoteConfigured: h.store.RemoteConfigured(),
	})
}
