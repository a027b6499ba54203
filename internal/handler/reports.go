package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restopanel/internal/apierror"
	"restopanel/internal/infra"
	"restopanel/internal/model"
	"restopanel/internal/repository"
)

type ReportHandler struct {
	repos       *repository.Store
	storagePath string
}

func NewReportHandler(repos *repository.Store, storagePath string) *ReportHandler {
	return &ReportHandler{repos: repos, storagePath: storagePath}
}

// DaySheet renders the printable reservation sheet for one restaurant and
// date (defaults to today) and streams the PDF back.
func (h *ReportHandler) DaySheet(c *gin.Context) {
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		c.JSON(http.StatusBadRequest, apierror.New("restaurantId query parameter is required"))
		return
	}

	day := time.Now().UTC()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("date must be formatted YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	repos, err := h.repos.Active()
	if err != nil {
		writeError(c, err)
		return
	}

	restaurant, err := repos.Restaurants.GetByID(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	all, err := repos.Reservations.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}
	tables, err := repos.Tables.ListByRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		writeError(c, err)
		return
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	var forDay []model.Reservation
	for _, r := range all {
		if !r.DateTime.Before(dayStart) && r.DateTime.Before(dayEnd) {
			forDay = append(forDay, r)
		}
	}

	labels := make(map[string]string, len(tables))
	for _, t := range tables {
		labels[t.ID] = t.TableNumber
	}

	path, err := infra.GenerateDaySheetPDF(restaurant, dayStart, forDay, labels, h.storagePath)
	if err != nil {
		writeError(c, err)
		return
	}
	c.FileAttachment(path, "daysheet_"+dayStart.Format("2006-01-02")+".pdf")
}
