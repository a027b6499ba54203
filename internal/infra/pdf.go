package infra

// pdf.go — day-sheet generation using go-pdf/fpdf. The day sheet is the
// printed service plan hosts keep at the stand: every reservation for one
// date, ordered by time, with party size, assigned table and status.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"restopanel/internal/model"
)

// truncateName shortens s to at most max runes, never splitting a multi-byte
// character.
func truncateName(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// GenerateDaySheetPDF writes the day sheet for one restaurant and date.
// storagePath is created if needed. Returns the absolute path of the file.
func GenerateDaySheetPDF(restaurant *model.Restaurant, day time.Time, reservations []model.Reservation, tables map[string]string, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("daysheet_%s_%s.pdf", restaurant.ID, day.Format("2006-01-02"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, restaurant.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Reservations — "+day.Format("Monday, January 2, 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Column layout ────────────────────────────────────────────────────────
	colTime := contentW * 0.11
	colConf := contentW * 0.17
	colName := contentW * 0.30
	colParty := contentW * 0.09
	colTable := contentW * 0.12
	colStatus := contentW * 0.21

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colTime, 6, "Time", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colConf, 6, "Conf. #", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colName, 6, "Guest", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colParty, 6, "Party", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colTable, 6, "Table", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colStatus, 6, "Status", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	covers := 0
	for _, r := range reservations {
		name := truncateName(r.CustomerName, 30)
		table := "—"
		if label, ok := tables[r.TableID]; ok && label != "" {
			table = label
		}
		pdf.CellFormat(colTime, 6, r.DateTime.Format("15:04"), "", 0, "L", false, 0, "")
		pdf.CellFormat(colConf, 6, r.ConfirmationNumber, "", 0, "L", false, 0, "")
		pdf.CellFormat(colName, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colParty, 6, fmt.Sprintf("%d", r.PartySize), "", 0, "C", false, 0, "")
		pdf.CellFormat(colTable, 6, table, "", 0, "C", false, 0, "")
		pdf.CellFormat(colStatus, 6, string(r.Status), "", 1, "L", false, 0, "")

		if r.SpecialRequests != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(colTime, 5, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW-colTime, 5, "Note: "+r.SpecialRequests, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		}
		if r.Status != model.ReservationCancelled && r.Status != model.ReservationNoShow {
			covers += r.PartySize
		}
	}

	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("%d reservations — %d expected covers", len(reservations), covers), "", 1, "L", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 4, "Generated "+time.Now().Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
