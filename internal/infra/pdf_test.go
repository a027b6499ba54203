package infra

import (
	"os"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopanel/internal/model"
)

func TestTruncateNameNeverSplitsRunes(t *testing.T) {
	short := "José Sørensen"
	assert.Equal(t, short, truncateName(short, 30))

	long := strings.Repeat("ø", 27) + "Søren"
	got := truncateName(long, 30)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 30, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestGenerateDaySheetPDFWritesFile(t *testing.T) {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	rest := &model.Restaurant{ID: "r-1", Name: "Bella Vista"}
	reservations := []model.Reservation{
		{
			ConfirmationNumber: "R4X7K2",
			CustomerName:       strings.Repeat("José Søren ", 5),
			PartySize:          4,
			DateTime:           day.Add(19 * time.Hour),
			Status:             model.ReservationConfirmed,
			SpecialRequests:    "window seat",
		},
	}

	path, err := GenerateDaySheetPDF(rest, day, reservations, map[string]string{}, t.TempDir())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
