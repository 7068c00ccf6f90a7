package ratings

import (
	"errors"
	"testing"
	"time"

	"lichess-gateway/internal/lichess"
	apperrors "lichess-gateway/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func TestPointDate_NormalizesZeroBasedMonth(t *testing.T) {
	date, err := PointDate([]int{2025, 0, 31, 1500})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), date)
}

func TestPointDate_RejectsImpossibleDates(t *testing.T) {
	cases := [][]int{
		{2025, 1, 30, 1500},  // February 30
		{2025, 13, 1, 1500},  // month out of range
		{2025, 3, 0, 1500},   // day zero
		{2025, 5, 99, 1500},  // day out of range
		{2025, 5},            // short quadruple
	}
	for _, quad := range cases {
		_, err := PointDate(quad)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDatePoint, "quad %v", quad)
	}
}

func TestFilterRecent_WindowBoundaries(t *testing.T) {
	// now is 2025-06-15; a 30 day window starts on 2025-05-16.
	exactly30 := []int{2025, 4, 16, 1490}
	days31 := []int{2025, 4, 15, 1480}
	inside := []int{2025, 5, 1, 1500}
	future := []int{2025, 5, 20, 1510}

	kept := FilterRecent([][]int{days31, exactly30, inside, future}, now, 30)

	assert.Equal(t, [][]int{exactly30, inside}, kept)
}

func TestFilterRecent_SkipsMalformedPointsOnly(t *testing.T) {
	good := []int{2025, 5, 10, 1505}
	kept := FilterRecent([][]int{{2025, 1, 30, 1400}, good, {2025}}, now, 30)
	assert.Equal(t, [][]int{good}, kept)
}

func TestFilterRecent_PreservesUpstreamOrder(t *testing.T) {
	first := []int{2025, 4, 20, 1460}
	second := []int{2025, 5, 2, 1470}
	third := []int{2025, 5, 14, 1480}
	kept := FilterRecent([][]int{first, second, third}, now, 30)
	assert.Equal(t, [][]int{first, second, third}, kept)
}

func TestCSVRows(t *testing.T) {
	histories := []lichess.ModeHistory{
		{Name: "Classical", Points: [][]int{
			{2025, 5, 1, 2850},
			{2025, 0, 2, 2800}, // outside the window
		}},
		{Name: "Blitz", Points: [][]int{
			{2025, 5, 3, 2700},
		}},
	}

	rows := CSVRows("magnus", histories, now, 30)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"magnus", "Classical", "2025/6/1", "2850"}, rows[0])
	assert.Equal(t, []string{"magnus", "Blitz", "2025/6/3", "2700"}, rows[1])
}

func TestCSVRows_ErrorsSentinel(t *testing.T) {
	_, err := PointDate([]int{2025, 1, 30, 1500})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidDatePoint))
}
