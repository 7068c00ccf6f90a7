// Package ratings reshapes upstream rating histories: windowed filtering of
// rating points and flattening into CSV rows.
package ratings

import (
	"fmt"
	"strconv"
	"time"

	"lichess-gateway/internal/lichess"
	apperrors "lichess-gateway/pkg/errors"
)

// PointDate converts a [year, month, day, rating] quadruple into a calendar
// date. The upstream month is 0-based. A short quadruple or a date that does
// not exist on the calendar yields ErrInvalidDatePoint.
func PointDate(quad []int) (time.Time, error) {
	if len(quad) < 4 {
		return time.Time{}, fmt.Errorf("%w: want 4 values, got %d", apperrors.ErrInvalidDatePoint, len(quad))
	}
	year, month, day := quad[0], quad[1]+1, quad[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components, so round-trip the parts
	// to catch dates like February 30.
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %d-%d-%d", apperrors.ErrInvalidDatePoint, year, month, day)
	}
	return date, nil
}

// FilterRecent keeps the points whose date falls within [now-windowDays, now],
// both bounds taken as whole days. Upstream ordering is preserved. Malformed
// points are dropped individually and never abort the caller.
func FilterRecent(points [][]int, now time.Time, windowDays int) [][]int {
	start := truncateDay(now.AddDate(0, 0, -windowDays))
	end := truncateDay(now)

	var kept [][]int
	for _, quad := range points {
		date, err := PointDate(quad)
		if err != nil {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		kept = append(kept, quad)
	}
	return kept
}

// CSVHeader is the first row of every rating-history export.
var CSVHeader = []string{"Username", "Game Mode", "Date", "Rating 30 Days Ago"}

// CSVRows flattens one player's histories into export rows, one per
// (game mode, point) inside the window. Dates are rendered as YYYY/M/D
// without zero padding, matching the upstream calendar values.
func CSVRows(username string, histories []lichess.ModeHistory, now time.Time, windowDays int) [][]string {
	var rows [][]string
	for _, mode := range histories {
		for _, quad := range FilterRecent(mode.Points, now, windowDays) {
			date := fmt.Sprintf("%d/%d/%d", quad[0], quad[1]+1, quad[2])
			rows = append(rows, []string{username, mode.Name, date, strconv.Itoa(quad[3])})
		}
	}
	return rows
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
