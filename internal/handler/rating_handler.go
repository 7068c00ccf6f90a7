package handler

import (
	"fmt"
	"net/http"

	"lichess-gateway/internal/services"
	"lichess-gateway/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// RatingHandler exposes the proxied Lichess rating endpoints.
type RatingHandler struct {
	service *services.RatingService
}

func NewRatingHandler(service *services.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// TopClassical proxies the upstream top-50 classical players list verbatim.
func (h *RatingHandler) TopClassical(c *gin.Context) {
	raw, err := h.service.TopClassical(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// RatingHistory returns the player's per-mode history filtered to the last
// 30 days.
func (h *RatingHandler) RatingHistory(c *gin.Context) {
	histories, err := h.service.History(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	resp := make([]httpdto.ModeHistoryResponse, 0, len(histories))
	for _, mode := range histories {
		points := mode.Points
		if points == nil {
			points = [][]int{}
		}
		resp = append(resp, httpdto.ModeHistoryResponse{Name: mode.Name, Points: points})
	}
	c.JSON(http.StatusOK, resp)
}

// ExportCSV streams the rating-history export as a CSV attachment. The file
// is built in memory and never touches disk.
func (h *RatingHandler) ExportCSV(c *gin.Context) {
	filename, data, err := h.service.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, httpdto.Failure)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
