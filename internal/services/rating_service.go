package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lichess-gateway/config"
	"lichess-gateway/internal/lichess"
	"lichess-gateway/internal/ratings"
	"lichess-gateway/pkg/logger"
)

// RatingService proxies and reshapes the upstream rating endpoints.
type RatingService struct {
	client     *lichess.Client
	log        *logger.Logger
	topLimit   int
	windowDays int
	workers    int
	now        func() time.Time
}

func NewRatingService(client *lichess.Client, cfg *config.Config, l *logger.Logger) *RatingService {
	workers := cfg.CSVWorkers
	if workers < 1 {
		workers = 1
	}
	return &RatingService{
		client:     client,
		log:        l,
		topLimit:   cfg.TopPlayersLimit,
		windowDays: cfg.HistoryWindowDays,
		workers:    workers,
		now:        time.Now,
	}
}

// TopClassical returns the upstream top-players body unchanged.
func (s *RatingService) TopClassical(ctx context.Context) (json.RawMessage, error) {
	return s.client.TopClassicalPlayers(ctx, s.topLimit)
}

// History returns the player's per-mode rating history filtered to the
// configured window. Points keep the upstream [year, month, day, rating]
// quadruple shape, month still 0-based.
func (s *RatingService) History(ctx context.Context, username string) ([]lichess.ModeHistory, error) {
	raw, err := s.client.RatingHistory(ctx, username)
	if err != nil {
		return nil, err
	}
	histories, err := lichess.ParseHistories(raw)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := make([]lichess.ModeHistory, 0, len(histories))
	for _, mode := range histories {
		filtered = append(filtered, lichess.ModeHistory{
			Name:   mode.Name,
			Points: ratings.FilterRecent(mode.Points, now, s.windowDays),
		})
	}
	return filtered, nil
}

// ExportCSV builds the rating-history export for the top classical players.
// Player histories are fetched with bounded concurrency; a failing player is
// skipped and the remaining rows are still returned. The export lives only
// in memory, no file is written.
func (s *RatingService) ExportCSV(ctx context.Context) (string, []byte, error) {
	raw, err := s.client.TopClassicalPlayers(ctx, s.topLimit)
	if err != nil {
		return "", nil, err
	}
	top, err := lichess.ParseTopList(raw)
	if err != nil {
		return "", nil, err
	}

	now := s.now()
	perPlayer := make([][][]string, len(top.Users))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, player := range top.Users {
		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			historyRaw, err := s.client.RatingHistory(ctx, username)
			if err != nil {
				s.log.Warnf("csv export: skipping %s: %s", username, err)
				return
			}
			histories, err := lichess.ParseHistories(historyRaw)
			if err != nil {
				s.log.Warnf("csv export: skipping %s: %s", username, err)
				return
			}
			perPlayer[i] = ratings.CSVRows(username, histories, now, s.windowDays)
		}(i, player.Username)
	}
	wg.Wait()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ratings.CSVHeader); err != nil {
		return "", nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rows := range perPlayer {
		if err := w.WriteAll(rows); err != nil {
			return "", nil, fmt.Errorf("write csv rows: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", nil, fmt.Errorf("flush csv: %w", err)
	}

	filename := fmt.Sprintf("rating_history-%s.csv", now.Format("2006-01-02_15_04_05"))
	return filename, buf.Bytes(), nil
}
