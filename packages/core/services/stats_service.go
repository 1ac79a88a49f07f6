package services

import (
	"context"
	"log/slog"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

type StatsService struct {
	ledger store.Ledger
	log    *slog.Logger
	now    Clock
}

func NewStatsService(ledger store.Ledger, log *slog.Logger) *StatsService {
	return &StatsService{ledger: ledger, log: logger.OrDefault(log), now: systemClock}
}

// GetStats summarises the progress of the latest edition.
func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	const op = "stats.get"

	edition, err := s.ledger.GetLatestEdition(ctx)
	if err != nil {
		return nil, storeError(s.log, op, err)
	}
	if edition == nil {
		return &models.Stats{}, nil
	}

	total, played, err := s.ledger.CountMatches(ctx, edition.ID)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", edition.ID)
	}
	players, err := s.ledger.CountEditionPlayers(ctx, edition.ID)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", edition.ID)
	}

	stats := &models.Stats{
		TotalMatches:   total,
		PlayedMatches:  played,
		PendingMatches: total - played,
		ActivePlayers:  players,
		Edition: &models.EditionDates{
			ID:        edition.ID,
			StartDate: edition.StartDate,
			EndDate:   edition.EndDate,
		},
	}
	if total > 0 {
		stats.Progress = int(played * 100 / total)
	}

	span := edition.EndDate.Sub(edition.StartDate)
	elapsed := s.now().Sub(edition.StartDate)
	if span > 0 {
		stats.TemporalProgress = min(100, max(0, int(elapsed*100/span)))
	}
	return stats, nil
}
