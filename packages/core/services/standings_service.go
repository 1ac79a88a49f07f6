package services

import (
	"context"
	"log/slog"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// StandingsService maintains the per-edition standings table.
type StandingsService struct {
	ledger store.Ledger
	log    *slog.Logger
}

func NewStandingsService(ledger store.Ledger, log *slog.Logger) *StandingsService {
	return &StandingsService{ledger: ledger, log: logger.OrDefault(log)}
}

// WithTx returns a copy bound to tx.
func (s *StandingsService) WithTx(tx store.Ledger) *StandingsService {
	c := *s
	c.ledger = tx
	return &c
}

// ApplyResult creates the (edition, player) row or increments it: one more match played,
// one more win when won, pointsDelta added without clamping.
func (s *StandingsService) ApplyResult(ctx context.Context, editionID uint, player string, pointsDelta int, won bool) error {
	err := s.ledger.UpsertStandingsRow(ctx, editionID, player, pointsDelta, won)
	return storeError(s.log, "standings.apply", err, "edition_id", editionID, "player", player)
}

// Current returns the standings of the latest edition, best first.
func (s *StandingsService) Current(ctx context.Context) (*models.StandingsResponse, error) {
	const op = "standings.current"

	edition, err := s.ledger.GetLatestEdition(ctx)
	if err != nil {
		return nil, storeError(s.log, op, err)
	}
	if edition == nil {
		return &models.StandingsResponse{Rows: []models.StandingsRow{}}, nil
	}
	return s.ForEdition(ctx, edition.ID)
}

func (s *StandingsService) ForEdition(ctx context.Context, editionID uint) (*models.StandingsResponse, error) {
	rows, err := s.ledger.ListStandings(ctx, editionID)
	if err != nil {
		return nil, storeError(s.log, "standings.list", err, "edition_id", editionID)
	}
	id := editionID
	return &models.StandingsResponse{EditionID: &id, Rows: rows}, nil
}

// Reset deletes the standings of one edition, or of every edition when editionID is nil.
func (s *StandingsService) Reset(ctx context.Context, editionID *uint) (int64, error) {
	n, err := s.ledger.ResetStandings(ctx, editionID)
	if err != nil {
		return 0, storeError(s.log, "standings.reset", err)
	}
	s.log.Info("standings reset", "edition_id", editionID, "rows", n)
	return n, nil
}
