package services

import (
	"context"
	"log/slog"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// PointsService manages the points awarded per finishing position.
type PointsService struct {
	ledger store.Ledger
	log    *slog.Logger
}

func NewPointsService(ledger store.Ledger, log *slog.Logger) *PointsService {
	return &PointsService{ledger: ledger, log: logger.OrDefault(log)}
}

func (s *PointsService) List(ctx context.Context) ([]models.PointsRule, error) {
	out, err := s.ledger.ListPointsRules(ctx)
	return out, storeError(s.log, "points.list", err)
}

func (s *PointsService) Upsert(ctx context.Context, req models.UpsertPointsRequest) ([]models.PointsRule, error) {
	const op = "points.upsert"

	if len(req.Rules) == 0 {
		return nil, validationError(op, "at least one rule is required")
	}
	for _, r := range req.Rules {
		if r.Kind != models.MatchKindPVP && r.Kind != models.MatchKindAllVsAll {
			return nil, validationError(op, "unknown match kind %q", r.Kind)
		}
		if r.Position < 1 || r.Points < 0 {
			return nil, validationError(op, "position must be at least 1 and points cannot be negative")
		}
	}

	var rules []models.PointsRule
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		for _, r := range req.Rules {
			rule := models.PointsRule{Kind: r.Kind, Position: r.Position, Points: r.Points}
			if err := tx.UpsertPointsRule(ctx, rule); err != nil {
				return storeError(s.log, op, err, "kind", r.Kind, "position", r.Position)
			}
		}
		var err error
		rules, err = tx.ListPointsRules(ctx)
		return storeError(s.log, op, err)
	})
	return rules, err
}
