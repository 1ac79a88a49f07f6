package services

import (
	"context"
	"log/slog"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// CategoryStatsService folds results into per-category aggregates.
type CategoryStatsService struct {
	ledger store.Ledger
	log    *slog.Logger
}

func NewCategoryStatsService(ledger store.Ledger, log *slog.Logger) *CategoryStatsService {
	return &CategoryStatsService{ledger: ledger, log: logger.OrDefault(log)}
}

func (s *CategoryStatsService) WithTx(tx store.Ledger) *CategoryStatsService {
	c := *s
	c.ledger = tx
	return &c
}

// Apply records one result of player in category for the edition. The category kind
// decides which metrics are aggregated; unknown categories only bump the counters.
func (s *CategoryStatsService) Apply(ctx context.Context, player string, category models.Category, editionID uint, result models.MatchResult) error {
	key := models.CategoryStatKey{Player: player, CategoryID: category.ID, EditionID: editionID}
	kind := category.ResolvedKind()

	err := s.ledger.UpsertCategoryStat(ctx, key, kind, result.Won, result.Metrics)
	return storeError(s.log, "category_stats.apply", err,
		"edition_id", editionID, "player", player, "category_id", category.ID, "kind", kind)
}
