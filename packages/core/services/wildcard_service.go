package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

type WildcardService struct {
	ledger   store.Ledger
	notifier *notify.Notifier
	log      *slog.Logger
	now      Clock
}

func NewWildcardService(ledger store.Ledger, notifier *notify.Notifier, log *slog.Logger) *WildcardService {
	return &WildcardService{ledger: ledger, notifier: notifier, log: logger.OrDefault(log), now: systemClock}
}

func (s *WildcardService) List(ctx context.Context) ([]models.Wildcard, error) {
	out, err := s.ledger.ListWildcards(ctx)
	return out, storeError(s.log, "wildcards.list", err)
}

func (s *WildcardService) Create(ctx context.Context, req models.CreateWildcardRequest) (*models.Wildcard, error) {
	const op = "wildcards.create"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError(op, "name is required")
	}
	wc := models.Wildcard{Name: name, Description: req.Description, ImageURL: req.ImageURL}
	if err := s.ledger.CreateWildcard(ctx, &wc); err != nil {
		return nil, storeError(s.log, op, err)
	}
	return &wc, nil
}

func (s *WildcardService) PlayerGrants(ctx context.Context, player string) ([]models.WildcardGrant, error) {
	out, err := s.ledger.ListPlayerWildcards(ctx, player)
	return out, storeError(s.log, "wildcards.player", err, "player", player)
}

// Use marks one of the player's grants as used. A grant is used at most once.
func (s *WildcardService) Use(ctx context.Context, player string, grantID uint) (*models.WildcardGrant, error) {
	const op = "wildcards.use"

	var used *models.WildcardGrant
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		grant, err := tx.LockWildcardGrant(ctx, grantID)
		if err != nil {
			return lookupError(s.log, op, "wildcard grant", err, "grant_id", grantID)
		}
		if grant.PlayerNickname != player {
			return notFoundError(op, "wildcard grant not found")
		}
		if grant.Used {
			return validationError(op, "wildcard already used")
		}

		at := s.now().UTC()
		if err := tx.MarkWildcardUsed(ctx, grantID, at); err != nil {
			return storeError(s.log, op, err, "grant_id", grantID)
		}
		grant.Used = true
		grant.UsedAt = &at
		used = grant
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.EventWildcardUsed, map[string]any{
		"player":      player,
		"grant_id":    used.ID,
		"wildcard_id": used.WildcardID,
	})
	return used, nil
}
