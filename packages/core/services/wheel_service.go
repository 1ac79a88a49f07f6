package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"

	"github.com/google/uuid"
)

const drawHistoryLimit = 10

// Picker returns an index in [0, n).
type Picker func(n int) int

// WheelService is the reward draw engine and its administration.
type WheelService struct {
	ledger   store.Ledger
	notifier *notify.Notifier
	metrics  *metrics.Metrics
	log      *slog.Logger
	loc      *time.Location
	now      Clock
	pick     Picker
}

type WheelOption func(*WheelService)

// WithClock pins the time used for quota days and draw records.
func WithClock(now Clock) WheelOption {
	return func(s *WheelService) { s.now = now }
}

// WithPicker replaces the uniform random choice.
func WithPicker(pick Picker) WheelOption {
	return func(s *WheelService) { s.pick = pick }
}

// NewWheelService creates the engine. Calendar days are counted in loc (UTC when nil).
func NewWheelService(ledger store.Ledger, notifier *notify.Notifier, m *metrics.Metrics, log *slog.Logger, loc *time.Location, opts ...WheelOption) *WheelService {
	if loc == nil {
		loc = time.UTC
	}
	s := &WheelService{
		ledger:   ledger,
		notifier: notifier,
		metrics:  m,
		log:      logger.OrDefault(log),
		loc:      loc,
		now:      systemClock,
		pick:     rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draw spins the wheel for player. The checks run in order: wheel enabled, quota left,
// an active item to draw. The effect and the draw record commit together.
func (s *WheelService) Draw(ctx context.Context, player string) (*models.DrawOutcome, error) {
	const op = "wheel.draw"

	player = strings.TrimSpace(player)
	if player == "" {
		return nil, validationError(op, "player is required")
	}

	now := s.now().In(s.loc)
	today := now.Format(time.DateOnly)

	var outcome *models.DrawOutcome
	var granted *models.WildcardGrant
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		cfg, err := tx.GetRewardConfig(ctx)
		if err != nil {
			return storeError(s.log, op, err, "player", player)
		}
		if !cfg.Enabled {
			return validationError(op, "the wheel is disabled")
		}

		drawn, err := tx.CountDrawsToday(ctx, player, today)
		if err != nil {
			return storeError(s.log, op, err, "player", player)
		}
		remaining := cfg.MaxDrawsPerDay - int(drawn)
		if remaining <= 0 {
			return validationError(op, "daily draw limit of %d reached", cfg.MaxDrawsPerDay)
		}

		items, err := tx.ListRewardItems(ctx, true)
		if err != nil {
			return storeError(s.log, op, err, "player", player)
		}
		if len(items) == 0 {
			return validationError(op, "no active rewards available")
		}

		item := items[s.pick(len(items))]
		record := models.DrawRecord{
			PublicID:       uuid.NewString(),
			PlayerNickname: player,
			DrawDate:       today,
			DailySeq:       int(drawn) + 1,
			DrawTime:       now.Format(time.TimeOnly),
			ItemID:         item.ID,
			ItemName:       item.Name,
			ItemKind:       item.Kind,
		}

		switch item.Kind {
		case models.RewardWildcard:
			if item.WildcardID != nil {
				granted, err = tx.UpsertWildcardGrant(ctx, player, *item.WildcardID, now.UTC())
				if err != nil {
					return storeError(s.log, op, err, "player", player, "wildcard_id", *item.WildcardID)
				}
			}
		case models.RewardPoints:
			delta := ParsePoints(item.DisplayText)
			record.PointsDelta = &delta
			if err := s.applyPoints(ctx, tx, player, delta); err != nil {
				return err
			}
		}

		if err := tx.InsertDrawRecord(ctx, &record); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return conflictError(op, "another draw is in progress, try again")
			}
			return storeError(s.log, op, err, "player", player)
		}

		outcome = buildOutcome(record, item, max(0, remaining-1))
		return nil
	})
	if err != nil {
		s.metrics.Draw(drawRejection(err))
		return nil, err
	}

	s.metrics.Draw(string(outcome.Kind))
	if granted != nil {
		s.notifier.Notify(ctx, notify.EventWildcardGranted, map[string]any{
			"player":      player,
			"wildcard_id": granted.WildcardID,
			"grant_id":    granted.ID,
			"source":      "wheel",
		})
	}
	return outcome, nil
}

// applyPoints moves the player's points in the latest edition, never below zero.
func (s *WheelService) applyPoints(ctx context.Context, tx store.Ledger, player string, delta int) error {
	if delta == 0 {
		return nil
	}
	edition, err := tx.GetLatestEdition(ctx)
	if err != nil {
		return storeError(s.log, "wheel.points", err, "player", player)
	}
	if edition == nil {
		return nil
	}
	total, err := tx.AddPointsClamped(ctx, edition.ID, player, delta)
	if err != nil {
		return storeError(s.log, "wheel.points", err, "player", player, "edition_id", edition.ID)
	}
	s.log.Debug("wheel points applied", "player", player, "edition_id", edition.ID, "delta", delta, "points", total)
	return nil
}

func buildOutcome(record models.DrawRecord, item models.RewardItem, remaining int) *models.DrawOutcome {
	out := &models.DrawOutcome{
		DrawID:         record.PublicID,
		Item:           item,
		Kind:           item.Kind,
		Name:           item.Name,
		Description:    item.Name,
		DisplayText:    item.DisplayText,
		PointsDelta:    record.PointsDelta,
		QuotaRemaining: remaining,
	}
	if item.Kind == models.RewardWildcard && item.Wildcard != nil {
		out.Name = item.Wildcard.Name
		out.ImageURL = item.Wildcard.ImageURL
	}
	return out
}

func drawRejection(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "rejected"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

// ParsePoints reads a signed integer prefix such as "+10" or "-5 points". Text without
// a leading number yields 0.
func ParsePoints(text string) int {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0
	}
	return n
}

// History returns the player's latest draws, newest first.
func (s *WheelService) History(ctx context.Context, player string) ([]models.DrawRecord, error) {
	out, err := s.ledger.ListDraws(ctx, player, drawHistoryLimit)
	return out, storeError(s.log, "wheel.history", err, "player", player)
}

func (s *WheelService) Stats(ctx context.Context, player string) (*models.DrawStats, error) {
	const op = "wheel.stats"

	cfg, err := s.ledger.GetRewardConfig(ctx)
	if err != nil {
		return nil, storeError(s.log, op, err)
	}
	today := s.now().In(s.loc).Format(time.DateOnly)
	drawn, err := s.ledger.CountDrawsToday(ctx, player, today)
	if err != nil {
		return nil, storeError(s.log, op, err, "player", player)
	}
	total, err := s.ledger.CountDraws(ctx, player)
	if err != nil {
		return nil, storeError(s.log, op, err, "player", player)
	}
	return &models.DrawStats{
		DrawsToday:     drawn,
		MaxDrawsPerDay: cfg.MaxDrawsPerDay,
		Remaining:      max(0, cfg.MaxDrawsPerDay-int(drawn)),
		TotalDraws:     total,
	}, nil
}

func (s *WheelService) ListItems(ctx context.Context, activeOnly bool) ([]models.RewardItem, error) {
	out, err := s.ledger.ListRewardItems(ctx, activeOnly)
	return out, storeError(s.log, "wheel.items", err)
}

func (s *WheelService) CreateItem(ctx context.Context, req models.RewardItemRequest) (*models.RewardItem, error) {
	const op = "wheel.create_item"

	item := models.RewardItem{Name: strings.TrimSpace(req.Name), Kind: req.Kind, Active: true, Probability: req.Probability}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := s.resolveItemPayload(ctx, op, &item, req); err != nil {
		return nil, err
	}
	if err := s.ledger.CreateRewardItem(ctx, &item); err != nil {
		return nil, storeError(s.log, op, err)
	}
	return &item, nil
}

func (s *WheelService) UpdateItem(ctx context.Context, id uint, req models.RewardItemRequest) (*models.RewardItem, error) {
	const op = "wheel.update_item"

	var updated *models.RewardItem
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		item, err := tx.GetRewardItem(ctx, id)
		if err != nil {
			return lookupError(s.log, op, "reward item", err)
		}
		item.Name = strings.TrimSpace(req.Name)
		item.Kind = req.Kind
		item.WildcardID = nil
		if req.Probability != nil {
			item.Probability = req.Probability
		}
		if req.Active != nil {
			item.Active = *req.Active
		}
		if err := s.resolveItemPayload(ctx, op, item, req); err != nil {
			return err
		}

		fields := models.Fields{
			"name":         item.Name,
			"kind":         item.Kind,
			"wildcard_id":  item.WildcardID,
			"display_text": item.DisplayText,
			"probability":  item.Probability,
			"active":       item.Active,
		}
		if err := tx.Update(ctx, &models.RewardItem{}, id, fields); err != nil {
			return storeError(s.log, op, err, "item_id", id)
		}
		updated, err = tx.GetRewardItem(ctx, id)
		return storeError(s.log, op, err, "item_id", id)
	})
	return updated, err
}

// resolveItemPayload fills DisplayText and WildcardID from the request according to kind.
func (s *WheelService) resolveItemPayload(ctx context.Context, op string, item *models.RewardItem, req models.RewardItemRequest) error {
	if item.Name == "" {
		return validationError(op, "name is required")
	}
	switch req.Kind {
	case models.RewardPoints:
		switch {
		case req.Points != nil:
			item.DisplayText = models.PointsText(*req.Points)
		case ParsePoints(req.Text) != 0:
			item.DisplayText = models.PointsText(ParsePoints(req.Text))
		default:
			return validationError(op, "points items need a non-zero amount")
		}
	case models.RewardWildcard:
		if req.WildcardID == nil {
			return validationError(op, "wildcard items need a wildcard_id")
		}
		wc, err := s.ledger.GetWildcard(ctx, *req.WildcardID)
		if err != nil {
			return lookupError(s.log, op, "wildcard", err)
		}
		item.WildcardID = &wc.ID
		item.DisplayText = req.Text
		if item.DisplayText == "" {
			item.DisplayText = wc.Name
		}
	case models.RewardCosmetic:
		item.DisplayText = req.Text
		if item.DisplayText == "" {
			item.DisplayText = item.Name
		}
	default:
		return validationError(op, "unknown reward kind %q", req.Kind)
	}
	return nil
}

func (s *WheelService) DeleteItem(ctx context.Context, id uint) error {
	err := s.ledger.DeleteRewardItem(ctx, id)
	if err != nil {
		return lookupError(s.log, "wheel.delete_item", "reward item", err)
	}
	return nil
}

func (s *WheelService) Config(ctx context.Context) (models.RewardConfig, error) {
	cfg, err := s.ledger.GetRewardConfig(ctx)
	return cfg, storeError(s.log, "wheel.config", err)
}

func (s *WheelService) UpdateConfig(ctx context.Context, req models.RewardConfigRequest) (models.RewardConfig, error) {
	const op = "wheel.update_config"

	fields := models.Fields{}
	if req.Enabled != nil {
		fields.Set("enabled", *req.Enabled)
	}
	if req.MaxDrawsPerDay != nil {
		if *req.MaxDrawsPerDay < 0 {
			return models.RewardConfig{}, validationError(op, "max_draws_per_day cannot be negative")
		}
		fields.Set("max_draws_per_day", *req.MaxDrawsPerDay)
	}

	var cfg models.RewardConfig
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		// make sure the singleton exists before updating it
		if _, err := tx.GetRewardConfig(ctx); err != nil {
			return storeError(s.log, op, err)
		}
		if err := tx.Update(ctx, &models.RewardConfig{}, models.RewardConfigID, fields); err != nil {
			return storeError(s.log, op, err)
		}
		var err error
		cfg, err = tx.GetRewardConfig(ctx)
		return storeError(s.log, op, err)
	})
	if err == nil {
		s.log.Info("wheel config updated", "enabled", cfg.Enabled, "max_draws_per_day", cfg.MaxDrawsPerDay)
	}
	return cfg, err
}
