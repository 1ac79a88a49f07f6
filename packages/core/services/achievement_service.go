package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type AchievementService struct {
	ledger   store.Ledger
	notifier *notify.Notifier
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      Clock
}

func NewAchievementService(ledger store.Ledger, notifier *notify.Notifier, m *metrics.Metrics, log *slog.Logger) *AchievementService {
	return &AchievementService{
		ledger:   ledger,
		notifier: notifier,
		metrics:  m,
		log:      logger.OrDefault(log),
		now:      systemClock,
	}
}

func (s *AchievementService) WithTx(tx store.Ledger) *AchievementService {
	c := *s
	c.ledger = tx
	return &c
}

// Grant gives the named achievement to player, creating the definition on first use.
// Holding it already is the GrantAlreadyHeld outcome, not an error. Grant does not
// notify; callers do that once their transaction has committed.
func (s *AchievementService) Grant(ctx context.Context, player, name, grantedBy string) (*models.GrantResult, error) {
	const op = "achievements.grant"

	player = strings.TrimSpace(player)
	name = strings.TrimSpace(name)
	if player == "" || name == "" {
		return nil, validationError(op, "player and achievement name are required")
	}
	if grantedBy == "" {
		grantedBy = models.SystemGranter
	}

	var result *models.GrantResult
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		achievement, err := s.findOrCreate(ctx, tx, models.Achievement{Name: name})
		if err != nil {
			return err
		}

		existing, err := tx.FindGrant(ctx, player, achievement.ID)
		if err != nil {
			return storeError(s.log, op, err, "player", player, "achievement", name)
		}
		if existing != nil {
			result = &models.GrantResult{Outcome: models.GrantAlreadyHeld, Achievement: *achievement, Grant: *existing}
			return nil
		}

		grant := models.AchievementGrant{
			PlayerNickname: player,
			AchievementID:  achievement.ID,
			GrantedBy:      grantedBy,
			GrantedAt:      s.now().UTC(),
		}
		// savepoint: a concurrent grant of the same pair must not abort the caller's transaction
		err = tx.Transaction(ctx, func(inner store.Ledger) error {
			return inner.CreateGrant(ctx, &grant)
		})
		if errors.Is(err, store.ErrDuplicate) {
			held, ferr := tx.FindGrant(ctx, player, achievement.ID)
			if ferr != nil || held == nil {
				return storeError(s.log, op, errors.Join(err, ferr), "player", player, "achievement", name)
			}
			result = &models.GrantResult{Outcome: models.GrantAlreadyHeld, Achievement: *achievement, Grant: *held}
			return nil
		}
		if err != nil {
			return storeError(s.log, op, err, "player", player, "achievement", name)
		}

		grant.Achievement = *achievement
		result = &models.GrantResult{Outcome: models.GrantCreated, Achievement: *achievement, Grant: grant}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Grant(string(result.Outcome))
	return result, nil
}

// GrantAndNotify grants in its own transaction and publishes a notice for new grants.
func (s *AchievementService) GrantAndNotify(ctx context.Context, player, name, grantedBy string) (*models.GrantResult, error) {
	result, err := s.Grant(ctx, player, name, grantedBy)
	if err != nil {
		return nil, err
	}
	s.NotifyGranted(ctx, result)
	return result, nil
}

func (s *AchievementService) NotifyGranted(ctx context.Context, result *models.GrantResult) {
	if result == nil || result.Outcome != models.GrantCreated {
		return
	}
	s.notifier.Notify(ctx, notify.EventAchievementGranted, map[string]any{
		"player":      result.Grant.PlayerNickname,
		"achievement": result.Achievement.Name,
		"code":        result.Achievement.Code,
		"granted_by":  result.Grant.GrantedBy,
	})
}

// Create defines a new achievement. Names are unique.
func (s *AchievementService) Create(ctx context.Context, req models.CreateAchievementRequest) (*models.Achievement, error) {
	const op = "achievements.create"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError(op, "name is required")
	}

	var created *models.Achievement
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		existing, err := tx.FindAchievementByName(ctx, name)
		if err != nil {
			return storeError(s.log, op, err)
		}
		if existing != nil {
			return conflictError(op, "achievement %q already exists", name)
		}
		created, err = s.findOrCreate(ctx, tx, models.Achievement{
			Name:        name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		})
		return err
	})
	return created, err
}

func (s *AchievementService) List(ctx context.Context) ([]models.Achievement, error) {
	out, err := s.ledger.ListAchievements(ctx)
	return out, storeError(s.log, "achievements.list", err)
}

func (s *AchievementService) PlayerAchievements(ctx context.Context, player string) ([]models.AchievementGrant, error) {
	out, err := s.ledger.ListPlayerAchievements(ctx, player)
	return out, storeError(s.log, "achievements.player", err, "player", player)
}

// findOrCreate looks the achievement up by name and inserts it when missing. The code
// is the slug of the name, suffixed when another name produced the same slug.
func (s *AchievementService) findOrCreate(ctx context.Context, tx store.Ledger, def models.Achievement) (*models.Achievement, error) {
	const op = "achievements.define"

	name := def.Name
	existing, err := tx.FindAchievementByName(ctx, name)
	if err != nil {
		return nil, storeError(s.log, op, err, "achievement", name)
	}
	if existing != nil {
		return existing, nil
	}

	if def.Description == "" {
		def.Description = describe(name)
	}
	code := slug.Make(name)
	for attempt := 0; attempt < 3; attempt++ {
		achievement := def
		achievement.Code = code
		err = tx.Transaction(ctx, func(inner store.Ledger) error {
			return inner.CreateAchievement(ctx, &achievement)
		})
		if err == nil {
			return &achievement, nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			return nil, storeError(s.log, op, err, "achievement", name)
		}

		// either the name was created concurrently or the slug is taken by another name
		existing, ferr := tx.FindAchievementByName(ctx, name)
		if ferr != nil {
			return nil, storeError(s.log, op, ferr, "achievement", name)
		}
		if existing != nil {
			return existing, nil
		}
		code = slug.Make(name) + "-" + uuid.NewString()[:8]
	}
	return nil, storeError(s.log, op, err, "achievement", name)
}

func describe(name string) string {
	var edition uint
	if _, err := fmt.Sscanf(name, "Edition Champion %d", &edition); err == nil {
		return fmt.Sprintf("Winner of the final of edition %d", edition)
	}
	return "Awarded for " + name
}
