package store

import (
	"context"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (l *GormLedger) GetWildcard(ctx context.Context, id uint) (*models.Wildcard, error) {
	var w models.Wildcard
	if err := l.conn(ctx).First(&w, id).Error; err != nil {
		return nil, wrap("get wildcard", err)
	}
	return &w, nil
}

func (l *GormLedger) ListWildcards(ctx context.Context) ([]models.Wildcard, error) {
	var out []models.Wildcard
	if err := l.conn(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, wrap("list wildcards", err)
	}
	return out, nil
}

func (l *GormLedger) CreateWildcard(ctx context.Context, wildcard *models.Wildcard) error {
	return wrap("create wildcard", l.conn(ctx).Create(wildcard).Error)
}

func (l *GormLedger) UpsertWildcardGrant(ctx context.Context, player string, wildcardID uint, at time.Time) (*models.WildcardGrant, error) {
	var grant *models.WildcardGrant
	err := l.atomically(ctx, func(db *gorm.DB) error {
		existing, err := firstOrNil[models.WildcardGrant]("find wildcard grant",
			db.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("player_nickname = ? AND wildcard_id = ? AND used = ?", player, wildcardID, false).
				Order("id"))
		if err != nil {
			return err
		}

		if existing != nil {
			if err := l.withDB(db).Update(ctx, &models.WildcardGrant{}, existing.ID, models.Fields{"acquired_at": at}); err != nil {
				return err
			}
			existing.AcquiredAt = at
			grant = existing
			return nil
		}

		grant = &models.WildcardGrant{PlayerNickname: player, WildcardID: wildcardID, AcquiredAt: at}
		return wrap("create wildcard grant", db.Omit("Wildcard").Create(grant).Error)
	})
	if err != nil {
		return nil, err
	}
	return grant, nil
}

func (l *GormLedger) LockWildcardGrant(ctx context.Context, id uint) (*models.WildcardGrant, error) {
	var grant models.WildcardGrant
	err := l.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&grant, id).Error
	if err != nil {
		return nil, wrap("lock wildcard grant", err)
	}
	return &grant, nil
}

func (l *GormLedger) MarkWildcardUsed(ctx context.Context, grantID uint, at time.Time) error {
	return l.Update(ctx, &models.WildcardGrant{}, grantID, models.Fields{"used": true, "used_at": at})
}

func (l *GormLedger) ListPlayerWildcards(ctx context.Context, player string) ([]models.WildcardGrant, error) {
	var out []models.WildcardGrant
	err := l.conn(ctx).
		Preload("Wildcard").
		Where("player_nickname = ?", player).
		Order("used, acquired_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, wrap("list player wildcards", err)
	}
	return out, nil
}
