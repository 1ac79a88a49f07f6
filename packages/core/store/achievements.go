package store

import (
	"context"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
)

func (l *GormLedger) FindAchievementByName(ctx context.Context, name string) (*models.Achievement, error) {
	return firstOrNil[models.Achievement]("find achievement", l.conn(ctx).Where("name = ?", name))
}

func (l *GormLedger) CreateAchievement(ctx context.Context, achievement *models.Achievement) error {
	return wrap("create achievement", l.conn(ctx).Create(achievement).Error)
}

func (l *GormLedger) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	var out []models.Achievement
	if err := l.conn(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, wrap("list achievements", err)
	}
	return out, nil
}

func (l *GormLedger) FindGrant(ctx context.Context, player string, achievementID uint) (*models.AchievementGrant, error) {
	return firstOrNil[models.AchievementGrant]("find grant",
		l.conn(ctx).Where("player_nickname = ? AND achievement_id = ?", player, achievementID))
}

func (l *GormLedger) CreateGrant(ctx context.Context, grant *models.AchievementGrant) error {
	return wrap("create grant", l.conn(ctx).Omit("Achievement").Create(grant).Error)
}

func (l *GormLedger) ListPlayerAchievements(ctx context.Context, player string) ([]models.AchievementGrant, error) {
	var out []models.AchievementGrant
	err := l.conn(ctx).
		Preload("Achievement").
		Where("player_nickname = ?", player).
		Order("granted_at DESC, id DESC").
		Find(&out).Error
	if err != nil {
		return nil, wrap("list player achievements", err)
	}
	return out, nil
}
