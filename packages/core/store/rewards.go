package store

import (
	"context"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (l *GormLedger) GetRewardConfig(ctx context.Context) (models.RewardConfig, error) {
	var cfg models.RewardConfig
	err := l.atomically(ctx, func(db *gorm.DB) error {
		def := models.DefaultRewardConfig()
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&def).Error; err != nil {
			return wrap("seed reward config", err)
		}
		return wrap("get reward config", db.First(&cfg, models.RewardConfigID).Error)
	})
	return cfg, err
}

func (l *GormLedger) ListRewardItems(ctx context.Context, activeOnly bool) ([]models.RewardItem, error) {
	var items []models.RewardItem
	db := l.conn(ctx).Preload("Wildcard").Order("id")
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	if err := db.Find(&items).Error; err != nil {
		return nil, wrap("list reward items", err)
	}
	return items, nil
}

func (l *GormLedger) GetRewardItem(ctx context.Context, id uint) (*models.RewardItem, error) {
	var item models.RewardItem
	if err := l.conn(ctx).Preload("Wildcard").First(&item, id).Error; err != nil {
		return nil, wrap("get reward item", err)
	}
	return &item, nil
}

func (l *GormLedger) CreateRewardItem(ctx context.Context, item *models.RewardItem) error {
	return wrap("create reward item", l.conn(ctx).Omit("Wildcard").Create(item).Error)
}

func (l *GormLedger) DeleteRewardItem(ctx context.Context, id uint) error {
	res := l.conn(ctx).Delete(&models.RewardItem{}, id)
	if res.Error != nil {
		return wrap("delete reward item", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("delete reward item", gorm.ErrRecordNotFound)
	}
	return nil
}

func (l *GormLedger) CountDrawsToday(ctx context.Context, player string, date string) (int64, error) {
	var n int64
	err := l.conn(ctx).Model(&models.DrawRecord{}).
		Where("player_nickname = ? AND draw_date = ?", player, date).
		Count(&n).Error
	return n, wrap("count draws today", err)
}

// InsertDrawRecord fails with ErrDuplicate when another draw took the same daily slot.
func (l *GormLedger) InsertDrawRecord(ctx context.Context, record *models.DrawRecord) error {
	return wrap("insert draw record", l.conn(ctx).Create(record).Error)
}

func (l *GormLedger) ListDraws(ctx context.Context, player string, limit int) ([]models.DrawRecord, error) {
	var out []models.DrawRecord
	db := l.conn(ctx).Where("player_nickname = ?", player).Order("draw_date DESC, daily_seq DESC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	if err := db.Find(&out).Error; err != nil {
		return nil, wrap("list draws", err)
	}
	return out, nil
}

func (l *GormLedger) CountDraws(ctx context.Context, player string) (int64, error) {
	var n int64
	err := l.conn(ctx).Model(&models.DrawRecord{}).Where("player_nickname = ?", player).Count(&n).Error
	return n, wrap("count draws", err)
}
