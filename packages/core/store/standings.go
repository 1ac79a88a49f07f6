package store

import (
	"context"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var standingsKey = []clause.Column{{Name: "edition_id"}, {Name: "player_nickname"}}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// UpsertStandingsRow is a single INSERT ... ON CONFLICT DO UPDATE, so concurrent
// settlements touching the same row never lose an increment.
func (l *GormLedger) UpsertStandingsRow(ctx context.Context, editionID uint, player string, pointsDelta int, won bool) error {
	w := boolToInt(won)
	row := models.StandingsRow{
		EditionID:      editionID,
		PlayerNickname: player,
		Points:         pointsDelta,
		MatchesPlayed:  1,
		MatchesWon:     w,
	}
	err := l.conn(ctx).Clauses(clause.OnConflict{
		Columns: standingsKey,
		DoUpdates: clause.Assignments(map[string]any{
			"points":         gorm.Expr("standings.points + ?", pointsDelta),
			"matches_played": gorm.Expr("standings.matches_played + 1"),
			"matches_won":    gorm.Expr("standings.matches_won + ?", w),
			"updated_at":     l.db.NowFunc(),
		}),
	}).Create(&row).Error
	return wrap("upsert standings row", err)
}

func (l *GormLedger) AddPointsClamped(ctx context.Context, editionID uint, player string, delta int) (int, error) {
	var total int
	err := l.atomically(ctx, func(db *gorm.DB) error {
		row := models.StandingsRow{
			EditionID:      editionID,
			PlayerNickname: player,
			Points:         max(0, delta),
		}
		err := db.Clauses(clause.OnConflict{
			Columns: standingsKey,
			DoUpdates: clause.Assignments(map[string]any{
				"points":     gorm.Expr("CASE WHEN standings.points + ? < 0 THEN 0 ELSE standings.points + ? END", delta, delta),
				"updated_at": l.db.NowFunc(),
			}),
		}).Create(&row).Error
		if err != nil {
			return wrap("add clamped points", err)
		}
		return wrap("read clamped points", db.Model(&models.StandingsRow{}).
			Where("edition_id = ? AND player_nickname = ?", editionID, player).
			Pluck("points", &total).Error)
	})
	return total, err
}

func (l *GormLedger) GetStandingsRow(ctx context.Context, editionID uint, player string) (*models.StandingsRow, error) {
	var row models.StandingsRow
	err := l.conn(ctx).Where("edition_id = ? AND player_nickname = ?", editionID, player).First(&row).Error
	if err != nil {
		return nil, wrap("get standings row", err)
	}
	return &row, nil
}

func (l *GormLedger) ListStandings(ctx context.Context, editionID uint) ([]models.StandingsRow, error) {
	var rows []models.StandingsRow
	err := l.conn(ctx).
		Where("edition_id = ?", editionID).
		Order("points DESC, matches_won DESC, player_nickname").
		Find(&rows).Error
	if err != nil {
		return nil, wrap("list standings", err)
	}
	return rows, nil
}

func (l *GormLedger) CountStandings(ctx context.Context, editionID uint) (int64, error) {
	var n int64
	err := l.conn(ctx).Model(&models.StandingsRow{}).Where("edition_id = ?", editionID).Count(&n).Error
	return n, wrap("count standings", err)
}

func (l *GormLedger) ResetStandings(ctx context.Context, editionID *uint) (int64, error) {
	db := l.conn(ctx)
	if editionID != nil {
		db = db.Where("edition_id = ?", *editionID)
	} else {
		db = db.Where("1 = 1")
	}
	res := db.Delete(&models.StandingsRow{})
	return res.RowsAffected, wrap("reset standings", res.Error)
}

// UpsertCategoryStat makes sure the row exists, locks it and applies the kind's rules
// together with the generic counters.
func (l *GormLedger) UpsertCategoryStat(ctx context.Context, key models.CategoryStatKey, kind models.CategoryKind, won bool, metrics models.ResultMetrics) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		seed := models.CategoryStat{
			PlayerNickname: key.Player,
			CategoryID:     key.CategoryID,
			EditionID:      key.EditionID,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_nickname"}, {Name: "category_id"}, {Name: "edition_id"}},
			DoNothing: true,
		}).Create(&seed).Error
		if err != nil {
			return wrap("seed category stat", err)
		}

		var row models.CategoryStat
		err = db.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("player_nickname = ? AND category_id = ? AND edition_id = ?", key.Player, key.CategoryID, key.EditionID).
			First(&row).Error
		if err != nil {
			return wrap("lock category stat", err)
		}

		fields := kind.Apply(&row, metrics)
		fields.Set("matches_played", row.MatchesPlayed+1)
		fields.Set("matches_won", row.MatchesWon+boolToInt(won))
		return l.withDB(db).Update(ctx, &models.CategoryStat{}, row.ID, fields)
	})
}

func (l *GormLedger) GetCategoryStat(ctx context.Context, key models.CategoryStatKey) (*models.CategoryStat, error) {
	var row models.CategoryStat
	err := l.conn(ctx).
		Where("player_nickname = ? AND category_id = ? AND edition_id = ?", key.Player, key.CategoryID, key.EditionID).
		First(&row).Error
	if err != nil {
		return nil, wrap("get category stat", err)
	}
	return &row, nil
}
