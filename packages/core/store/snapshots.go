package store

import (
	"context"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
)

func (l *GormLedger) SnapshotExists(ctx context.Context, editionID uint) (bool, error) {
	var n int64
	err := l.conn(ctx).Model(&models.EditionSnapshot{}).Where("edition_id = ?", editionID).Count(&n).Error
	return n > 0, wrap("check snapshot", err)
}

func (l *GormLedger) CopyStandingsToHistory(ctx context.Context, editionID uint, reason string, at time.Time) (int64, error) {
	var copied int64
	err := l.atomically(ctx, func(db *gorm.DB) error {
		header := models.EditionSnapshot{EditionID: editionID, Reason: reason, SnapshotAt: at}
		if err := db.Create(&header).Error; err != nil {
			return wrap("create snapshot header", err)
		}

		res := db.Exec(`INSERT INTO historical_standings
			(edition_id, player_nickname, points, matches_played, matches_won, snapshot_at)
			SELECT edition_id, player_nickname, points, matches_played, matches_won, ?
			FROM standings WHERE edition_id = ?`, at, editionID)
		if res.Error != nil {
			return wrap("copy standings", res.Error)
		}
		copied = res.RowsAffected
		return nil
	})
	return copied, err
}

func (l *GormLedger) GetSnapshot(ctx context.Context, editionID uint) (*models.EditionSnapshot, error) {
	var s models.EditionSnapshot
	if err := l.conn(ctx).Where("edition_id = ?", editionID).First(&s).Error; err != nil {
		return nil, wrap("get snapshot", err)
	}
	return &s, nil
}

func (l *GormLedger) ListSnapshots(ctx context.Context) ([]models.SnapshotSummary, error) {
	db := l.conn(ctx)

	var snapshots []models.EditionSnapshot
	if err := db.Order("edition_id DESC").Find(&snapshots).Error; err != nil {
		return nil, wrap("list snapshots", err)
	}
	if len(snapshots) == 0 {
		return []models.SnapshotSummary{}, nil
	}

	ids := make([]uint, len(snapshots))
	for i, s := range snapshots {
		ids[i] = s.EditionID
	}

	var editions []models.Edition
	if err := db.Where("id IN ?", ids).Find(&editions).Error; err != nil {
		return nil, wrap("list snapshot editions", err)
	}
	byID := make(map[uint]models.Edition, len(editions))
	for _, e := range editions {
		byID[e.ID] = e
	}

	var counts []struct {
		EditionID uint
		Total     int64
	}
	err := db.Model(&models.HistoricalStanding{}).
		Select("edition_id, COUNT(*) AS total").
		Where("edition_id IN ?", ids).
		Group("edition_id").
		Scan(&counts).Error
	if err != nil {
		return nil, wrap("count snapshot rows", err)
	}
	totals := make(map[uint]int64, len(counts))
	for _, c := range counts {
		totals[c.EditionID] = c.Total
	}

	out := make([]models.SnapshotSummary, len(snapshots))
	for i, s := range snapshots {
		sum := models.SnapshotSummary{
			EditionID:    s.EditionID,
			Reason:       s.Reason,
			SnapshotAt:   s.SnapshotAt,
			TotalPlayers: totals[s.EditionID],
		}
		if e, ok := byID[s.EditionID]; ok {
			sum.StartDate = &e.StartDate
			sum.EndDate = &e.EndDate
		}
		out[i] = sum
	}
	return out, nil
}

func (l *GormLedger) ListSnapshotRows(ctx context.Context, editionID uint) ([]models.HistoricalStanding, error) {
	var rows []models.HistoricalStanding
	err := l.conn(ctx).
		Where("edition_id = ?", editionID).
		Order("points DESC, matches_won DESC, player_nickname").
		Find(&rows).Error
	if err != nil {
		return nil, wrap("list snapshot rows", err)
	}
	return rows, nil
}

func (l *GormLedger) FinishedEditions(ctx context.Context, now time.Time) ([]models.Edition, error) {
	var editions []models.Edition
	err := l.conn(ctx).
		Where("end_date < ?", now).
		Where("id < (SELECT MAX(id) FROM editions)").
		Where("NOT EXISTS (SELECT 1 FROM edition_snapshots s WHERE s.edition_id = editions.id)").
		Order("id").
		Find(&editions).Error
	if err != nil {
		return nil, wrap("list finished editions", err)
	}
	return editions, nil
}
