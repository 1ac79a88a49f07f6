package store

import (
	"context"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (l *GormLedger) GetMatch(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	err := l.conn(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("player_nickname") }).
		Preload("Game.Category").
		First(&match, id).Error
	if err != nil {
		return nil, wrap("get match", err)
	}
	return &match, nil
}

func (l *GormLedger) GetMatchRoster(ctx context.Context, matchID uint) ([]string, error) {
	var roster []string
	err := l.conn(ctx).Model(&models.MatchParticipant{}).
		Where("match_id = ?", matchID).
		Order("player_nickname").
		Pluck("player_nickname", &roster).Error
	if err != nil {
		return nil, wrap("get match roster", err)
	}
	return roster, nil
}

func (l *GormLedger) GetGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := l.conn(ctx).Preload("Category").First(&game, id).Error; err != nil {
		return nil, wrap("get game", err)
	}
	return &game, nil
}

func (l *GormLedger) ListMatches(ctx context.Context, editionID uint) ([]models.MatchListItem, error) {
	var matches []models.Match
	err := l.conn(ctx).
		Where("edition_id = ?", editionID).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("player_nickname") }).
		Preload("Game.Category").
		Order("scheduled_at, id").
		Find(&matches).Error
	if err != nil {
		return nil, wrap("list matches", err)
	}
	if len(matches) == 0 {
		return []models.MatchListItem{}, nil
	}

	ids := make([]uint, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	var settled []uint
	err = l.conn(ctx).Model(&models.MatchResult{}).
		Where("match_id IN ?", ids).
		Distinct("match_id").
		Pluck("match_id", &settled).Error
	if err != nil {
		return nil, wrap("list settled matches", err)
	}
	hasResult := make(map[uint]bool, len(settled))
	for _, id := range settled {
		hasResult[id] = true
	}

	items := make([]models.MatchListItem, len(matches))
	for i, m := range matches {
		items[i] = models.MatchListItem{Match: m, HasResult: hasResult[m.ID]}
	}
	return items, nil
}

func (l *GormLedger) CreateMatch(ctx context.Context, match *models.Match) error {
	return wrap("create match", l.conn(ctx).Omit("Game").Create(match).Error)
}

func (l *GormLedger) ReplaceMatchParticipants(ctx context.Context, matchID uint, players []string) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		if err := db.Where("match_id = ?", matchID).Delete(&models.MatchParticipant{}).Error; err != nil {
			return wrap("clear match participants", err)
		}
		if len(players) == 0 {
			return nil
		}
		rows := make([]models.MatchParticipant, 0, len(players))
		for _, p := range players {
			rows = append(rows, models.MatchParticipant{MatchID: matchID, PlayerNickname: p})
		}
		return wrap("insert match participants", db.Create(&rows).Error)
	})
}

func (l *GormLedger) DeleteMatch(ctx context.Context, id uint) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		if err := db.Where("match_id = ?", id).Delete(&models.MatchResult{}).Error; err != nil {
			return wrap("delete match results", err)
		}
		if err := db.Where("match_id = ?", id).Delete(&models.MatchParticipant{}).Error; err != nil {
			return wrap("delete match participants", err)
		}
		res := db.Delete(&models.Match{}, id)
		if res.Error != nil {
			return wrap("delete match", res.Error)
		}
		if res.RowsAffected == 0 {
			return wrap("delete match", gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// ReplaceResults deletes every stored result of the match and inserts results.
func (l *GormLedger) ReplaceResults(ctx context.Context, matchID uint, results []models.MatchResult) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		if err := db.Where("match_id = ?", matchID).Delete(&models.MatchResult{}).Error; err != nil {
			return wrap("delete results", err)
		}
		if len(results) == 0 {
			return nil
		}
		for i := range results {
			results[i].ID = 0
			results[i].MatchID = matchID
		}
		return wrap("insert results", db.Create(&results).Error)
	})
}

func (l *GormLedger) ListResults(ctx context.Context, matchID uint) ([]models.MatchResult, error) {
	var results []models.MatchResult
	err := l.conn(ctx).Where("match_id = ?", matchID).Order("position").Find(&results).Error
	if err != nil {
		return nil, wrap("list results", err)
	}
	return results, nil
}

func (l *GormLedger) CountMatches(ctx context.Context, editionID uint) (int64, int64, error) {
	var total, played int64
	db := l.conn(ctx)
	if err := db.Model(&models.Match{}).Where("edition_id = ?", editionID).Count(&total).Error; err != nil {
		return 0, 0, wrap("count matches", err)
	}
	err := db.Model(&models.Match{}).
		Where("edition_id = ?", editionID).
		Where("EXISTS (SELECT 1 FROM match_results r WHERE r.match_id = matches.id)").
		Count(&played).Error
	if err != nil {
		return 0, 0, wrap("count played matches", err)
	}
	return total, played, nil
}

func (l *GormLedger) ListPointsRules(ctx context.Context) ([]models.PointsRule, error) {
	var rules []models.PointsRule
	if err := l.conn(ctx).Order("kind, position").Find(&rules).Error; err != nil {
		return nil, wrap("list points rules", err)
	}
	return rules, nil
}

func (l *GormLedger) UpsertPointsRule(ctx context.Context, rule models.PointsRule) error {
	rule.ID = 0
	err := l.conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "position"}},
		DoUpdates: clause.AssignmentColumns([]string{"points"}),
	}).Create(&rule).Error
	return wrap("upsert points rule", err)
}

func (l *GormLedger) PointsTable(ctx context.Context, kind string) (map[int]int, error) {
	var rules []models.PointsRule
	if err := l.conn(ctx).Where("kind = ?", kind).Find(&rules).Error; err != nil {
		return nil, wrap("load points table", err)
	}
	table := make(map[int]int, len(rules))
	for _, r := range rules {
		table[r.Position] = r.Points
	}
	return table, nil
}
