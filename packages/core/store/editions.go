package store

import (
	"context"

	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
)

func (l *GormLedger) GetEdition(ctx context.Context, id uint) (*models.Edition, error) {
	var edition models.Edition
	err := l.conn(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB { return db.Order("player_nickname") }).
		Preload("Games.Game.Category").
		First(&edition, id).Error
	if err != nil {
		return nil, wrap("get edition", err)
	}
	return &edition, nil
}

func (l *GormLedger) GetLatestEdition(ctx context.Context) (*models.Edition, error) {
	return firstOrNil[models.Edition]("get latest edition", l.conn(ctx).Order("id DESC"))
}

func (l *GormLedger) GetPreviousEdition(ctx context.Context, id uint) (*models.Edition, error) {
	return firstOrNil[models.Edition]("get previous edition", l.conn(ctx).Where("id < ?", id).Order("id DESC"))
}

func (l *GormLedger) ListEditions(ctx context.Context) ([]models.Edition, error) {
	var editions []models.Edition
	if err := l.conn(ctx).Order("id DESC").Find(&editions).Error; err != nil {
		return nil, wrap("list editions", err)
	}
	return editions, nil
}

func (l *GormLedger) CreateEdition(ctx context.Context, edition *models.Edition) error {
	return wrap("create edition", l.conn(ctx).Omit("Participants", "Games").Create(edition).Error)
}

// DeleteEdition removes the edition with its matches, standings, category statistics
// and enrollments. Archived history is kept.
func (l *GormLedger) DeleteEdition(ctx context.Context, id uint) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		matchIDs := db.Model(&models.Match{}).Select("id").Where("edition_id = ?", id)
		steps := []struct {
			op    string
			model any
			query any
			args  []any
		}{
			{"delete match results", &models.MatchResult{}, "match_id IN (?)", []any{matchIDs}},
			{"delete match participants", &models.MatchParticipant{}, "match_id IN (?)", []any{matchIDs}},
			{"delete matches", &models.Match{}, "edition_id = ?", []any{id}},
			{"delete standings", &models.StandingsRow{}, "edition_id = ?", []any{id}},
			{"delete category stats", &models.CategoryStat{}, "edition_id = ?", []any{id}},
			{"delete edition participants", &models.EditionParticipant{}, "edition_id = ?", []any{id}},
			{"delete edition games", &models.EditionGame{}, "edition_id = ?", []any{id}},
		}
		for _, s := range steps {
			if err := db.Where(s.query, s.args...).Delete(s.model).Error; err != nil {
				return wrap(s.op, err)
			}
		}

		res := db.Delete(&models.Edition{}, id)
		if res.Error != nil {
			return wrap("delete edition", res.Error)
		}
		if res.RowsAffected == 0 {
			return wrap("delete edition", gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (l *GormLedger) ListEditionPlayers(ctx context.Context, editionID uint) ([]string, error) {
	var players []string
	err := l.conn(ctx).Model(&models.EditionParticipant{}).
		Where("edition_id = ?", editionID).
		Order("player_nickname").
		Pluck("player_nickname", &players).Error
	if err != nil {
		return nil, wrap("list edition players", err)
	}
	return players, nil
}

func (l *GormLedger) ReplaceEditionPlayers(ctx context.Context, editionID uint, players []string) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		if err := db.Where("edition_id = ?", editionID).Delete(&models.EditionParticipant{}).Error; err != nil {
			return wrap("clear edition players", err)
		}
		if len(players) == 0 {
			return nil
		}
		rows := make([]models.EditionParticipant, 0, len(players))
		for _, p := range players {
			rows = append(rows, models.EditionParticipant{EditionID: editionID, PlayerNickname: p})
		}
		return wrap("insert edition players", db.Create(&rows).Error)
	})
}

func (l *GormLedger) ReplaceEditionGames(ctx context.Context, editionID uint, gameIDs []uint) error {
	return l.atomically(ctx, func(db *gorm.DB) error {
		if err := db.Where("edition_id = ?", editionID).Delete(&models.EditionGame{}).Error; err != nil {
			return wrap("clear edition games", err)
		}
		if len(gameIDs) == 0 {
			return nil
		}
		rows := make([]models.EditionGame, 0, len(gameIDs))
		for _, id := range gameIDs {
			rows = append(rows, models.EditionGame{EditionID: editionID, GameID: id})
		}
		return wrap("insert edition games", db.Omit("Game").Create(&rows).Error)
	})
}

func (l *GormLedger) NotEnrolled(ctx context.Context, editionID uint, players []string) ([]string, error) {
	if len(players) == 0 {
		return nil, nil
	}
	var enrolled []string
	err := l.conn(ctx).Model(&models.EditionParticipant{}).
		Where("edition_id = ? AND player_nickname IN ?", editionID, players).
		Pluck("player_nickname", &enrolled).Error
	if err != nil {
		return nil, wrap("check enrollment", err)
	}
	return missing(players, enrolled), nil
}

func (l *GormLedger) MissingUsers(ctx context.Context, nicknames []string) ([]string, error) {
	if len(nicknames) == 0 {
		return nil, nil
	}
	var found []string
	err := l.conn(ctx).Model(&authModels.User{}).
		Where("nickname IN ?", nicknames).
		Pluck("nickname", &found).Error
	if err != nil {
		return nil, wrap("check users", err)
	}
	return missing(nicknames, found), nil
}

func (l *GormLedger) MissingGames(ctx context.Context, gameIDs []uint) ([]uint, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	var found []uint
	err := l.conn(ctx).Model(&models.Game{}).Where("id IN ?", gameIDs).Pluck("id", &found).Error
	if err != nil {
		return nil, wrap("check games", err)
	}
	return missing(gameIDs, found), nil
}

func (l *GormLedger) CountEditionPlayers(ctx context.Context, editionID uint) (int64, error) {
	var n int64
	err := l.conn(ctx).Model(&models.EditionParticipant{}).Where("edition_id = ?", editionID).Count(&n).Error
	return n, wrap("count edition players", err)
}

// missing returns the values of want absent from have, in want's order.
func missing[T comparable](want, have []T) []T {
	seen := make(map[T]struct{}, len(have))
	for _, h := range have {
		seen[h] = struct{}{}
	}
	var out []T
	for _, w := range want {
		if _, ok := seen[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}
