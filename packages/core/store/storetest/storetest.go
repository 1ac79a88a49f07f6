// Package storetest opens throwaway databases for tests.
package storetest

import (
	"testing"
	"time"

	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// AllModels lists every persisted type in migration order.
func AllModels() []any {
	return []any{
		&authModels.User{},
		&models.Category{},
		&models.Game{},
		&models.Edition{},
		&models.EditionParticipant{},
		&models.EditionGame{},
		&models.Match{},
		&models.MatchParticipant{},
		&models.MatchResult{},
		&models.StandingsRow{},
		&models.CategoryStat{},
		&models.Achievement{},
		&models.AchievementGrant{},
		&models.Wildcard{},
		&models.WildcardGrant{},
		&models.EditionSnapshot{},
		&models.HistoricalStanding{},
		&models.PointsRule{},
		&models.RewardItem{},
		&models.RewardConfig{},
		&models.DrawRecord{},
	}
}

// Open returns an in-memory sqlite database with the full schema. The pool is capped at
// one connection so every query sees the same memory database.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(AllModels()...))
	return db
}

// CreateUser inserts an enabled account with the given roles.
func CreateUser(t testing.TB, db *gorm.DB, nickname string, roles ...string) authModels.User {
	t.Helper()

	if len(roles) == 0 {
		roles = authModels.GetDefaultRoles()
	}
	user := authModels.User{
		Nickname: nickname,
		Email:    nickname + "@realtaker.test",
		Enabled:  true,
		Roles:    roles,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// CreateEdition inserts an edition spanning the given year.
func CreateEdition(t testing.TB, db *gorm.DB, id uint) models.Edition {
	t.Helper()

	edition := models.Edition{
		ID:        id,
		StartDate: time.Date(int(id), time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(int(id), time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&edition).Error)
	return edition
}

// CreateGame inserts a game together with a category of the given name.
func CreateGame(t testing.TB, db *gorm.DB, name, category string) models.Game {
	t.Helper()

	cat := models.Category{Name: category, Kind: models.ParseCategoryKind(category)}
	require.NoError(t, db.Where(models.Category{Name: category}).FirstOrCreate(&cat).Error)

	game := models.Game{Name: name, CategoryID: cat.ID}
	require.NoError(t, db.Omit("Category").Create(&game).Error)
	game.Category = cat
	return game
}

// Enroll adds players to an edition.
func Enroll(t testing.TB, db *gorm.DB, editionID uint, players ...string) {
	t.Helper()

	for _, p := range players {
		require.NoError(t, db.Create(&models.EditionParticipant{EditionID: editionID, PlayerNickname: p}).Error)
	}
}

// CreateMatch inserts a match with its roster.
func CreateMatch(t testing.TB, db *gorm.DB, editionID, gameID uint, phase string, players ...string) models.Match {
	t.Helper()

	match := models.Match{
		EditionID:   editionID,
		GameID:      gameID,
		ScheduledAt: time.Date(int(editionID), time.March, 1, 18, 0, 0, 0, time.UTC),
		Kind:        models.MatchKindAllVsAll,
		Phase:       phase,
	}
	for _, p := range players {
		match.Participants = append(match.Participants, models.MatchParticipant{PlayerNickname: p})
	}
	require.NoError(t, db.Omit("Game").Create(&match).Error)
	return match
}
