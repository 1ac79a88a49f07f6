package fixtures_test

import (
	"context"
	"testing"

	"github.com/DanCG7040/RealTaker-cup-backend/fixtures"
	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func count(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestGenerateAndClear(t *testing.T) {
	db := storetest.Open(t)
	log := logger.Discard()
	module := core.NewModule(db, nil, core.Options{Logger: log})

	opts := fixtures.DefaultOptions()
	opts.Players = 6
	opts.Matches = 12
	opts.Seed = 42
	opts.Edition = 2024
	opts.Settled = 1
	f := fixtures.NewFixtures(db, module, opts, log)

	require.NoError(t, f.GenerateTestData(context.Background()))

	assert.Equal(t, int64(7), count(t, db, &authModels.User{}))
	assert.Equal(t, int64(12), count(t, db, &models.Match{}))
	assert.Equal(t, int64(6), count(t, db, &models.EditionParticipant{}))
	assert.Positive(t, count(t, db, &models.MatchResult{}))
	assert.Positive(t, count(t, db, &models.StandingsRow{}))
	assert.Positive(t, count(t, db, &models.AchievementGrant{}), "the final is always settled")
	assert.Equal(t, int64(7), count(t, db, &models.RewardItem{}))

	cfg, err := module.WheelService.Config(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)

	require.NoError(t, f.ClearAllData())
	for _, m := range []any{&authModels.User{}, &models.Match{}, &models.StandingsRow{}, &models.RewardItem{}, &models.Edition{}} {
		assert.Zero(t, count(t, db, m))
	}
}
