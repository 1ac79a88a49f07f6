package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLedger(t *testing.T) (*store.GormLedger, *gorm.DB) {
	t.Helper()
	db := storetest.Open(t)
	return store.New(db, store.Options{StatementTimeout: time.Second}), db
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestUpsertStandingsRow(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2024, "nova", 10, true))
	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2024, "nova", -4, false))

	row, err := ledger.GetStandingsRow(ctx, 2024, "nova")
	require.NoError(t, err)
	assert.Equal(t, 6, row.Points)
	assert.Equal(t, 2, row.MatchesPlayed)
	assert.Equal(t, 1, row.MatchesWon)

	// no clamp on this path
	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2024, "nova", -20, false))
	row, err = ledger.GetStandingsRow(ctx, 2024, "nova")
	require.NoError(t, err)
	assert.Equal(t, -14, row.Points)
}

func TestAddPointsClamped(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	total, err := ledger.AddPointsClamped(ctx, 2024, "rex", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	total, err = ledger.AddPointsClamped(ctx, 2024, "rex", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	total, err = ledger.AddPointsClamped(ctx, 2024, "rex", -10)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	row, err := ledger.GetStandingsRow(ctx, 2024, "rex")
	require.NoError(t, err)
	assert.Equal(t, 0, row.MatchesPlayed)
}

func TestTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	boom := errors.New("boom")
	err := ledger.Transaction(ctx, func(tx store.Ledger) error {
		require.NoError(t, tx.UpsertStandingsRow(ctx, 2024, "nova", 10, true))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = ledger.GetStandingsRow(ctx, 2024, "nova")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpsertCategoryStat(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	racing := storetest.CreateGame(t, db, "Kart", "Carreras")
	platform := storetest.CreateGame(t, db, "Jumper", "Plataformas")
	shooter := storetest.CreateGame(t, db, "Arena", "Shooters")
	other := storetest.CreateGame(t, db, "Chess", "Board")

	key := func(g models.Game) models.CategoryStatKey {
		return models.CategoryStatKey{Player: "nova", CategoryID: g.CategoryID, EditionID: 2024}
	}

	t.Run("racing keeps the lowest time", func(t *testing.T) {
		for _, rt := range []float64{92.5, 88.1, 95} {
			require.NoError(t, ledger.UpsertCategoryStat(ctx, key(racing), models.KindRacing, false, models.ResultMetrics{RaceTime: floatPtr(rt)}))
		}
		row, err := ledger.GetCategoryStat(ctx, key(racing))
		require.NoError(t, err)
		require.NotNil(t, row.BestRaceTime)
		assert.InDelta(t, 88.1, *row.BestRaceTime, 1e-9)
		assert.Equal(t, 3, row.MatchesPlayed)
	})

	t.Run("platform keeps the highest level", func(t *testing.T) {
		for _, lvl := range []int{4, 9, 7} {
			require.NoError(t, ledger.UpsertCategoryStat(ctx, key(platform), models.KindPlatform, true, models.ResultMetrics{LevelReached: intPtr(lvl)}))
		}
		row, err := ledger.GetCategoryStat(ctx, key(platform))
		require.NoError(t, err)
		assert.Equal(t, 9, row.MaxLevel)
		assert.Equal(t, 3, row.MatchesWon)
	})

	t.Run("shooter sums and ignores foreign metrics", func(t *testing.T) {
		m := models.ResultMetrics{Kills: intPtr(5), Deaths: intPtr(2), GoalsFor: intPtr(3)}
		require.NoError(t, ledger.UpsertCategoryStat(ctx, key(shooter), models.KindShooter, true, m))
		require.NoError(t, ledger.UpsertCategoryStat(ctx, key(shooter), models.KindShooter, false, m))
		row, err := ledger.GetCategoryStat(ctx, key(shooter))
		require.NoError(t, err)
		assert.Equal(t, 10, row.Kills)
		assert.Equal(t, 4, row.Deaths)
		assert.Zero(t, row.GoalsFor)
		assert.Equal(t, 2, row.MatchesPlayed)
		assert.Equal(t, 1, row.MatchesWon)
	})

	t.Run("unknown only counts", func(t *testing.T) {
		m := models.ResultMetrics{Kills: intPtr(5), LevelReached: intPtr(3)}
		require.NoError(t, ledger.UpsertCategoryStat(ctx, key(other), models.KindUnknown, true, m))
		row, err := ledger.GetCategoryStat(ctx, key(other))
		require.NoError(t, err)
		assert.Equal(t, 1, row.MatchesPlayed)
		assert.Equal(t, 1, row.MatchesWon)
		assert.Zero(t, row.Kills)
		assert.Zero(t, row.MaxLevel)
	})
}

func TestUpdateAllowList(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	storetest.CreateEdition(t, db, 2024)

	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	require.NoError(t, ledger.Update(ctx, &models.Edition{}, 2024, models.Fields{"end_date": end}))

	edition, err := ledger.GetEdition(ctx, 2024)
	require.NoError(t, err)
	assert.True(t, edition.EndDate.Equal(end))

	err = ledger.Update(ctx, &models.Edition{}, 2024, models.Fields{"id": 1999})
	assert.ErrorIs(t, err, store.ErrInvalidField)

	err = ledger.Update(ctx, &models.Edition{}, 1999, models.Fields{"end_date": end})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReplaceResults(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	storetest.CreateEdition(t, db, 2024)
	game := storetest.CreateGame(t, db, "Arena", "Shooters")
	match := storetest.CreateMatch(t, db, 2024, game.ID, models.PhaseGroups, "nova", "rex")

	first := []models.MatchResult{
		{PlayerNickname: "nova", Position: 1, Won: true, Points: 10},
		{PlayerNickname: "rex", Position: 2, Points: 5},
	}
	require.NoError(t, ledger.ReplaceResults(ctx, match.ID, first))

	second := []models.MatchResult{
		{PlayerNickname: "rex", Position: 1, Won: true, Points: 10},
	}
	require.NoError(t, ledger.ReplaceResults(ctx, match.ID, second))

	results, err := ledger.ListResults(ctx, match.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rex", results[0].PlayerNickname)

	items, err := ledger.ListMatches(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].HasResult)
	assert.Equal(t, []string{"nova", "rex"}, items[0].Roster())

	total, played, err := ledger.CountMatches(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, int64(1), played)
}

func TestSnapshotCopy(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	storetest.CreateEdition(t, db, 2023)
	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2023, "nova", 12, true))
	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2023, "rex", 4, false))

	at := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	n, err := ledger.CopyStandingsToHistory(ctx, 2023, "manual", at)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	exists, err := ledger.SnapshotExists(ctx, 2023)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = ledger.CopyStandingsToHistory(ctx, 2023, "again", at)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	rows, err := ledger.ListSnapshotRows(ctx, 2023)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "nova", rows[0].PlayerNickname)

	summaries, err := ledger.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(2), summaries[0].TotalPlayers)
	assert.NotNil(t, summaries[0].StartDate)
}

func TestDrawRecordSlotIsUnique(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	rec := func(id string) *models.DrawRecord {
		return &models.DrawRecord{
			PublicID: id, PlayerNickname: "nova", DrawDate: "2024-05-01", DailySeq: 1,
			DrawTime: "10:00:00", ItemID: 1, ItemName: "Bonus", ItemKind: models.RewardCosmetic,
		}
	}
	require.NoError(t, ledger.InsertDrawRecord(ctx, rec("a")))
	assert.ErrorIs(t, ledger.InsertDrawRecord(ctx, rec("b")), store.ErrDuplicate)

	n, err := ledger.CountDrawsToday(ctx, "nova", "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRewardConfigDefault(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	cfg, err := ledger.GetRewardConfig(ctx)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.MaxDrawsPerDay)

	require.NoError(t, ledger.Update(ctx, &models.RewardConfig{}, models.RewardConfigID, models.Fields{"enabled": true}))
	cfg, err = ledger.GetRewardConfig(ctx)
	require.NoError(t, err)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.MaxDrawsPerDay)
}

func TestUpsertWildcardGrant(t *testing.T) {
	ctx := context.Background()
	ledger, _ := newLedger(t)

	wc := models.Wildcard{Name: "Skip"}
	require.NoError(t, ledger.CreateWildcard(ctx, &wc))

	t1 := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	g1, err := ledger.UpsertWildcardGrant(ctx, "nova", wc.ID, t1)
	require.NoError(t, err)
	g2, err := ledger.UpsertWildcardGrant(ctx, "nova", wc.ID, t2)
	require.NoError(t, err)
	assert.Equal(t, g1.ID, g2.ID)

	grants, err := ledger.ListPlayerWildcards(ctx, "nova")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.True(t, grants[0].AcquiredAt.Equal(t2))

	require.NoError(t, ledger.MarkWildcardUsed(ctx, g1.ID, t2))
	g3, err := ledger.UpsertWildcardGrant(ctx, "nova", wc.ID, t2)
	require.NoError(t, err)
	assert.NotEqual(t, g1.ID, g3.ID)
}

func TestDeleteEdition(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	storetest.CreateEdition(t, db, 2024)
	game := storetest.CreateGame(t, db, "Arena", "Shooters")
	storetest.Enroll(t, db, 2024, "nova", "rex")
	match := storetest.CreateMatch(t, db, 2024, game.ID, models.PhaseGroups, "nova", "rex")
	require.NoError(t, ledger.ReplaceResults(ctx, match.ID, []models.MatchResult{{PlayerNickname: "nova", Position: 1, Won: true}}))
	require.NoError(t, ledger.UpsertStandingsRow(ctx, 2024, "nova", 5, true))

	require.NoError(t, ledger.DeleteEdition(ctx, 2024))

	_, err := ledger.GetEdition(ctx, 2024)
	assert.ErrorIs(t, err, store.ErrNotFound)
	n, err := ledger.CountStandings(ctx, 2024)
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = ledger.GetMatch(ctx, match.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.ErrorIs(t, ledger.DeleteEdition(ctx, 2024), store.ErrNotFound)
}

func TestEnrollmentLookups(t *testing.T) {
	ctx := context.Background()
	ledger, db := newLedger(t)
	storetest.CreateEdition(t, db, 2024)
	storetest.CreateUser(t, db, "nova")
	storetest.CreateUser(t, db, "rex")

	missingUsers, err := ledger.MissingUsers(ctx, []string{"nova", "ghost", "rex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ghost"}, missingUsers)

	require.NoError(t, ledger.ReplaceEditionPlayers(ctx, 2024, []string{"nova", "rex"}))
	require.NoError(t, ledger.ReplaceEditionPlayers(ctx, 2024, []string{"nova"}))

	players, err := ledger.ListEditionPlayers(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, []string{"nova"}, players)

	notEnrolled, err := ledger.NotEnrolled(ctx, 2024, []string{"nova", "rex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"rex"}, notEnrolled)
}
