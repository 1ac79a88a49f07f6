package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drawDay = time.Date(2024, time.May, 1, 10, 30, 0, 0, time.UTC)

func enableWheel(t *testing.T, w *services.WheelService, maxDraws int) {
	t.Helper()
	enabled := true
	_, err := w.UpdateConfig(context.Background(), models.RewardConfigRequest{Enabled: &enabled, MaxDrawsPerDay: &maxDraws})
	require.NoError(t, err)
}

func addItem(t *testing.T, w *services.WheelService, req models.RewardItemRequest) *models.RewardItem {
	t.Helper()
	item, err := w.CreateItem(context.Background(), req)
	require.NoError(t, err)
	return item
}

func TestDrawQuota(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	w := e.wheel(t, drawDay, first)
	enableWheel(t, w, 3)
	addItem(t, w, models.RewardItemRequest{Name: "Confetti", Kind: models.RewardCosmetic, Text: "Nice spin"})

	for _, want := range []int{2, 1, 0} {
		out, err := w.Draw(ctx, "nova")
		require.NoError(t, err)
		assert.Equal(t, want, out.QuotaRemaining)
		assert.Equal(t, "Nice spin", out.DisplayText)
	}

	_, err := w.Draw(ctx, "nova")
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, int64(3), e.count(t, &models.DrawRecord{}, "player_nickname = ?", "nova"))

	// quota is per player and per day
	_, err = w.Draw(ctx, "rex")
	require.NoError(t, err)
	tomorrow := e.wheel(t, drawDay.Add(24*time.Hour), first)
	out, err := tomorrow.Draw(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, 2, out.QuotaRemaining)

	stats, err := tomorrow.Stats(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.DrawsToday)
	assert.Equal(t, 2, stats.Remaining)
	assert.Equal(t, int64(4), stats.TotalDraws)

	history, err := tomorrow.History(ctx, "nova")
	require.NoError(t, err)
	require.Len(t, history, 4)
	assert.Equal(t, "2024-05-02", history[0].DrawDate)
	assert.Equal(t, "10:30:00", history[0].DrawTime)
}

func TestDrawPreconditionOrder(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	w := e.wheel(t, drawDay, first)

	// disabled by default, even without items or quota
	_, err := w.Draw(ctx, "nova")
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, services.Message(err), "disabled")

	enableWheel(t, w, 0)
	_, err = w.Draw(ctx, "nova")
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, services.Message(err), "limit")

	enableWheel(t, w, 3)
	_, err = w.Draw(ctx, "nova")
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, services.Message(err), "no active rewards")

	inactive := false
	addItem(t, w, models.RewardItemRequest{Name: "Hidden", Kind: models.RewardCosmetic, Active: &inactive})
	_, err = w.Draw(ctx, "nova")
	require.ErrorIs(t, err, services.ErrValidation)

	assert.Zero(t, e.count(t, &models.DrawRecord{}, ""))
}

func TestDrawPointsClampAtZero(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2023)
	storetest.CreateEdition(t, e.db, 2024)
	require.NoError(t, e.db.Create(&models.StandingsRow{EditionID: 2024, PlayerNickname: "nova", Points: 3, MatchesPlayed: 2}).Error)

	w := e.wheel(t, drawDay, first)
	enableWheel(t, w, 3)
	item := addItem(t, w, models.RewardItemRequest{Name: "Ouch", Kind: models.RewardPoints, Points: intPtr(-10)})
	assert.Equal(t, "-10", item.DisplayText)

	out, err := w.Draw(ctx, "nova")
	require.NoError(t, err)
	require.NotNil(t, out.PointsDelta)
	assert.Equal(t, -10, *out.PointsDelta)

	row := e.standingsRow(t, 2024, "nova")
	assert.Equal(t, 0, row.Points)
	assert.Equal(t, 2, row.MatchesPlayed)

	var rec models.DrawRecord
	require.NoError(t, e.db.First(&rec).Error)
	require.NotNil(t, rec.PointsDelta)
	assert.Equal(t, -10, *rec.PointsDelta)
}

func TestDrawPointsCreatesRow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2024)

	w := e.wheel(t, drawDay, first)
	enableWheel(t, w, 3)
	addItem(t, w, models.RewardItemRequest{Name: "Bonus", Kind: models.RewardPoints, Text: "+5 points"})

	_, err := w.Draw(ctx, "rex")
	require.NoError(t, err)

	row := e.standingsRow(t, 2024, "rex")
	assert.Equal(t, 5, row.Points)
	assert.Equal(t, 0, row.MatchesPlayed)
	assert.Equal(t, 0, row.MatchesWon)
}

func TestDrawWildcardRefreshesGrant(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	wc, err := e.wildcards.Create(ctx, models.CreateWildcardRequest{Name: "Double Points", ImageURL: "https://img/x2.png"})
	require.NoError(t, err)

	w := e.wheel(t, drawDay, first)
	enableWheel(t, w, 3)
	addItem(t, w, models.RewardItemRequest{Name: "Wildcard slot", Kind: models.RewardWildcard, WildcardID: &wc.ID})

	out, err := w.Draw(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, "Double Points", out.Name)
	assert.Equal(t, "https://img/x2.png", out.ImageURL)

	later := e.wheel(t, drawDay.Add(time.Hour), first)
	_, err = later.Draw(ctx, "nova")
	require.NoError(t, err)

	grants, err := e.wildcards.PlayerGrants(ctx, "nova")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.True(t, grants[0].AcquiredAt.Equal(drawDay.Add(time.Hour)))
	assert.Equal(t, []string{notify.EventWildcardGranted, notify.EventWildcardGranted}, e.events.Types())
}

func TestDrawUsesPicker(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	var seen int
	w := e.wheel(t, drawDay, func(n int) int { seen = n; return n - 1 })
	enableWheel(t, w, 3)
	addItem(t, w, models.RewardItemRequest{Name: "A", Kind: models.RewardCosmetic})
	addItem(t, w, models.RewardItemRequest{Name: "B", Kind: models.RewardCosmetic})

	out, err := w.Draw(ctx, "nova")
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	assert.Equal(t, "B", out.Name)
	assert.Nil(t, out.PointsDelta)
}

func TestCreateItemValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	w := e.wheel(t, drawDay, first)

	_, err := w.CreateItem(ctx, models.RewardItemRequest{Name: "Zero", Kind: models.RewardPoints})
	assert.ErrorIs(t, err, services.ErrValidation)

	missing := uint(99)
	_, err = w.CreateItem(ctx, models.RewardItemRequest{Name: "Ghost", Kind: models.RewardWildcard, WildcardID: &missing})
	assert.ErrorIs(t, err, services.ErrNotFound)

	item := addItem(t, w, models.RewardItemRequest{Name: "Bonus", Kind: models.RewardPoints, Points: intPtr(10)})
	assert.Equal(t, "+10", item.DisplayText)
	assert.True(t, item.Active)

	inactive := false
	updated, err := w.UpdateItem(ctx, item.ID, models.RewardItemRequest{Name: "Bonus", Kind: models.RewardPoints, Points: intPtr(-3), Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "-3", updated.DisplayText)
	assert.False(t, updated.Active)

	require.NoError(t, w.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, w.DeleteItem(ctx, item.ID), services.ErrNotFound)
}

func TestParsePoints(t *testing.T) {
	cases := map[string]int{
		"+10":      10,
		"-5":       -5,
		"7":        7,
		" +3 pts ": 3,
		"points":   0,
		"":         0,
		"+":        0,
		"-0":       0,
		"12abc":    12,
	}
	for in, want := range cases {
		assert.Equal(t, want, services.ParsePoints(in), "input %q", in)
	}
}
