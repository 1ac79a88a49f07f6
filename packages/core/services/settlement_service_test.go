package services_test

import (
	"context"
	"testing"

	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupsMatch(t *testing.T, e *env, players ...string) models.Match {
	t.Helper()
	storetest.CreateEdition(t, e.db, 2024)
	game := storetest.CreateGame(t, e.db, "Arena", "Shooters")
	storetest.Enroll(t, e.db, 2024, players...)
	return storetest.CreateMatch(t, e.db, 2024, game.ID, models.PhaseGroups, players...)
}

func TestSettlementScenario(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex")
	require.NoError(t, e.db.Create(&models.StandingsRow{
		EditionID: 2024, PlayerNickname: "nova", Points: 5, MatchesPlayed: 1, MatchesWon: 1,
	}).Error)

	outcome, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Phase: models.PhaseGroups,
		Results: []models.ResultEntry{
			{Player: "nova", Position: 1, Won: true, Points: intPtr(10)},
			{Player: "rex", Position: 2, Won: false, Points: intPtr(0)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.StandingsUpdated)

	nova := e.standingsRow(t, 2024, "nova")
	assert.Equal(t, 15, nova.Points)
	assert.Equal(t, 2, nova.MatchesPlayed)
	assert.Equal(t, 2, nova.MatchesWon)

	rex := e.standingsRow(t, 2024, "rex")
	assert.Equal(t, 0, rex.Points)
	assert.Equal(t, 1, rex.MatchesPlayed)
	assert.Equal(t, 0, rex.MatchesWon)
}

func TestSettlementReplacesPreviousResults(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex", "zed")

	_, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Phase: "Semifinal",
		Results: []models.ResultEntry{
			{Player: "nova", Position: 1, Won: true, Points: intPtr(10)},
			{Player: "rex", Position: 2, Points: intPtr(5)},
			{Player: "zed", Position: 3, Points: intPtr(1)},
		},
	})
	require.NoError(t, err)

	_, err = e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Phase: "Semifinal",
		Results: []models.ResultEntry{
			{Player: "zed", Position: 1, Won: true, Points: intPtr(10)},
			{Player: "rex", Position: 2, Points: intPtr(5)},
		},
	})
	require.NoError(t, err)

	results, err := e.matches.Results(ctx, match.ID)
	require.NoError(t, err)
	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.PlayerNickname
	}
	if diff := cmp.Diff([]string{"zed", "rex"}, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
	// phases other than Groups and Final do not touch standings
	assert.Zero(t, e.count(t, &models.StandingsRow{}, ""))
}

func TestSettlementRejectsInvalidShapes(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex")

	cases := map[string][]models.ResultEntry{
		"empty":     {},
		"no winner": {{Player: "nova", Position: 1}, {Player: "rex", Position: 2}},
		"two winners": {
			{Player: "nova", Position: 1, Won: true},
			{Player: "rex", Position: 2, Won: true},
		},
		"duplicate position": {
			{Player: "nova", Position: 1, Won: true},
			{Player: "rex", Position: 1},
		},
		"duplicate player": {
			{Player: "nova", Position: 1, Won: true},
			{Player: "nova", Position: 2},
		},
		"zero position":    {{Player: "nova", Position: 0, Won: true}},
		"not in roster":    {{Player: "nova", Position: 1, Won: true}, {Player: "ghost", Position: 2}},
		"negative metrics": {{Player: "nova", Position: 1, Won: true, Metrics: models.ResultMetrics{Kills: intPtr(-1)}}},
	}

	for name, results := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{Phase: models.PhaseGroups, Results: results})
			require.Error(t, err)
			assert.ErrorIs(t, err, services.ErrValidation)

			assert.Zero(t, e.count(t, &models.MatchResult{}, ""))
			assert.Zero(t, e.count(t, &models.StandingsRow{}, ""))
			assert.Zero(t, e.count(t, &models.CategoryStat{}, ""))
		})
	}
}

func TestSettlementNamesFirstNegativeMetric(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova")

	results := []models.ResultEntry{{Player: "nova", Position: 1, Won: true, Metrics: models.ResultMetrics{
		Deaths:       intPtr(-2),
		RoundsLost:   intPtr(-1),
		LevelReached: intPtr(-3),
	}}}
	for i := 0; i < 20; i++ {
		_, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{Results: results})
		require.ErrorIs(t, err, services.ErrValidation)
		assert.Equal(t, "deaths of nova cannot be negative", services.Message(err))
	}
}

func TestSettlementUnknownMatch(t *testing.T) {
	e := newEnv(t)
	_, err := e.settlement.Submit(context.Background(), 404, models.SubmitResultRequest{
		Results: []models.ResultEntry{{Player: "nova", Position: 1, Won: true}},
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStandingsAccumulate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2024)
	game := storetest.CreateGame(t, e.db, "Kart", "Carreras")
	storetest.Enroll(t, e.db, 2024, "nova", "rex")

	submissions := []struct {
		points int
		won    bool
		time   float64
	}{
		{points: 7, won: true, time: 91.2},
		{points: 3, won: false, time: 89.9},
	}
	for _, sub := range submissions {
		match := storetest.CreateMatch(t, e.db, 2024, game.ID, models.PhaseGroups, "nova", "rex")
		raceTime := sub.time
		entries := []models.ResultEntry{
			{Player: "nova", Position: 1, Won: sub.won, Points: intPtr(sub.points), Metrics: models.ResultMetrics{RaceTime: &raceTime}},
			{Player: "rex", Position: 2, Won: !sub.won, Points: intPtr(0)},
		}
		_, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{Phase: models.PhaseGroups, Results: entries})
		require.NoError(t, err)
	}

	nova := e.standingsRow(t, 2024, "nova")
	assert.Equal(t, 10, nova.Points)
	assert.Equal(t, 2, nova.MatchesPlayed)
	assert.Equal(t, 1, nova.MatchesWon)

	stat, err := e.ledger.GetCategoryStat(ctx, models.CategoryStatKey{Player: "nova", CategoryID: game.CategoryID, EditionID: 2024})
	require.NoError(t, err)
	require.NotNil(t, stat.BestRaceTime)
	assert.InDelta(t, 89.9, *stat.BestRaceTime, 1e-9)
	assert.Equal(t, 2, stat.MatchesPlayed)
	assert.Equal(t, 1, stat.MatchesWon)
}

func TestSettlementFinalGrantsChampion(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2024)
	game := storetest.CreateGame(t, e.db, "Arena", "Shooters")
	storetest.Enroll(t, e.db, 2024, "nova", "rex")
	match := storetest.CreateMatch(t, e.db, 2024, game.ID, models.PhaseFinal, "nova", "rex")

	req := models.SubmitResultRequest{
		Results: []models.ResultEntry{
			{Player: "nova", Position: 2, Points: intPtr(0)},
			{Player: "rex", Position: 1, Won: true, Points: intPtr(20)},
		},
	}
	outcome, err := e.settlement.Submit(ctx, match.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.PhaseFinal, outcome.Phase)
	require.NotNil(t, outcome.Achievement)
	assert.Equal(t, models.GrantCreated, outcome.Achievement.Outcome)
	assert.Equal(t, "Edition Champion 2024", outcome.Achievement.Achievement.Name)
	assert.Equal(t, models.SystemGranter, outcome.Achievement.Grant.GrantedBy)
	assert.Equal(t, []string{notify.EventAchievementGranted}, e.events.Types())

	// the final does not feed the standings
	assert.Zero(t, e.count(t, &models.StandingsRow{}, ""))

	outcome, err = e.settlement.Submit(ctx, match.ID, req)
	require.NoError(t, err)
	assert.Equal(t, models.GrantAlreadyHeld, outcome.Achievement.Outcome)
	assert.Equal(t, int64(1), e.count(t, &models.AchievementGrant{}, ""))
	assert.Len(t, e.events.Events(), 1)
}

func TestSettlementFillsPointsFromTable(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex")

	_, err := e.points.Upsert(ctx, models.UpsertPointsRequest{Rules: []models.PointsRuleInput{
		{Kind: models.MatchKindAllVsAll, Position: 1, Points: 12},
		{Kind: models.MatchKindAllVsAll, Position: 2, Points: 6},
	}})
	require.NoError(t, err)

	_, err = e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Phase: models.PhaseGroups,
		Results: []models.ResultEntry{
			{Player: "nova", Position: 1, Won: true},
			{Player: "rex", Position: 2, Points: intPtr(1)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 12, e.standingsRow(t, 2024, "nova").Points)
	assert.Equal(t, 1, e.standingsRow(t, 2024, "rex").Points)
}

func TestSettlementFallsBackToMatchPhase(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex")

	outcome, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Results: []models.ResultEntry{
			{Player: "nova", Position: 1, Won: true, Points: intPtr(3)},
			{Player: "rex", Position: 2, Points: intPtr(1)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PhaseGroups, outcome.Phase)
	assert.Equal(t, 3, e.standingsRow(t, 2024, "nova").Points)
}

func TestSettlementIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	match := groupsMatch(t, e, "nova", "rex")

	_, err := e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Results: []models.ResultEntry{
			{Player: "nova", Position: 1, Won: true, Points: intPtr(10)},
			{Player: "rex", Position: 2, Points: intPtr(3)},
		},
	})
	require.NoError(t, err)

	// results are replaced before the statistics write fails
	require.NoError(t, e.db.Exec("DROP TABLE category_stats").Error)

	_, err = e.settlement.Submit(ctx, match.ID, models.SubmitResultRequest{
		Results: []models.ResultEntry{
			{Player: "rex", Position: 1, Won: true, Points: intPtr(10)},
			{Player: "nova", Position: 2, Points: intPtr(0)},
		},
	})
	require.ErrorIs(t, err, services.ErrPersistence)
	assert.Equal(t, "Internal server error", services.Message(err))

	type result struct {
		Player   string
		Position int
		Points   int
	}
	results, err := e.matches.Results(ctx, match.ID)
	require.NoError(t, err)
	var got []result
	for _, r := range results {
		got = append(got, result{r.PlayerNickname, r.Position, r.Points})
	}
	want := []result{{"nova", 1, 10}, {"rex", 2, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results changed by a failed settlement (-want +got):\n%s", diff)
	}

	nova := e.standingsRow(t, 2024, "nova")
	assert.Equal(t, 10, nova.Points)
	assert.Equal(t, 1, nova.MatchesPlayed)
	assert.Equal(t, 1, nova.MatchesWon)
	rex := e.standingsRow(t, 2024, "rex")
	assert.Equal(t, 3, rex.Points)
	assert.Equal(t, 1, rex.MatchesPlayed)
}
