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

func seedStandings(t *testing.T, e *env, editionID uint, rows ...models.StandingsRow) {
	t.Helper()
	for _, r := range rows {
		r.EditionID = editionID
		require.NoError(t, e.db.Create(&r).Error)
	}
}

func TestSnapshotIsSingleShot(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2023)
	seedStandings(t, e, 2023,
		models.StandingsRow{PlayerNickname: "nova", Points: 15, MatchesPlayed: 2, MatchesWon: 2},
		models.StandingsRow{PlayerNickname: "rex", Points: 0, MatchesPlayed: 1},
	)

	res, err := e.snapshots.Snapshot(ctx, 2023, "closing")
	require.NoError(t, err)
	assert.Equal(t, models.SnapshotCreated, res.Outcome)
	assert.Equal(t, 2, res.Rows)

	// later changes to live standings do not leak into history
	require.NoError(t, e.db.Model(&models.StandingsRow{}).Where("player_nickname = ?", "rex").Update("points", 50).Error)

	again, err := e.snapshots.Snapshot(ctx, 2023, "again")
	require.NoError(t, err)
	assert.Equal(t, models.SnapshotAlreadyExists, again.Outcome)
	assert.Equal(t, int64(2), e.count(t, &models.HistoricalStanding{}, "edition_id = ?", 2023))

	table, err := e.snapshots.Table(ctx, 2023)
	require.NoError(t, err)
	assert.Equal(t, "closing", table.Reason)
	require.NotNil(t, table.Edition)
	points := map[string]int{}
	for _, r := range table.Rows {
		points[r.PlayerNickname] = r.Points
	}
	assert.Equal(t, map[string]int{"nova": 15, "rex": 0}, points)

	assert.Equal(t, []string{notify.EventEditionArchived}, e.events.Types())
}

func TestSnapshotWithoutStandings(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2023)

	res, err := e.snapshots.Snapshot(ctx, 2023, "empty")
	require.NoError(t, err)
	assert.Equal(t, models.SnapshotNoData, res.Outcome)
	assert.Zero(t, e.count(t, &models.EditionSnapshot{}, ""))

	_, err = e.snapshots.Table(ctx, 2023)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSnapshotManual(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.snapshots.SnapshotManual(ctx, 2023, "")
	assert.ErrorIs(t, err, services.ErrNotFound)

	storetest.CreateEdition(t, e.db, 2023)
	storetest.CreateEdition(t, e.db, 2024)
	seedStandings(t, e, 2023, models.StandingsRow{PlayerNickname: "nova", Points: 4, MatchesPlayed: 1})
	seedStandings(t, e, 2024, models.StandingsRow{PlayerNickname: "nova", Points: 1, MatchesPlayed: 1})

	// the active edition is archived only when the next one is created
	_, err = e.snapshots.SnapshotManual(ctx, 2024, "")
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Zero(t, e.count(t, &models.EditionSnapshot{}, "edition_id = ?", 2024))

	res, err := e.snapshots.SnapshotManual(ctx, 2023, " ")
	require.NoError(t, err)
	assert.Equal(t, models.SnapshotCreated, res.Outcome)

	list, err := e.snapshots.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Manual snapshot of edition 2023", list[0].Reason)
	assert.Equal(t, int64(1), list[0].TotalPlayers)
}

func TestArchiveFinished(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2022)
	storetest.CreateEdition(t, e.db, 2023)
	storetest.CreateEdition(t, e.db, 2100)
	seedStandings(t, e, 2022, models.StandingsRow{PlayerNickname: "nova", Points: 1, MatchesPlayed: 1})
	seedStandings(t, e, 2023, models.StandingsRow{PlayerNickname: "rex", Points: 2, MatchesPlayed: 1})
	seedStandings(t, e, 2100, models.StandingsRow{PlayerNickname: "ace", Points: 3, MatchesPlayed: 1})

	_, err := e.snapshots.Snapshot(ctx, 2022, "early")
	require.NoError(t, err)

	results, err := e.snapshots.ArchiveFinished(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, uint(2023), results[0].EditionID)
	assert.Equal(t, models.SnapshotCreated, results[0].Outcome)

	snap := models.EditionSnapshot{}
	require.NoError(t, e.db.Where("edition_id = ?", 2023).First(&snap).Error)
	assert.Equal(t, "Edition 2023 finished", snap.Reason)
	assert.Zero(t, e.count(t, &models.EditionSnapshot{}, "edition_id = ?", 2100))
}

func TestActiveEditionArchivedWhenNextIsCreated(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	// ended in the past but still the highest edition
	storetest.CreateEdition(t, e.db, 2024)
	seedStandings(t, e, 2024, models.StandingsRow{PlayerNickname: "nova", Points: 5, MatchesPlayed: 1})

	results, err := e.snapshots.ArchiveFinished(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, e.count(t, &models.EditionSnapshot{}, ""))

	// standings of the active edition keep moving after its end date
	require.NoError(t, e.standings.ApplyResult(ctx, 2024, "nova", 10, false))

	resp, err := e.editions.Create(ctx, models.CreateEditionRequest{
		ID:        2025,
		StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Snapshot)
	assert.Equal(t, models.SnapshotCreated, resp.Snapshot.Outcome)

	table, err := e.snapshots.Table(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 15, table.Rows[0].Points)
	assert.Equal(t, "New edition 2025 created", table.Reason)

	results, err = e.snapshots.ArchiveFinished(ctx)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCreateEditionArchivesPrevious(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	storetest.CreateEdition(t, e.db, 2022)
	storetest.CreateEdition(t, e.db, 2023)
	seedStandings(t, e, 2022, models.StandingsRow{PlayerNickname: "old", Points: 9, MatchesPlayed: 3})
	seedStandings(t, e, 2023, models.StandingsRow{PlayerNickname: "nova", Points: 15, MatchesPlayed: 2, MatchesWon: 2})

	resp, err := e.editions.Create(ctx, models.CreateEditionRequest{
		ID:        2024,
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Snapshot)
	assert.Equal(t, uint(2023), resp.Snapshot.EditionID)
	assert.Equal(t, models.SnapshotCreated, resp.Snapshot.Outcome)

	var snap models.EditionSnapshot
	require.NoError(t, e.db.Where("edition_id = ?", 2023).First(&snap).Error)
	assert.Equal(t, "New edition 2024 created", snap.Reason)
	assert.Zero(t, e.count(t, &models.EditionSnapshot{}, "edition_id = ?", 2022))

	latest, err := e.editions.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2024), latest.ID)
}

func TestCreateFirstEdition(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	resp, err := e.editions.Create(ctx, models.CreateEditionRequest{ID: 2024, StartDate: start, EndDate: start.AddDate(1, 0, 0)})
	require.NoError(t, err)
	assert.Nil(t, resp.Snapshot)

	_, err = e.editions.Create(ctx, models.CreateEditionRequest{ID: 2024, StartDate: start, EndDate: start.AddDate(1, 0, 0)})
	assert.ErrorIs(t, err, services.ErrConflict)

	// an older edition added later has nothing below it
	resp, err = e.editions.Create(ctx, models.CreateEditionRequest{ID: 2020, StartDate: start, EndDate: start.AddDate(1, 0, 0)})
	require.NoError(t, err)
	assert.Nil(t, resp.Snapshot)
}

func TestCreateEditionValidation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for name, req := range map[string]models.CreateEditionRequest{
		"year too small":   {ID: 1999, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
		"year too large":   {ID: 2101, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
		"end before start": {ID: 2024, StartDate: start, EndDate: start.AddDate(0, -1, 0)},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := e.editions.Create(ctx, req)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
	assert.Zero(t, e.count(t, &models.Edition{}, ""))
}
