package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/gorm"
)

// Options sizes the generated data set.
type Options struct {
	Players  int
	Matches  int
	Seed     uint64
	Edition  uint
	Settled  float64 // share of matches that receive results
	AdminNic string
}

func DefaultOptions() Options {
	return Options{
		Players:  10,
		Matches:  40,
		Edition:  uint(time.Now().Year()),
		Settled:  0.7,
		AdminNic: "admin",
	}
}

// Fixtures fills a database with demo data. Matches are settled through the core services
// so standings, statistics and achievements come out consistent.
type Fixtures struct {
	db    *gorm.DB
	core  *core.Module
	faker *gofakeit.Faker
	opts  Options
	log   *slog.Logger
}

func NewFixtures(db *gorm.DB, module *core.Module, opts Options, log *slog.Logger) *Fixtures {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Fixtures{
		db:    db,
		core:  module,
		faker: gofakeit.New(seed),
		opts:  opts,
		log:   logger.OrDefault(log),
	}
}

var categoryNames = []string{"Shooters", "Sports", "Racing", "Fighting", "Platform"}

var gamesByCategory = map[string][]string{
	"Shooters": {"Arena Strike", "Sniper Valley"},
	"Sports":   {"Pitch Legends"},
	"Racing":   {"Turbo Circuit"},
	"Fighting": {"Iron Fist Duel"},
	"Platform": {"Sky Hopper"},
}

// GenerateTestData creates players, one edition with games, matches and results, the
// points table, wildcards and wheel items.
func (f *Fixtures) GenerateTestData(ctx context.Context) error {
	if f.opts.Players < 3 {
		return fmt.Errorf("at least 3 players are needed, got %d", f.opts.Players)
	}

	players, err := f.generateUsers()
	if err != nil {
		return fmt.Errorf("failed to generate users: %w", err)
	}

	games, err := f.generateGames()
	if err != nil {
		return fmt.Errorf("failed to generate games: %w", err)
	}

	if err := f.generatePointsTable(ctx); err != nil {
		return fmt.Errorf("failed to generate points table: %w", err)
	}

	edition, err := f.generateEdition(ctx, players, games)
	if err != nil {
		return fmt.Errorf("failed to generate edition: %w", err)
	}

	settled, err := f.generateMatches(ctx, edition, players, games)
	if err != nil {
		return fmt.Errorf("failed to generate matches: %w", err)
	}

	if err := f.generateRewards(ctx); err != nil {
		return fmt.Errorf("failed to generate rewards: %w", err)
	}

	f.log.Info("fixtures generated",
		"players", len(players),
		"games", len(games),
		"edition_id", edition.ID,
		"matches", f.opts.Matches,
		"settled", settled,
	)
	return nil
}

func (f *Fixtures) generateUsers() ([]string, error) {
	admin := authModels.User{
		Nickname: f.opts.AdminNic,
		Email:    f.opts.AdminNic + "@realtaker.local",
		Enabled:  true,
		Roles:    authModels.Roles{authModels.RolePlayer, authModels.RoleAdmin},
	}
	if err := f.db.Create(&admin).Error; err != nil {
		return nil, err
	}

	seen := map[string]bool{f.opts.AdminNic: true}
	players := make([]string, 0, f.opts.Players)
	for len(players) < f.opts.Players {
		nickname := strings.ToLower(f.faker.Username())
		if seen[nickname] {
			continue
		}
		seen[nickname] = true

		user := authModels.User{
			Nickname: nickname,
			Email:    nickname + "@realtaker.local",
			Enabled:  true,
			Roles:    authModels.GetDefaultRoles(),
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}
		players = append(players, nickname)
	}
	return players, nil
}

func (f *Fixtures) generateGames() ([]models.Game, error) {
	var games []models.Game
	for _, name := range categoryNames {
		category := models.Category{Name: name, Kind: models.ParseCategoryKind(name)}
		if err := f.db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error; err != nil {
			return nil, err
		}
		for _, title := range gamesByCategory[name] {
			game := models.Game{Name: title, CategoryID: category.ID}
			if err := f.db.Omit("Category").Create(&game).Error; err != nil {
				return nil, err
			}
			game.Category = category
			games = append(games, game)
		}
	}
	return games, nil
}

func (f *Fixtures) generatePointsTable(ctx context.Context) error {
	req := models.UpsertPointsRequest{Rules: []models.PointsRuleInput{
		{Kind: models.MatchKindPVP, Position: 1, Points: 3},
		{Kind: models.MatchKindPVP, Position: 2, Points: 0},
		{Kind: models.MatchKindAllVsAll, Position: 1, Points: 10},
		{Kind: models.MatchKindAllVsAll, Position: 2, Points: 6},
		{Kind: models.MatchKindAllVsAll, Position: 3, Points: 3},
		{Kind: models.MatchKindAllVsAll, Position: 4, Points: 1},
	}}
	_, err := f.core.PointsService.Upsert(ctx, req)
	return err
}

func (f *Fixtures) generateEdition(ctx context.Context, players []string, games []models.Game) (*models.Edition, error) {
	year := int(f.opts.Edition)
	resp, err := f.core.EditionService.Create(ctx, models.CreateEditionRequest{
		ID:        f.opts.Edition,
		StartDate: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		return nil, err
	}

	if _, err := f.core.EditionService.Enroll(ctx, resp.Edition.ID, models.EnrollPlayersRequest{Players: players}); err != nil {
		return nil, err
	}
	ids := make([]uint, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	if _, err := f.core.EditionService.AssignGames(ctx, resp.Edition.ID, models.AssignGamesRequest{Games: ids}); err != nil {
		return nil, err
	}
	return &resp.Edition, nil
}

// generateMatches schedules matches across the edition and settles a share of them.
// The last settled match is a final so the champion achievement exists.
func (f *Fixtures) generateMatches(ctx context.Context, edition *models.Edition, players []string, games []models.Game) (int, error) {
	settled := 0
	for i := 0; i < f.opts.Matches; i++ {
		game := games[f.faker.Number(0, len(games)-1)]
		kind := models.MatchKindAllVsAll
		size := f.faker.Number(3, min(6, len(players)))
		if f.faker.Bool() {
			kind = models.MatchKindPVP
			size = 2
		}
		phase := models.PhaseGroups
		if i == f.opts.Matches-1 {
			phase = models.PhaseFinal
		}

		roster := f.pickPlayers(players, size)
		match, err := f.core.MatchService.Create(ctx, models.CreateMatchRequest{
			EditionID:   edition.ID,
			GameID:      game.ID,
			ScheduledAt: f.faker.DateRange(edition.StartDate, edition.EndDate),
			Kind:        kind,
			Phase:       phase,
			Players:     roster,
		})
		if err != nil {
			return settled, err
		}

		if phase != models.PhaseFinal && f.faker.Float64Range(0, 1) > f.opts.Settled {
			continue
		}
		req := models.SubmitResultRequest{Results: f.results(roster, game.Category.ResolvedKind())}
		if _, err := f.core.SettlementService.Submit(ctx, match.ID, req); err != nil {
			return settled, err
		}
		settled++
	}
	return settled, nil
}

func (f *Fixtures) pickPlayers(players []string, n int) []string {
	shuffled := append([]string(nil), players...)
	f.faker.ShuffleAnySlice(shuffled)
	return shuffled[:n]
}

// results ranks the roster in order and fills the metrics of the category kind.
func (f *Fixtures) results(roster []string, kind models.CategoryKind) []models.ResultEntry {
	entries := make([]models.ResultEntry, len(roster))
	for i, player := range roster {
		entries[i] = models.ResultEntry{
			Player:   player,
			Position: i + 1,
			Won:      i == 0,
			Metrics:  f.metrics(kind, i),
		}
	}
	return entries
}

func (f *Fixtures) metrics(kind models.CategoryKind, rank int) models.ResultMetrics {
	n := func(lo, hi int) *int { v := f.faker.Number(lo, hi); return &v }
	switch kind {
	case models.KindShooter:
		return models.ResultMetrics{Kills: n(5, 30), Deaths: n(0, 20)}
	case models.KindSports:
		return models.ResultMetrics{GoalsFor: n(0, 5), GoalsAgainst: n(0, 5)}
	case models.KindRacing:
		t := 60 + float64(rank)*2.5 + f.faker.Float64Range(0, 5)
		return models.ResultMetrics{RaceTime: &t}
	case models.KindFighting:
		return models.ResultMetrics{RoundsWon: n(0, 3), RoundsLost: n(0, 3)}
	case models.KindPlatform:
		return models.ResultMetrics{LevelReached: n(1, 12)}
	}
	return models.ResultMetrics{}
}

func (f *Fixtures) generateRewards(ctx context.Context) error {
	var wildcards []models.Wildcard
	for _, name := range []string{"Double Points", "Skip Match", "Pick Your Game"} {
		wc, err := f.core.WildcardService.Create(ctx, models.CreateWildcardRequest{
			Name:        name,
			Description: f.faker.Sentence(8),
		})
		if err != nil {
			return err
		}
		wildcards = append(wildcards, *wc)
	}

	items := []models.RewardItemRequest{
		{Name: "Bonus points", Kind: models.RewardPoints, Text: "+5"},
		{Name: "Big bonus", Kind: models.RewardPoints, Text: "+10"},
		{Name: "Penalty", Kind: models.RewardPoints, Text: "-3"},
		{Name: "Confetti", Kind: models.RewardCosmetic, Text: "Better luck next time"},
	}
	for i := range wildcards {
		items = append(items, models.RewardItemRequest{Name: wildcards[i].Name, Kind: models.RewardWildcard, WildcardID: &wildcards[i].ID})
	}
	for _, item := range items {
		if _, err := f.core.WheelService.CreateItem(ctx, item); err != nil {
			return err
		}
	}

	enabled, draws := true, 3
	_, err := f.core.WheelService.UpdateConfig(ctx, models.RewardConfigRequest{Enabled: &enabled, MaxDrawsPerDay: &draws})
	return err
}

// fixtureTables lists every table filled by the fixtures, children first.
var fixtureTables = []string{
	"draw_records", "reward_items", "reward_config",
	"wildcard_grants", "wildcards",
	"achievement_grants", "achievements",
	"historical_standings", "edition_snapshots",
	"category_stats", "standings",
	"match_results", "match_participants", "matches",
	"points_rules",
	"edition_games", "edition_participants", "editions",
	"games", "categories",
	"users",
}

// ClearAllData deletes the rows of every fixture table.
func (f *Fixtures) ClearAllData() error {
	return f.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range fixtureTables {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		f.log.Info("fixture data cleared", "tables", len(fixtureTables))
		return nil
	})
}
