package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// SettlementService records match results and derives standings, category statistics
// and the champion achievement from them.
type SettlementService struct {
	ledger        store.Ledger
	standings     *StandingsService
	categoryStats *CategoryStatsService
	achievements  *AchievementService
	metrics       *metrics.Metrics
	log           *slog.Logger
}

func NewSettlementService(
	ledger store.Ledger,
	standings *StandingsService,
	categoryStats *CategoryStatsService,
	achievements *AchievementService,
	m *metrics.Metrics,
	log *slog.Logger,
) *SettlementService {
	return &SettlementService{
		ledger:        ledger,
		standings:     standings,
		categoryStats: categoryStats,
		achievements:  achievements,
		metrics:       m,
		log:           logger.OrDefault(log),
	}
}

// Submit replaces the results of matchID with results. On the Groups phase every entry
// updates standings and category statistics; on the Final phase the winner receives the
// edition champion achievement. Everything commits or nothing does. An empty phase
// falls back to the phase stored on the match.
func (s *SettlementService) Submit(ctx context.Context, matchID uint, req models.SubmitResultRequest) (*models.SettlementOutcome, error) {
	const op = "settlement.submit"

	if err := validateResults(op, req.Results); err != nil {
		s.metrics.Settlement(req.Phase, "rejected")
		return nil, err
	}

	var outcome *models.SettlementOutcome
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		match, err := tx.GetMatch(ctx, matchID)
		if err != nil {
			return lookupError(s.log, op, "match", err, "match_id", matchID)
		}
		if _, err := tx.GetEdition(ctx, match.EditionID); err != nil {
			return lookupError(s.log, op, "edition", err, "match_id", matchID, "edition_id", match.EditionID)
		}

		roster := make(map[string]struct{}, len(match.Participants))
		for _, p := range match.Roster() {
			roster[p] = struct{}{}
		}
		for _, r := range req.Results {
			if _, ok := roster[strings.TrimSpace(r.Player)]; !ok {
				return validationError(op, "player %s is not in the roster of match %d", r.Player, matchID)
			}
		}

		phase := strings.TrimSpace(req.Phase)
		if phase == "" {
			phase = match.Phase
		}

		results, err := s.buildResults(ctx, tx, match, req.Results)
		if err != nil {
			return err
		}
		if err := tx.ReplaceResults(ctx, matchID, results); err != nil {
			return storeError(s.log, op, err, "match_id", matchID)
		}

		outcome = &models.SettlementOutcome{
			MatchID:   matchID,
			EditionID: match.EditionID,
			Phase:     phase,
			Results:   results,
		}

		switch phase {
		case models.PhaseGroups:
			standings := s.standings.WithTx(tx)
			categoryStats := s.categoryStats.WithTx(tx)
			for _, r := range results {
				if err := standings.ApplyResult(ctx, match.EditionID, r.PlayerNickname, r.Points, r.Won); err != nil {
					return err
				}
				if err := categoryStats.Apply(ctx, r.PlayerNickname, match.Game.Category, match.EditionID, r); err != nil {
					return err
				}
			}
			outcome.StandingsUpdated = len(results)

		case models.PhaseFinal:
			for _, r := range results {
				if !r.Won {
					continue
				}
				grant, err := s.achievements.WithTx(tx).Grant(ctx, r.PlayerNickname,
					models.ChampionAchievementName(match.EditionID), models.SystemGranter)
				if err != nil {
					return err
				}
				outcome.Achievement = grant
			}
		}
		return nil
	})
	if err != nil {
		s.metrics.Settlement(req.Phase, "error")
		return nil, err
	}

	s.metrics.Settlement(outcome.Phase, "ok")
	s.log.Info("match settled",
		"match_id", matchID, "edition_id", outcome.EditionID, "phase", outcome.Phase, "results", len(outcome.Results))
	s.achievements.NotifyGranted(ctx, outcome.Achievement)
	return outcome, nil
}

// buildResults turns entries into rows. Entries without points take them from the
// points table of the match kind, or 0 when the position has no rule.
func (s *SettlementService) buildResults(ctx context.Context, tx store.Ledger, match *models.Match, entries []models.ResultEntry) ([]models.MatchResult, error) {
	var table map[int]int
	for _, e := range entries {
		if e.Points == nil {
			var err error
			table, err = tx.PointsTable(ctx, match.Kind)
			if err != nil {
				return nil, storeError(s.log, "settlement.points", err, "match_id", match.ID)
			}
			break
		}
	}

	results := make([]models.MatchResult, 0, len(entries))
	for _, e := range entries {
		points := table[e.Position]
		if e.Points != nil {
			points = *e.Points
		}
		results = append(results, models.MatchResult{
			MatchID:        match.ID,
			PlayerNickname: strings.TrimSpace(e.Player),
			Position:       e.Position,
			Won:            e.Won,
			Points:         points,
			Metrics:        e.Metrics,
		})
	}
	return results, nil
}

// validateResults checks the shape of a submission before anything is read or written.
func validateResults(op string, entries []models.ResultEntry) error {
	if len(entries) == 0 {
		return validationError(op, "results cannot be empty")
	}

	winners := 0
	positions := make(map[int]struct{}, len(entries))
	players := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		player := strings.TrimSpace(e.Player)
		if player == "" {
			return validationError(op, "every result needs a player")
		}
		if _, dup := players[player]; dup {
			return validationError(op, "player %s appears more than once", player)
		}
		players[player] = struct{}{}

		if e.Position < 1 {
			return validationError(op, "position of %s must be at least 1", player)
		}
		if _, dup := positions[e.Position]; dup {
			return validationError(op, "position %d is assigned more than once", e.Position)
		}
		positions[e.Position] = struct{}{}

		if e.Won {
			winners++
		}
		if err := validateMetrics(op, player, e.Metrics); err != nil {
			return err
		}
	}
	if winners != 1 {
		return validationError(op, "exactly one winner is required, got %d", winners)
	}
	return nil
}

func validateMetrics(op, player string, m models.ResultMetrics) error {
	counters := []struct {
		name  string
		value *int
	}{
		{"kills", m.Kills},
		{"deaths", m.Deaths},
		{"goals_for", m.GoalsFor},
		{"goals_against", m.GoalsAgainst},
		{"rounds_won", m.RoundsWon},
		{"rounds_lost", m.RoundsLost},
		{"level_reached", m.LevelReached},
	}
	for _, c := range counters {
		if c.value != nil && *c.value < 0 {
			return validationError(op, "%s of %s cannot be negative", c.name, player)
		}
	}
	if m.RaceTime != nil && *m.RaceTime <= 0 {
		return validationError(op, "race_time of %s must be positive", player)
	}
	return nil
}
