package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

type MatchService struct {
	ledger store.Ledger
	log    *slog.Logger
}

func NewMatchService(ledger store.Ledger, log *slog.Logger) *MatchService {
	return &MatchService{ledger: ledger, log: logger.OrDefault(log)}
}

func (s *MatchService) Create(ctx context.Context, req models.CreateMatchRequest) (*models.Match, error) {
	const op = "matches.create"

	players, err := validateMatchRequest(op, &req)
	if err != nil {
		return nil, err
	}

	var created *models.Match
	err = s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		if err := s.checkReferences(ctx, tx, op, req, players); err != nil {
			return err
		}

		match := models.Match{
			EditionID:   req.EditionID,
			GameID:      req.GameID,
			ScheduledAt: req.ScheduledAt.UTC(),
			Kind:        req.Kind,
			Phase:       req.Phase,
			VideoURL:    req.VideoURL,
		}
		for _, p := range players {
			match.Participants = append(match.Participants, models.MatchParticipant{PlayerNickname: p})
		}
		if err := tx.CreateMatch(ctx, &match); err != nil {
			return storeError(s.log, op, err, "edition_id", req.EditionID)
		}

		var err error
		created, err = tx.GetMatch(ctx, match.ID)
		return storeError(s.log, op, err, "match_id", match.ID)
	})
	return created, err
}

func (s *MatchService) Get(ctx context.Context, id uint) (*models.Match, error) {
	match, err := s.ledger.GetMatch(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, "matches.get", "match", err, "match_id", id)
	}
	return match, nil
}

// List returns the matches of an edition, the latest edition when editionID is zero.
func (s *MatchService) List(ctx context.Context, editionID uint) ([]models.MatchListItem, error) {
	const op = "matches.list"

	if editionID == 0 {
		latest, err := s.ledger.GetLatestEdition(ctx)
		if err != nil {
			return nil, storeError(s.log, op, err)
		}
		if latest == nil {
			return []models.MatchListItem{}, nil
		}
		editionID = latest.ID
	}
	out, err := s.ledger.ListMatches(ctx, editionID)
	return out, storeError(s.log, op, err, "edition_id", editionID)
}

// Update rewrites the match and replaces its roster.
func (s *MatchService) Update(ctx context.Context, id uint, req models.UpdateMatchRequest) (*models.Match, error) {
	const op = "matches.update"

	players, err := validateMatchRequest(op, &req)
	if err != nil {
		return nil, err
	}

	var updated *models.Match
	err = s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		if _, err := tx.GetMatch(ctx, id); err != nil {
			return lookupError(s.log, op, "match", err, "match_id", id)
		}
		if err := s.checkReferences(ctx, tx, op, req, players); err != nil {
			return err
		}

		fields := models.Fields{
			"edition_id":   req.EditionID,
			"game_id":      req.GameID,
			"scheduled_at": req.ScheduledAt.UTC(),
			"kind":         req.Kind,
			"phase":        req.Phase,
			"video_url":    req.VideoURL,
		}
		if err := tx.Update(ctx, &models.Match{}, id, fields); err != nil {
			return storeError(s.log, op, err, "match_id", id)
		}
		if err := tx.ReplaceMatchParticipants(ctx, id, players); err != nil {
			return storeError(s.log, op, err, "match_id", id)
		}

		var err error
		updated, err = tx.GetMatch(ctx, id)
		return storeError(s.log, op, err, "match_id", id)
	})
	return updated, err
}

func (s *MatchService) Delete(ctx context.Context, id uint) error {
	if err := s.ledger.DeleteMatch(ctx, id); err != nil {
		return lookupError(s.log, "matches.delete", "match", err, "match_id", id)
	}
	return nil
}

// Results returns the stored results ordered by position.
func (s *MatchService) Results(ctx context.Context, id uint) ([]models.MatchResult, error) {
	const op = "matches.results"

	if _, err := s.ledger.GetMatch(ctx, id); err != nil {
		return nil, lookupError(s.log, op, "match", err, "match_id", id)
	}
	out, err := s.ledger.ListResults(ctx, id)
	return out, storeError(s.log, op, err, "match_id", id)
}

func validateMatchRequest(op string, req *models.CreateMatchRequest) ([]string, error) {
	if req.Kind != models.MatchKindPVP && req.Kind != models.MatchKindAllVsAll {
		return nil, validationError(op, "kind must be %s or %s", models.MatchKindPVP, models.MatchKindAllVsAll)
	}
	if req.ScheduledAt.IsZero() {
		return nil, validationError(op, "scheduled_at is required")
	}
	req.Phase = strings.TrimSpace(req.Phase)
	if req.Phase == "" {
		req.Phase = models.PhaseGroups
	}

	players := uniqueStrings(req.Players)
	if len(players) == 0 {
		return nil, validationError(op, "at least one player is required")
	}
	if req.Kind == models.MatchKindPVP && len(players) != 2 {
		return nil, validationError(op, "a PVP match needs exactly two players")
	}
	return players, nil
}

// checkReferences verifies the edition and game exist and every player is enrolled.
func (s *MatchService) checkReferences(ctx context.Context, tx store.Ledger, op string, req models.CreateMatchRequest, players []string) error {
	if _, err := tx.GetEdition(ctx, req.EditionID); err != nil {
		return lookupError(s.log, op, "edition", err, "edition_id", req.EditionID)
	}
	if _, err := tx.GetGame(ctx, req.GameID); err != nil {
		return lookupError(s.log, op, "game", err, "game_id", req.GameID)
	}
	unenrolled, err := tx.NotEnrolled(ctx, req.EditionID, players)
	if err != nil {
		return storeError(s.log, op, err, "edition_id", req.EditionID)
	}
	if len(unenrolled) > 0 {
		return validationError(op, "players not enrolled in edition %d: %s", req.EditionID, strings.Join(unenrolled, ", "))
	}
	return nil
}
