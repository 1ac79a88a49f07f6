package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

const (
	MinEditionID = 2000
	MaxEditionID = 2100
)

type EditionService struct {
	ledger    store.Ledger
	snapshots *SnapshotService
	log       *slog.Logger
}

func NewEditionService(ledger store.Ledger, snapshots *SnapshotService, log *slog.Logger) *EditionService {
	return &EditionService{ledger: ledger, snapshots: snapshots, log: logger.OrDefault(log)}
}

// Create adds a new edition and archives the standings of the edition right below it,
// in one transaction.
func (s *EditionService) Create(ctx context.Context, req models.CreateEditionRequest) (*models.CreateEditionResponse, error) {
	const op = "editions.create"

	if req.ID < MinEditionID || req.ID > MaxEditionID {
		return nil, validationError(op, "edition id must be a year between %d and %d", MinEditionID, MaxEditionID)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, validationError(op, "end date must be after start date")
	}

	resp := &models.CreateEditionResponse{}
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		if _, err := tx.GetEdition(ctx, req.ID); err == nil {
			return conflictError(op, "edition %d already exists", req.ID)
		} else if !isNotFound(err) {
			return storeError(s.log, op, err, "edition_id", req.ID)
		}

		edition := models.Edition{ID: req.ID, StartDate: req.StartDate.UTC(), EndDate: req.EndDate.UTC()}
		if err := tx.CreateEdition(ctx, &edition); err != nil {
			return storeError(s.log, op, err, "edition_id", req.ID)
		}
		resp.Edition = edition

		previous, err := tx.GetPreviousEdition(ctx, req.ID)
		if err != nil {
			return storeError(s.log, op, err, "edition_id", req.ID)
		}
		if previous == nil {
			return nil
		}
		resp.Snapshot, err = s.snapshots.snapshotIn(ctx, tx, previous.ID, fmt.Sprintf("New edition %d created", req.ID))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("edition created", "edition_id", req.ID)
	s.snapshots.NotifyArchived(ctx, resp.Snapshot)
	return resp, nil
}

func (s *EditionService) List(ctx context.Context) ([]models.Edition, error) {
	out, err := s.ledger.ListEditions(ctx)
	return out, storeError(s.log, "editions.list", err)
}

func (s *EditionService) Get(ctx context.Context, id uint) (*models.Edition, error) {
	edition, err := s.ledger.GetEdition(ctx, id)
	if err != nil {
		return nil, lookupError(s.log, "editions.get", "edition", err, "edition_id", id)
	}
	return edition, nil
}

// Latest returns the active edition, the one with the highest id.
func (s *EditionService) Latest(ctx context.Context) (*models.Edition, error) {
	const op = "editions.latest"

	edition, err := s.ledger.GetLatestEdition(ctx)
	if err != nil {
		return nil, storeError(s.log, op, err)
	}
	if edition == nil {
		return nil, notFoundError(op, "no edition exists")
	}
	return s.Get(ctx, edition.ID)
}

func (s *EditionService) Update(ctx context.Context, id uint, req models.UpdateEditionRequest) (*models.Edition, error) {
	const op = "editions.update"

	var updated *models.Edition
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		current, err := tx.GetEdition(ctx, id)
		if err != nil {
			return lookupError(s.log, op, "edition", err, "edition_id", id)
		}

		fields := models.Fields{}
		start, end := current.StartDate, current.EndDate
		if req.StartDate != nil {
			start = req.StartDate.UTC()
			fields.Set("start_date", start)
		}
		if req.EndDate != nil {
			end = req.EndDate.UTC()
			fields.Set("end_date", end)
		}
		if !end.After(start) {
			return validationError(op, "end date must be after start date")
		}

		if err := tx.Update(ctx, &models.Edition{}, id, fields); err != nil {
			return storeError(s.log, op, err, "edition_id", id)
		}
		updated, err = tx.GetEdition(ctx, id)
		return storeError(s.log, op, err, "edition_id", id)
	})
	return updated, err
}

func (s *EditionService) Delete(ctx context.Context, id uint) error {
	if err := s.ledger.DeleteEdition(ctx, id); err != nil {
		return lookupError(s.log, "editions.delete", "edition", err, "edition_id", id)
	}
	s.log.Info("edition deleted", "edition_id", id)
	return nil
}

// Enroll replaces the edition roster. Every player must have an account.
func (s *EditionService) Enroll(ctx context.Context, id uint, req models.EnrollPlayersRequest) ([]string, error) {
	const op = "editions.enroll"

	players := uniqueStrings(req.Players)
	if len(players) == 0 {
		return nil, validationError(op, "at least one player is required")
	}

	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		if _, err := tx.GetEdition(ctx, id); err != nil {
			return lookupError(s.log, op, "edition", err, "edition_id", id)
		}
		unknown, err := tx.MissingUsers(ctx, players)
		if err != nil {
			return storeError(s.log, op, err, "edition_id", id)
		}
		if len(unknown) > 0 {
			return notFoundError(op, "players not found: %s", strings.Join(unknown, ", "))
		}
		return storeError(s.log, op, tx.ReplaceEditionPlayers(ctx, id, players), "edition_id", id)
	})
	if err != nil {
		return nil, err
	}
	return players, nil
}

// AssignGames replaces the games played in the edition.
func (s *EditionService) AssignGames(ctx context.Context, id uint, req models.AssignGamesRequest) ([]uint, error) {
	const op = "editions.assign_games"

	games := uniqueIDs(req.Games)
	if len(games) == 0 {
		return nil, validationError(op, "at least one game is required")
	}

	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		if _, err := tx.GetEdition(ctx, id); err != nil {
			return lookupError(s.log, op, "edition", err, "edition_id", id)
		}
		unknown, err := tx.MissingGames(ctx, games)
		if err != nil {
			return storeError(s.log, op, err, "edition_id", id)
		}
		if len(unknown) > 0 {
			return notFoundError(op, "games not found: %v", unknown)
		}
		return storeError(s.log, op, tx.ReplaceEditionGames(ctx, id, games), "edition_id", id)
	})
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (s *EditionService) Players(ctx context.Context, id uint) ([]string, error) {
	const op = "editions.players"

	if _, err := s.ledger.GetEdition(ctx, id); err != nil {
		return nil, lookupError(s.log, op, "edition", err, "edition_id", id)
	}
	players, err := s.ledger.ListEditionPlayers(ctx, id)
	return players, storeError(s.log, op, err, "edition_id", id)
}
