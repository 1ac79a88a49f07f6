package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

// SnapshotService archives edition standings into the immutable history tables.
type SnapshotService struct {
	ledger   store.Ledger
	notifier *notify.Notifier
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      Clock
}

func NewSnapshotService(ledger store.Ledger, notifier *notify.Notifier, m *metrics.Metrics, log *slog.Logger) *SnapshotService {
	return &SnapshotService{
		ledger:   ledger,
		notifier: notifier,
		metrics:  m,
		log:      logger.OrDefault(log),
		now:      systemClock,
	}
}

// Snapshot archives the standings of editionID once. A second call reports
// SnapshotAlreadyExists and an edition without standings reports SnapshotNoData.
func (s *SnapshotService) Snapshot(ctx context.Context, editionID uint, reason string) (*models.SnapshotResult, error) {
	var result *models.SnapshotResult
	err := s.ledger.Transaction(ctx, func(tx store.Ledger) error {
		var err error
		result, err = s.snapshotIn(ctx, tx, editionID, reason)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.NotifyArchived(ctx, result)
	return result, nil
}

// SnapshotManual archives an existing edition on administrator request. The active edition
// is rejected: its standings still change, and it is archived when the next one is created.
func (s *SnapshotService) SnapshotManual(ctx context.Context, editionID uint, reason string) (*models.SnapshotResult, error) {
	const op = "history.snapshot"

	if _, err := s.ledger.GetEdition(ctx, editionID); err != nil {
		return nil, lookupError(s.log, op, "edition", err, "edition_id", editionID)
	}
	latest, err := s.ledger.GetLatestEdition(ctx)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}
	if latest != nil && latest.ID == editionID {
		return nil, validationError(op, "edition %d is still active", editionID)
	}
	if strings.TrimSpace(reason) == "" {
		reason = fmt.Sprintf("Manual snapshot of edition %d", editionID)
	}
	return s.Snapshot(ctx, editionID, reason)
}

func (s *SnapshotService) snapshotIn(ctx context.Context, tx store.Ledger, editionID uint, reason string) (*models.SnapshotResult, error) {
	const op = "history.snapshot"

	result := &models.SnapshotResult{EditionID: editionID}
	exists, err := tx.SnapshotExists(ctx, editionID)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}
	if exists {
		result.Outcome = models.SnapshotAlreadyExists
		s.metrics.Snapshot(string(result.Outcome))
		return result, nil
	}

	rows, err := tx.CountStandings(ctx, editionID)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}
	if rows == 0 {
		result.Outcome = models.SnapshotNoData
		s.metrics.Snapshot(string(result.Outcome))
		return result, nil
	}

	var copied int64
	err = tx.Transaction(ctx, func(inner store.Ledger) error {
		var cerr error
		copied, cerr = inner.CopyStandingsToHistory(ctx, editionID, reason, s.now().UTC())
		return cerr
	})
	if errors.Is(err, store.ErrDuplicate) {
		result.Outcome = models.SnapshotAlreadyExists
		s.metrics.Snapshot(string(result.Outcome))
		return result, nil
	}
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}

	result.Outcome = models.SnapshotCreated
	result.Rows = int(copied)
	s.metrics.Snapshot(string(result.Outcome))
	s.log.Info("edition archived", "edition_id", editionID, "rows", copied, "reason", reason)
	return result, nil
}

func (s *SnapshotService) NotifyArchived(ctx context.Context, result *models.SnapshotResult) {
	if result == nil || result.Outcome != models.SnapshotCreated {
		return
	}
	s.notifier.Notify(ctx, notify.EventEditionArchived, map[string]any{
		"edition_id": result.EditionID,
		"rows":       result.Rows,
	})
}

// ArchiveFinished snapshots every edition whose end date has passed and that is no longer
// the active one. Failures are logged per edition and do not stop the sweep.
func (s *SnapshotService) ArchiveFinished(ctx context.Context) ([]models.SnapshotResult, error) {
	editions, err := s.ledger.FinishedEditions(ctx, s.now().UTC())
	if err != nil {
		return nil, storeError(s.log, "history.sweep", err)
	}

	var results []models.SnapshotResult
	for _, e := range editions {
		res, err := s.Snapshot(ctx, e.ID, fmt.Sprintf("Edition %d finished", e.ID))
		if err != nil {
			s.log.Error("archival failed", "edition_id", e.ID, "error", err)
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}

func (s *SnapshotService) List(ctx context.Context) ([]models.SnapshotSummary, error) {
	out, err := s.ledger.ListSnapshots(ctx)
	return out, storeError(s.log, "history.list", err)
}

func (s *SnapshotService) Table(ctx context.Context, editionID uint) (*models.SnapshotTable, error) {
	const op = "history.table"

	snap, err := s.ledger.GetSnapshot(ctx, editionID)
	if err != nil {
		return nil, lookupError(s.log, op, "snapshot", err, "edition_id", editionID)
	}
	rows, err := s.ledger.ListSnapshotRows(ctx, editionID)
	if err != nil {
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}

	table := &models.SnapshotTable{Reason: snap.Reason, SnapshotAt: snap.SnapshotAt, Rows: rows}
	edition, err := s.ledger.GetEdition(ctx, editionID)
	switch {
	case err == nil:
		table.Edition = edition
	case !errors.Is(err, store.ErrNotFound):
		return nil, storeError(s.log, op, err, "edition_id", editionID)
	}
	return table, nil
}
