// Package store is the Ledger Store: every read and write of tournament state goes
// through a Ledger, either directly or inside Ledger.Transaction.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("duplicate record")
	ErrInvalidField = errors.New("field not updatable")
)

// Ledger is the data-access contract of the settlement and reward core. A Ledger
// obtained inside Transaction runs every call in that transaction.
type Ledger interface {
	// Transaction runs fn in one atomic unit. Nested calls become savepoints.
	Transaction(ctx context.Context, fn func(tx Ledger) error) error
	// Update applies a partial update to the row of model identified by id.
	Update(ctx context.Context, model any, id any, fields models.Fields) error

	EditionStore
	MatchStore
	StandingsStore
	AchievementStore
	WildcardStore
	RewardStore
	SnapshotStore
}

type EditionStore interface {
	GetEdition(ctx context.Context, id uint) (*models.Edition, error)
	// GetLatestEdition returns nil when no edition exists.
	GetLatestEdition(ctx context.Context) (*models.Edition, error)
	// GetPreviousEdition returns the highest edition below id, or nil.
	GetPreviousEdition(ctx context.Context, id uint) (*models.Edition, error)
	ListEditions(ctx context.Context) ([]models.Edition, error)
	CreateEdition(ctx context.Context, edition *models.Edition) error
	DeleteEdition(ctx context.Context, id uint) error
	ListEditionPlayers(ctx context.Context, editionID uint) ([]string, error)
	ReplaceEditionPlayers(ctx context.Context, editionID uint, players []string) error
	ReplaceEditionGames(ctx context.Context, editionID uint, gameIDs []uint) error
	// NotEnrolled returns the players absent from the edition roster.
	NotEnrolled(ctx context.Context, editionID uint, players []string) ([]string, error)
	// MissingUsers returns the nicknames without an account.
	MissingUsers(ctx context.Context, nicknames []string) ([]string, error)
	MissingGames(ctx context.Context, gameIDs []uint) ([]uint, error)
	CountEditionPlayers(ctx context.Context, editionID uint) (int64, error)
}

type MatchStore interface {
	GetMatch(ctx context.Context, id uint) (*models.Match, error)
	GetMatchRoster(ctx context.Context, matchID uint) ([]string, error)
	GetGame(ctx context.Context, id uint) (*models.Game, error)
	ListMatches(ctx context.Context, editionID uint) ([]models.MatchListItem, error)
	CreateMatch(ctx context.Context, match *models.Match) error
	ReplaceMatchParticipants(ctx context.Context, matchID uint, players []string) error
	DeleteMatch(ctx context.Context, id uint) error
	ReplaceResults(ctx context.Context, matchID uint, results []models.MatchResult) error
	ListResults(ctx context.Context, matchID uint) ([]models.MatchResult, error)
	CountMatches(ctx context.Context, editionID uint) (total int64, played int64, err error)
	ListPointsRules(ctx context.Context) ([]models.PointsRule, error)
	UpsertPointsRule(ctx context.Context, rule models.PointsRule) error
	// PointsTable maps position to points for a match kind.
	PointsTable(ctx context.Context, kind string) (map[int]int, error)
}

type StandingsStore interface {
	// UpsertStandingsRow creates the row or adds to it. Points are not clamped.
	UpsertStandingsRow(ctx context.Context, editionID uint, player string, pointsDelta int, won bool) error
	// AddPointsClamped adds delta to the player's points, never going below zero, and
	// returns the new total. Played and won counters are untouched.
	AddPointsClamped(ctx context.Context, editionID uint, player string, delta int) (int, error)
	GetStandingsRow(ctx context.Context, editionID uint, player string) (*models.StandingsRow, error)
	ListStandings(ctx context.Context, editionID uint) ([]models.StandingsRow, error)
	CountStandings(ctx context.Context, editionID uint) (int64, error)
	// ResetStandings deletes the rows of one edition, or all rows when editionID is nil.
	ResetStandings(ctx context.Context, editionID *uint) (int64, error)
	UpsertCategoryStat(ctx context.Context, key models.CategoryStatKey, kind models.CategoryKind, won bool, metrics models.ResultMetrics) error
	GetCategoryStat(ctx context.Context, key models.CategoryStatKey) (*models.CategoryStat, error)
}

type AchievementStore interface {
	// FindAchievementByName returns nil when absent.
	FindAchievementByName(ctx context.Context, name string) (*models.Achievement, error)
	CreateAchievement(ctx context.Context, achievement *models.Achievement) error
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	// FindGrant returns nil when absent.
	FindGrant(ctx context.Context, player string, achievementID uint) (*models.AchievementGrant, error)
	CreateGrant(ctx context.Context, grant *models.AchievementGrant) error
	ListPlayerAchievements(ctx context.Context, player string) ([]models.AchievementGrant, error)
}

type WildcardStore interface {
	GetWildcard(ctx context.Context, id uint) (*models.Wildcard, error)
	ListWildcards(ctx context.Context) ([]models.Wildcard, error)
	CreateWildcard(ctx context.Context, wildcard *models.Wildcard) error
	// UpsertWildcardGrant refreshes the player's unused grant of the wildcard or creates one.
	UpsertWildcardGrant(ctx context.Context, player string, wildcardID uint, at time.Time) (*models.WildcardGrant, error)
	// LockWildcardGrant loads a grant and holds its row until the transaction ends.
	LockWildcardGrant(ctx context.Context, id uint) (*models.WildcardGrant, error)
	MarkWildcardUsed(ctx context.Context, grantID uint, at time.Time) error
	ListPlayerWildcards(ctx context.Context, player string) ([]models.WildcardGrant, error)
}

type RewardStore interface {
	// GetRewardConfig returns the singleton, creating the default row on first use.
	GetRewardConfig(ctx context.Context) (models.RewardConfig, error)
	ListRewardItems(ctx context.Context, activeOnly bool) ([]models.RewardItem, error)
	GetRewardItem(ctx context.Context, id uint) (*models.RewardItem, error)
	CreateRewardItem(ctx context.Context, item *models.RewardItem) error
	DeleteRewardItem(ctx context.Context, id uint) error
	CountDrawsToday(ctx context.Context, player string, date string) (int64, error)
	InsertDrawRecord(ctx context.Context, record *models.DrawRecord) error
	ListDraws(ctx context.Context, player string, limit int) ([]models.DrawRecord, error)
	CountDraws(ctx context.Context, player string) (int64, error)
}

type SnapshotStore interface {
	SnapshotExists(ctx context.Context, editionID uint) (bool, error)
	// CopyStandingsToHistory writes the snapshot header and copies every standings row of
	// the edition. It returns the number of copied rows.
	CopyStandingsToHistory(ctx context.Context, editionID uint, reason string, at time.Time) (int64, error)
	GetSnapshot(ctx context.Context, editionID uint) (*models.EditionSnapshot, error)
	ListSnapshots(ctx context.Context) ([]models.SnapshotSummary, error)
	ListSnapshotRows(ctx context.Context, editionID uint) ([]models.HistoricalStanding, error)
	// FinishedEditions lists editions that ended before now, are not the active (highest id)
	// edition and have no snapshot yet.
	FinishedEditions(ctx context.Context, now time.Time) ([]models.Edition, error)
}

type Options struct {
	// StatementTimeout is applied to every transaction on Postgres. Zero disables it.
	StatementTimeout time.Duration
	Logger           *slog.Logger
}

// GormLedger implements Ledger on gorm.
type GormLedger struct {
	db   *gorm.DB
	opts Options
	inTx bool
}

var _ Ledger = (*GormLedger)(nil)

func New(db *gorm.DB, opts Options) *GormLedger {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &GormLedger{db: db, opts: opts}
}

func (l *GormLedger) conn(ctx context.Context) *gorm.DB {
	return l.db.WithContext(ctx)
}

func (l *GormLedger) Transaction(ctx context.Context, fn func(tx Ledger) error) error {
	return l.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if !l.inTx && l.opts.StatementTimeout > 0 && tx.Dialector.Name() == "postgres" {
			stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", l.opts.StatementTimeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				return wrap("set statement timeout", err)
			}
		}
		return fn(&GormLedger{db: tx, opts: l.opts, inTx: true})
	})
}

var updatableColumns = map[string]map[string]bool{
	"editions": {"start_date": true, "end_date": true},
	"matches": {
		"edition_id": true, "game_id": true, "scheduled_at": true,
		"kind": true, "phase": true, "video_url": true,
	},
	"category_stats": {
		"matches_played": true, "matches_won": true, "kills": true, "deaths": true,
		"goals_for": true, "goals_against": true, "best_race_time": true,
		"rounds_won": true, "rounds_lost": true, "max_level": true,
	},
	"reward_items": {
		"name": true, "kind": true, "wildcard_id": true, "display_text": true,
		"probability": true, "active": true,
	},
	"reward_config":   {"enabled": true, "max_draws_per_day": true},
	"wildcard_grants": {"acquired_at": true, "used": true, "used_at": true},
}

func (l *GormLedger) Update(ctx context.Context, model any, id any, fields models.Fields) error {
	tabler, ok := model.(schema.Tabler)
	if !ok {
		return fmt.Errorf("update %T: %w", model, ErrInvalidField)
	}
	table := tabler.TableName()
	allowed := updatableColumns[table]
	for _, col := range fields.Columns() {
		if !allowed[col] {
			return fmt.Errorf("update %s.%s: %w", table, col, ErrInvalidField)
		}
	}
	if len(fields) == 0 {
		return nil
	}

	res := l.conn(ctx).Model(model).Where("id = ?", id).Updates(map[string]any(fields))
	if res.Error != nil {
		return wrap("update "+table, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update %s %v: %w", table, id, ErrNotFound)
	}
	return nil
}

// wrap tags err with op and maps gorm sentinels to store errors.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// firstOrNil turns a not-found lookup into (nil, nil).
func firstOrNil[T any](op string, q *gorm.DB) (*T, error) {
	var out T
	if err := q.First(&out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap(op, err)
	}
	return &out, nil
}

// atomically runs fn on a transaction handle, joining the current one when present.
func (l *GormLedger) atomically(ctx context.Context, fn func(db *gorm.DB) error) error {
	return l.Transaction(ctx, func(tx Ledger) error {
		return fn(tx.(*GormLedger).conn(ctx))
	})
}

func (l *GormLedger) withDB(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db, opts: l.opts, inTx: true}
}
