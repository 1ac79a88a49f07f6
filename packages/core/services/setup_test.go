package services_test

import (
	"testing"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type env struct {
	db     *gorm.DB
	ledger *store.GormLedger
	events *notify.Memory

	standings    *services.StandingsService
	achievements *services.AchievementService
	settlement   *services.SettlementService
	snapshots    *services.SnapshotService
	editions     *services.EditionService
	matches      *services.MatchService
	wildcards    *services.WildcardService
	points       *services.PointsService
	stats        *services.StatsService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := storetest.Open(t)
	log := logger.Discard()
	ledger := store.New(db, store.Options{Logger: log})
	events := notify.NewMemory()
	notifier := notify.NewNotifier(events, log)
	m := metrics.New(prometheus.NewRegistry())

	standings := services.NewStandingsService(ledger, log)
	categoryStats := services.NewCategoryStatsService(ledger, log)
	achievements := services.NewAchievementService(ledger, notifier, m, log)
	snapshots := services.NewSnapshotService(ledger, notifier, m, log)

	return &env{
		db:           db,
		ledger:       ledger,
		events:       events,
		standings:    standings,
		achievements: achievements,
		settlement:   services.NewSettlementService(ledger, standings, categoryStats, achievements, m, log),
		snapshots:    snapshots,
		editions:     services.NewEditionService(ledger, snapshots, log),
		matches:      services.NewMatchService(ledger, log),
		wildcards:    services.NewWildcardService(ledger, notifier, log),
		points:       services.NewPointsService(ledger, log),
		stats:        services.NewStatsService(ledger, log),
	}
}

func (e *env) wheel(t *testing.T, now time.Time, pick services.Picker) *services.WheelService {
	t.Helper()
	return services.NewWheelService(e.ledger, notify.NewNotifier(e.events, logger.Discard()), nil, logger.Discard(), time.UTC,
		services.WithClock(func() time.Time { return now }),
		services.WithPicker(pick),
	)
}

func intPtr(v int) *int { return &v }

func first(int) int { return 0 }

func (e *env) count(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := e.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func (e *env) standingsRow(t *testing.T, editionID uint, player string) models.StandingsRow {
	t.Helper()
	var row models.StandingsRow
	if err := e.db.Where("edition_id = ? AND player_nickname = ?", editionID, player).First(&row).Error; err != nil {
		t.Fatalf("standings row %d/%s: %v", editionID, player, err)
	}
	return row
}
