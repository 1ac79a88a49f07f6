package core

import (
	"log/slog"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/cron"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/handlers"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/metrics"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Options tunes the core module. Zero values fall back to defaults.
type Options struct {
	StatementTimeout time.Duration
	WheelLocation    *time.Location
	ArchiveSchedule  string
	Logger           *slog.Logger
	Notifier         *notify.Notifier
	Metrics          *metrics.Metrics
	WheelOptions     []services.WheelOption
}

type Module struct {
	Ledger *store.GormLedger

	EditionService     *services.EditionService
	MatchService       *services.MatchService
	SettlementService  *services.SettlementService
	StandingsService   *services.StandingsService
	AchievementService *services.AchievementService
	SnapshotService    *services.SnapshotService
	WheelService       *services.WheelService
	WildcardService    *services.WildcardService
	PointsService      *services.PointsService
	StatsService       *services.StatsService

	EditionHandler     *handlers.EditionHandler
	MatchHandler       *handlers.MatchHandler
	StandingsHandler   *handlers.StandingsHandler
	HistoryHandler     *handlers.HistoryHandler
	AchievementHandler *handlers.AchievementHandler
	WildcardHandler    *handlers.WildcardHandler
	WheelHandler       *handlers.WheelHandler
	PointsHandler      *handlers.PointsHandler
	StatsHandler       *handlers.StatsHandler

	Scheduler *cron.Scheduler

	auth *auth.Module
	log  *slog.Logger
}

func NewModule(db *gorm.DB, authModule *auth.Module, opts Options) *Module {
	log := logger.OrDefault(opts.Logger)
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewNotifier(notify.Noop{}, log)
	}

	ledger := store.New(db, store.Options{StatementTimeout: opts.StatementTimeout, Logger: log})

	standingsService := services.NewStandingsService(ledger, log)
	categoryStatsService := services.NewCategoryStatsService(ledger, log)
	achievementService := services.NewAchievementService(ledger, notifier, opts.Metrics, log)
	snapshotService := services.NewSnapshotService(ledger, notifier, opts.Metrics, log)
	settlementService := services.NewSettlementService(ledger, standingsService, categoryStatsService, achievementService, opts.Metrics, log)
	editionService := services.NewEditionService(ledger, snapshotService, log)
	matchService := services.NewMatchService(ledger, log)
	wheelService := services.NewWheelService(ledger, notifier, opts.Metrics, log, opts.WheelLocation, opts.WheelOptions...)
	wildcardService := services.NewWildcardService(ledger, notifier, log)
	pointsService := services.NewPointsService(ledger, log)
	statsService := services.NewStatsService(ledger, log)

	return &Module{
		Ledger: ledger,

		EditionService:     editionService,
		MatchService:       matchService,
		SettlementService:  settlementService,
		StandingsService:   standingsService,
		AchievementService: achievementService,
		SnapshotService:    snapshotService,
		WheelService:       wheelService,
		WildcardService:    wildcardService,
		PointsService:      pointsService,
		StatsService:       statsService,

		EditionHandler:     handlers.NewEditionHandler(editionService),
		MatchHandler:       handlers.NewMatchHandler(matchService, settlementService),
		StandingsHandler:   handlers.NewStandingsHandler(standingsService),
		HistoryHandler:     handlers.NewHistoryHandler(snapshotService),
		AchievementHandler: handlers.NewAchievementHandler(achievementService),
		WildcardHandler:    handlers.NewWildcardHandler(wildcardService),
		WheelHandler:       handlers.NewWheelHandler(wheelService),
		PointsHandler:      handlers.NewPointsHandler(pointsService),
		StatsHandler:       handlers.NewStatsHandler(statsService),

		Scheduler: cron.NewScheduler(snapshotService, opts.ArchiveSchedule, log),

		auth: authModule,
		log:  log,
	}
}

func (m *Module) SetupRoutes(r gin.IRouter) {
	authenticated := m.auth.JWTMiddleware()
	admin := []gin.HandlerFunc{authenticated, m.auth.RequireRole(authModels.RoleAdmin)}
	adminOnly := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, admin...), h)
	}

	editions := r.Group("/editions")
	{
		editions.GET("", m.EditionHandler.GetEditions)
		editions.GET("/latest", m.EditionHandler.GetLatestEdition)
		editions.GET("/:id", m.EditionHandler.GetEdition)
		editions.GET("/:id/players", m.EditionHandler.GetEditionPlayers)
		editions.POST("", adminOnly(m.EditionHandler.CreateEdition)...)
		editions.PATCH("/:id", adminOnly(m.EditionHandler.UpdateEdition)...)
		editions.DELETE("/:id", adminOnly(m.EditionHandler.DeleteEdition)...)
		editions.PUT("/:id/players", adminOnly(m.EditionHandler.EnrollPlayers)...)
		editions.PUT("/:id/games", adminOnly(m.EditionHandler.AssignGames)...)
	}

	matches := r.Group("/matches")
	{
		matches.GET("", m.MatchHandler.GetMatches)
		matches.GET("/:id", m.MatchHandler.GetMatch)
		matches.GET("/:id/results", m.MatchHandler.GetMatchResults)
		matches.POST("", adminOnly(m.MatchHandler.CreateMatch)...)
		matches.PUT("/:id", adminOnly(m.MatchHandler.UpdateMatch)...)
		matches.DELETE("/:id", adminOnly(m.MatchHandler.DeleteMatch)...)
		matches.POST("/:id/results", adminOnly(m.MatchHandler.SubmitResults)...)
	}

	r.GET("/standings", m.StandingsHandler.GetStandings)
	r.DELETE("/standings", adminOnly(m.StandingsHandler.ResetStandings)...)

	history := r.Group("/history")
	{
		history.GET("", m.HistoryHandler.GetSnapshots)
		history.GET("/:editionId", m.HistoryHandler.GetSnapshot)
		history.POST("/:editionId", adminOnly(m.HistoryHandler.CreateSnapshot)...)
	}

	achievements := r.Group("/achievements")
	{
		achievements.GET("", m.AchievementHandler.GetAchievements)
		achievements.POST("", adminOnly(m.AchievementHandler.CreateAchievement)...)
		achievements.POST("/grants", adminOnly(m.AchievementHandler.GrantAchievement)...)
	}

	wildcards := r.Group("/wildcards")
	{
		wildcards.GET("", m.WildcardHandler.GetWildcards)
		wildcards.POST("", adminOnly(m.WildcardHandler.CreateWildcard)...)
	}

	wheel := r.Group("/wheel")
	{
		wheel.GET("/items", m.WheelHandler.GetItems)
		wheel.GET("/config", m.WheelHandler.GetConfig)
		wheel.POST("/draw", authenticated, m.WheelHandler.Draw)
		wheel.GET("/history", authenticated, m.WheelHandler.GetHistory)
		wheel.GET("/stats", authenticated, m.WheelHandler.GetStats)
		wheel.POST("/items", adminOnly(m.WheelHandler.CreateItem)...)
		wheel.PUT("/items/:id", adminOnly(m.WheelHandler.UpdateItem)...)
		wheel.DELETE("/items/:id", adminOnly(m.WheelHandler.DeleteItem)...)
		wheel.PATCH("/config", adminOnly(m.WheelHandler.UpdateConfig)...)
	}

	me := r.Group("/me", authenticated)
	{
		me.GET("/achievements", m.AchievementHandler.GetMyAchievements)
		me.GET("/wildcards", m.WildcardHandler.GetMyWildcards)
		me.POST("/wildcards/:grantId/use", m.WildcardHandler.UseWildcard)
	}

	r.GET("/points", m.PointsHandler.GetPoints)
	r.PUT("/points", adminOnly(m.PointsHandler.UpsertPoints)...)

	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the archival sweep
func (m *Module) StartScheduler() error {
	return m.Scheduler.Start()
}

// StopScheduler stops the archival sweep
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
