package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/DanCG7040/RealTaker-cup-backend/config"
	"github.com/DanCG7040/RealTaker-cup-backend/fixtures"
	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/utils"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

type env struct {
	cfg *config.Config
	db  *gorm.DB
	log *slog.Logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	defaults := fixtures.DefaultOptions()
	generateFlags := []cli.Flag{
		&cli.IntFlag{Name: "players", Value: defaults.Players, Usage: "number of players besides the admin"},
		&cli.IntFlag{Name: "matches", Value: defaults.Matches, Usage: "number of matches to schedule"},
		&cli.UintFlag{Name: "edition", Value: defaults.Edition, Usage: "edition year to create"},
		&cli.Uint64Flag{Name: "seed", Usage: "random seed, 0 picks one from the clock"},
		&cli.Float64Flag{Name: "settled", Value: defaults.Settled, Usage: "share of matches that receive results"},
		&cli.StringFlag{Name: "admin", Value: defaults.AdminNic, Usage: "nickname of the admin account"},
	}

	app := &cli.App{
		Name:  "fixtures",
		Usage: "fill the database with demo data",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file", EnvVars: []string{"CONFIG_FILE"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate demo data",
				Flags: generateFlags,
				Action: func(c *cli.Context) error {
					e, err := setup(c)
					if err != nil {
						return err
					}
					return newFixtures(c, e).GenerateTestData(c.Context)
				},
			},
			{
				Name:  "clear",
				Usage: "delete all data",
				Action: func(c *cli.Context) error {
					e, err := setup(c)
					if err != nil {
						return err
					}
					return newFixtures(c, e).ClearAllData()
				},
			},
			{
				Name:  "regenerate",
				Usage: "delete all data and generate it again",
				Flags: generateFlags,
				Action: func(c *cli.Context) error {
					e, err := setup(c)
					if err != nil {
						return err
					}
					f := newFixtures(c, e)
					if err := f.ClearAllData(); err != nil {
						return err
					}
					return f.GenerateTestData(c.Context)
				},
			},
			{
				Name:      "token",
				Usage:     "print a JWT for an existing user",
				ArgsUsage: "<nickname>",
				Action: func(c *cli.Context) error {
					nickname := c.Args().First()
					if nickname == "" {
						return cli.Exit("nickname is required", 1)
					}
					e, err := setup(c)
					if err != nil {
						return err
					}
					var user authModels.User
					if err := e.db.Where("nickname = ?", nickname).First(&user).Error; err != nil {
						return fmt.Errorf("failed to load user %s: %w", nickname, err)
					}
					tokens := utils.NewTokenService(e.cfg.JWT.Secret, e.cfg.JWT.TTL)
					token, err := tokens.GenerateToken(user.ID, user.Nickname, user.Roles)
					if err != nil {
						return err
					}
					fmt.Println(token)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	log := logger.Init(cfg.LogLevel)

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, db: db, log: log}, nil
}

func newFixtures(c *cli.Context, e *env) *fixtures.Fixtures {
	opts := fixtures.DefaultOptions()
	if c.IsSet("players") {
		opts.Players = c.Int("players")
	}
	if c.IsSet("matches") {
		opts.Matches = c.Int("matches")
	}
	if c.IsSet("edition") {
		opts.Edition = c.Uint("edition")
	}
	if c.IsSet("settled") {
		opts.Settled = c.Float64("settled")
	}
	if c.IsSet("admin") {
		opts.AdminNic = c.String("admin")
	}
	opts.Seed = c.Uint64("seed")

	location, err := e.cfg.WheelLocation()
	if err != nil {
		e.log.Warn("invalid wheel timezone, using UTC", "error", err)
	}
	tokens := utils.NewTokenService(e.cfg.JWT.Secret, e.cfg.JWT.TTL)
	module := core.NewModule(e.db, auth.NewModule(e.db, tokens), core.Options{
		StatementTimeout: e.cfg.Database.StatementTimeout,
		WheelLocation:    location,
		Logger:           e.log,
	})
	return fixtures.NewFixtures(e.db, module, opts, e.log)
}
