package main

import (
	"fmt"
	"log"
	"os"

	"github.com/DanCG7040/RealTaker-cup-backend/config"
	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/migrations"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := &cli.App{
		Name:  "migrate",
		Usage: "manage the database schema",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file", EnvVars: []string{"CONFIG_FILE"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "run pending migrations",
				Action: func(c *cli.Context) error {
					migrator, err := newMigrator(c)
					if err != nil {
						return err
					}
					return migrator.Migrate()
				},
			},
			{
				Name:  "rollback",
				Usage: "roll back the latest batches",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of batches to roll back"},
				},
				Action: func(c *cli.Context) error {
					migrator, err := newMigrator(c)
					if err != nil {
						return err
					}
					return migrator.Rollback(c.Int("steps"))
				},
			},
			{
				Name:  "status",
				Usage: "show which migrations have run",
				Action: func(c *cli.Context) error {
					migrator, err := newMigrator(c)
					if err != nil {
						return err
					}
					statuses, err := migrator.Status()
					if err != nil {
						return err
					}
					fmt.Println("Batch | Name")
					fmt.Println("------|-----")
					for _, s := range statuses {
						batch := "  -  "
						if s.Applied {
							batch = fmt.Sprintf("%5d", s.Batch)
						}
						fmt.Printf("%s | %s\n", batch, s.Name)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newMigrator(c *cli.Context) (*migrations.Migrator, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	log := logger.Init(cfg.LogLevel)

	db, err := config.ConnectDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}
	migrator, err := migrations.NewMigrator(db, log)
	if err != nil {
		return nil, err
	}
	migrator.AddMigrations(migrations.All()...)
	return migrator, nil
}
