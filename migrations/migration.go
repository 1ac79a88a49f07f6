package migrations

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"

	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

// MigrationStatus reports whether a known migration has been applied.
type MigrationStatus struct {
	Name    string
	Applied bool
	Batch   int
}

type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
	log        *slog.Logger
}

func NewMigrator(db *gorm.DB, log *slog.Logger) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}
	return &Migrator{
		db:         db,
		migrations: []MigrationDefinition{},
		log:        logger.OrDefault(log),
	}, nil
}

// All returns every migration of the application in execution order.
func All() []MigrationDefinition {
	return append(GetAuthMigrations(), GetCoreMigrations()...)
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

func (m *Migrator) AddMigrations(migrations ...MigrationDefinition) {
	m.migrations = append(m.migrations, migrations...)
}

// Migrate applies every pending migration as one batch. Each migration runs in its own
// transaction together with its bookkeeping row.
func (m *Migrator) Migrate() error {
	batch, err := m.latestBatch()
	if err != nil {
		return err
	}
	batch++

	applied := 0
	for _, migration := range m.migrations {
		done, err := m.hasRun(migration.Name)
		if err != nil {
			return err
		}
		if done {
			continue
		}

		m.log.Info("migrating", "migration", migration.Name)
		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}
			if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		applied++
	}

	m.log.Info("migrations complete", "applied", applied)
	return nil
}

// Rollback reverts the latest steps batches, newest migration first.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}

	for i := 0; i < steps && batch > 0; i++ {
		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return fmt.Errorf("failed to list batch %d: %w", batch, err)
		}

		for _, record := range records {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			m.log.Info("rolling back", "migration", record.Name, "batch", batch)
			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}

		batch--
	}

	m.log.Info("rollback complete", "steps", steps)
	return nil
}

func (m *Migrator) Status() ([]MigrationStatus, error) {
	var records []Migration
	if err := m.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	batches := make(map[string]int, len(records))
	for _, r := range records {
		batches[r.Name] = r.Batch
	}

	out := make([]MigrationStatus, 0, len(m.migrations))
	for _, migration := range m.migrations {
		batch, ok := batches[migration.Name]
		out = append(out, MigrationStatus{Name: migration.Name, Applied: ok, Batch: batch})
	}
	return out, nil
}

func (m *Migrator) hasRun(name string) (bool, error) {
	var count int64
	if err := m.db.Model(&Migration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", name, err)
	}
	return count > 0, nil
}

func (m *Migrator) latestBatch() (int, error) {
	var migration Migration
	err := m.db.Order("batch DESC").First(&migration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read latest batch: %w", err)
	}
	return migration.Batch, nil
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
