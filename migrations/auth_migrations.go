package migrations

import "gorm.io/gorm"

func GetAuthMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_01_000000_create_users_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id SERIAL PRIMARY KEY,
						nickname VARCHAR(100) NOT NULL,
						email VARCHAR(255) NOT NULL,
						enabled BOOLEAN NOT NULL DEFAULT true,
						roles JSONB NOT NULL DEFAULT '["player"]'::jsonb,
						created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
						updated_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_users_nickname ON users(nickname);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
					CREATE INDEX IF NOT EXISTS idx_users_roles ON users USING GIN (roles);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec("DROP TABLE IF EXISTS users CASCADE").Error
			},
		},
	}
}
