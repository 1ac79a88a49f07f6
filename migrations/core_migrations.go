package migrations

import "gorm.io/gorm"

func exec(db *gorm.DB, statements ...string) error {
	for _, s := range statements {
		if err := db.Exec(s).Error; err != nil {
			return err
		}
	}
	return nil
}

func dropTables(db *gorm.DB, tables ...string) error {
	for _, t := range tables {
		if err := db.Exec("DROP TABLE IF EXISTS " + t + " CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_01_02_000000_create_tournament_tables",
			Up: func(db *gorm.DB) error {
				return exec(db,
					`CREATE TABLE IF NOT EXISTS categories (
						id SERIAL PRIMARY KEY,
						name VARCHAR(100) NOT NULL,
						kind VARCHAR(20) NOT NULL DEFAULT 'unknown',
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);`,

					`CREATE TABLE IF NOT EXISTS games (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						category_id INTEGER NOT NULL REFERENCES categories(id),
						image_url VARCHAR(500),
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_games_category_id ON games(category_id);`,

					`CREATE TABLE IF NOT EXISTS editions (
						id INTEGER PRIMARY KEY CHECK (id BETWEEN 2000 AND 2100),
						start_date TIMESTAMPTZ NOT NULL,
						end_date TIMESTAMPTZ NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW(),
						CHECK (end_date > start_date)
					);`,

					`CREATE TABLE IF NOT EXISTS edition_participants (
						id SERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
						player_nickname VARCHAR(100) NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_edition_participants_key ON edition_participants(edition_id, player_nickname);`,

					`CREATE TABLE IF NOT EXISTS edition_games (
						id SERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
						game_id INTEGER NOT NULL REFERENCES games(id) ON DELETE CASCADE,
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_edition_games_key ON edition_games(edition_id, game_id);`,
				)
			},
			Down: func(db *gorm.DB) error {
				return dropTables(db, "edition_games", "edition_participants", "editions", "games", "categories")
			},
		},
		{
			Name: "2025_01_03_000000_create_match_tables",
			Up: func(db *gorm.DB) error {
				return exec(db,
					`CREATE TABLE IF NOT EXISTS matches (
						id BIGSERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
						game_id INTEGER NOT NULL REFERENCES games(id),
						scheduled_at TIMESTAMPTZ NOT NULL,
						kind VARCHAR(20) NOT NULL CHECK (kind IN ('PVP', 'AllVsAll')),
						phase VARCHAR(50) NOT NULL DEFAULT 'Groups',
						video_url VARCHAR(500),
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE INDEX IF NOT EXISTS idx_matches_edition_id ON matches(edition_id);
					CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);`,

					`CREATE TABLE IF NOT EXISTS match_participants (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						player_nickname VARCHAR(100) NOT NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_match_participants_key ON match_participants(match_id, player_nickname);`,

					`CREATE TABLE IF NOT EXISTS match_results (
						id BIGSERIAL PRIMARY KEY,
						match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
						player_nickname VARCHAR(100) NOT NULL,
						position INTEGER NOT NULL,
						won BOOLEAN NOT NULL DEFAULT false,
						points INTEGER NOT NULL DEFAULT 0,
						kills INTEGER,
						deaths INTEGER,
						goals_for INTEGER,
						goals_against INTEGER,
						race_time DOUBLE PRECISION,
						rounds_won INTEGER,
						rounds_lost INTEGER,
						level_reached INTEGER,
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_match_results_player ON match_results(match_id, player_nickname);`,

					`CREATE TABLE IF NOT EXISTS points_rules (
						id SERIAL PRIMARY KEY,
						kind VARCHAR(20) NOT NULL,
						position INTEGER NOT NULL,
						points INTEGER NOT NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_points_rules_key ON points_rules(kind, position);`,
				)
			},
			Down: func(db *gorm.DB) error {
				return dropTables(db, "points_rules", "match_results", "match_participants", "matches")
			},
		},
		{
			Name: "2025_01_04_000000_create_standings_tables",
			Up: func(db *gorm.DB) error {
				return exec(db,
					`CREATE TABLE IF NOT EXISTS standings (
						id BIGSERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
						player_nickname VARCHAR(100) NOT NULL,
						points INTEGER NOT NULL DEFAULT 0,
						matches_played INTEGER NOT NULL DEFAULT 0,
						matches_won INTEGER NOT NULL DEFAULT 0,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_standings_edition_player ON standings(edition_id, player_nickname);
					CREATE INDEX IF NOT EXISTS idx_standings_ranking ON standings(edition_id, points DESC, matches_won DESC);`,

					`CREATE TABLE IF NOT EXISTS category_stats (
						id BIGSERIAL PRIMARY KEY,
						player_nickname VARCHAR(100) NOT NULL,
						category_id INTEGER NOT NULL REFERENCES categories(id),
						edition_id INTEGER NOT NULL REFERENCES editions(id) ON DELETE CASCADE,
						matches_played INTEGER NOT NULL DEFAULT 0,
						matches_won INTEGER NOT NULL DEFAULT 0,
						kills INTEGER NOT NULL DEFAULT 0,
						deaths INTEGER NOT NULL DEFAULT 0,
						goals_for INTEGER NOT NULL DEFAULT 0,
						goals_against INTEGER NOT NULL DEFAULT 0,
						best_race_time DOUBLE PRECISION,
						rounds_won INTEGER NOT NULL DEFAULT 0,
						rounds_lost INTEGER NOT NULL DEFAULT 0,
						max_level INTEGER NOT NULL DEFAULT 0,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_category_stats_key ON category_stats(player_nickname, category_id, edition_id);`,

					// history outlives the edition: no foreign keys
					`CREATE TABLE IF NOT EXISTS edition_snapshots (
						id SERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL,
						reason VARCHAR(255) NOT NULL,
						snapshot_at TIMESTAMPTZ NOT NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_edition_snapshots_edition_id ON edition_snapshots(edition_id);`,

					`CREATE TABLE IF NOT EXISTS historical_standings (
						id BIGSERIAL PRIMARY KEY,
						edition_id INTEGER NOT NULL,
						player_nickname VARCHAR(100) NOT NULL,
						points INTEGER NOT NULL,
						matches_played INTEGER NOT NULL,
						matches_won INTEGER NOT NULL,
						snapshot_at TIMESTAMPTZ NOT NULL
					);
					CREATE INDEX IF NOT EXISTS idx_historical_standings_edition_id ON historical_standings(edition_id);`,
				)
			},
			Down: func(db *gorm.DB) error {
				return dropTables(db, "historical_standings", "edition_snapshots", "category_stats", "standings")
			},
		},
		{
			Name: "2025_01_05_000000_create_reward_tables",
			Up: func(db *gorm.DB) error {
				return exec(db,
					`CREATE TABLE IF NOT EXISTS achievements (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						code VARCHAR(255) NOT NULL,
						description TEXT,
						image_url VARCHAR(500),
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_achievements_name ON achievements(name);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_achievements_code ON achievements(code);`,

					`CREATE TABLE IF NOT EXISTS achievement_grants (
						id BIGSERIAL PRIMARY KEY,
						player_nickname VARCHAR(100) NOT NULL,
						achievement_id INTEGER NOT NULL REFERENCES achievements(id) ON DELETE CASCADE,
						granted_by VARCHAR(100) NOT NULL,
						granted_at TIMESTAMPTZ NOT NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_achievement_grants_key ON achievement_grants(player_nickname, achievement_id);`,

					`CREATE TABLE IF NOT EXISTS wildcards (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						description TEXT,
						image_url VARCHAR(500),
						created_at TIMESTAMPTZ DEFAULT NOW()
					);`,

					`CREATE TABLE IF NOT EXISTS wildcard_grants (
						id BIGSERIAL PRIMARY KEY,
						player_nickname VARCHAR(100) NOT NULL,
						wildcard_id INTEGER NOT NULL REFERENCES wildcards(id) ON DELETE CASCADE,
						acquired_at TIMESTAMPTZ NOT NULL,
						used BOOLEAN NOT NULL DEFAULT false,
						used_at TIMESTAMPTZ
					);
					CREATE INDEX IF NOT EXISTS idx_wildcard_grants_player_nickname ON wildcard_grants(player_nickname);
					CREATE INDEX IF NOT EXISTS idx_wildcard_grants_wildcard_id ON wildcard_grants(wildcard_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_wildcard_grants_unused ON wildcard_grants(player_nickname, wildcard_id) WHERE NOT used;`,

					`CREATE TABLE IF NOT EXISTS reward_items (
						id SERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						kind VARCHAR(20) NOT NULL CHECK (kind IN ('wildcard', 'points', 'cosmetic')),
						wildcard_id INTEGER REFERENCES wildcards(id) ON DELETE SET NULL,
						display_text VARCHAR(255),
						probability DOUBLE PRECISION,
						active BOOLEAN NOT NULL DEFAULT true,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);`,

					`CREATE TABLE IF NOT EXISTS reward_config (
						id INTEGER PRIMARY KEY CHECK (id = 1),
						enabled BOOLEAN NOT NULL DEFAULT false,
						max_draws_per_day INTEGER NOT NULL DEFAULT 3 CHECK (max_draws_per_day >= 0),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					INSERT INTO reward_config (id, enabled, max_draws_per_day) VALUES (1, false, 3) ON CONFLICT (id) DO NOTHING;`,

					`CREATE TABLE IF NOT EXISTS draw_records (
						id BIGSERIAL PRIMARY KEY,
						public_id VARCHAR(36) NOT NULL,
						player_nickname VARCHAR(100) NOT NULL,
						draw_date VARCHAR(10) NOT NULL,
						daily_seq INTEGER NOT NULL,
						draw_time VARCHAR(8) NOT NULL,
						item_id INTEGER NOT NULL,
						item_name VARCHAR(255) NOT NULL,
						item_kind VARCHAR(20) NOT NULL,
						points_delta INTEGER,
						created_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_draw_records_public_id ON draw_records(public_id);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_draw_records_daily ON draw_records(player_nickname, draw_date, daily_seq);`,
				)
			},
			Down: func(db *gorm.DB) error {
				return dropTables(db, "draw_records", "reward_config", "reward_items", "wildcard_grants", "wildcards", "achievement_grants", "achievements")
			},
		},
	}
}
