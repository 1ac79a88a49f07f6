package models

import "time"

// CategoryStat aggregates a player's results per game category and edition.
type CategoryStat struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	PlayerNickname string    `gorm:"size:100;not null;uniqueIndex:idx_category_stats_key" json:"player"`
	CategoryID     uint      `gorm:"not null;uniqueIndex:idx_category_stats_key" json:"category_id"`
	EditionID      uint      `gorm:"not null;uniqueIndex:idx_category_stats_key" json:"edition_id"`
	MatchesPlayed  int       `gorm:"not null;default:0" json:"matches_played"`
	MatchesWon     int       `gorm:"not null;default:0" json:"matches_won"`
	Kills          int       `gorm:"not null;default:0" json:"kills"`
	Deaths         int       `gorm:"not null;default:0" json:"deaths"`
	GoalsFor       int       `gorm:"not null;default:0" json:"goals_for"`
	GoalsAgainst   int       `gorm:"not null;default:0" json:"goals_against"`
	BestRaceTime   *float64  `json:"best_race_time"`
	RoundsWon      int       `gorm:"not null;default:0" json:"rounds_won"`
	RoundsLost     int       `gorm:"not null;default:0" json:"rounds_lost"`
	MaxLevel       int       `gorm:"not null;default:0" json:"max_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (CategoryStat) TableName() string {
	return "category_stats"
}

// CategoryStatKey identifies one CategoryStat row.
type CategoryStatKey struct {
	Player     string
	CategoryID uint
	EditionID  uint
}
