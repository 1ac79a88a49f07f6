package models

import "time"

// StandingsRow is the cumulative score of a player in one edition.
type StandingsRow struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	EditionID      uint      `gorm:"not null;uniqueIndex:idx_standings_edition_player" json:"edition_id"`
	PlayerNickname string    `gorm:"size:100;not null;uniqueIndex:idx_standings_edition_player" json:"player"`
	Points         int       `gorm:"not null;default:0" json:"points"`
	MatchesPlayed  int       `gorm:"not null;default:0" json:"matches_played"`
	MatchesWon     int       `gorm:"not null;default:0" json:"matches_won"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (StandingsRow) TableName() string {
	return "standings"
}

type StandingsResponse struct {
	EditionID *uint          `json:"edition_id"`
	Rows      []StandingsRow `json:"rows"`
}
