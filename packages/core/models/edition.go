package models

import (
	"time"
)

// Edition is one run of the cup. Its ID doubles as the year and the edition with the
// highest ID is the active one.
type Edition struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Participants []EditionParticipant `gorm:"foreignKey:EditionID" json:"participants,omitempty"`
	Games        []EditionGame        `gorm:"foreignKey:EditionID" json:"games,omitempty"`
}

func (Edition) TableName() string {
	return "editions"
}

type EditionParticipant struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EditionID      uint      `gorm:"not null;uniqueIndex:idx_edition_participants_key" json:"edition_id"`
	PlayerNickname string    `gorm:"size:100;not null;uniqueIndex:idx_edition_participants_key" json:"player"`
	CreatedAt      time.Time `json:"created_at"`
}

func (EditionParticipant) TableName() string {
	return "edition_participants"
}

type EditionGame struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EditionID uint      `gorm:"not null;uniqueIndex:idx_edition_games_key" json:"edition_id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_edition_games_key" json:"game_id"`
	CreatedAt time.Time `json:"created_at"`

	Game Game `gorm:"foreignKey:GameID;references:ID" json:"game,omitempty"`
}

func (EditionGame) TableName() string {
	return "edition_games"
}

// DTOs

type CreateEditionRequest struct {
	ID        uint      `json:"id" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
}

type UpdateEditionRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type EnrollPlayersRequest struct {
	Players []string `json:"players" binding:"required,min=1"`
}

type AssignGamesRequest struct {
	Games []uint `json:"games" binding:"required,min=1"`
}

// Responses

type CreateEditionResponse struct {
	Edition  Edition         `json:"edition"`
	Snapshot *SnapshotResult `json:"snapshot,omitempty"`
}
