package models

import (
	"time"
)

const (
	MatchKindPVP      = "PVP"
	MatchKindAllVsAll = "AllVsAll"

	PhaseGroups = "Groups"
	PhaseFinal  = "Final"
)

type Match struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EditionID   uint      `gorm:"not null;index" json:"edition_id"`
	GameID      uint      `gorm:"not null;index" json:"game_id"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Kind        string    `gorm:"size:20;not null" json:"kind"`                 // PVP, AllVsAll
	Phase       string    `gorm:"size:50;not null;default:Groups" json:"phase"` // Groups, Final, free text otherwise
	VideoURL    string    `gorm:"size:500" json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	Game         Game               `gorm:"foreignKey:GameID;references:ID" json:"game,omitempty"`
	Participants []MatchParticipant `gorm:"foreignKey:MatchID" json:"participants,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// Roster returns the nicknames of the match participants.
func (m *Match) Roster() []string {
	roster := make([]string, 0, len(m.Participants))
	for _, p := range m.Participants {
		roster = append(roster, p.PlayerNickname)
	}
	return roster
}

type MatchParticipant struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID        uint   `gorm:"not null;uniqueIndex:idx_match_participants_key" json:"match_id"`
	PlayerNickname string `gorm:"size:100;not null;uniqueIndex:idx_match_participants_key" json:"player"`
}

func (MatchParticipant) TableName() string {
	return "match_participants"
}

// ResultMetrics are the category-specific figures of one result. Only the fields of the
// game's category kind are aggregated.
type ResultMetrics struct {
	Kills        *int     `json:"kills,omitempty"`
	Deaths       *int     `json:"deaths,omitempty"`
	GoalsFor     *int     `json:"goals_for,omitempty"`
	GoalsAgainst *int     `json:"goals_against,omitempty"`
	RaceTime     *float64 `json:"race_time,omitempty"` // seconds
	RoundsWon    *int     `json:"rounds_won,omitempty"`
	RoundsLost   *int     `json:"rounds_lost,omitempty"`
	LevelReached *int     `json:"level_reached,omitempty"`
}

type MatchResult struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID        uint          `gorm:"not null;uniqueIndex:idx_match_results_player" json:"match_id"`
	PlayerNickname string        `gorm:"size:100;not null;uniqueIndex:idx_match_results_player" json:"player"`
	Position       int           `gorm:"not null" json:"position"`
	Won            bool          `gorm:"not null;default:false" json:"won"`
	Points         int           `gorm:"not null;default:0" json:"points"`
	Metrics        ResultMetrics `gorm:"embedded" json:"metrics"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (MatchResult) TableName() string {
	return "match_results"
}

// DTOs

type CreateMatchRequest struct {
	EditionID   uint      `json:"edition_id" binding:"required"`
	GameID      uint      `json:"game_id" binding:"required"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Kind        string    `json:"kind" binding:"required,oneof=PVP AllVsAll"`
	Phase       string    `json:"phase,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	Players     []string  `json:"players" binding:"required,min=1"`
}

type UpdateMatchRequest = CreateMatchRequest

type ResultEntry struct {
	Player   string        `json:"player" binding:"required"`
	Position int           `json:"position"`
	Won      bool          `json:"won"`
	Points   *int          `json:"points,omitempty"`
	Metrics  ResultMetrics `json:"metrics"`
}

type SubmitResultRequest struct {
	Results []ResultEntry `json:"results" binding:"required"`
	Phase   string        `json:"phase"`
}

// Responses

type SettlementOutcome struct {
	MatchID          uint          `json:"match_id"`
	EditionID        uint          `json:"edition_id"`
	Phase            string        `json:"phase"`
	Results          []MatchResult `json:"results"`
	StandingsUpdated int           `json:"standings_updated"`
	Achievement      *GrantResult  `json:"achievement,omitempty"`
}

type MatchListItem struct {
	Match
	HasResult bool `json:"has_result"`
}
