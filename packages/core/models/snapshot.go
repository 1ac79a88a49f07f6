package models

import "time"

// EditionSnapshot is the header of an archived standings table. At most one per edition.
type EditionSnapshot struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EditionID  uint      `gorm:"not null;uniqueIndex" json:"edition_id"`
	Reason     string    `gorm:"size:255;not null" json:"reason"`
	SnapshotAt time.Time `gorm:"not null" json:"snapshot_at"`
}

func (EditionSnapshot) TableName() string {
	return "edition_snapshots"
}

// HistoricalStanding is an immutable copy of a StandingsRow.
type HistoricalStanding struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	EditionID      uint      `gorm:"not null;index" json:"edition_id"`
	PlayerNickname string    `gorm:"size:100;not null" json:"player"`
	Points         int       `gorm:"not null" json:"points"`
	MatchesPlayed  int       `gorm:"not null" json:"matches_played"`
	MatchesWon     int       `gorm:"not null" json:"matches_won"`
	SnapshotAt     time.Time `gorm:"not null" json:"snapshot_at"`
}

func (HistoricalStanding) TableName() string {
	return "historical_standings"
}

type SnapshotOutcome string

const (
	SnapshotCreated       SnapshotOutcome = "created"
	SnapshotAlreadyExists SnapshotOutcome = "alreadyExists"
	SnapshotNoData        SnapshotOutcome = "noData"
)

type SnapshotResult struct {
	EditionID uint            `json:"edition_id"`
	Outcome   SnapshotOutcome `json:"outcome"`
	Rows      int             `json:"rows"`
}

type SnapshotSummary struct {
	EditionID    uint       `json:"edition_id"`
	Reason       string     `json:"reason"`
	SnapshotAt   time.Time  `json:"snapshot_at"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	TotalPlayers int64      `json:"total_players"`
}

type SnapshotTable struct {
	Edition    *Edition             `json:"edition"`
	Reason     string               `json:"reason"`
	SnapshotAt time.Time            `json:"snapshot_at"`
	Rows       []HistoricalStanding `json:"rows"`
}

type CreateSnapshotRequest struct {
	Reason string `json:"reason,omitempty"`
}
