package models

import "time"

type Stats struct {
	TotalMatches     int64         `json:"total_matches"`
	PlayedMatches    int64         `json:"played_matches"`
	PendingMatches   int64         `json:"pending_matches"`
	ActivePlayers    int64         `json:"active_players"`
	Progress         int           `json:"progress"`
	TemporalProgress int           `json:"temporal_progress"`
	Edition          *EditionDates `json:"edition"`
}

type EditionDates struct {
	ID        uint      `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
