package models

import (
	"fmt"
	"time"
)

type RewardKind string

const (
	RewardWildcard RewardKind = "wildcard"
	RewardPoints   RewardKind = "points"
	RewardCosmetic RewardKind = "cosmetic"
)

func (k RewardKind) Valid() bool {
	switch k {
	case RewardWildcard, RewardPoints, RewardCosmetic:
		return true
	}
	return false
}

// RewardItem is one slot of the wheel. Points items carry their signed amount in
// DisplayText ("+10", "-5").
type RewardItem struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Kind        RewardKind `gorm:"size:20;not null" json:"kind"`
	WildcardID  *uint      `json:"wildcard_id"`
	DisplayText string     `gorm:"size:255" json:"display_text"`
	Probability *float64   `json:"probability,omitempty"` // stored, not used by the draw
	Active      bool       `gorm:"not null" json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Wildcard *Wildcard `gorm:"foreignKey:WildcardID;references:ID" json:"wildcard,omitempty"`
}

func (RewardItem) TableName() string {
	return "reward_items"
}

// PointsText renders a signed amount the way points items store it.
func PointsText(amount int) string {
	if amount > 0 {
		return fmt.Sprintf("+%d", amount)
	}
	return fmt.Sprintf("%d", amount)
}

// RewardConfig is a singleton row (ID 1).
type RewardConfig struct {
	ID             uint      `gorm:"primaryKey;autoIncrement:false" json:"-"`
	Enabled        bool      `gorm:"not null;default:false" json:"enabled"`
	MaxDrawsPerDay int       `gorm:"not null" json:"max_draws_per_day"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (RewardConfig) TableName() string {
	return "reward_config"
}

const RewardConfigID = 1

// DefaultRewardConfig is what a fresh installation starts with.
func DefaultRewardConfig() RewardConfig {
	return RewardConfig{ID: RewardConfigID, Enabled: false, MaxDrawsPerDay: 3}
}

// DrawRecord is one successful wheel draw. DailySeq numbers the player's draws within
// DrawDate starting at 1.
type DrawRecord struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"-"`
	PublicID       string     `gorm:"size:36;not null;uniqueIndex" json:"id"`
	PlayerNickname string     `gorm:"size:100;not null;uniqueIndex:idx_draw_records_daily" json:"player"`
	DrawDate       string     `gorm:"size:10;not null;uniqueIndex:idx_draw_records_daily" json:"draw_date"`
	DailySeq       int        `gorm:"not null;uniqueIndex:idx_draw_records_daily" json:"daily_seq"`
	DrawTime       string     `gorm:"size:8;not null" json:"draw_time"`
	ItemID         uint       `gorm:"not null" json:"item_id"`
	ItemName       string     `gorm:"size:255;not null" json:"item_name"`
	ItemKind       RewardKind `gorm:"size:20;not null" json:"item_kind"`
	PointsDelta    *int       `json:"points_delta"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (DrawRecord) TableName() string {
	return "draw_records"
}

// DTOs

type RewardItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Kind        RewardKind `json:"kind" binding:"required,oneof=wildcard points cosmetic"`
	WildcardID  *uint      `json:"wildcard_id,omitempty"`
	Points      *int       `json:"points,omitempty"`
	Text        string     `json:"text,omitempty"`
	Probability *float64   `json:"probability,omitempty"`
	Active      *bool      `json:"active,omitempty"`
}

type RewardConfigRequest struct {
	Enabled        *bool `json:"enabled,omitempty"`
	MaxDrawsPerDay *int  `json:"max_draws_per_day,omitempty" binding:"omitempty,min=0"`
}

// Responses

type DrawOutcome struct {
	DrawID         string     `json:"draw_id"`
	Item           RewardItem `json:"item"`
	Kind           RewardKind `json:"kind"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"image_url,omitempty"`
	DisplayText    string     `json:"display_text"`
	PointsDelta    *int       `json:"points_delta,omitempty"`
	QuotaRemaining int        `json:"quota_remaining"`
}

type DrawStats struct {
	DrawsToday     int64 `json:"draws_today"`
	MaxDrawsPerDay int   `json:"max_draws_per_day"`
	Remaining      int   `json:"remaining"`
	TotalDraws     int64 `json:"total_draws"`
}
