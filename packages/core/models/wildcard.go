package models

import "time"

// Wildcard is a redeemable bonus defined by administrators.
type Wildcard struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Wildcard) TableName() string {
	return "wildcards"
}

// WildcardGrant is one wildcard held by a player. Used only ever goes from false to true.
type WildcardGrant struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerNickname string     `gorm:"size:100;not null;index" json:"player"`
	WildcardID     uint       `gorm:"not null;index" json:"wildcard_id"`
	AcquiredAt     time.Time  `gorm:"not null" json:"acquired_at"`
	Used           bool       `gorm:"not null;default:false" json:"used"`
	UsedAt         *time.Time `json:"used_at"`

	Wildcard Wildcard `gorm:"foreignKey:WildcardID;references:ID" json:"wildcard,omitempty"`
}

func (WildcardGrant) TableName() string {
	return "wildcard_grants"
}

type CreateWildcardRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
