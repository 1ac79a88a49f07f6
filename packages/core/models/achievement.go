package models

import (
	"fmt"
	"time"
)

type Achievement struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Code        string    `gorm:"size:255;not null;uniqueIndex" json:"code"`
	Description string    `gorm:"type:text" json:"description"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Achievement) TableName() string {
	return "achievements"
}

type AchievementGrant struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerNickname string    `gorm:"size:100;not null;uniqueIndex:idx_achievement_grants_key" json:"player"`
	AchievementID  uint      `gorm:"not null;uniqueIndex:idx_achievement_grants_key" json:"achievement_id"`
	GrantedBy      string    `gorm:"size:100;not null" json:"granted_by"`
	GrantedAt      time.Time `gorm:"not null" json:"granted_at"`

	Achievement Achievement `gorm:"foreignKey:AchievementID;references:ID" json:"achievement,omitempty"`
}

func (AchievementGrant) TableName() string {
	return "achievement_grants"
}

type GrantOutcome string

const (
	GrantCreated     GrantOutcome = "created"
	GrantAlreadyHeld GrantOutcome = "alreadyHeld"
)

type GrantResult struct {
	Outcome     GrantOutcome     `json:"outcome"`
	Achievement Achievement      `json:"achievement"`
	Grant       AchievementGrant `json:"grant"`
}

// DTOs

type CreateAchievementRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type GrantAchievementRequest struct {
	Player string `json:"player" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

const SystemGranter = "system"

// ChampionAchievementName is the achievement granted to the winner of an edition final.
func ChampionAchievementName(editionID uint) string {
	return fmt.Sprintf("Edition Champion %d", editionID)
}
