package models

// PointsRule awards points to a finishing position for a kind of match.
type PointsRule struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind     string `gorm:"size:20;not null;uniqueIndex:idx_points_rules_key" json:"kind"`
	Position int    `gorm:"not null;uniqueIndex:idx_points_rules_key" json:"position"`
	Points   int    `gorm:"not null" json:"points"`
}

func (PointsRule) TableName() string {
	return "points_rules"
}

type PointsRuleInput struct {
	Kind     string `json:"kind" binding:"required,oneof=PVP AllVsAll"`
	Position int    `json:"position" binding:"required,min=1"`
	Points   int    `json:"points" binding:"min=0"`
}

type UpsertPointsRequest struct {
	Rules []PointsRuleInput `json:"rules" binding:"required,min=1,dive"`
}
