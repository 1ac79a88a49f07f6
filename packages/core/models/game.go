package models

import "time"

type Category struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string       `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Kind      CategoryKind `gorm:"size:20;not null;default:unknown" json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}

type Game struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	CategoryID uint      `gorm:"not null" json:"category_id"`
	ImageURL   string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	Category Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

func (Game) TableName() string {
	return "games"
}

// ResolvedKind returns the stored kind, or derives it from the name when the stored
// value is empty or unknown.
func (c Category) ResolvedKind() CategoryKind {
	if c.Kind != "" && c.Kind != KindUnknown && c.Kind.Valid() {
		return c.Kind
	}
	return ParseCategoryKind(c.Name)
}
