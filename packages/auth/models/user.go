package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Roles []string

// Value implements driver.Valuer for GORM
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		b, err := json.Marshal(GetDefaultRoles())
		return string(b), err
	}
	b, err := json.Marshal([]string(r))
	return string(b), err
}

// Scan implements sql.Scanner for GORM
func (r *Roles) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*r = GetDefaultRoles()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(raw, (*[]string)(r))
}

// User is an account of the platform. Players are identified by nickname everywhere else.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nickname  string    `json:"nickname" gorm:"size:100;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Enabled   bool      `json:"enabled" gorm:"not null"`
	Roles     Roles     `json:"roles" gorm:"type:jsonb"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user holds role
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// AddRole adds role if missing
func (u *User) AddRole(role string) {
	if !u.HasRole(role) {
		u.Roles = append(u.Roles, role)
	}
}
