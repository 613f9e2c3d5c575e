package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Title    string `gorm:"size:150;not null" json:"title"`
	Message  string `gorm:"type:text;not null" json:"message"`
	Severity string `gorm:"size:20;not null" json:"severity"`

	Attributes datatypes.JSONMap `gorm:"type:jsonb" json:"attributes"`

	Read   bool       `gorm:"not null;default:false" json:"read"`
	ReadAt *time.Time `json:"read_at"`

	CreatedAt time.Time `json:"created_at"`
}
