package models

import "time"

type WorkerTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkerID uint `gorm:"not null;index" json:"worker_id"`
	Worker   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"worker"`

	MaintenanceWindowID *uint `gorm:"index" json:"maintenance_window_id"`

	Type        string     `gorm:"size:20;not null" json:"type"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:20;not null;index" json:"status"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`

	AssignedByID uint       `json:"assigned_by_id"`
	CompletedAt  *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
