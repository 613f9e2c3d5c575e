package models

import "time"

// Checklist de preparação criado na confirmação da reserva.
type Preparation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint   `gorm:"not null;uniqueIndex" json:"reservation_id"`
	Status        string `gorm:"size:20;not null" json:"status"`

	Items []PreparationItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	ReadyAt *time.Time `json:"ready_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PreparationItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PreparationID uint   `gorm:"not null;index" json:"preparation_id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	Done          bool   `gorm:"not null" json:"done"`

	DoneByID *uint      `json:"done_by_id"`
	DoneAt   *time.Time `json:"done_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
