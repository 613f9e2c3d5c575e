package models

import "time"

type MaintenanceWindow struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// exatamente um dos dois (check constraint criada em db.NewDB)
	CabinID     *uint      `gorm:"index" json:"cabin_id"`
	Cabin       *Cabin     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cabin,omitempty"`
	EquipmentID *uint      `gorm:"index" json:"equipment_id"`
	Equipment   *Equipment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"equipment,omitempty"`

	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	Category string `gorm:"size:20;not null" json:"category"`
	Priority string `gorm:"size:20;not null" json:"priority"`
	Status   string `gorm:"size:20;not null;index" json:"status"`

	Description   string `gorm:"type:text" json:"description"`
	ExternalStaff string `gorm:"size:255" json:"external_staff"`

	WorkerID    *uint `json:"worker_id"`
	Worker      *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker,omitempty"`
	CreatedByID uint  `json:"created_by_id"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
