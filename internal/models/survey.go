package models

import "time"

type Survey struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint `gorm:"not null;uniqueIndex" json:"reservation_id"`
	ClientID      uint `gorm:"not null;index" json:"client_id"`

	General     int  `gorm:"not null" json:"general"`
	Cleanliness *int `json:"cleanliness"`
	Service     *int `json:"service"`
	Value       *int `json:"value"`

	Comments       string `gorm:"type:text" json:"comments"`
	WouldRecommend bool   `json:"would_recommend"`

	CreatedAt time.Time `json:"created_at"`
}
