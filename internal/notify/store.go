package notify

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cabin-scheduler/internal/models"
)

// StoreSink grava a notificação na tabela lida pela caixa de entrada.
type StoreSink struct {
	db *gorm.DB
}

func NewStoreSink(db *gorm.DB) *StoreSink {
	return &StoreSink{db: db}
}

func (s *StoreSink) Name() string {
	return "notification_store"
}

func (s *StoreSink) Deliver(ctx context.Context, userID uint, msg Message) error {
	severity := msg.Severity
	if severity == "" {
		severity = SeverityInfo
	}

	n := models.Notification{
		UserID:     userID,
		Title:      msg.Title,
		Message:    msg.Body,
		Severity:   string(severity),
		Attributes: datatypes.JSONMap(msg.Attributes),
	}

	return s.db.WithContext(ctx).Create(&n).Error
}
