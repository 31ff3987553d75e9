package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:varchar(800);not null"`
	Rating    int       `gorm:"not null;check:rating >= 0 AND rating <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
