package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlantModel mirrors the 'plants' table. Price is NUMERIC(10,2), so values
// are capped at eight integer digits.
type PlantModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Description        string          `gorm:"type:varchar(1500)"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountPercentage int             `gorm:"not null;default:0;check:discount_percentage >= 0 AND discount_percentage <= 100"`
	StockCount         int             `gorm:"not null;default:0;check:stock_count >= 0"`
	Rating             float64         `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5"`
	ImagePath          string          `gorm:"type:varchar(512)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}
