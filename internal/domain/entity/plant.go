package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Plant is a catalog entry. Price is a decimal with two fractional digits and
// at most ten digits in total; DiscountPercentage is a whole percentage in
// [0, 100].
type Plant struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage int
	StockCount         int
	ImagePath          string // Blob storage key of the product image, e.g. "plants/<id>.png".
	Rating             float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DiscountedPrice returns the price after applying the discount percentage,
// rounded to two decimal places.
func (p *Plant) DiscountedPrice() decimal.Decimal {
	discount := p.Price.
		Mul(decimal.NewFromInt(int64(p.DiscountPercentage))).
		Div(decimal.NewFromInt(100))

	return p.Price.Sub(discount).Round(2)
}

// InStock reports whether at least one unit is available.
func (p *Plant) InStock() bool {
	return p.StockCount > 0
}
