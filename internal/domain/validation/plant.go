package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	maxDescriptionLength = 1500

	// Prices are stored as numeric(10,2): ten digits in total, two of them
	// fractional.
	maxPriceTotalDigits      = 10
	maxPriceFractionalDigits = 2

	maxImageSize = 10 * 1024 * 1024 // 10 MiB
)

var allowedImageExtensions = []string{".png", ".jpg", ".jpeg"}

// PlantFields checks the catalog entry fields. The returned name is the
// trimmed value to persist.
func PlantFields(name, description string, price decimal.Decimal, discountPercentage, stockCount int, rating float64, v *Violations) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minNameLength {
		v.Add("The name cannot be empty or contain fewer than 3 characters.")
	}

	if utf8.RuneCountInString(description) > maxDescriptionLength {
		v.Add("The description field cannot be longer than 1500 characters.")
	}

	if !price.IsPositive() {
		v.Add("The price field must be greater than 0.")
	}
	if exceedsDigitBudget(price) {
		v.Add("Ensure that the price has no more than 10 digits in total.")
	}

	if discountPercentage < 0 || discountPercentage > 100 {
		v.Add("The discount_percentage field must be within 0 and 100 (inclusive).")
	}

	if stockCount < 0 {
		v.Add("The stock_count field cannot be negative.")
	}

	if rating < 0 || rating > maxRating {
		v.Add("The rating field must be within 0 and 5 (inclusive).")
	}

	return name
}

// PlantImage checks the uploaded image's extension and size.
func PlantImage(filename string, size int64, v *Violations) {
	ext := strings.ToLower(filepath.Ext(filename))

	allowed := false
	for _, candidate := range allowedImageExtensions {
		if ext == candidate {
			allowed = true

			break
		}
	}
	if !allowed {
		v.Add("Only PNG, JPG and JPEG images are allowed.")
	}

	if size > maxImageSize {
		v.Add("The image file cannot exceed 10MB.")
	}
}

// exceedsDigitBudget reports whether the price, rounded to its two stored
// fractional digits, needs more than ten digits in total.
func exceedsDigitBudget(price decimal.Decimal) bool {
	limit := decimal.New(1, maxPriceTotalDigits-maxPriceFractionalDigits) // 10^8

	return price.Round(maxPriceFractionalDigits).Abs().GreaterThanOrEqual(limit)
}
