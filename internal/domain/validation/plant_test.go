package validation

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantFields_Valid(t *testing.T) {
	var v Violations
	name := PlantFields("  Monstera Deliciosa  ", "A tropical houseplant.", decimal.NewFromFloat(24.99), 10, 5, 4.5, &v)

	assert.NoError(t, v.Err())
	assert.Equal(t, "Monstera Deliciosa", name)
}

func TestPlantFields_Violations(t *testing.T) {
	testCases := []struct {
		name      string
		run       func(v *Violations)
		violation string
	}{
		{
			"short name",
			func(v *Violations) { PlantFields("ab", "", decimal.NewFromInt(10), 0, 0, 0, v) },
			"The name cannot be empty or contain fewer than 3 characters.",
		},
		{
			"long description",
			func(v *Violations) {
				PlantFields("Monstera", strings.Repeat("x", 1501), decimal.NewFromInt(10), 0, 0, 0, v)
			},
			"The description field cannot be longer than 1500 characters.",
		},
		{
			"zero price",
			func(v *Violations) { PlantFields("Monstera", "", decimal.Zero, 0, 0, 0, v) },
			"The price field must be greater than 0.",
		},
		{
			"negative price",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(-5), 0, 0, 0, v) },
			"The price field must be greater than 0.",
		},
		{
			"discount above one hundred",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(10), 101, 0, 0, v) },
			"The discount_percentage field must be within 0 and 100 (inclusive).",
		},
		{
			"negative discount",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(10), -1, 0, 0, v) },
			"The discount_percentage field must be within 0 and 100 (inclusive).",
		},
		{
			"negative stock",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(10), 0, -1, 0, v) },
			"The stock_count field cannot be negative.",
		},
		{
			"rating above five",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(10), 0, 0, 5.1, v) },
			"The rating field must be within 0 and 5 (inclusive).",
		},
		{
			"negative rating",
			func(v *Violations) { PlantFields("Monstera", "", decimal.NewFromInt(10), 0, 0, -0.5, v) },
			"The rating field must be within 0 and 5 (inclusive).",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v Violations
			tc.run(&v)

			require.Error(t, v.Err())
			assert.Contains(t, v.Err().Error(), tc.violation)
		})
	}
}

func TestPlantFields_LengthsCountCharacters(t *testing.T) {
	// A two-character multibyte name is still below the minimum.
	var short Violations
	PlantFields("竹林", "", decimal.NewFromInt(10), 0, 0, 0, &short)
	require.Error(t, short.Err())
	assert.Contains(t, short.Err().Error(), "The name cannot be empty or contain fewer than 3 characters.")

	// 1500 CJK characters exceed 1500 bytes but not the character limit.
	var v Violations
	PlantFields("Monstera", strings.Repeat("葉", 1500), decimal.NewFromInt(10), 0, 0, 0, &v)
	assert.NoError(t, v.Err())
}

func TestPlantFields_PriceDigitBudget(t *testing.T) {
	within, err := decimal.NewFromString("99999999.99")
	require.NoError(t, err)
	over, err := decimal.NewFromString("100000000.00")
	require.NoError(t, err)
	roundsOver, err := decimal.NewFromString("99999999.999")
	require.NoError(t, err)

	var v Violations
	PlantFields("Monstera", "", within, 0, 0, 0, &v)
	assert.NoError(t, v.Err(), "eight integer digits fit the numeric(10,2) budget")

	var overV Violations
	PlantFields("Monstera", "", over, 0, 0, 0, &overV)
	require.Error(t, overV.Err())
	assert.Contains(t, overV.Err().Error(), "Ensure that the price has no more than 10 digits in total.")

	// Rounding to the two stored digits can push the price over the budget.
	var roundedV Violations
	PlantFields("Monstera", "", roundsOver, 0, 0, 0, &roundedV)
	require.Error(t, roundedV.Err())
	assert.Contains(t, roundedV.Err().Error(), "Ensure that the price has no more than 10 digits in total.")
}

func TestPlantImage(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		size     int64
		ok       bool
	}{
		{"png", "plant.png", 1024, true},
		{"jpg", "plant.jpg", 1024, true},
		{"jpeg", "plant.jpeg", 1024, true},
		{"uppercase extension", "plant.JPG", 1024, true},
		{"gif rejected", "plant.gif", 1024, false},
		{"no extension", "plant", 1024, false},
		{"too large", "plant.png", 10*1024*1024 + 1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v Violations
			PlantImage(tc.filename, tc.size, &v)

			if tc.ok {
				assert.NoError(t, v.Err())
			} else {
				assert.Error(t, v.Err())
			}
		})
	}
}
