package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	minContentLength = 20
	maxContentLength = 800

	minRating = 0
	maxRating = 5
)

// FeedbackFields checks a review's content and rating. The returned content
// is the trimmed value to persist.
func FeedbackFields(content string, rating int, v *Violations) string {
	content = strings.TrimSpace(content)
	if length := utf8.RuneCountInString(content); length < minContentLength || length > maxContentLength {
		v.Add("The content field must include between 20 and 800 characters.")
	}

	if rating < minRating || rating > maxRating {
		v.Add("The rating field must be between 0 and 5 (inclusive).")
	}

	return content
}
