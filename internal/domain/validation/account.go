package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLength     = 3
	minPasswordLength = 8

	// Attributes shorter than this are too generic to make a password
	// "too similar" to them.
	minSimilarityLength = 4
)

// NormalizeEmail trims surrounding whitespace and lowercases the domain part
// of the address. The local part is preserved as given.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Account checks the identity fields shared by every account creation path.
// The returned name and email are the trimmed/normalized values to persist.
func Account(name, email string, v *Violations) (string, string) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < minNameLength {
		v.Add("The name cannot be empty or contain fewer than 3 characters.")
	}

	email = NormalizeEmail(email)
	if email == "" {
		v.Add("You haven't provided a valid email address.")
	}

	return name, email
}

// Password checks password strength: a minimum length, not entirely numeric,
// and not too similar to the account's name or email.
func Password(password, name, email string, v *Violations) {
	if utf8.RuneCountInString(password) < minPasswordLength {
		v.Add("This password is too short. It must contain at least 8 characters.")
	}

	if password != "" && isEntirelyNumeric(password) {
		v.Add("This password is entirely numeric.")
	}

	if tooSimilar(password, name) {
		v.Add("The password is too similar to the name.")
	}
	if tooSimilar(password, email) {
		v.Add("The password is too similar to the email address.")
	}
}

// PasswordsMatch checks the signup confirmation field.
func PasswordsMatch(password1, password2 string, v *Violations) {
	if password1 != password2 {
		v.Add("The two password fields didn't match.")
	}
}

func isEntirelyNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// tooSimilar reports whether one string contains the other,
// case-insensitively. The local part of an email address counts on its own,
// so "alice1234" is too similar to "alice@example.com".
func tooSimilar(password, attribute string) bool {
	password = strings.ToLower(password)
	attribute = strings.ToLower(strings.TrimSpace(attribute))

	candidates := []string{attribute}
	if at := strings.LastIndex(attribute, "@"); at > 0 {
		candidates = append(candidates, attribute[:at])
	}

	for _, candidate := range candidates {
		if utf8.RuneCountInString(candidate) < minSimilarityLength || utf8.RuneCountInString(password) < minSimilarityLength {
			continue
		}
		if strings.Contains(password, candidate) || strings.Contains(candidate, password) {
			return true
		}
	}

	return false
}
