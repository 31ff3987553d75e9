// Package validation holds the field-level business rules as pure functions,
// decoupled from persistence. The write paths call these explicitly before
// touching a repository, so every rule is unit-testable without a store.
//
// Validators accumulate violations instead of stopping at the first one; the
// caller receives a single ValidationError listing everything that is wrong
// with the input.
package validation

import (
	domainerrors "plantstore/internal/domain/errors"
)

// Violations collects rule failures during a validation pass.
type Violations struct {
	messages []string
}

// Add records a violation message.
func (v *Violations) Add(message string) {
	v.messages = append(v.messages, message)
}

// Empty reports whether no rule failed.
func (v *Violations) Empty() bool {
	return len(v.messages) == 0
}

// Err returns a ValidationError carrying every recorded message, or nil when
// the pass was clean.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}

	return domainerrors.NewValidationError(v.messages...)
}
