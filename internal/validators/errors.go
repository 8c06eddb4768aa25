package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives an object of a
	// type it has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrNameRequired is returned for credentials without a display name.
	ErrNameRequired = errors.New("credential name is required")

	// ErrNoFields is returned for credentials carrying no non-empty fields.
	ErrNoFields = errors.New("credential has no fields to encrypt")

	// ErrInvalidLength is returned for generator options with a
	// non-positive or unreasonably large length.
	ErrInvalidLength = errors.New("invalid password length")
)
