package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validators_mocks.go -package=mock

import "context"

// Validator checks domain objects before they reach the crypto engine.
// Optional field names restrict validation to a subset of fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
