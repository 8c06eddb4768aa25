// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Field name constants for field-level validation scoping.
const (
	// FieldName targets the credential display name.
	FieldName = "name"

	// FieldFields targets the credential's sensitive field map.
	FieldFields = "fields"

	// FieldLength targets the generator option length.
	FieldLength = "length"
)

// maxPasswordLength bounds generator requests; beyond this the request is
// almost certainly a caller bug, not a password.
const maxPasswordLength = 1024

// CredentialValidator validates plaintext credentials and password
// generator options before they reach the engine.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a new CredentialValidator and returns
// it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both
// value and pointer forms are accepted. Returns ErrUnsupportedType for
// anything else.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	case models.GeneratorOptions:
		return v.validateGeneratorOptions(ctx, value, fields...)
	case *models.GeneratorOptions:
		return v.validateGeneratorOptions(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, credential models.Credential, fields ...string) error {
	scope := fieldScope(fields, FieldName, FieldFields)

	if scope[FieldName] && strings.TrimSpace(credential.Name) == "" {
		return ErrNameRequired
	}

	if scope[FieldFields] {
		hasContent := false
		for _, value := range credential.Fields {
			if strings.TrimSpace(value) != "" {
				hasContent = true
				break
			}
		}
		if !hasContent {
			return ErrNoFields
		}
	}

	return nil
}

func (v *CredentialValidator) validateGeneratorOptions(_ context.Context, opts models.GeneratorOptions, fields ...string) error {
	scope := fieldScope(fields, FieldLength)

	if scope[FieldLength] {
		if opts.Length <= 0 || opts.Length > maxPasswordLength {
			return fmt.Errorf("%w: %d", ErrInvalidLength, opts.Length)
		}
	}

	return nil
}

// fieldScope resolves the requested field subset; an empty request means
// the full default set.
func fieldScope(requested []string, defaults ...string) map[string]bool {
	scope := make(map[string]bool, len(defaults))
	if len(requested) == 0 {
		for _, f := range defaults {
			scope[f] = true
		}
		return scope
	}
	for _, f := range requested {
		scope[f] = true
	}
	return scope
}
