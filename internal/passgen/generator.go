// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package passgen generates random passwords and scores password strength.
// All randomness flows through the injected crypto.RandomSource, so the
// generator is deterministic under test and CSPRNG-backed in production.
package passgen

import (
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{}<>?/|~"
)

// Generator produces random passwords with guaranteed per-class inclusion.
type Generator struct {
	random crypto.RandomSource
}

// NewGenerator constructs a Generator drawing from random.
func NewGenerator(random crypto.RandomSource) *Generator {
	return &Generator{random: random}
}

// Generate builds a password of opts.Length from the selected character
// classes. At least one character of every selected class is guaranteed to
// appear; remaining positions are filled from the combined charset and the
// whole result is Fisher–Yates shuffled so the guaranteed characters do not
// cluster at the front. With no class selected the charset falls back to
// lowercase plus digits.
func (g *Generator) Generate(opts models.GeneratorOptions) (string, error) {
	if opts.Length <= 0 {
		return "", fmt.Errorf("password length must be positive, got %d", opts.Length)
	}

	var classes []string
	if opts.IncludeLowercase {
		classes = append(classes, lowercaseChars)
	}
	if opts.IncludeUppercase {
		classes = append(classes, uppercaseChars)
	}
	if opts.IncludeNumbers {
		classes = append(classes, numberChars)
	}
	if opts.IncludeSymbols {
		classes = append(classes, symbolChars)
	}
	if len(classes) == 0 {
		classes = []string{lowercaseChars, numberChars}
	}

	charset := ""
	for _, class := range classes {
		charset += class
	}

	password := make([]byte, 0, opts.Length)

	// One guaranteed character per selected class, as far as length allows.
	for _, class := range classes {
		if len(password) == opts.Length {
			break
		}
		idx, err := g.random.Index(len(class))
		if err != nil {
			return "", fmt.Errorf("draw class character: %w", err)
		}
		password = append(password, class[idx])
	}

	for len(password) < opts.Length {
		idx, err := g.random.Index(len(charset))
		if err != nil {
			return "", fmt.Errorf("draw character: %w", err)
		}
		password = append(password, charset[idx])
	}

	// Fisher–Yates so the per-class characters are not predictably placed.
	for i := len(password) - 1; i > 0; i-- {
		j, err := g.random.Index(i + 1)
		if err != nil {
			return "", fmt.Errorf("shuffle: %w", err)
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}
