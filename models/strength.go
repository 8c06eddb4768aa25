// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Strength labels, mapped from the 0–100 score.
const (
	StrengthWeak      = "Weak"
	StrengthFair      = "Fair"
	StrengthGood      = "Good"
	StrengthExcellent = "Excellent"
)

// StrengthReport is the result of scoring a password.
type StrengthReport struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// GeneratorOptions selects the character classes and length for password
// generation. When no class is selected the generator falls back to
// lowercase letters plus digits.
type GeneratorOptions struct {
	Length           int
	IncludeUppercase bool
	IncludeLowercase bool
	IncludeNumbers   bool
	IncludeSymbols   bool
}
