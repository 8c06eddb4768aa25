// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package passgen

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Score rates password strength on a 0–100 additive heuristic:
// length tiers (>=12: +25, >=8: +15, >=6: +10), +15 per letter-case and
// digit class present, +20 for a symbol, +10 when the unique-character
// ratio is at least 0.7. The score maps to labels at 80/60/40.
func Score(password string) models.StrengthReport {
	if password == "" {
		return models.StrengthReport{Score: 0, Label: models.StrengthWeak}
	}

	score := 0

	runes := []rune(password)
	switch {
	case len(runes) >= 12:
		score += 25
	case len(runes) >= 8:
		score += 15
	case len(runes) >= 6:
		score += 10
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if hasLower {
		score += 15
	}
	if hasUpper {
		score += 15
	}
	if hasDigit {
		score += 15
	}
	if strings.ContainsAny(password, symbolChars) {
		score += 20
	}

	unique := make(map[rune]bool, len(runes))
	for _, r := range runes {
		unique[r] = true
	}
	if float64(len(unique))/float64(len(runes)) >= 0.7 {
		score += 10
	}

	if score > 100 {
		score = 100
	}

	return models.StrengthReport{Score: score, Label: label(score)}
}

func label(score int) string {
	switch {
	case score >= 80:
		return models.StrengthExcellent
	case score >= 60:
		return models.StrengthGood
	case score >= 40:
		return models.StrengthFair
	default:
		return models.StrengthWeak
	}
}
