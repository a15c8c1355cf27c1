// Package cpf validates Brazilian national identifiers (Cadastro de Pessoas Físicas).
package cpf

import "strings"

// Length is the number of digits in a normalized CPF.
const Length = 11

// Normalize strips every non-digit character from raw.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// IsValid reports whether raw is a CPF whose two trailing check digits match
// the weighted-sum checksum of the preceding digits. Formatting punctuation is
// ignored; sequences of a single repeated digit are always rejected.
func IsValid(raw string) bool {
	digits := Normalize(raw)
	if len(digits) != Length {
		return false
	}

	if allSame(digits) {
		return false
	}

	d := make([]int, Length)
	for i := range digits {
		d[i] = int(digits[i] - '0')
	}

	if checkDigit(d[:9]) != d[9] {
		return false
	}

	return checkDigit(d[:10]) == d[10]
}

// Format renders a CPF as 000.000.000-00. Inputs that do not normalize to
// eleven digits are returned unchanged.
func Format(raw string) string {
	digits := Normalize(raw)
	if len(digits) != Length {
		return raw
	}

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// checkDigit weights the digits from len(digits)+1 down to 2.
func checkDigit(digits []int) int {
	weight := len(digits) + 1
	sum := 0
	for _, v := range digits {
		sum += v * weight
		weight--
	}

	remainder := sum * 10 % 11
	if remainder >= 10 {
		return 0
	}

	return remainder
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}

	return true
}
