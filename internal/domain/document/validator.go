package document

import "strings"

// Kind discriminates the two supported Brazilian tax-identifier formats.
//
// Domain notes:
//   - individual  => CPF, 11 digits
//   - organization => CNPJ, 14 digits
//
// Punctuation (dots, dashes, slashes) is presentation only and never part of
// the identifier's identity; callers should strip it with Digits before
// storing or comparing.

type Kind string

const (
	KindIndividual   Kind = "individual"
	KindOrganization Kind = "organization"
)

const (
	cpfLength  = 11
	cnpjLength = 14
)

// cnpjWeights are the cyclic weight sequences for the first and second CNPJ
// check digits.
var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Digits strips every non-digit rune from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate reports whether raw carries a checksum-valid identifier of the
// given kind. It is a pure function: no lookups, no side effects. Uniqueness
// checks against existing accounts are a separate concern handled by the
// registration flow, never here.
func Validate(raw string, kind Kind) bool {
	digits := Digits(raw)
	switch kind {
	case KindIndividual:
		return validateCPF(digits)
	case KindOrganization:
		return validateCNPJ(digits)
	default:
		return false
	}
}

// ExpectedLength returns the digit count for a kind, or 0 for unknown kinds.
func ExpectedLength(kind Kind) int {
	switch kind {
	case KindIndividual:
		return cpfLength
	case KindOrganization:
		return cnpjLength
	default:
		return 0
	}
}

func validateCPF(digits string) bool {
	if len(digits) != cpfLength || allSame(digits) {
		return false
	}

	// First check digit: weights 10..2 over the first 9 digits.
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	if checkDigit(sum) != int(digits[9]-'0') {
		return false
	}

	// Second check digit: weights 11..2 over the first 10 digits.
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	return checkDigit(sum) == int(digits[10]-'0')
}

func validateCNPJ(digits string) bool {
	if len(digits) != cnpjLength || allSame(digits) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeightsFirst {
		sum += int(digits[i]-'0') * w
	}
	if checkDigit(sum) != int(digits[12]-'0') {
		return false
	}

	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(digits[i]-'0') * w
	}
	return checkDigit(sum) == int(digits[13]-'0')
}

// checkDigit applies the shared mod-11 rule: 11 - (sum % 11), collapsing 10
// and 11 to 0.
func checkDigit(sum int) int {
	d := 11 - sum%11
	if d >= 10 {
		return 0
	}
	return d
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
