package card

const (
	minNumberLength = 13
	maxNumberLength = 19
)

// ValidLuhn reports whether number passes the Luhn mod-10 checksum.
// Spaces and dashes are stripped first; after cleaning, the number must be
// 13 to 19 digits. Anything else is false, never an error.
func ValidLuhn(number string) bool {
	number = Clean(number)

	if len(number) < minNumberLength || len(number) > maxNumberLength {
		return false
	}
	if !allDigits(number) {
		return false
	}

	sum := 0
	double := false

	// Process from right to left, doubling every second digit.
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}
