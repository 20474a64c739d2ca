package card

import "strings"

const maskBullets = "•••• •••• •••• "

// amexGroups is the 4-6-5 display grouping American Express uses.
var amexGroups = []int{4, 6, 5}

// Format groups a card number for display: 4-6-5 for AmericanExpress
// (e.g. "3742 454554 00126"), blocks of 4 for everything else. It is purely
// cosmetic and never validates; removing the spaces from the output yields
// the cleaned input exactly.
func Format(number string) string {
	digits := Clean(number)
	if digits == "" {
		return ""
	}

	if Detect(digits) == NetworkAmex {
		return formatGroups(digits, amexGroups)
	}

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

func formatGroups(digits string, groups []int) string {
	var b strings.Builder
	pos := 0
	for _, size := range groups {
		if pos >= len(digits) {
			break
		}
		if pos > 0 {
			b.WriteByte(' ')
		}
		end := pos + size
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[pos:end])
		pos = end
	}
	// Anything past the grouping pattern is appended as-is.
	if pos < len(digits) {
		b.WriteByte(' ')
		b.WriteString(digits[pos:])
	}
	return b.String()
}

// Mask renders a card number as a fixed-width masked string showing only
// the last four digits, e.g. "•••• •••• •••• 1234", regardless of the
// number's true length. Inputs shorter than four digits mask entirely.
func Mask(number string) string {
	digits := Clean(number)
	if len(digits) < 4 {
		return "••••"
	}
	return maskBullets + digits[len(digits)-4:]
}
