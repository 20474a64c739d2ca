package card

import (
	"strconv"
	"strings"
)

// Detect classifies a card number into its network by BIN prefix. It works
// on partial input so the UI can show a network hint while the user is still
// typing: "4" already detects Visa, "37" already detects AmericanExpress.
// Classification is independent of checksum validity.
//
// The Mastercard 2-series is matched by the coarse two-digit 22-27 rule
// rather than the exact 222100-272099 BIN range.
func Detect(number string) Network {
	digits := Clean(number)
	if !allDigits(digits) {
		return NetworkUnknown
	}

	switch {
	case strings.HasPrefix(digits, "4"):
		return NetworkVisa
	case prefixInRange(digits, 2, 51, 55), prefixInRange(digits, 2, 22, 27):
		return NetworkMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return NetworkAmex
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"),
		prefixInRange(digits, 3, 644, 649), prefixInRange(digits, 6, 622126, 622925):
		return NetworkDiscover
	}

	return NetworkUnknown
}

// prefixInRange reports whether the first width digits of the number, read
// as an integer, fall in [lo, hi]. Numbers shorter than width never match.
func prefixInRange(digits string, width, lo, hi int) bool {
	if len(digits) < width {
		return false
	}
	prefix, err := strconv.Atoi(digits[:width])
	if err != nil {
		return false
	}
	return prefix >= lo && prefix <= hi
}
