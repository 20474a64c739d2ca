// Package card validates payment card input: Luhn checksum, network
// detection by BIN prefix, CVV and expiration checks, and display
// formatting. Everything here is a pure computation over strings; the
// package never stores, transmits, or logs a card number.
package card

import "strings"

// Network is the card scheme inferred from the number's leading digits.
type Network string

const (
	NetworkVisa       Network = "Visa"
	NetworkMastercard Network = "Mastercard"
	NetworkAmex       Network = "AmericanExpress"
	NetworkDiscover   Network = "Discover"
	NetworkUnknown    Network = "Unknown"
)

// CVVLength returns the number of security-code digits the network requires.
func CVVLength(n Network) int {
	switch n {
	case NetworkAmex:
		return 4
	case NetworkVisa, NetworkMastercard, NetworkDiscover, NetworkUnknown:
		return 3
	}
	return 3
}

// Clean strips the formatting characters users type into card fields
// (spaces and dashes). It does not validate the remainder.
func Clean(number string) string {
	return strings.ReplaceAll(strings.ReplaceAll(number, " ", ""), "-", "")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
