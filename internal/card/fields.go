package card

import "time"

// maxYearsAhead bounds how far in the future an expiration year may be.
// Real cards expire within a few years; anything beyond this is a typo.
const maxYearsAhead = 20

// ValidCVV reports whether cvv has the right shape for the network:
// exactly 4 digits for AmericanExpress, exactly 3 for everything else.
func ValidCVV(cvv string, n Network) bool {
	if len(cvv) != CVVLength(n) {
		return false
	}
	return allDigits(cvv)
}

// expiryStatus distinguishes a card that used to be valid from input that
// never was, so the facade can report "expired" vs "invalid" separately.
type expiryStatus int

const (
	expiryOK expiryStatus = iota
	expiryExpired
	expiryInvalid
)

// checkExpiry validates a month/year pair against now. Two-digit years are
// read as 2000+year. A card expiring in the current month is still valid.
func checkExpiry(month, year int, now time.Time) expiryStatus {
	if month < 1 || month > 12 {
		return expiryInvalid
	}
	if year < 0 {
		return expiryInvalid
	}

	if year < 100 {
		year += 2000
	}

	curYear, curMonth := now.Year(), int(now.Month())

	if year < curYear || (year == curYear && month < curMonth) {
		return expiryExpired
	}
	if year > curYear+maxYearsAhead {
		return expiryInvalid
	}

	return expiryOK
}

// ValidExpiry reports whether the month/year pair is a usable expiration
// date as of now.
func ValidExpiry(month, year int, now time.Time) bool {
	return checkExpiry(month, year, now) == expiryOK
}
