package card

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Input carries the raw checkout form fields as the user typed them.
// The number may still contain spaces or dashes; month and year arrive as
// strings because that is what form fields produce.
type Input struct {
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
}

// Result is the outcome of validating one card. Errors holds one
// human-readable reason per failed rule; FormattedNumber and MaskedNumber
// are display strings and are populated even when the card is invalid so
// the UI can keep rendering while the user corrects input.
type Result struct {
	IsValid         bool     `json:"is_valid"`
	Network         Network  `json:"card_network"`
	Errors          []string `json:"errors"`
	FormattedNumber string   `json:"formatted_number"`
	MaskedNumber    string   `json:"masked_number"`
}

// Validator validates card input. The clock is injectable so expiration
// tests are deterministic.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorAt creates a validator whose notion of "now" is fixed.
func NewValidatorAt(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// Validate runs every check over the input and reports all failures at
// once. Network detection happens first and on its own: an Unknown network
// does not invalidate the card, and a number that fails the checksum is
// still classified so live-typing UIs get a hint. Malformed input of any
// kind becomes a reason in Errors, never a panic.
func (v *Validator) Validate(in Input) Result {
	digits := Clean(in.CardNumber)
	network := Detect(digits)

	res := Result{
		Network:         network,
		FormattedNumber: Format(digits),
		MaskedNumber:    Mask(digits),
	}

	if !ValidLuhn(digits) {
		res.Errors = append(res.Errors, "invalid card number")
	}

	if !ValidCVV(strings.TrimSpace(in.CVV), network) {
		if network == NetworkAmex {
			res.Errors = append(res.Errors, "security code must be 4 digits for American Express cards")
		} else {
			res.Errors = append(res.Errors, fmt.Sprintf("security code must be %d digits", CVVLength(network)))
		}
	}

	switch v.expiryStatus(in.ExpMonth, in.ExpYear) {
	case expiryExpired:
		res.Errors = append(res.Errors, "card is expired")
	case expiryInvalid:
		res.Errors = append(res.Errors, "invalid expiration date")
	}

	res.IsValid = len(res.Errors) == 0
	return res
}

// expiryStatus parses the raw month/year fields and checks them against
// the validator's clock. Unparseable fields count as invalid input.
func (v *Validator) expiryStatus(rawMonth, rawYear string) expiryStatus {
	month, err := strconv.Atoi(strings.TrimSpace(rawMonth))
	if err != nil {
		return expiryInvalid
	}
	year, err := strconv.Atoi(strings.TrimSpace(rawYear))
	if err != nil {
		return expiryInvalid
	}
	return checkExpiry(month, year, v.now())
}
