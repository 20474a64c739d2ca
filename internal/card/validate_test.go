package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fixedNow pins the validator clock so expiration outcomes don't drift.
func fixedNow() time.Time {
	return time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name        string
		input       Input
		wantValid   bool
		wantNetwork Network
		wantErrs    []string
	}{
		{
			name:        "valid visa",
			input:       Input{CardNumber: "4532015112830366", CVV: "123", ExpMonth: "12", ExpYear: "2030"},
			wantValid:   true,
			wantNetwork: NetworkVisa,
		},
		{
			name:        "valid discover",
			input:       Input{CardNumber: "6011000991300009", CVV: "789", ExpMonth: "09", ExpYear: "2030"},
			wantValid:   true,
			wantNetwork: NetworkDiscover,
		},
		{
			name:        "valid amex with 4 digit cvv",
			input:       Input{CardNumber: "374245455400126", CVV: "1234", ExpMonth: "12", ExpYear: "2030"},
			wantValid:   true,
			wantNetwork: NetworkAmex,
		},
		{
			name:        "amex with 3 digit cvv",
			input:       Input{CardNumber: "374245455400126", CVV: "123", ExpMonth: "12", ExpYear: "2030"},
			wantValid:   false,
			wantNetwork: NetworkAmex,
			wantErrs:    []string{"security code must be 4 digits for American Express cards"},
		},
		{
			name:        "luhn failure",
			input:       Input{CardNumber: "1234567890123456", CVV: "123", ExpMonth: "12", ExpYear: "2030"},
			wantValid:   false,
			wantNetwork: NetworkUnknown,
			wantErrs:    []string{"invalid card number"},
		},
		{
			name:        "expired card",
			input:       Input{CardNumber: "4532015112830366", CVV: "123", ExpMonth: "01", ExpYear: "2020"},
			wantValid:   false,
			wantNetwork: NetworkVisa,
			wantErrs:    []string{"card is expired"},
		},
		{
			name:        "implausible future expiry",
			input:       Input{CardNumber: "4532015112830366", CVV: "123", ExpMonth: "01", ExpYear: "2060"},
			wantValid:   false,
			wantNetwork: NetworkVisa,
			wantErrs:    []string{"invalid expiration date"},
		},
		{
			name:        "every failing rule reports its own reason",
			input:       Input{CardNumber: "4532015112830367", CVV: "12", ExpMonth: "01", ExpYear: "2020"},
			wantValid:   false,
			wantNetwork: NetworkVisa,
			wantErrs:    []string{"invalid card number", "security code must be 3 digits", "card is expired"},
		},
		{
			name:        "unknown network passes when all checks pass",
			input:       Input{CardNumber: "1234567890123452", CVV: "123", ExpMonth: "12", ExpYear: "30"},
			wantValid:   true,
			wantNetwork: NetworkUnknown,
		},
		{
			name:        "garbage everywhere does not panic",
			input:       Input{CardNumber: "not a card", CVV: "xyz", ExpMonth: "bb", ExpYear: "cc"},
			wantValid:   false,
			wantNetwork: NetworkUnknown,
			wantErrs:    []string{"invalid card number", "security code must be 3 digits", "invalid expiration date"},
		},
		{
			name:        "empty input",
			input:       Input{},
			wantValid:   false,
			wantNetwork: NetworkUnknown,
			wantErrs:    []string{"invalid card number", "security code must be 3 digits", "invalid expiration date"},
		},
		{
			name:        "spaces in number are tolerated",
			input:       Input{CardNumber: "4532 0151 1283 0366", CVV: "123", ExpMonth: "12", ExpYear: "2030"},
			wantValid:   true,
			wantNetwork: NetworkVisa,
		},
	}

	v := NewValidatorAt(fixedNow)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.input)

			assert.Equal(t, tt.wantValid, res.IsValid)
			assert.Equal(t, tt.wantNetwork, res.Network)
			if tt.wantValid {
				assert.Empty(t, res.Errors)
			} else {
				assert.Equal(t, tt.wantErrs, res.Errors)
			}
		})
	}
}

func TestValidator_Validate_DisplayStrings(t *testing.T) {
	v := NewValidatorAt(fixedNow)

	res := v.Validate(Input{CardNumber: "374245455400126", CVV: "1234", ExpMonth: "12", ExpYear: "2030"})
	assert.Equal(t, "3742 454554 00126", res.FormattedNumber)
	assert.Equal(t, "•••• •••• •••• 0126", res.MaskedNumber)

	// Display strings are produced even for invalid cards.
	res = v.Validate(Input{CardNumber: "4532015112830367", CVV: "12", ExpMonth: "1", ExpYear: "2020"})
	assert.Equal(t, "4532 0151 1283 0367", res.FormattedNumber)
	assert.Equal(t, "•••• •••• •••• 0367", res.MaskedNumber)
}

func TestNewValidator_UsesWallClock(t *testing.T) {
	v := NewValidator()
	year := time.Now().AddDate(2, 0, 0).Year()

	res := v.Validate(Input{CardNumber: "4532015112830366", CVV: "123", ExpMonth: "12", ExpYear: ""})
	assert.False(t, res.IsValid)

	res = v.Validate(Input{CardNumber: "4532015112830366", CVV: "123", ExpMonth: "12", ExpYear: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")})
	assert.True(t, res.IsValid)
}
