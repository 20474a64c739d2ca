package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidCVV(t *testing.T) {
	tests := []struct {
		name    string
		cvv     string
		network Network
		want    bool
	}{
		{name: "3 digits visa", cvv: "123", network: NetworkVisa, want: true},
		{name: "3 digits mastercard", cvv: "123", network: NetworkMastercard, want: true},
		{name: "3 digits discover", cvv: "789", network: NetworkDiscover, want: true},
		{name: "3 digits unknown network", cvv: "123", network: NetworkUnknown, want: true},
		{name: "3 digits amex", cvv: "123", network: NetworkAmex, want: false},
		{name: "4 digits amex", cvv: "1234", network: NetworkAmex, want: true},
		{name: "4 digits visa", cvv: "1234", network: NetworkVisa, want: false},
		{name: "non-digit", cvv: "12a", network: NetworkVisa, want: false},
		{name: "empty", cvv: "", network: NetworkVisa, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCVV(tt.cvv, tt.network))
		})
	}
}

func TestCheckExpiry(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		month int
		year  int
		want  expiryStatus
	}{
		{name: "current month is still valid", month: 6, year: 2026, want: expiryOK},
		{name: "next month", month: 7, year: 2026, want: expiryOK},
		{name: "one month in the past", month: 5, year: 2026, want: expiryExpired},
		{name: "last year", month: 12, year: 2025, want: expiryExpired},
		{name: "two digit year", month: 12, year: 30, want: expiryOK},
		{name: "two digit year expired", month: 1, year: 20, want: expiryExpired},
		{name: "exactly 20 years ahead", month: 1, year: 2046, want: expiryOK},
		{name: "more than 20 years ahead", month: 1, year: 2047, want: expiryInvalid},
		{name: "month zero", month: 0, year: 2030, want: expiryInvalid},
		{name: "month thirteen", month: 13, year: 2030, want: expiryInvalid},
		{name: "negative year", month: 6, year: -1, want: expiryInvalid},
		{name: "negative month", month: -3, year: 2030, want: expiryInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkExpiry(tt.month, tt.year, now))
		})
	}
}

func TestValidExpiry_WallClock(t *testing.T) {
	now := time.Now()
	assert.True(t, ValidExpiry(int(now.Month()), now.Year(), now))
	assert.False(t, ValidExpiry(int(now.AddDate(0, -1, 0).Month()), now.AddDate(0, -1, 0).Year(), now))
	assert.False(t, ValidExpiry(1, now.Year()+21, now))
}
