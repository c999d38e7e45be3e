package validate

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"2024/01/31", true},
		{"2024/12/01", true},
		{"2024/02/30", false},
		{"2024-01-31", false},
		{"not a date", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := ParseDate(tt.input)
		assert.Equal(t, tt.valid, ok, "input %q", tt.input)
	}
}

func TestDate(t *testing.T) {
	assert.False(t, Date(time.Time{}))
	assert.True(t, Date(time.Now()))
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"", true},
		{"6912345678", true},
		{"691234567", false},
		{"69123456789", false},
		{"69123456ab", false},
		{" 691234567", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, PhoneNumber(tt.input), "input %q", tt.input)
	}
}

func TestLatitude(t *testing.T) {
	tests := []struct {
		input float64
		valid bool
	}{
		{0, true},
		{-90, true},
		{90, true},
		{-90.0001, false},
		{90.0001, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, Latitude(tt.input), "input %v", tt.input)
	}

	assert.False(t, Latitude(math.NaN()))
}

func TestLongitude(t *testing.T) {
	tests := []struct {
		input float64
		valid bool
	}{
		{0, true},
		{-180, true},
		{180, true},
		{-180.5, false},
		{180.5, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, Longitude(tt.input), "input %v", tt.input)
	}
}

func TestTaxID(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"123456789", true},
		{"12345678", false},
		{"1234567890", false},
		{"12345678a", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, TaxID(tt.input), "input %q", tt.input)
	}
}
