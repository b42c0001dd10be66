package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{in: "140", want: 140, ok: true},
		{in: " 2020 ", want: 2020, ok: true},
		{in: "50 000", want: 50000, ok: true},
		{in: "50\u00a0000", want: 50000, ok: true},
		{in: "1,234.5", want: 1234.5, ok: true},
		{in: "1.234,5", want: 1234.5, ok: true},
		{in: "2\u202f345,6", want: 2345.6, ok: true},
		{in: "1,234,567", want: 1234567, ok: true},
		{in: "62,500", want: 62500, ok: true},
		{in: "0,5", want: 0.5, ok: true},
		{in: "197,00", want: 197, ok: true},
		{in: "150 kW", want: 150, ok: true},
		{in: "-3", want: -3, ok: true},
		{in: "5e4", want: 50000, ok: true},
		{in: "", ok: false},
		{in: "n/a", ok: false},
		{in: "-", ok: false},
		{in: "unknown", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
