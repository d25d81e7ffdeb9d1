package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     int64
	}{
		{"zero-decimal unscaled", 90000, "vnd", 90000},
		{"zero-decimal rounds", 90000.6, "vnd", 90001},
		{"decimal scales to hundredths", 19.99, "usd", 1999},
		{"decimal rounds after scaling", 10.006, "eur", 1001},
		{"yen unscaled", 1500, "jpy", 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnitAmount(tt.amount, tt.currency))
		})
	}
}
