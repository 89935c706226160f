package shipping

import (
	"math"
	"testing"

	"katering/internal/config"
)

func TestFee_WholeKilometers(t *testing.T) {
	fees := NewFeeCalculator(config.ShippingConfig{TariffPerKM: 2000})

	if got := fees.Fee(5); got != 10000 {
		t.Errorf("expected fee 10000 for 5 km, got %d", got)
	}
}

func TestFee_FractionalKilometersRoundUp(t *testing.T) {
	fees := NewFeeCalculator(config.ShippingConfig{TariffPerKM: 2000})

	tests := []struct {
		km       float64
		expected int64
	}{
		{0.001, 2},
		{1.0001, 2001},
		{5.25, 10500},
		{7.3333, 14667},
		{12.346, 24692},
	}

	for _, tt := range tests {
		if got := fees.Fee(tt.km); got != tt.expected {
			t.Errorf("Fee(%v): expected %d, got %d", tt.km, tt.expected, got)
		}
	}
}

func TestFee_NeverUndercharges(t *testing.T) {
	tariff := int64(1750)
	fees := NewFeeCalculator(config.ShippingConfig{TariffPerKM: tariff})

	for _, km := range []float64{0.1, 0.333, 1, 2.718, 5, 9.999, 42.123} {
		fee := fees.Fee(km)
		if float64(fee) < km*float64(tariff)-1e-9 {
			t.Errorf("Fee(%v) = %d undercharges %v", km, fee, km*float64(tariff))
		}
		if float64(fee) >= km*float64(tariff)+float64(tariff) {
			t.Errorf("Fee(%v) = %d overcharges by more than one km", km, fee)
		}
		if fee != int64(math.Ceil(km*float64(tariff))) {
			t.Errorf("Fee(%v) = %d, expected ceil = %d", km, fee, int64(math.Ceil(km*float64(tariff))))
		}
	}
}

func TestFee_Idempotent(t *testing.T) {
	fees := NewFeeCalculator(config.ShippingConfig{TariffPerKM: 2000})

	first := fees.Fee(5.123)
	second := fees.Fee(5.123)
	if first != second {
		t.Errorf("expected identical fees for identical input, got %d and %d", first, second)
	}
}
