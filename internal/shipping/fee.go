package shipping

import (
	"github.com/shopspring/decimal"

	"katering/internal/config"
)

// FeeCalculator maps a resolved distance to a shipping fee at a fixed
// per-kilometer tariff. Fractional kilometers always round the fee upward,
// so a trip is never undercharged.
type FeeCalculator struct {
	tariffPerKM int64
}

func NewFeeCalculator(cfg config.ShippingConfig) FeeCalculator {
	return FeeCalculator{tariffPerKM: cfg.TariffPerKM}
}

// Fee computes ceil(km * tariff) in whole currency units. The caller
// guarantees km > 0; the resolver rejects non-positive distances before
// they reach this stage.
func (c FeeCalculator) Fee(km float64) int64 {
	return decimal.NewFromFloat(km).
		Mul(decimal.NewFromInt(c.tariffPerKM)).
		Ceil().
		IntPart()
}

func (c FeeCalculator) TariffPerKM() int64 {
	return c.tariffPerKM
}
