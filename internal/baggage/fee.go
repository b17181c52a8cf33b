// Package baggage computes excess-weight surcharges. It is stateless; the
// ledger applies the configured policy when attaching baggage to a ticket.
package baggage

// Default policy: 23 kg allowance, $10 per excess kg.
const (
	DefaultAllowanceKg = 23.0
	DefaultRatePerKg   = 10.0
)

type Policy struct {
	AllowanceKg float64
	RatePerKg   float64
}

func DefaultPolicy() Policy {
	return Policy{AllowanceKg: DefaultAllowanceKg, RatePerKg: DefaultRatePerKg}
}

// ComputeFee returns max(0, weight-allowance) * rate.
func ComputeFee(weight, allowanceKg, ratePerKg float64) float64 {
	excess := weight - allowanceKg
	if excess <= 0 {
		return 0
	}
	return excess * ratePerKg
}

func (p Policy) Fee(weight float64) float64 {
	return ComputeFee(weight, p.AllowanceKg, p.RatePerKg)
}
