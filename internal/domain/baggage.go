package domain

import "fmt"

// BaggageStatusInTransit is the status every new baggage record starts in.
const BaggageStatusInTransit = "in transit"

// Baggage ids are caller-supplied and not validated for uniqueness.
type Baggage struct {
	ID     int
	Weight float64
	Status string
	Fee    float64
}

func (b *Baggage) Describe() string {
	if b.Fee > 0 {
		return fmt.Sprintf("Baggage ID %d (%.1f kg, %s), excess fee $%.2f", b.ID, b.Weight, b.Status, b.Fee)
	}
	return fmt.Sprintf("Baggage ID %d (%.1f kg, %s), within the allowed limit", b.ID, b.Weight, b.Status)
}

var _ Describer = (*Baggage)(nil)
