package domain

import (
	"fmt"
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentUnsettled PaymentStatus = "Unsettled"
	PaymentSettled   PaymentStatus = "Settled"
)

// Payment is created lazily, at most one per ticket. Once settled it is
// immutable; the processor rejects repeated settlement attempts instead of
// reprocessing them.
type Payment struct {
	ID           string
	TicketNumber int64
	Amount       float64
	CardMask     string
	Status       PaymentStatus
	CreatedAt    time.Time
	SettledAt    time.Time
}

// MaskCard retains only the last 4 digits for display.
func MaskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("*", len(card)-4) + card[len(card)-4:]
}

func (p *Payment) Describe() string {
	return fmt.Sprintf("Payment %s\nTicket No: %d\nAmount: $%.2f\nCard: %s\nStatus: %s",
		p.ID, p.TicketNumber, p.Amount, p.CardMask, p.Status)
}

var _ Describer = (*Payment)(nil)
