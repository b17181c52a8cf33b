package email

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airreserve/internal/kafka"
)

// Sender is a stub notification channel; real delivery is out of scope.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	fmt.Printf("notify passenger %s: %s for ticket %d (flight %d seat %d)\n",
		event.PassportNo, event.Type, event.TicketNumber, event.FlightNumber, event.SeatNumber)
	return nil
}
