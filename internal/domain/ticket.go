package domain

import (
	"fmt"
	"sync"
	"time"
)

type TicketStatus string

const (
	TicketUnpaid    TicketStatus = "Unpaid"
	TicketPaid      TicketStatus = "Paid"
	TicketCancelled TicketStatus = "Cancelled"
)

// Ticket references exactly one passenger, one flight and one seat. While the
// ticket is active the referenced seat is Held. The ticket's own lock
// serializes payment settlement against cancellation, so a ticket can never
// become Paid after it was Cancelled.
//
// Tickets are always passed by pointer; the embedded mutex makes copies
// invalid.
type Ticket struct {
	Number        int64
	PassportNo    string
	PassengerName string
	FlightNumber  int
	Seat          Seat
	CreatedAt     time.Time

	mu      sync.Mutex
	status  TicketStatus
	baggage *Baggage
}

func NewTicket(number int64, p *Passenger, flightNumber int, seat Seat) *Ticket {
	return &Ticket{
		Number:        number,
		PassportNo:    p.PassportNo,
		PassengerName: p.Name,
		FlightNumber:  flightNumber,
		Seat:          seat,
		CreatedAt:     time.Now(),
		status:        TicketUnpaid,
	}
}

func (t *Ticket) Status() TicketStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// MarkPaid transitions Unpaid -> Paid. It refuses cancelled tickets and is
// called only by the payment processor while it holds its own settlement lock.
func (t *Ticket) MarkPaid() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == TicketCancelled {
		return ErrTicketCancelled
	}
	t.status = TicketPaid
	return nil
}

// Cancel is terminal. A second cancellation reports ErrTicketCancelled.
func (t *Ticket) Cancel() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status == TicketCancelled {
		return ErrTicketCancelled
	}
	t.status = TicketCancelled
	return nil
}

// SetBaggage overwrites any prior baggage record; a ticket holds at most one.
func (t *Ticket) SetBaggage(b *Baggage) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.baggage = b
}

func (t *Ticket) Baggage() *Baggage {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.baggage
}

// AmountDue is the seat price plus the baggage excess fee, if any. Payment
// amount reconciliation is the caller's job; the payment processor only
// validates positivity.
func (t *Ticket) AmountDue() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	due := t.Seat.Price
	if t.baggage != nil {
		due += t.baggage.Fee
	}
	return due
}

func (t *Ticket) Describe() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	payment := "Pending"
	if t.status == TicketPaid {
		payment = "Completed"
	}
	s := fmt.Sprintf("Ticket No: %d\nPassenger: %s\nFlight No: %d\nSeat No: %d\nPayment Status: %s",
		t.Number, t.PassengerName, t.FlightNumber, t.Seat.Number, payment)
	if t.baggage != nil {
		s += "\n" + t.baggage.Describe()
	}
	return s
}

var _ Describer = (*Ticket)(nil)
