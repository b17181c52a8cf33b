package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTicket() *Ticket {
	p := &Passenger{Name: "Omar", Age: 30, Phone: "0123456789", Address: "Cairo", PassportNo: "40112233"}
	seat := Seat{FlightNumber: 8452, Number: 14, Class: SeatClassEconomy, Price: 10000, Status: SeatHeld}
	return NewTicket(1, p, 8452, seat)
}

func TestTicketStartsUnpaid(t *testing.T) {
	ticket := testTicket()

	assert.Equal(t, TicketUnpaid, ticket.Status())
	assert.Nil(t, ticket.Baggage())
}

func TestTicketMarkPaid(t *testing.T) {
	ticket := testTicket()

	assert.NoError(t, ticket.MarkPaid())
	assert.Equal(t, TicketPaid, ticket.Status())
}

func TestTicketCancelIsTerminal(t *testing.T) {
	ticket := testTicket()

	assert.NoError(t, ticket.Cancel())
	assert.Equal(t, TicketCancelled, ticket.Status())

	assert.ErrorIs(t, ticket.MarkPaid(), ErrTicketCancelled)
	assert.ErrorIs(t, ticket.Cancel(), ErrTicketCancelled)
}

func TestTicketAmountDueIncludesBaggageFee(t *testing.T) {
	ticket := testTicket()
	assert.Equal(t, float64(10000), ticket.AmountDue())

	ticket.SetBaggage(&Baggage{ID: 1, Weight: 30, Status: BaggageStatusInTransit, Fee: 70})
	assert.Equal(t, float64(10070), ticket.AmountDue())
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "************4444", MaskCard("4111111111114444"))
	assert.Equal(t, "1234", MaskCard("1234"))
}
