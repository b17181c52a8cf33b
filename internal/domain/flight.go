package domain

import (
	"fmt"
	"strings"
)

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "Economy"
	SeatClassBusiness SeatClass = "Business"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "Available"
	SeatHeld      SeatStatus = "Held"
)

// Seat is keyed by (flight number, seat number). Its status is mutated only
// by the seat inventory's hold/release operations; everywhere else a Seat is
// a value snapshot.
type Seat struct {
	FlightNumber int
	Number       int
	Class        SeatClass
	Price        float64
	Status       SeatStatus
}

func (s Seat) String() string {
	return fmt.Sprintf("Seat %d (%s, $%.2f) - %s", s.Number, s.Class, s.Price, s.Status)
}

// Flight carries an ordered snapshot of its seats. The authoritative seat
// state lives in the inventory.
type Flight struct {
	Number        int
	Origin        string
	Destination   string
	DepartureTime string
	Seats         []Seat
}

func (f *Flight) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flight %d: %s -> %s\n", f.Number, f.Origin, f.Destination)
	fmt.Fprintf(&b, "Departure Time: %s", f.DepartureTime)
	for _, s := range f.Seats {
		b.WriteString("\n")
		b.WriteString(s.String())
	}
	return b.String()
}

var _ Describer = (*Flight)(nil)
