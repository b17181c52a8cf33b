package domain

import "fmt"

// Airline is a static info record about the carrier, shown by the
// presentation layer. It owns no reservation state.
type Airline struct {
	Name      string
	Country   string
	FleetSize int
	IATACode  string
}

func (a *Airline) Describe() string {
	return fmt.Sprintf("Airline Details:\nName: %s\nCountry: %s\nFleet Size: %d\nIATA Code: %s",
		a.Name, a.Country, a.FleetSize, a.IATACode)
}

var _ Describer = (*Airline)(nil)
