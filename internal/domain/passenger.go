package domain

import "fmt"

// Passenger is immutable once registered; the directory exposes no update
// operations.
type Passenger struct {
	Name       string
	Age        int
	Phone      string
	Address    string
	PassportNo string
}

func (p *Passenger) Describe() string {
	return fmt.Sprintf("Passenger Details:\nName: %s\nAge: %d\nPhone: %s\nAddress: %s\nPassport No: %s",
		p.Name, p.Age, p.Phone, p.Address, p.PassportNo)
}

var _ Describer = (*Passenger)(nil)
