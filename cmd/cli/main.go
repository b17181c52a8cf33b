package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Domenick1991/airreserve/config"
	"github.com/Domenick1991/airreserve/internal/baggage"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/service/directory"
	"github.com/Domenick1991/airreserve/internal/service/inventory"
	"github.com/Domenick1991/airreserve/internal/service/ledger"
	"github.com/Domenick1991/airreserve/internal/service/payment"
)

// app wires the reservation services behind a terminal menu. All state lives
// in the services; the menu only reads input and prints Describe output.
type app struct {
	cfg       *config.Config
	in        *bufio.Scanner
	airline   domain.Airline
	directory directory.DirectoryUseCase
	inventory inventory.InventoryUseCase
	ledger    ledger.LedgerUseCase
	payments  payment.PaymentUseCase
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("load config: %v", err)
		}
		cfg = config.Default()
	}

	directoryService := directory.NewDirectoryService()
	inventoryService := inventory.NewInventoryService()
	ledgerService := ledger.NewLedgerService(inventoryService, directoryService,
		ledger.WithBaggagePolicy(baggage.Policy{
			AllowanceKg: cfg.Baggage.AllowanceKg,
			RatePerKg:   cfg.Baggage.RatePerKg,
		}),
	)
	paymentService := payment.NewPaymentService()

	seedFlights(inventoryService, cfg.Seed)

	a := &app{
		cfg: cfg,
		in:  bufio.NewScanner(os.Stdin),
		airline: domain.Airline{
			Name:      cfg.Airline.Name,
			Country:   cfg.Airline.Country,
			FleetSize: cfg.Airline.FleetSize,
			IATACode:  cfg.Airline.IATACode,
		},
		directory: directoryService,
		inventory: inventoryService,
		ledger:    ledgerService,
		payments:  paymentService,
	}
	a.mainMenu()
}

func seedFlights(inv *inventory.InventoryService, seed []config.SeedFlight) {
	for _, f := range seed {
		if _, err := inv.AddFlight(f.Number, f.Origin, f.Destination, f.DepartureTime); err != nil {
			log.Printf("seed flight %d: %v", f.Number, err)
			continue
		}
		for _, s := range f.Seats {
			if err := inv.AddSeat(f.Number, s.Number, domain.SeatClass(s.Class), s.Price); err != nil {
				log.Printf("seed seat %d on flight %d: %v", s.Number, f.Number, err)
			}
		}
	}
}

func (a *app) mainMenu() {
	for {
		fmt.Println("\n=== Airline Reservation System ===")
		fmt.Println("1. Register")
		fmt.Println("2. Login")
		fmt.Println("3. Admin Login")
		fmt.Println("4. Exit")

		switch a.prompt("Choose an option: ") {
		case "1":
			a.register()
		case "2":
			a.login()
		case "3":
			a.adminLogin()
		case "4":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (a *app) register() {
	name := a.prompt("Name: ")
	age := a.promptInt("Age: ")
	phone := a.prompt("Phone: ")
	address := a.prompt("Address: ")
	passportNo := a.prompt("Passport No: ")

	p, err := a.directory.Register(name, age, phone, address, passportNo)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return
	}
	fmt.Println("Registered successfully.")
	a.passengerMenu(p)
}

func (a *app) login() {
	passportNo := a.prompt("Passport No: ")
	p, err := a.directory.Login(passportNo)
	if err != nil {
		fmt.Println("Login failed:", err)
		return
	}
	fmt.Printf("Welcome back, %s!\n", p.Name)
	a.passengerMenu(p)
}

func (a *app) adminLogin() {
	username := a.prompt("Username: ")
	password := a.prompt("Password: ")
	if username != a.cfg.Admin.Username || password != a.cfg.Admin.Password {
		fmt.Println("Invalid admin credentials.")
		return
	}
	a.adminMenu()
}

func (a *app) passengerMenu(p *domain.Passenger) {
	for {
		fmt.Printf("\n--- Menu (%s) ---\n", p.Name)
		fmt.Println("1. View my details")
		fmt.Println("2. View flights & book a seat")
		fmt.Println("3. View my tickets")
		fmt.Println("4. Add baggage to a ticket")
		fmt.Println("5. Pay for a ticket")
		fmt.Println("6. Cancel a ticket")
		fmt.Println("7. Airline info")
		fmt.Println("8. Logout")

		switch a.prompt("Choose an option: ") {
		case "1":
			fmt.Println(p.Describe())
		case "2":
			a.bookSeat(p)
		case "3":
			a.listTickets(p)
		case "4":
			a.addBaggage(p)
		case "5":
			a.payTicket(p)
		case "6":
			a.cancelTicket(p)
		case "7":
			fmt.Println(a.airline.Describe())
		case "8":
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (a *app) bookSeat(p *domain.Passenger) {
	flights := a.inventory.ListFlights()
	if len(flights) == 0 {
		fmt.Println("No flights available.")
		return
	}
	for i := range flights {
		fmt.Println(flights[i].Describe())
	}

	flightNumber := a.promptInt("Flight number: ")
	seats, err := a.inventory.ListAvailableSeats(flightNumber)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(seats) == 0 {
		fmt.Println("No available seats on this flight.")
		return
	}
	fmt.Println("Available seats:")
	for _, s := range seats {
		fmt.Println(" ", s)
	}

	seatNumber := a.promptInt("Seat number: ")
	ticket, err := a.ledger.BookSeat(context.Background(), p.PassportNo, flightNumber, seatNumber)
	if err != nil {
		fmt.Println("Booking failed:", err)
		return
	}
	fmt.Println("Seat booked.")
	fmt.Println(ticket.Describe())
}

func (a *app) listTickets(p *domain.Passenger) {
	tickets := a.ledger.ListTicketsByPassenger(p.PassportNo)
	if len(tickets) == 0 {
		fmt.Println("You have no tickets.")
		return
	}
	for _, t := range tickets {
		fmt.Println(t.Describe())
	}
}

func (a *app) addBaggage(p *domain.Passenger) {
	ticketNumber := a.promptTicket(p)
	if ticketNumber == 0 {
		return
	}
	baggageID := a.promptInt("Baggage ID: ")
	weight := a.promptFloat("Weight (kg): ")

	b, err := a.ledger.AttachBaggage(context.Background(), ticketNumber, baggageID, weight)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Baggage added.")
	fmt.Println(b.Describe())
}

func (a *app) payTicket(p *domain.Passenger) {
	ticketNumber := a.promptTicket(p)
	if ticketNumber == 0 {
		return
	}
	ticket, err := a.ledger.GetTicket(ticketNumber)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if ticket.PassportNo != p.PassportNo {
		fmt.Println("Error:", domain.ErrNotOwner)
		return
	}

	amount := ticket.AmountDue()
	fmt.Printf("Amount due: $%.2f\n", amount)
	cardNumber := a.prompt("Card number (16 digits): ")

	pay, err := a.payments.CreatePayment(context.Background(), ticket, amount, cardNumber)
	if err != nil {
		fmt.Println("Payment failed:", err)
		return
	}
	if err := a.payments.Settle(context.Background(), pay); err != nil {
		if errors.Is(err, domain.ErrAlreadySettled) {
			fmt.Println("Ticket is already paid.")
			return
		}
		fmt.Println("Payment failed:", err)
		return
	}
	fmt.Printf("Payment of $%.2f accepted with card %s.\n", pay.Amount, pay.CardMask)
}

func (a *app) cancelTicket(p *domain.Passenger) {
	ticketNumber := a.promptTicket(p)
	if ticketNumber == 0 {
		return
	}
	if err := a.ledger.CancelTicket(context.Background(), ticketNumber, p.PassportNo); err != nil {
		fmt.Println("Cancellation failed:", err)
		return
	}
	fmt.Println("Ticket cancelled, seat released.")
}

func (a *app) adminMenu() {
	for {
		fmt.Println("\n--- Admin Menu ---")
		fmt.Println("1. Add flight")
		fmt.Println("2. Add seat to flight")
		fmt.Println("3. List flights")
		fmt.Println("4. List all bookings")
		fmt.Println("5. List passengers")
		fmt.Println("6. Cancel a booking")
		fmt.Println("7. Logout")

		switch a.prompt("Choose an option: ") {
		case "1":
			a.adminAddFlight()
		case "2":
			a.adminAddSeat()
		case "3":
			for _, f := range a.inventory.ListFlights() {
				fmt.Println(f.Describe())
			}
		case "4":
			a.adminListBookings()
		case "5":
			for _, p := range a.directory.List() {
				fmt.Println(p.Describe())
			}
		case "6":
			a.adminCancelBooking()
		case "7":
			return
		default:
			fmt.Println("Invalid option, try again.")
		}
	}
}

func (a *app) adminAddFlight() {
	number := a.promptInt("Flight number: ")
	origin := a.prompt("Origin: ")
	destination := a.prompt("Destination: ")
	departureTime := a.prompt("Departure time: ")

	f, err := a.inventory.AddFlight(number, origin, destination, departureTime)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Flight %d added.\n", f.Number)
}

func (a *app) adminAddSeat() {
	flightNumber := a.promptInt("Flight number: ")
	seatNumber := a.promptInt("Seat number: ")
	class := a.prompt("Class (Economy/Business): ")
	price := a.promptFloat("Price: ")

	if err := a.inventory.AddSeat(flightNumber, seatNumber, domain.SeatClass(class), price); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Seat added.")
}

func (a *app) adminListBookings() {
	tickets := a.ledger.ListAllTickets()
	if len(tickets) == 0 {
		fmt.Println("No bookings.")
		return
	}
	for _, t := range tickets {
		fmt.Println(t.Describe())
	}
}

func (a *app) adminCancelBooking() {
	ticketNumber := int64(a.promptInt("Ticket number: "))
	// Empty passport skips the ownership check.
	if err := a.ledger.CancelTicket(context.Background(), ticketNumber, ""); err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Booking cancelled.")
}

// promptTicket lists the passenger's tickets and asks for a number; returns 0
// when the passenger has none.
func (a *app) promptTicket(p *domain.Passenger) int64 {
	tickets := a.ledger.ListTicketsByPassenger(p.PassportNo)
	if len(tickets) == 0 {
		fmt.Println("You have no tickets.")
		return 0
	}
	fmt.Println("Your tickets:")
	for _, t := range tickets {
		fmt.Printf("  #%d flight %d seat %d (%s)\n", t.Number, t.FlightNumber, t.Seat.Number, t.Status())
	}
	return int64(a.promptInt("Ticket number: "))
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.in.Scan() {
		os.Exit(0)
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) promptInt(label string) int {
	for {
		raw := a.prompt(label)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return n
	}
}

func (a *app) promptFloat(label string) float64 {
	for {
		raw := a.prompt(label)
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fmt.Println("Please enter a number.")
			continue
		}
		return f
	}
}
