package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Domenick1991/airreserve/internal/baggage"
	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/metrics"
)

type LedgerUseCase interface {
	BookSeat(ctx context.Context, passportNo string, flightNumber, seatNumber int) (*domain.Ticket, error)
	CancelTicket(ctx context.Context, ticketNumber int64, requestingPassport string) error
	AttachBaggage(ctx context.Context, ticketNumber int64, baggageID int, weight float64) (*domain.Baggage, error)
	GetTicket(ticketNumber int64) (*domain.Ticket, error)
	ListTicketsByPassenger(passportNo string) []*domain.Ticket
	ListAllTickets() []*domain.Ticket
}

type SeatInventory interface {
	HoldSeat(flightNumber, seatNumber int) (domain.Seat, error)
	ReleaseSeat(flightNumber, seatNumber int) error
}

type PassengerDirectory interface {
	Get(passportNo string) (*domain.Passenger, error)
}

type Cache interface {
	AcquireSeatLock(ctx context.Context, flightNumber, seatNumber int, ttl time.Duration) (bool, error)
	ReleaseSeatLock(ctx context.Context, flightNumber, seatNumber int) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// LedgerService orchestrates directory, inventory and the baggage policy to
// create, view and cancel tickets. It owns ticket numbering and the
// passenger/ticket indices.
type LedgerService struct {
	inventory SeatInventory
	directory PassengerDirectory
	cache     Cache
	producer  Producer

	ticketTopic        string
	notificationsTopic string
	holdTTL            time.Duration
	policy             baggage.Policy

	mu          sync.Mutex
	nextTicket  int64
	tickets     map[int64]*domain.Ticket
	byPassenger map[string][]int64
}

type LedgerServiceOption func(*LedgerService)

func WithCache(cache Cache, holdTTL time.Duration) LedgerServiceOption {
	return func(s *LedgerService) {
		s.cache = cache
		s.holdTTL = holdTTL
	}
}

func WithProducer(producer Producer, ticketTopic string) LedgerServiceOption {
	return func(s *LedgerService) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func WithNotificationsTopic(topic string) LedgerServiceOption {
	return func(s *LedgerService) {
		s.notificationsTopic = topic
	}
}

func WithBaggagePolicy(policy baggage.Policy) LedgerServiceOption {
	return func(s *LedgerService) {
		s.policy = policy
	}
}

func NewLedgerService(inventory SeatInventory, directory PassengerDirectory, opts ...LedgerServiceOption) *LedgerService {
	service := &LedgerService{
		inventory:   inventory,
		directory:   directory,
		policy:      baggage.DefaultPolicy(),
		tickets:     make(map[int64]*domain.Ticket),
		byPassenger: make(map[string][]int64),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookSeat holds the seat, then mints a ticket with the next sequential
// number. On any failure no ticket is created and the seat (and the advisory
// cache lock) is back where it started.
func (s *LedgerService) BookSeat(ctx context.Context, passportNo string, flightNumber, seatNumber int) (*domain.Ticket, error) {
	passenger, err := s.directory.Get(passportNo)
	if err != nil {
		return nil, err
	}

	locked := false
	if s.cache != nil {
		ok, err := s.cache.AcquireSeatLock(ctx, flightNumber, seatNumber, s.holdTTL)
		if err != nil {
			return nil, err
		}
		if !ok {
			metrics.SeatHoldConflicts.Inc()
			return nil, domain.ErrSeatUnavailable
		}
		locked = true
	}

	seat, err := s.inventory.HoldSeat(flightNumber, seatNumber)
	if err != nil {
		if locked {
			_ = s.cache.ReleaseSeatLock(ctx, flightNumber, seatNumber)
		}
		if err == domain.ErrSeatUnavailable {
			metrics.SeatHoldConflicts.Inc()
		}
		return nil, err
	}

	s.mu.Lock()
	s.nextTicket++
	ticket := domain.NewTicket(s.nextTicket, passenger, flightNumber, seat)
	s.tickets[ticket.Number] = ticket
	s.byPassenger[passportNo] = append(s.byPassenger[passportNo], ticket.Number)
	s.mu.Unlock()

	metrics.TicketsBooked.Inc()
	if err := s.publish(ctx, "ticket_created", ticket, 0); err != nil {
		fmt.Printf("WARNING: Failed to publish ticket_created event for ticket %d: %v\n", ticket.Number, err)
	}
	return ticket, nil
}

// CancelTicket releases the seat before the ticket leaves the ledger, even
// when the ticket was already paid (refunds are out of scope, the seat still
// frees). An empty requestingPassport is the admin path and skips the
// ownership check.
func (s *LedgerService) CancelTicket(ctx context.Context, ticketNumber int64, requestingPassport string) error {
	s.mu.Lock()
	ticket, ok := s.tickets[ticketNumber]
	if !ok {
		s.mu.Unlock()
		return domain.ErrTicketNotFound
	}
	if requestingPassport != "" && ticket.PassportNo != requestingPassport {
		s.mu.Unlock()
		return domain.ErrNotOwner
	}
	if err := ticket.Cancel(); err != nil {
		s.mu.Unlock()
		return err
	}

	// Seat goes back to Available before the ticket is removed, so no hold
	// can ever be orphaned.
	if err := s.inventory.ReleaseSeat(ticket.FlightNumber, ticket.Seat.Number); err != nil {
		fmt.Printf("WARNING: release seat %d on flight %d: %v\n", ticket.Seat.Number, ticket.FlightNumber, err)
	}
	delete(s.tickets, ticketNumber)
	s.removeIndex(ticket.PassportNo, ticketNumber)
	s.mu.Unlock()

	if s.cache != nil {
		_ = s.cache.ReleaseSeatLock(ctx, ticket.FlightNumber, ticket.Seat.Number)
	}
	metrics.TicketsCancelled.Inc()
	if err := s.publish(ctx, "ticket_cancelled", ticket, 0); err != nil {
		fmt.Printf("WARNING: Failed to publish ticket_cancelled event for ticket %d: %v\n", ticket.Number, err)
	}
	return nil
}

// AttachBaggage computes the surcharge and stores the baggage on the ticket,
// replacing any prior record.
func (s *LedgerService) AttachBaggage(ctx context.Context, ticketNumber int64, baggageID int, weight float64) (*domain.Baggage, error) {
	if weight <= 0 {
		return nil, domain.ErrInvalidWeight
	}

	ticket, err := s.GetTicket(ticketNumber)
	if err != nil {
		return nil, err
	}

	b := &domain.Baggage{
		ID:     baggageID,
		Weight: weight,
		Status: domain.BaggageStatusInTransit,
		Fee:    s.policy.Fee(weight),
	}
	ticket.SetBaggage(b)

	if err := s.publish(ctx, "baggage_attached", ticket, b.Fee); err != nil {
		fmt.Printf("WARNING: Failed to publish baggage_attached event for ticket %d: %v\n", ticket.Number, err)
	}
	return b, nil
}

func (s *LedgerService) GetTicket(ticketNumber int64) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket, ok := s.tickets[ticketNumber]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return ticket, nil
}

func (s *LedgerService) ListTicketsByPassenger(passportNo string) []*domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	numbers := s.byPassenger[passportNo]
	out := make([]*domain.Ticket, 0, len(numbers))
	for _, n := range numbers {
		if t, ok := s.tickets[n]; ok {
			out = append(out, t)
		}
	}
	return out
}

// ListAllTickets is the admin view, ordered by ticket number.
func (s *LedgerService) ListAllTickets() []*domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Ticket, 0, len(s.tickets))
	for _, t := range s.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// caller holds s.mu
func (s *LedgerService) removeIndex(passportNo string, ticketNumber int64) {
	numbers := s.byPassenger[passportNo]
	for i, n := range numbers {
		if n == ticketNumber {
			s.byPassenger[passportNo] = append(numbers[:i], numbers[i+1:]...)
			break
		}
	}
	if len(s.byPassenger[passportNo]) == 0 {
		delete(s.byPassenger, passportNo)
	}
}

func (s *LedgerService) publish(ctx context.Context, eventType string, ticket *domain.Ticket, amount float64) error {
	if s.producer == nil || s.ticketTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:         eventType,
		TicketNumber: ticket.Number,
		PassportNo:   ticket.PassportNo,
		FlightNumber: ticket.FlightNumber,
		SeatNumber:   ticket.Seat.Number,
		Amount:       amount,
		Status:       string(ticket.Status()),
		OccurredAt:   time.Now(),
	}
	key := fmt.Sprintf("%d", ticket.Number)
	if err := s.producer.Publish(ctx, s.ticketTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

var _ LedgerUseCase = (*LedgerService)(nil)
