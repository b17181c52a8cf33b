package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/Domenick1991/airreserve/internal/kafka"
	"github.com/Domenick1991/airreserve/internal/metrics"
	"github.com/google/uuid"
)

type PaymentUseCase interface {
	CreatePayment(ctx context.Context, ticket *domain.Ticket, amount float64, cardNumber string) (*domain.Payment, error)
	Settle(ctx context.Context, payment *domain.Payment) error
	GetByTicket(ticketNumber int64) (*domain.Payment, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// PaymentService validates payment instruments and settles amounts. It keeps
// at most one payment per ticket; settlement is mutually exclusive per ticket
// but independent across tickets.
type PaymentService struct {
	producer    Producer
	ticketTopic string

	mu      sync.Mutex
	entries map[int64]*entry // keyed by ticket number
}

type entry struct {
	payment *domain.Payment
	ticket  *domain.Ticket
}

type PaymentServiceOption func(*PaymentService)

func WithProducer(producer Producer, ticketTopic string) PaymentServiceOption {
	return func(s *PaymentService) {
		s.producer = producer
		s.ticketTopic = ticketTopic
	}
}

func NewPaymentService(opts ...PaymentServiceOption) *PaymentService {
	service := &PaymentService{entries: make(map[int64]*entry)}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreatePayment is idempotent by ticket: a second attempt returns the
// existing payment unchanged, whatever amount or card the caller supplies.
// Amount reconciliation is the caller's responsibility; only positivity is
// validated here.
func (s *PaymentService) CreatePayment(ctx context.Context, ticket *domain.Ticket, amount float64, cardNumber string) (*domain.Payment, error) {
	if ticket == nil {
		return nil, domain.ErrTicketNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.entries[ticket.Number]; ok {
		return existing.payment, nil
	}

	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !validCardNumber(cardNumber) {
		return nil, domain.ErrInvalidCard
	}
	if ticket.Status() == domain.TicketCancelled {
		return nil, domain.ErrTicketCancelled
	}

	p := &domain.Payment{
		ID:           uuid.NewString(),
		TicketNumber: ticket.Number,
		Amount:       amount,
		CardMask:     domain.MaskCard(cardNumber),
		Status:       domain.PaymentUnsettled,
		CreatedAt:    time.Now(),
	}
	s.entries[ticket.Number] = &entry{payment: p, ticket: ticket}
	return p, nil
}

// Settle marks the payment Settled and flips the ticket to Paid. A settled
// payment is immutable: the second call reports ErrAlreadySettled and changes
// nothing. The ticket's own lock (taken by MarkPaid) serializes settlement
// against a concurrent cancellation.
func (s *PaymentService) Settle(ctx context.Context, payment *domain.Payment) error {
	if payment == nil {
		return domain.ErrTicketNotFound
	}

	s.mu.Lock()
	e, ok := s.entries[payment.TicketNumber]
	if !ok || e.payment != payment {
		s.mu.Unlock()
		return domain.ErrTicketNotFound
	}
	if e.payment.Status == domain.PaymentSettled {
		s.mu.Unlock()
		return domain.ErrAlreadySettled
	}
	if err := e.ticket.MarkPaid(); err != nil {
		s.mu.Unlock()
		return err
	}
	e.payment.Status = domain.PaymentSettled
	e.payment.SettledAt = time.Now()
	s.mu.Unlock()

	metrics.PaymentsSettled.Inc()
	if err := s.publish(ctx, "payment_settled", e); err != nil {
		fmt.Printf("WARNING: Failed to publish payment_settled event for ticket %d: %v\n", e.ticket.Number, err)
	}
	return nil
}

func (s *PaymentService) GetByTicket(ticketNumber int64) (*domain.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[ticketNumber]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	return e.payment, nil
}

func (s *PaymentService) publish(ctx context.Context, eventType string, e *entry) error {
	if s.producer == nil || s.ticketTopic == "" {
		return nil
	}
	event := kafka.TicketEvent{
		Type:         eventType,
		TicketNumber: e.ticket.Number,
		PassportNo:   e.ticket.PassportNo,
		FlightNumber: e.ticket.FlightNumber,
		SeatNumber:   e.ticket.Seat.Number,
		Amount:       e.payment.Amount,
		Status:       string(e.ticket.Status()),
		OccurredAt:   time.Now(),
	}
	return s.producer.Publish(ctx, s.ticketTopic, fmt.Sprintf("%d", e.ticket.Number), event)
}

func validCardNumber(card string) bool {
	if len(card) != 16 {
		return false
	}
	for _, r := range card {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ PaymentUseCase = (*PaymentService)(nil)
