package inventory

import (
	"sort"
	"sync"

	"github.com/Domenick1991/airreserve/internal/domain"
)

type InventoryUseCase interface {
	AddFlight(number int, origin, destination, departureTime string) (*domain.Flight, error)
	AddSeat(flightNumber, seatNumber int, class domain.SeatClass, price float64) error
	HoldSeat(flightNumber, seatNumber int) (domain.Seat, error)
	ReleaseSeat(flightNumber, seatNumber int) error
	ListAvailableSeats(flightNumber int) ([]domain.Seat, error)
	ListFlights() []domain.Flight
	GetFlight(number int) (*domain.Flight, error)
}

// InventoryService owns all seat state. Each flight's seat collection is an
// independently lockable resource, so holds on different flights never
// contend with each other.
type InventoryService struct {
	mu      sync.RWMutex
	flights map[int]*flightSeats
}

type flightSeats struct {
	mu            sync.Mutex
	number        int
	origin        string
	destination   string
	departureTime string
	seats         map[int]*domain.Seat
	order         []int // seat numbers in insertion order
}

func NewInventoryService() *InventoryService {
	return &InventoryService{flights: make(map[int]*flightSeats)}
}

func (s *InventoryService) AddFlight(number int, origin, destination, departureTime string) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flights[number]; ok {
		return nil, domain.ErrDuplicateFlight
	}
	s.flights[number] = &flightSeats{
		number:        number,
		origin:        origin,
		destination:   destination,
		departureTime: departureTime,
		seats:         make(map[int]*domain.Seat),
	}
	return &domain.Flight{
		Number:        number,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
	}, nil
}

func (s *InventoryService) AddSeat(flightNumber, seatNumber int, class domain.SeatClass, price float64) error {
	if class != domain.SeatClassEconomy && class != domain.SeatClassBusiness {
		return domain.ErrInvalidClass
	}
	if price <= 0 {
		return domain.ErrInvalidAmount
	}

	fl, err := s.flight(flightNumber)
	if err != nil {
		return err
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if _, ok := fl.seats[seatNumber]; ok {
		return domain.ErrSeatExists
	}
	fl.seats[seatNumber] = &domain.Seat{
		FlightNumber: flightNumber,
		Number:       seatNumber,
		Class:        class,
		Price:        price,
		Status:       domain.SeatAvailable,
	}
	fl.order = append(fl.order, seatNumber)
	return nil
}

// HoldSeat is an atomic check-and-set under the flight's lock: of two
// concurrent holds on the same seat exactly one succeeds, the other gets
// ErrSeatUnavailable.
func (s *InventoryService) HoldSeat(flightNumber, seatNumber int) (domain.Seat, error) {
	fl, err := s.flight(flightNumber)
	if err != nil {
		return domain.Seat{}, err
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	seat, ok := fl.seats[seatNumber]
	if !ok {
		return domain.Seat{}, domain.ErrSeatNotFound
	}
	if seat.Status != domain.SeatAvailable {
		return domain.Seat{}, domain.ErrSeatUnavailable
	}
	seat.Status = domain.SeatHeld
	return *seat, nil
}

// ReleaseSeat is idempotent: releasing an already-available seat is not an
// error.
func (s *InventoryService) ReleaseSeat(flightNumber, seatNumber int) error {
	fl, err := s.flight(flightNumber)
	if err != nil {
		return err
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	seat, ok := fl.seats[seatNumber]
	if !ok {
		return domain.ErrSeatNotFound
	}
	seat.Status = domain.SeatAvailable
	return nil
}

// ListAvailableSeats returns a snapshot; it is stale the moment a concurrent
// hold lands.
func (s *InventoryService) ListAvailableSeats(flightNumber int) ([]domain.Seat, error) {
	fl, err := s.flight(flightNumber)
	if err != nil {
		return nil, err
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	available := make([]domain.Seat, 0, len(fl.order))
	for _, n := range fl.order {
		if seat := fl.seats[n]; seat.Status == domain.SeatAvailable {
			available = append(available, *seat)
		}
	}
	return available, nil
}

func (s *InventoryService) ListFlights() []domain.Flight {
	s.mu.RLock()
	numbers := make([]int, 0, len(s.flights))
	for n := range s.flights {
		numbers = append(numbers, n)
	}
	s.mu.RUnlock()
	sort.Ints(numbers)

	out := make([]domain.Flight, 0, len(numbers))
	for _, n := range numbers {
		if f, err := s.GetFlight(n); err == nil {
			out = append(out, *f)
		}
	}
	return out
}

func (s *InventoryService) GetFlight(number int) (*domain.Flight, error) {
	fl, err := s.flight(number)
	if err != nil {
		return nil, err
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	f := &domain.Flight{
		Number:        fl.number,
		Origin:        fl.origin,
		Destination:   fl.destination,
		DepartureTime: fl.departureTime,
		Seats:         make([]domain.Seat, 0, len(fl.order)),
	}
	for _, n := range fl.order {
		f.Seats = append(f.Seats, *fl.seats[n])
	}
	return f, nil
}

func (s *InventoryService) flight(number int) (*flightSeats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fl, ok := s.flights[number]
	if !ok {
		return nil, domain.ErrFlightNotFound
	}
	return fl, nil
}

var _ InventoryUseCase = (*InventoryService)(nil)
