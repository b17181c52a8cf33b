package directory

import (
	"sort"
	"sync"

	"github.com/Domenick1991/airreserve/internal/domain"
)

type DirectoryUseCase interface {
	Register(name string, age int, phone, address, passportNo string) (*domain.Passenger, error)
	Login(passportNo string) (*domain.Passenger, error)
	Get(passportNo string) (*domain.Passenger, error)
	List() []domain.Passenger
}

// DirectoryService keeps registered passengers in memory, keyed by passport
// number.
type DirectoryService struct {
	mu         sync.RWMutex
	passengers map[string]*domain.Passenger
}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{passengers: make(map[string]*domain.Passenger)}
}

func (s *DirectoryService) Register(name string, age int, phone, address, passportNo string) (*domain.Passenger, error) {
	if age < 18 {
		return nil, domain.ErrUnderage
	}
	if !allDigits(phone) {
		return nil, domain.ErrInvalidPhone
	}
	if !allDigits(passportNo) {
		return nil, domain.ErrInvalidPassport
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.passengers[passportNo]; ok {
		return nil, domain.ErrDuplicatePassport
	}
	p := &domain.Passenger{
		Name:       name,
		Age:        age,
		Phone:      phone,
		Address:    address,
		PassportNo: passportNo,
	}
	s.passengers[passportNo] = p
	return p, nil
}

func (s *DirectoryService) Login(passportNo string) (*domain.Passenger, error) {
	return s.Get(passportNo)
}

func (s *DirectoryService) Get(passportNo string) (*domain.Passenger, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.passengers[passportNo]
	if !ok {
		return nil, domain.ErrPassengerNotFound
	}
	return p, nil
}

// List returns all passengers ordered by passport number. Admin view.
func (s *DirectoryService) List() []domain.Passenger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Passenger, 0, len(s.passengers))
	for _, p := range s.passengers {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PassportNo < out[j].PassportNo })
	return out
}

// Format check only, no checksum validation.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var _ DirectoryUseCase = (*DirectoryService)(nil)
