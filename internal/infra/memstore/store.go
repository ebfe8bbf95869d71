// Package memstore is an in-memory implementation of the command and query
// ports. It backs unit tests with isolated store instances and mirrors the
// postgres repository's semantics, including the overlap constraint on
// CONFIRMED bookings.
package memstore

import (
	"sync"

	"venue-booking-engine/internal/domain/booking"
	"venue-booking-engine/internal/domain/resource"
	"venue-booking-engine/internal/domain/user"
	"venue-booking-engine/internal/infra"

	"github.com/google/uuid"
)

// Store holds all state behind one mutex. The per-entity repositories are
// views over it so a composite write stays atomic.
type Store struct {
	mu        sync.RWMutex
	users     map[uuid.UUID]user.User
	usernames map[string]uuid.UUID
	resources map[uuid.UUID]resource.Resource
	bookings  map[uuid.UUID]booking.Booking
}

func New() *Store {
	return &Store{
		users:     make(map[uuid.UUID]user.User),
		usernames: make(map[string]uuid.UUID),
		resources: make(map[uuid.UUID]resource.Resource),
		bookings:  make(map[uuid.UUID]booking.Booking),
	}
}

func (s *Store) Resources() *ResourceStore { return &ResourceStore{s} }
func (s *Store) Bookings() *BookingStore   { return &BookingStore{s} }
func (s *Store) Users() *UserStore         { return &UserStore{s} }

func (s *Store) insertUserLocked(u *user.User) error {
	if _, taken := s.usernames[u.Username()]; taken {
		return infra.WrapRepoErr("username already exists", nil, infra.KindDuplicateKey)
	}
	s.users[u.ID()] = *u
	s.usernames[u.Username()] = u.ID()
	return nil
}
