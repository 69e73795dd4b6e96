// Package memory contains the in-memory implementation of the persistence
// layer. It backs tests and the "memory" storage driver: a process-resident
// reference store with no durability, serialized by a single mutex.
package memory

import (
	"sync"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// userRow couples the public user entity with its stored password digest.
type userRow struct {
	user         entity.User
	passwordHash string
}

// Store holds every table of the in-memory database. One mutex serializes
// all access; there is no finer-grained locking and no need for any.
type Store struct {
	mu       sync.Mutex
	users    []userRow
	expenses []*entity.Expense
	incomes  []*entity.Income
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{}
}

// usernameLocked resolves a user id to its username. Callers must hold mu.
func (s *Store) usernameLocked(id uuid.UUID) string {
	for i := range s.users {
		if s.users[i].user.ID == id {
			return s.users[i].user.Username
		}
	}

	return ""
}
