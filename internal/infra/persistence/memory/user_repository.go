package memory

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements the domain's UserRepository interface over Store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for the in-memory userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// Create appends a new user after checking username and email uniqueness.
// The check and the append happen under the same lock, so concurrent
// registrations of the same username cannot both succeed.
func (repo *userRepository) Create(_ context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].user.Username == username || s.users[i].user.Email == email {
			return uuid.Nil, repository.ErrDuplicateUser
		}
	}

	row := userRow{
		user: entity.User{
			ID:        uuid.New(),
			Username:  username,
			Email:     email,
			CreatedAt: time.Now(),
		},
		passwordHash: passwordHash,
	}
	s.users = append(s.users, row)

	return row.user.ID, nil
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].user.Username == username {
			user := s.users[i].user

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].user.ID == id {
			user := s.users[i].user

			return &user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByUsernameWithCredential retrieves the login projection for a username.
func (repo *userRepository) FindByUsernameWithCredential(_ context.Context, username string) (*entity.Credential, error) {
	s := repo.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].user.Username == username {
			return &entity.Credential{
				UserID:       s.users[i].user.ID,
				PasswordHash: s.users[i].passwordHash,
			}, nil
		}
	}

	return nil, repository.ErrUserNotFound
}
