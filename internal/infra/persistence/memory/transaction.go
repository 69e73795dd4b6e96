package memory

import (
	"context"

	"ledger/internal/domain/repository"
)

// memoryTransactionManager implements the domain's TransactionManager over
// the in-memory store. There is no real transaction: each repository
// operation is individually serialized by the store mutex, and uniqueness is
// enforced inside Create itself, so check-then-create sequences stay correct
// without rollback support.
type memoryTransactionManager struct {
	store *Store
}

// memoryRepositoryFactory hands out repositories bound to the shared store.
type memoryRepositoryFactory struct {
	store *Store
}

// UserRepo returns a UserRepository over the shared store.
func (f *memoryRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.store)
}

// ExpenseRepo returns an ExpenseRepository over the shared store.
func (f *memoryRepositoryFactory) ExpenseRepo() repository.ExpenseRepository {
	return NewExpenseRepository(f.store)
}

// IncomeRepo returns an IncomeRepository over the shared store.
func (f *memoryRepositoryFactory) IncomeRepo() repository.IncomeRepository {
	return NewIncomeRepository(f.store)
}

// NewTransactionManager is the constructor for memoryTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &memoryTransactionManager{store: store}
}

// Execute runs the given function against the shared store.
func (tm *memoryTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&memoryRepositoryFactory{store: tm.store})
}
