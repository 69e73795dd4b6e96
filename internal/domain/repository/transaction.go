package repository

import "context"

// TransactionManager defines the interface for running multi-step repository
// work atomically. This lets the use case layer keep check-then-create
// sequences (e.g. registration uniqueness) consistent without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a single transaction. If the function
	// returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function use the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// ExpenseRepo returns an ExpenseRepository bound to the current transaction.
	ExpenseRepo() ExpenseRepository

	// IncomeRepo returns an IncomeRepository bound to the current transaction.
	IncomeRepo() IncomeRepository
}
