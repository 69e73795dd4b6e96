package repository

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordRepository is the storage contract shared by both financial record
// kinds. D is the mutable payload (draft) and R the stored record; expense
// and income differ only in those two types.
//
// Ownership model: update and delete require the caller to own the record
// (userID match) and report plain false when they don't — no error is raised
// for that expected outcome. List is household-wide: it returns records of
// every owner, because all authenticated family members may read everything.
type RecordRepository[D any, R any] interface {
	// Create persists a new record owned by userID and returns its fresh id.
	Create(ctx context.Context, userID uuid.UUID, draft *D) (uuid.UUID, error)

	// List returns all records, any owner, whose StartDate falls inside rng
	// (inclusive on both bounds). Only the record's StartDate is compared;
	// its own EndDate never participates in filtering. The userID argument
	// identifies the caller for downstream use but does not restrict results.
	List(ctx context.Context, userID uuid.UUID, rng entity.DateRange) ([]*R, error)

	// Update replaces every mutable field of the record iff it exists and is
	// owned by userID. Returns false otherwise.
	Update(ctx context.Context, id, userID uuid.UUID, draft *D) (bool, error)

	// Delete removes the record iff it exists and is owned by userID.
	// Returns false otherwise.
	Delete(ctx context.Context, id, userID uuid.UUID) (bool, error)
}

// ExpenseRepository is the expense instantiation of the record contract.
type ExpenseRepository interface {
	RecordRepository[entity.ExpenseDraft, entity.Expense]
}

// IncomeRepository is the income instantiation of the record contract.
type IncomeRepository interface {
	RecordRepository[entity.IncomeDraft, entity.Income]
}
