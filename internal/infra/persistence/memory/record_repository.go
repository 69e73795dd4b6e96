package memory

import (
	"context"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
)

// recordTable is the generic in-memory record store shared by both record
// kinds. The expense and income instantiations differ only in the closures
// that build, mutate and inspect their concrete types.
type recordTable[D any, R any] struct {
	store *Store

	// rows returns the backing slice inside the store. Taking a pointer
	// through a closure keeps appends and deletions visible to the store.
	rows func(s *Store) *[]*R

	// build constructs a fresh record from a draft.
	build func(id, userID uuid.UUID, username string, draft *D) *R

	// apply replaces every mutable field of an existing record.
	apply func(rec *R, draft *D)

	// ident extracts the record's id and owner.
	ident func(rec *R) (id, owner uuid.UUID)

	// start extracts the record's start date for range filtering.
	start func(rec *R) entity.Date
}

// Create appends a new record owned by userID and returns its fresh id.
func (t *recordTable[D, R]) Create(_ context.Context, userID uuid.UUID, draft *D) (uuid.UUID, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	id := uuid.New()
	rec := t.build(id, userID, t.store.usernameLocked(userID), draft)
	rows := t.rows(t.store)
	*rows = append(*rows, rec)

	return id, nil
}

// List returns records of every owner whose start date falls inside rng,
// both bounds inclusive. Only the start date is compared against the range.
// Returned records are copies; callers cannot mutate the store through them.
func (t *recordTable[D, R]) List(_ context.Context, _ uuid.UUID, rng entity.DateRange) ([]*R, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	out := make([]*R, 0)
	for _, rec := range *t.rows(t.store) {
		if !rng.Contains(t.start(rec)) {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}

	return out, nil
}

// Update replaces every mutable field of the record when it exists and is
// owned by userID. A missing record and a foreign-owned record both report
// plain false.
func (t *recordTable[D, R]) Update(_ context.Context, id, userID uuid.UUID, draft *D) (bool, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for _, rec := range *t.rows(t.store) {
		recID, owner := t.ident(rec)
		if recID != id {
			continue
		}
		if owner != userID {
			return false, nil
		}
		t.apply(rec, draft)

		return true, nil
	}

	return false, nil
}

// Delete removes the record when it exists and is owned by userID.
func (t *recordTable[D, R]) Delete(_ context.Context, id, userID uuid.UUID) (bool, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	rows := t.rows(t.store)
	for i, rec := range *rows {
		recID, owner := t.ident(rec)
		if recID != id {
			continue
		}
		if owner != userID {
			return false, nil
		}
		*rows = append((*rows)[:i], (*rows)[i+1:]...)

		return true, nil
	}

	return false, nil
}

// NewExpenseRepository is the constructor for the in-memory expense store.
func NewExpenseRepository(store *Store) repository.ExpenseRepository {
	return &recordTable[entity.ExpenseDraft, entity.Expense]{
		store: store,
		rows:  func(s *Store) *[]*entity.Expense { return &s.expenses },
		build: func(id, userID uuid.UUID, username string, draft *entity.ExpenseDraft) *entity.Expense {
			return &entity.Expense{
				ID:          id,
				UserID:      userID,
				Amount:      draft.Amount,
				Category:    draft.Category,
				Description: draft.Description,
				IsRecurring: draft.IsRecurring,
				StartDate:   draft.StartDate,
				EndDate:     draft.EndDate,
				Username:    username,
			}
		},
		apply: func(rec *entity.Expense, draft *entity.ExpenseDraft) {
			rec.Amount = draft.Amount
			rec.Category = draft.Category
			rec.Description = draft.Description
			rec.IsRecurring = draft.IsRecurring
			rec.StartDate = draft.StartDate
			rec.EndDate = draft.EndDate
		},
		ident: func(rec *entity.Expense) (uuid.UUID, uuid.UUID) { return rec.ID, rec.UserID },
		start: func(rec *entity.Expense) entity.Date { return rec.StartDate },
	}
}

// NewIncomeRepository is the constructor for the in-memory income store.
func NewIncomeRepository(store *Store) repository.IncomeRepository {
	return &recordTable[entity.IncomeDraft, entity.Income]{
		store: store,
		rows:  func(s *Store) *[]*entity.Income { return &s.incomes },
		build: func(id, userID uuid.UUID, username string, draft *entity.IncomeDraft) *entity.Income {
			return &entity.Income{
				ID:          id,
				UserID:      userID,
				Amount:      draft.Amount,
				Description: draft.Description,
				IsRecurring: draft.IsRecurring,
				StartDate:   draft.StartDate,
				EndDate:     draft.EndDate,
				Username:    username,
			}
		},
		apply: func(rec *entity.Income, draft *entity.IncomeDraft) {
			rec.Amount = draft.Amount
			rec.Description = draft.Description
			rec.IsRecurring = draft.IsRecurring
			rec.StartDate = draft.StartDate
			rec.EndDate = draft.EndDate
		},
		ident: func(rec *entity.Income) (uuid.UUID, uuid.UUID) { return rec.ID, rec.UserID },
		start: func(rec *entity.Income) entity.Date { return rec.StartDate },
	}
}
