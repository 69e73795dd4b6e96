package usecase

import (
	"context"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ListRecordsInput carries the optional date window for list operations.
// Bounds are inclusive and filter on each record's start date only.
type ListRecordsInput struct {
	Range entity.DateRange
}

// ExpenseUsecase defines the business operations on expense records. Every
// operation runs on behalf of an authenticated user; writes require
// ownership while reads span the whole household.
type ExpenseUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, draft *entity.ExpenseDraft) (*entity.Expense, error)
	List(ctx context.Context, userID uuid.UUID, input *ListRecordsInput) ([]*entity.Expense, error)
	Update(ctx context.Context, id, userID uuid.UUID, draft *entity.ExpenseDraft) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// IncomeUsecase defines the business operations on income records.
type IncomeUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, draft *entity.IncomeDraft) (*entity.Income, error)
	List(ctx context.Context, userID uuid.UUID, input *ListRecordsInput) ([]*entity.Income, error)
	Update(ctx context.Context, id, userID uuid.UUID, draft *entity.IncomeDraft) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
