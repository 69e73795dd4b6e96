package entity

import (
	"github.com/google/uuid"
)

// Expense is a persisted expense record. The owner (UserID) is fixed at
// creation; Username is the owner's name, denormalized for display. All other
// fields are replaced wholesale by update.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      float64
	Category    Category
	Description string
	IsRecurring bool
	StartDate   Date
	EndDate     *Date
	Username    string
}

// Income is a persisted income record. Identical to Expense except that
// income carries no category.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      float64
	Description string
	IsRecurring bool
	StartDate   Date
	EndDate     *Date
	Username    string
}

// ExpenseDraft is the mutable payload of an expense: everything a caller
// supplies on create and update. Identity and ownership live outside it.
type ExpenseDraft struct {
	Amount      float64
	Category    Category
	Description string
	IsRecurring bool
	StartDate   Date
	EndDate     *Date
}

// IncomeDraft is the mutable payload of an income record.
type IncomeDraft struct {
	Amount      float64
	Description string
	IsRecurring bool
	StartDate   Date
	EndDate     *Date
}
