package memory

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, users repository.UserRepository, username string) uuid.UUID {
	t.Helper()

	id, err := users.Create(context.Background(), username, username+"@example.com", "digest")
	require.NoError(t, err)

	return id
}

func expenseDraft(amount float64, start entity.Date) *entity.ExpenseDraft {
	return &entity.ExpenseDraft{
		Amount:      amount,
		Category:    entity.CategoryGroceries,
		Description: "weekly shop",
		StartDate:   start,
	}
}

func TestUserRepository_CreateAndLookups(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	id := registerUser(t, users, "alice")
	assert.NotEqual(t, uuid.Nil, id)

	byName, err := users.FindByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, id, byName.ID)
	assert.Equal(t, "alice@example.com", byName.Email)

	byID, err := users.FindByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	cred, err := users.FindByUsernameWithCredential(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, id, cred.UserID)
	assert.Equal(t, "digest", cred.PasswordHash)
}

func TestUserRepository_Uniqueness(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	registerUser(t, users, "alice")

	// Same username, different email.
	_, err := users.Create(ctx, "alice", "other@example.com", "digest")
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)

	// Same email, different username.
	_, err = users.Create(ctx, "alice2", "alice@example.com", "digest")
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestUserRepository_NotFound(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	_, err := users.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.FindByUsernameWithCredential(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestExpenseRepository_CreateAndList(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")

	id, err := expenses.Create(ctx, alice, expenseDraft(42.50, entity.NewDate(2024, time.March, 10)))
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	listed, err := expenses.List(ctx, alice, entity.DateRange{})
	assert.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].ID)
	assert.Equal(t, alice, listed[0].UserID)
	assert.InEpsilon(t, 42.50, listed[0].Amount, 1e-9)
	assert.Equal(t, "alice", listed[0].Username)
}

func TestExpenseRepository_ListIsHouseholdWide(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	bob := registerUser(t, users, "bob")

	_, err := expenses.Create(ctx, alice, expenseDraft(10, entity.NewDate(2024, time.March, 1)))
	require.NoError(t, err)
	_, err = expenses.Create(ctx, bob, expenseDraft(20, entity.NewDate(2024, time.March, 2)))
	require.NoError(t, err)

	// Every member sees every record, regardless of who asks.
	listed, err := expenses.List(ctx, alice, entity.DateRange{})
	assert.NoError(t, err)
	assert.Len(t, listed, 2)

	listed, err = expenses.List(ctx, bob, entity.DateRange{})
	assert.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestExpenseRepository_DateFilterIsInclusiveOnBothBounds(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")

	before := entity.NewDate(2024, time.February, 29)
	low := entity.NewDate(2024, time.March, 1)
	mid := entity.NewDate(2024, time.March, 15)
	high := entity.NewDate(2024, time.March, 31)
	after := entity.NewDate(2024, time.April, 1)

	for _, d := range []entity.Date{before, low, mid, high, after} {
		_, err := expenses.Create(ctx, alice, expenseDraft(1, d))
		require.NoError(t, err)
	}

	listed, err := expenses.List(ctx, alice, entity.DateRange{Start: &low, End: &high})
	assert.NoError(t, err)
	require.Len(t, listed, 3)
	for _, rec := range listed {
		assert.False(t, rec.StartDate.Before(low))
		assert.False(t, rec.StartDate.After(high))
	}
}

func TestExpenseRepository_FilterIgnoresEndDate(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")

	// Recurring record starting in January and running through December.
	end := entity.NewDate(2024, time.December, 31)
	draft := expenseDraft(100, entity.NewDate(2024, time.January, 1))
	draft.IsRecurring = true
	draft.EndDate = &end
	_, err := expenses.Create(ctx, alice, draft)
	require.NoError(t, err)

	// A March window does not match: only the start date is compared, so a
	// record active in March but started in January falls outside.
	low := entity.NewDate(2024, time.March, 1)
	high := entity.NewDate(2024, time.March, 31)
	listed, err := expenses.List(ctx, alice, entity.DateRange{Start: &low, End: &high})
	assert.NoError(t, err)
	assert.Empty(t, listed)
}

func TestExpenseRepository_HalfOpenRanges(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	_, err := expenses.Create(ctx, alice, expenseDraft(1, entity.NewDate(2024, time.March, 10)))
	require.NoError(t, err)
	_, err = expenses.Create(ctx, alice, expenseDraft(2, entity.NewDate(2024, time.June, 10)))
	require.NoError(t, err)

	bound := entity.NewDate(2024, time.May, 1)

	listed, err := expenses.List(ctx, alice, entity.DateRange{Start: &bound})
	assert.NoError(t, err)
	assert.Len(t, listed, 1)

	listed, err = expenses.List(ctx, alice, entity.DateRange{End: &bound})
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestExpenseRepository_UpdateRequiresOwnership(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	bob := registerUser(t, users, "bob")

	id, err := expenses.Create(ctx, alice, expenseDraft(10, entity.NewDate(2024, time.March, 1)))
	require.NoError(t, err)

	updated := expenseDraft(99, entity.NewDate(2024, time.March, 2))
	updated.Description = "corrected"

	// Foreign owner: reported as plain false, never an error.
	ok, err := expenses.Update(ctx, id, bob, updated)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Unknown id.
	ok, err = expenses.Update(ctx, uuid.New(), alice, updated)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Owner succeeds and every mutable field is replaced.
	ok, err = expenses.Update(ctx, id, alice, updated)
	assert.NoError(t, err)
	assert.True(t, ok)

	listed, err := expenses.List(ctx, alice, entity.DateRange{})
	assert.NoError(t, err)
	require.Len(t, listed, 1)
	assert.InEpsilon(t, 99.0, listed[0].Amount, 1e-9)
	assert.Equal(t, "corrected", listed[0].Description)
	assert.Equal(t, "2024-03-02", listed[0].StartDate.String())
}

func TestExpenseRepository_DeleteRequiresOwnership(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	bob := registerUser(t, users, "bob")

	id, err := expenses.Create(ctx, alice, expenseDraft(10, entity.NewDate(2024, time.March, 1)))
	require.NoError(t, err)

	ok, err := expenses.Delete(ctx, id, bob)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = expenses.Delete(ctx, id, alice)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Gone: a second delete by the owner reports false.
	ok, err = expenses.Delete(ctx, id, alice)
	assert.NoError(t, err)
	assert.False(t, ok)

	listed, err := expenses.List(ctx, alice, entity.DateRange{})
	assert.NoError(t, err)
	assert.Empty(t, listed)
}

func TestExpenseRepository_ListReturnsCopies(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	expenses := NewExpenseRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	_, err := expenses.Create(ctx, alice, expenseDraft(10, entity.NewDate(2024, time.March, 1)))
	require.NoError(t, err)

	listed, err := expenses.List(ctx, alice, entity.DateRange{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	listed[0].Amount = 12345

	again, err := expenses.List(ctx, alice, entity.DateRange{})
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.InEpsilon(t, 10.0, again[0].Amount, 1e-9)
}

func TestIncomeRepository_CRUD(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	incomes := NewIncomeRepository(store)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")

	draft := &entity.IncomeDraft{
		Amount:      2500,
		Description: "salary",
		IsRecurring: true,
		StartDate:   entity.NewDate(2024, time.March, 25),
	}
	id, err := incomes.Create(ctx, alice, draft)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	listed, err := incomes.List(ctx, alice, entity.DateRange{})
	assert.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "salary", listed[0].Description)
	assert.True(t, listed[0].IsRecurring)
	assert.Equal(t, "alice", listed[0].Username)

	draft.Amount = 2600
	ok, err := incomes.Update(ctx, id, alice, draft)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = incomes.Delete(ctx, id, alice)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestTransactionManager_ExecutePropagatesErrors(t *testing.T) {
	store := NewStore()
	tm := NewTransactionManager(store)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.UserRepo().Create(ctx, "alice", "alice@example.com", "digest")

		return err
	})
	assert.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.UserRepo().Create(ctx, "alice", "second@example.com", "digest")

		return err
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateUser)
}
