package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expenseRepository implements the domain's ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// expenseRow is the read projection: the expense columns plus the owner's
// username joined from users.
type expenseRow struct {
	model.ExpenseModel
	Username string
}

// Create persists a new expense owned by userID.
func (repo *expenseRepository) Create(ctx context.Context, userID uuid.UUID, draft *entity.ExpenseDraft) (uuid.UUID, error) {
	expenseM := &model.ExpenseModel{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      draft.Amount,
		Category:    string(draft.Category),
		Description: draft.Description,
		IsRecurring: draft.IsRecurring,
		StartDate:   draft.StartDate.Time(),
		EndDate:     datePtrToTime(draft.EndDate),
	}

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create expense")
	}

	return expenseM.ID, nil
}

// List returns expenses of every owner whose start_date falls inside the
// given range, both bounds inclusive. The range never inspects end_date.
func (repo *expenseRepository) List(ctx context.Context, _ uuid.UUID, rng entity.DateRange) ([]*entity.Expense, error) {
	query := repo.db.WithContext(ctx).
		Table("expenses").
		Select("expenses.*, users.username").
		Joins("JOIN users ON users.id = expenses.user_id").
		Order("expenses.start_date, expenses.created_at")

	if rng.Start != nil {
		query = query.Where("expenses.start_date >= ?", rng.Start.Time())
	}
	if rng.End != nil {
		query = query.Where("expenses.start_date <= ?", rng.End.Time())
	}

	var rows []expenseRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list expenses")
	}

	expenses := make([]*entity.Expense, 0, len(rows))
	for i := range rows {
		expenses = append(expenses, toExpenseDomain(&rows[i]))
	}

	return expenses, nil
}

// Update replaces every mutable field of the expense when it exists and is
// owned by userID. The ownership check rides in the WHERE clause, so an
// update of someone else's record is a zero-row no-op.
func (repo *expenseRepository) Update(ctx context.Context, id, userID uuid.UUID, draft *entity.ExpenseDraft) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"amount":       draft.Amount,
			"category":     string(draft.Category),
			"description":  draft.Description,
			"is_recurring": draft.IsRecurring,
			"start_date":   draft.StartDate.Time(),
			"end_date":     datePtrToTime(draft.EndDate),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update expense")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the expense when it exists and is owned by userID.
func (repo *expenseRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete expense")
	}

	return result.RowsAffected > 0, nil
}

// toExpenseDomain maps the read projection back to a pure domain entity.
func toExpenseDomain(row *expenseRow) *entity.Expense {
	return &entity.Expense{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Category:    entity.Category(row.Category),
		Description: row.Description,
		IsRecurring: row.IsRecurring,
		StartDate:   entity.DateOf(row.StartDate),
		EndDate:     timePtrToDate(row.EndDate),
		Username:    row.Username,
	}
}
