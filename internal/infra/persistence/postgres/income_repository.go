package postgres

import (
	"context"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// incomeRepository implements the domain's IncomeRepository interface using GORM.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository is the constructor for incomeRepository.
func NewIncomeRepository(db *gorm.DB) repository.IncomeRepository {
	return &incomeRepository{db: db}
}

type incomeRow struct {
	model.IncomeModel
	Username string
}

// Create persists a new income record owned by userID.
func (repo *incomeRepository) Create(ctx context.Context, userID uuid.UUID, draft *entity.IncomeDraft) (uuid.UUID, error) {
	incomeM := &model.IncomeModel{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      draft.Amount,
		Description: draft.Description,
		IsRecurring: draft.IsRecurring,
		StartDate:   draft.StartDate.Time(),
		EndDate:     datePtrToTime(draft.EndDate),
	}

	if err := repo.db.WithContext(ctx).Create(incomeM).Error; err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create income")
	}

	return incomeM.ID, nil
}

// List returns income records of every owner whose start_date falls inside
// the given range, both bounds inclusive.
func (repo *incomeRepository) List(ctx context.Context, _ uuid.UUID, rng entity.DateRange) ([]*entity.Income, error) {
	query := repo.db.WithContext(ctx).
		Table("incomes").
		Select("incomes.*, users.username").
		Joins("JOIN users ON users.id = incomes.user_id").
		Order("incomes.start_date, incomes.created_at")

	if rng.Start != nil {
		query = query.Where("incomes.start_date >= ?", rng.Start.Time())
	}
	if rng.End != nil {
		query = query.Where("incomes.start_date <= ?", rng.End.Time())
	}

	var rows []incomeRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list incomes")
	}

	incomes := make([]*entity.Income, 0, len(rows))
	for i := range rows {
		incomes = append(incomes, toIncomeDomain(&rows[i]))
	}

	return incomes, nil
}

// Update replaces every mutable field of the income record when it exists
// and is owned by userID.
func (repo *incomeRepository) Update(ctx context.Context, id, userID uuid.UUID, draft *entity.IncomeDraft) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.IncomeModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"amount":       draft.Amount,
			"description":  draft.Description,
			"is_recurring": draft.IsRecurring,
			"start_date":   draft.StartDate.Time(),
			"end_date":     datePtrToTime(draft.EndDate),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update income")
	}

	return result.RowsAffected > 0, nil
}

// Delete removes the income record when it exists and is owned by userID.
func (repo *incomeRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.IncomeModel{})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete income")
	}

	return result.RowsAffected > 0, nil
}

func toIncomeDomain(row *incomeRow) *entity.Income {
	return &entity.Income{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Description: row.Description,
		IsRecurring: row.IsRecurring,
		StartDate:   entity.DateOf(row.StartDate),
		EndDate:     timePtrToDate(row.EndDate),
		Username:    row.Username,
	}
}

// datePtrToTime converts an optional domain date to the nullable column value.
func datePtrToTime(d *entity.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()

	return &t
}

// timePtrToDate converts a nullable date column back to the domain type.
func timePtrToDate(t *time.Time) *entity.Date {
	if t == nil {
		return nil
	}
	d := entity.DateOf(*t)

	return &d
}
