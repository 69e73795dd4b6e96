package model

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseModel mirrors the 'expenses' table. Category stores the symbolic
// enum name, not the display label. EndDate is nullable for open-ended
// recurring records.
type ExpenseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Category    string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:text;not null"`
	IsRecurring bool      `gorm:"not null"`
	StartDate   time.Time `gorm:"type:date;not null;index"`
	EndDate     *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// IncomeModel mirrors the 'incomes' table. Incomes carry no category.
type IncomeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"type:text;not null"`
	IsRecurring bool      `gorm:"not null"`
	StartDate   time.Time `gorm:"type:date;not null;index"`
	EndDate     *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IncomeModel) TableName() string {
	return "incomes"
}
