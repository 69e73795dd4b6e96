package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The application generates UUIDs so the
// memory and postgres stores agree on id semantics.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Expenses []ExpenseModel `gorm:"foreignKey:UserID"`
	Incomes  []IncomeModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
