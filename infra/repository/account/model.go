package account

import (
	"github.com/shopspring/decimal"
)

// Account represents an account record in the database.
type Account struct {
	ID       uint            `gorm:"primaryKey"`
	Name     string          `gorm:"uniqueIndex;not null"`
	Currency string          `gorm:"type:varchar(3);not null"`
	Money    decimal.Decimal `gorm:"column:money;type:numeric;not null"`
	Treasury bool            `gorm:"not null;default:false"`
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
