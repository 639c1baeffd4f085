// Package account implements the account store on top of GORM.
package account

import (
	"context"
	"errors"

	"github.com/openbank/ledger/pkg/currency"
	accountdomain "github.com/openbank/ledger/pkg/domain/account"
	repo "github.com/openbank/ledger/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Migrate creates or updates the accounts table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Account{})
}

// FindByName implements account.Repository. Absence is reported as
// (nil, nil), not as an error.
func (r *repository) FindByName(ctx context.Context, name string) (*accountdomain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// Save implements account.Repository. A zero ID means insert; anything
// else updates the existing row.
func (r *repository) Save(ctx context.Context, a *accountdomain.Account) (*accountdomain.Account, error) {
	m := mapDomainToModel(a)
	var err error
	if m.ID == 0 {
		err = r.db.WithContext(ctx).Create(&m).Error
	} else {
		err = r.db.WithContext(ctx).Save(&m).Error
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDomain(&m), nil
}

// mapDomainToModel maps a domain account to its GORM model.
func mapDomainToModel(a *accountdomain.Account) Account {
	return Account{
		ID:       a.ID,
		Name:     a.Name,
		Currency: a.Currency.String(),
		Money:    a.Balance,
		Treasury: a.Treasury,
	}
}

// mapModelToDomain maps a GORM model back to the domain account.
func mapModelToDomain(m *Account) *accountdomain.Account {
	return &accountdomain.Account{
		ID:       m.ID,
		Name:     m.Name,
		Currency: currency.Code(m.Currency),
		Balance:  m.Money,
		Treasury: m.Treasury,
	}
}
