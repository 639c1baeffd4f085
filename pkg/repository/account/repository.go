// Package account declares the persistence port for account records.
// The implementation lives in infra/repository/account.
package account

import (
	"context"

	"github.com/openbank/ledger/pkg/domain/account"
)

// Repository is the ledger store: it owns all account records and
// retrieves them by unique name.
type Repository interface {
	// FindByName returns the account with the given name, or (nil, nil)
	// when no such account exists. Absence is not an error; callers
	// decide how to handle it.
	FindByName(ctx context.Context, name string) (*account.Account, error)

	// Save persists the account, inserting when it has no ID and
	// updating otherwise, and returns the persisted representation.
	Save(ctx context.Context, a *account.Account) (*account.Account, error)
}
