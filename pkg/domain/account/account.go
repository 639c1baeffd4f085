// Package account defines the ledger's single entity and its business
// rules. An account is identified by a unique name, holds a balance in
// one currency, and may be flagged as a treasury account, in which case
// its balance is allowed to go negative.
package account

import (
	"errors"

	"github.com/openbank/ledger/pkg/currency"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when a name lookup finds no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists is returned when creating an account whose
	// name is already taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNegativeBalance is returned when a withdrawal or transfer would
	// take a non-treasury account below zero.
	ErrNegativeBalance = errors.New("balance may not go negative")
)

// Account represents a named account holding a monetary balance.
//
// Invariants:
//   - Name is unique across the ledger and immutable after creation.
//   - Treasury == false implies Balance >= 0 after every completed
//     operation.
//   - A new account always starts at balance zero.
type Account struct {
	ID       uint
	Name     string
	Currency currency.Code
	Balance  decimal.Decimal
	Treasury bool
}

// New constructs an account with a zero balance. The ID is left unset;
// the store assigns it on first save.
func New(name string, code currency.Code, treasury bool) *Account {
	return &Account{
		Name:     name,
		Currency: code,
		Balance:  decimal.Zero,
		Treasury: treasury,
	}
}

// Deposit increases the balance by amount. Amounts are not validated;
// a negative amount decreases the balance without an invariant check,
// matching the permissive deposit behavior the service exposes.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}

// Withdraw decreases the balance by amount. For non-treasury accounts
// the withdrawal is rejected with ErrNegativeBalance when it would take
// the balance below zero, and the account is left unchanged.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if !a.Treasury && a.Balance.Sub(amount).IsNegative() {
		return ErrNegativeBalance
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}

// Display returns the balance formatted for the account's currency,
// e.g. "EUR 100.00".
func (a *Account) Display() string {
	return currency.Format(a.Currency, a.Balance)
}
