// Package ledger implements the business operations over accounts:
// create, find, deposit, withdraw and transfer. The service borrows a
// reference to the account store, re-fetches state at the start of
// every operation and writes mutated state back; it holds no account
// state of its own between calls.
package ledger

import (
	"context"
	"log/slog"

	"github.com/openbank/ledger/pkg/currency"
	"github.com/openbank/ledger/pkg/domain/account"
	accountrepo "github.com/openbank/ledger/pkg/repository/account"
	"github.com/shopspring/decimal"
)

// Service provides the ledger operations and enforces the
// non-negative-balance invariant for non-treasury accounts.
type Service struct {
	repo   accountrepo.Repository
	logger *slog.Logger
}

// NewService creates a Service backed by the given account store.
func NewService(repo accountrepo.Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Create registers a new account with a zero balance. It fails with
// account.ErrAccountAlreadyExists when the name is taken.
func (s *Service) Create(
	ctx context.Context,
	name string,
	code currency.Code,
	treasury bool,
) (*account.Account, error) {
	logger := s.logger.With("operation", "create", "name", name, "currency", code, "treasury", treasury)

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		logger.Error("lookup failed", "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Warn("name already taken")
		return nil, account.ErrAccountAlreadyExists
	}

	created, err := s.repo.Save(ctx, account.New(name, code, treasury))
	if err != nil {
		logger.Error("save failed", "error", err)
		return nil, err
	}
	logger.Info("account created", "id", created.ID)
	return created, nil
}

// Find returns the account with the given name, or
// account.ErrAccountNotFound.
func (s *Service) Find(ctx context.Context, name string) (*account.Account, error) {
	found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		s.logger.Error("lookup failed", "operation", "find", "name", name, "error", err)
		return nil, err
	}
	if found == nil {
		return nil, account.ErrAccountNotFound
	}
	return found, nil
}

// Deposit increases the named account's balance by amount and persists
// the result. The amount is not validated; deposits perform no
// invariant check.
func (s *Service) Deposit(
	ctx context.Context,
	name string,
	amount decimal.Decimal,
) (*account.Account, error) {
	logger := s.logger.With("operation", "deposit", "name", name, "amount", amount)

	acct, err := s.Find(ctx, name)
	if err != nil {
		return nil, err
	}

	acct.Deposit(amount)
	saved, err := s.repo.Save(ctx, acct)
	if err != nil {
		logger.Error("save failed", "error", err)
		return nil, err
	}
	logger.Info("deposit applied", "balance", saved.Balance)
	return saved, nil
}

// Withdraw decreases the named account's balance by amount and persists
// the result. For non-treasury accounts a withdrawal that would take
// the balance below zero fails with account.ErrNegativeBalance and
// leaves the account unchanged.
func (s *Service) Withdraw(
	ctx context.Context,
	name string,
	amount decimal.Decimal,
) (*account.Account, error) {
	logger := s.logger.With("operation", "withdraw", "name", name, "amount", amount)

	acct, err := s.Find(ctx, name)
	if err != nil {
		return nil, err
	}

	if err = acct.Withdraw(amount); err != nil {
		logger.Warn("withdrawal rejected", "balance", acct.Balance, "treasury", acct.Treasury)
		return nil, err
	}
	saved, err := s.repo.Save(ctx, acct)
	if err != nil {
		logger.Error("save failed", "error", err)
		return nil, err
	}
	logger.Info("withdrawal applied", "balance", saved.Balance)
	return saved, nil
}

// Transfer moves amount from one account to another and returns the
// source account's post-transfer state. Both accounts are looked up
// before anything is mutated; a missing account fails with
// account.ErrAccountNotFound and an invariant violation on the source
// fails with account.ErrNegativeBalance, in both cases leaving both
// accounts untouched. The two writes are sequential, not atomic as a
// pair.
func (s *Service) Transfer(
	ctx context.Context,
	fromName, toName string,
	amount decimal.Decimal,
) (*account.Account, error) {
	logger := s.logger.With("operation", "transfer", "from", fromName, "to", toName, "amount", amount)

	from, err := s.repo.FindByName(ctx, fromName)
	if err != nil {
		logger.Error("lookup failed", "error", err)
		return nil, err
	}
	to, err := s.repo.FindByName(ctx, toName)
	if err != nil {
		logger.Error("lookup failed", "error", err)
		return nil, err
	}
	if from == nil || to == nil {
		return nil, account.ErrAccountNotFound
	}

	if err = from.Withdraw(amount); err != nil {
		logger.Warn("transfer rejected", "balance", from.Balance, "treasury", from.Treasury)
		return nil, err
	}
	to.Deposit(amount)

	saved, err := s.repo.Save(ctx, from)
	if err != nil {
		logger.Error("save failed", "account", fromName, "error", err)
		return nil, err
	}
	if _, err = s.repo.Save(ctx, to); err != nil {
		logger.Error("save failed", "account", toName, "error", err)
		return nil, err
	}
	logger.Info("transfer applied", "balance", saved.Balance)
	return saved, nil
}
