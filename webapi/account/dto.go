package account

import (
	"github.com/openbank/ledger/pkg/domain/account"
	"github.com/shopspring/decimal"
)

// CreateRequest carries the query parameters for account creation.
// Name and currency are required, mirroring the boundary contract;
// treasury defaults to false.
type CreateRequest struct {
	Name     string `query:"name" validate:"required"`
	Currency string `query:"currency" validate:"required"`
	Treasury bool   `query:"treasury"`
}

// FindRequest carries the query parameters for account lookup.
type FindRequest struct {
	Name string `query:"name" validate:"required"`
}

// MoneyRequest carries the query parameters for deposit and withdraw.
// The amount arrives as text and is parsed into a decimal without a
// float round-trip.
type MoneyRequest struct {
	Name  string `query:"name" validate:"required"`
	Money string `query:"money" validate:"required,numeric"`
}

// TransferRequest carries the query parameters for transfers.
type TransferRequest struct {
	From  string `query:"nameAccountFrom" validate:"required"`
	To    string `query:"nameAccountTo" validate:"required"`
	Money string `query:"money" validate:"required,numeric"`
}

// Response is the account representation returned by every endpoint.
type Response struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
	Treasury bool            `json:"treasury"`
	Display  string          `json:"display"`
}

func newResponse(a *account.Account) Response {
	return Response{
		ID:       a.ID,
		Name:     a.Name,
		Currency: a.Currency.String(),
		Balance:  a.Balance,
		Treasury: a.Treasury,
		Display:  a.Display(),
	}
}
