// Package account exposes the ledger operations over HTTP. The
// boundary is query-parameter based:
//
//   - GET       /find?name=
//   - GET|POST  /create?name=&currency=&treasury=
//   - GET       /deposit?name=&money=
//   - GET       /withdraw?name=&money=
//   - GET       /transfer?nameAccountFrom=&nameAccountTo=&money=
//
// Successful responses carry the account JSON; failures carry an RFC
// 9457 problem document with 404 for missing accounts and 400 for
// duplicate names or invariant violations.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/openbank/ledger/pkg/currency"
	"github.com/openbank/ledger/pkg/service/ledger"
	"github.com/openbank/ledger/webapi"
	"github.com/shopspring/decimal"
)

// Routes registers the account endpoints on the app.
func Routes(app *fiber.App, svc *ledger.Service) {
	app.Get("/find", Find(svc))
	app.Get("/create", Create(svc))
	app.Post("/create", Create(svc))
	app.Get("/deposit", Deposit(svc))
	app.Get("/withdraw", Withdraw(svc))
	app.Get("/transfer", Transfer(svc))
}

// Find returns a handler that looks up an account by name.
func Find(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindQuery[FindRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Find(c.UserContext(), input.Name)
		if err != nil {
			return webapi.DomainErrorJSON(c, "Failed to find account", err)
		}
		return c.JSON(newResponse(a))
	}
}

// Create returns a handler that registers a new account.
func Create(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindQuery[CreateRequest](c)
		if input == nil {
			return err
		}
		a, err := svc.Create(c.UserContext(), input.Name, currency.Code(input.Currency), input.Treasury)
		if err != nil {
			return webapi.DomainErrorJSON(c, "Failed to create account", err)
		}
		return c.JSON(newResponse(a))
	}
}

// Deposit returns a handler that adds money to an account.
func Deposit(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindQuery[MoneyRequest](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Money)
		if err != nil {
			return webapi.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		a, err := svc.Deposit(c.UserContext(), input.Name, amount)
		if err != nil {
			return webapi.DomainErrorJSON(c, "Failed to deposit", err)
		}
		return c.JSON(newResponse(a))
	}
}

// Withdraw returns a handler that removes money from an account.
func Withdraw(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindQuery[MoneyRequest](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Money)
		if err != nil {
			return webapi.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		a, err := svc.Withdraw(c.UserContext(), input.Name, amount)
		if err != nil {
			return webapi.DomainErrorJSON(c, "Failed to withdraw", err)
		}
		return c.JSON(newResponse(a))
	}
}

// Transfer returns a handler that moves money between two accounts and
// responds with the source account's post-transfer state.
func Transfer(svc *ledger.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := webapi.BindQuery[TransferRequest](c)
		if input == nil {
			return err
		}
		amount, err := decimal.NewFromString(input.Money)
		if err != nil {
			return webapi.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid amount", err.Error())
		}
		a, err := svc.Transfer(c.UserContext(), input.From, input.To, amount)
		if err != nil {
			return webapi.DomainErrorJSON(c, "Failed to transfer", err)
		}
		return c.JSON(newResponse(a))
	}
}
