// Command cli is a small administration tool that runs the ledger
// operations directly against the database, bypassing the HTTP layer.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/openbank/ledger/infra"
	accountrepo "github.com/openbank/ledger/infra/repository/account"
	"github.com/openbank/ledger/pkg/config"
	"github.com/openbank/ledger/pkg/currency"
	"github.com/openbank/ledger/pkg/domain/account"
	"github.com/openbank/ledger/pkg/service/ledger"
	"github.com/shopspring/decimal"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create <name> <currency> [treasury]")
	fmt.Println("  find <name>")
	fmt.Println("  deposit <name> <amount>")
	fmt.Println("  withdraw <name> <amount>")
	fmt.Println("  transfer <from> <to> <amount>")
}

func main() {
	argsLen := len(os.Args)
	if argsLen < 2 {
		usage()
		return
	}
	cmd := os.Args[1]

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		fmt.Println("Failed to connect to database:", err)
		os.Exit(1)
	}
	svc := ledger.NewService(accountrepo.New(db), slog.Default())
	ctx := context.Background()

	switch cmd {
	case "create":
		if argsLen < 4 {
			fmt.Println("Usage: create <name> <currency> [treasury]")
			return
		}
		treasury := false
		if argsLen > 4 {
			treasury, err = strconv.ParseBool(os.Args[4])
			if err != nil {
				fmt.Println("Invalid treasury flag:", err)
				return
			}
		}
		a, err := svc.Create(ctx, os.Args[2], currency.Code(os.Args[3]), treasury)
		if err != nil {
			fmt.Println("Error creating account:", err)
			return
		}
		printAccount("Account created", a)
	case "find":
		if argsLen < 3 {
			fmt.Println("Usage: find <name>")
			return
		}
		a, err := svc.Find(ctx, os.Args[2])
		if err != nil {
			fmt.Println("Error finding account:", err)
			return
		}
		printAccount("Account", a)
	case "deposit":
		if argsLen < 4 {
			fmt.Println("Usage: deposit <name> <amount>")
			return
		}
		amount, err := decimal.NewFromString(os.Args[3])
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		a, err := svc.Deposit(ctx, os.Args[2], amount)
		if err != nil {
			fmt.Println("Error depositing:", err)
			return
		}
		printAccount("Deposit applied", a)
	case "withdraw":
		if argsLen < 4 {
			fmt.Println("Usage: withdraw <name> <amount>")
			return
		}
		amount, err := decimal.NewFromString(os.Args[3])
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		a, err := svc.Withdraw(ctx, os.Args[2], amount)
		if err != nil {
			fmt.Println("Error withdrawing:", err)
			return
		}
		printAccount("Withdrawal applied", a)
	case "transfer":
		if argsLen < 5 {
			fmt.Println("Usage: transfer <from> <to> <amount>")
			return
		}
		amount, err := decimal.NewFromString(os.Args[4])
		if err != nil {
			fmt.Println("Invalid amount:", err)
			return
		}
		a, err := svc.Transfer(ctx, os.Args[2], os.Args[3], amount)
		if err != nil {
			fmt.Println("Error transferring:", err)
			return
		}
		printAccount("Transfer applied", a)
	default:
		usage()
	}
}

func printAccount(prefix string, a *account.Account) {
	fmt.Printf("%s: name=%s balance=%s treasury=%t\n", prefix, a.Name, a.Display(), a.Treasury)
}
