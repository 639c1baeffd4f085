package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/openbank/ledger/infra"
	"github.com/openbank/ledger/infra/initializer"
	accountrepo "github.com/openbank/ledger/infra/repository/account"
	"github.com/openbank/ledger/pkg/config"
	"github.com/openbank/ledger/pkg/service/ledger"
	"github.com/openbank/ledger/webapi"
	accountweb "github.com/openbank/ledger/webapi/account"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := initializer.SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := accountrepo.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate accounts table: %w", err)
	}

	svc := ledger.NewService(accountrepo.New(db), logger)

	app := webapi.New(cfg)
	accountweb.Routes(app, svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return app.Listen(addr)
}
