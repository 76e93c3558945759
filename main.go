package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"indexbot/cmd"
	"indexbot/database"

	log "github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigration(os.Args[2:]); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	// SIGINT/SIGTERM cancel the context, which unwinds cmd.Run cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx); err != nil {
		log.Fatalf("indexbot exited: %v", err)
	}
}

// runMigration dispatches the migrate subcommand. It reads DATABASE_URL
// directly so running migrations does not require a Discord token.
func runMigration(args []string) error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: indexbot migrate <up|down|status>")
	}

	switch args[0] {
	case "up":
		return database.MigrateUp(dsn)
	case "down":
		return database.MigrateDown(dsn)
	case "status":
		return database.MigrateStatus(dsn)
	default:
		return fmt.Errorf("unknown migrate subcommand %q", args[0])
	}
}
