// Command migrate-passwords reports on and hashes legacy plaintext passwords.
//
//	migrate-passwords -status   print counts without changing anything
//	migrate-passwords           hash every plaintext password
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"FITTRACK_BACK-END/internal/config"
	"FITTRACK_BACK-END/internal/database"
	"FITTRACK_BACK-END/internal/migration"
	"FITTRACK_BACK-END/internal/repository"
)

func main() {
	statusOnly := flag.Bool("status", false, "report password storage status without migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	migrator := migration.NewMigrator(repository.NewUserRepository(pool))

	var out any
	if *statusOnly {
		out, err = migrator.Status(ctx)
	} else {
		out, err = migrator.MigrateAll(ctx)
	}
	if err != nil {
		log.Fatalf("migrate passwords: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("write result: %v", err)
	}
}
