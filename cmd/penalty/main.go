// Command penalty manages sanction windows from the operator's shell.
// Penalties are never enforced on request paths; moderation reads them
// out-of-band.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mindpairing/mindpairing-backend/internal/config"
	"github.com/mindpairing/mindpairing-backend/internal/forum"
	"github.com/mindpairing/mindpairing-backend/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: penalty COMMAND\n\nCommands:\n  add -user ID -days N [-memo TEXT]\n  list -user ID")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := store.NewPool(ctx, cfg.Database.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	penalties := store.NewPenalties(pool)

	switch os.Args[1] {
	case "add":
		flags := flag.NewFlagSet("add", flag.ExitOnError)
		userID := flags.Int64("user", 0, "user id to sanction")
		days := flags.Int("days", 7, "sanction length in days")
		memo := flags.String("memo", "", "reason for the record")
		flags.Parse(os.Args[2:])
		if *userID == 0 {
			log.Fatal("-user is required")
		}

		now := time.Now()
		id, err := penalties.Create(ctx, &forum.Penalty{
			UserID:  *userID,
			StartAt: now,
			EndAt:   now.AddDate(0, 0, *days),
			Memo:    *memo,
		})
		if err != nil {
			log.Fatalf("Failed to create penalty: %v", err)
		}
		fmt.Printf("penalty %d created for user %d (%d days)\n", id, *userID, *days)

	case "list":
		flags := flag.NewFlagSet("list", flag.ExitOnError)
		userID := flags.Int64("user", 0, "user id to inspect")
		flags.Parse(os.Args[2:])
		if *userID == 0 {
			log.Fatal("-user is required")
		}

		list, err := penalties.ListByUser(ctx, *userID)
		if err != nil {
			log.Fatalf("Failed to list penalties: %v", err)
		}
		for _, p := range list {
			fmt.Printf("%d\t%s - %s\t%s\n", p.ID,
				p.StartAt.Format(time.RFC3339), p.EndAt.Format(time.RFC3339), p.Memo)
		}

	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}
