package main

import (
	"fmt"
	"log"
	"os"

	"tickethub/internal/config"
	"tickethub/internal/database"
)

// Schema management tool: `migrate up` applies pending migrations,
// `migrate status` shows which versions have run.
func main() {
	if len(os.Args) != 2 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "up":
		if err := db.Migrate(log.Default()); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		fmt.Println("schema is up to date")
	case "status":
		statuses, err := db.MigrationStatuses()
		if err != nil {
			log.Fatalf("status: %v", err)
		}
		for _, s := range statuses {
			mark := "pending"
			if s.Applied {
				mark = "applied"
			}
			fmt.Printf("%03d  %-30s %s\n", s.Version, s.Name, mark)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: migrate <up|status>")
	os.Exit(2)
}
