// Command seed populates the database with development fixtures.
package main

import (
	"flag"
	"log"

	"github.com/DylanDHubert/hotmess/internal/config"
	"github.com/DylanDHubert/hotmess/internal/database"
	"github.com/DylanDHubert/hotmess/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "number of users to create")
	numPosts := flag.Int("posts", 80, "number of posts to create")
	clean := flag.Bool("clean", false, "delete existing rows before seeding")
	randSeed := flag.Int64("seed", 0, "deterministic seed (0 = time-based)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
		Seed:        *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
