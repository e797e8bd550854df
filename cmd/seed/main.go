// Command seed populates the database with demo data for Grove.
package main

import (
	"flag"
	"log"

	"grove/internal/config"
	"grove/internal/database"
	"grove/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	clean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumUsers: *numUsers,
		NumPosts: *numPosts,
		Clean:    *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
