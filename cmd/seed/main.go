// Command main runs the database seeder for Liberty Social.
package main

import (
	"flag"
	"log"

	"liberty/internal/config"
	"liberty/internal/database"
	"liberty/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numGroups := flag.Int("groups", 10, "Number of groups to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts, %d groups, clean=%v\n",
		*numUsers, *numPosts, *numGroups, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Seed(seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		NumGroups:   *numGroups,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with demo data.")
	log.Println("📧 All demo users have the password: password123")
}
