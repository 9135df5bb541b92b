package main

import (
	"flag"
	"log"

	"nanumi/config"
	"nanumi/pkg/database"
)

func main() {
	seed := flag.Bool("seed", false, "load development fixtures after migrating")
	flag.Parse()

	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Migrations applied")

	if *seed {
		if err := database.Seed(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}
}
