package main

import (
	"log"

	"sheetviz/adapters/classify"
	"sheetviz/internal/config"
	"sheetviz/internal/session"
	"sheetviz/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sessions := session.NewManager(classify.NewDefault())

	server, err := ui.NewServer(cfg, sessions)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
