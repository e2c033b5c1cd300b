package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/moazalsaedi-create/quizbot/internal/cli"
)

func main() {
	// Load a local .env if present; real deployments set the environment
	// directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
