package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/verseworks/poem-service/poemservice"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	if err := poemservice.Run(); err != nil {
		os.Exit(1)
	}
}
