package main

import (
	"github.com/joho/godotenv"

	"github.com/custodia-labs/planqa-cli/internal/adapters/driving/cli"
)

func main() {
	// A .env file is optional; OPENAI_API_KEY may come from it.
	_ = godotenv.Load()

	cli.Execute()
}
