package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/CBA-BYTE/Simple-Personal-Expense-Tracker/internal/commands"
)

func main() {
	// Optional .env with LEDGER_FILE and friends; absence is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
