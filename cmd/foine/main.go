package main

import (
	"log"

	"github.com/l9rins/foine-2025/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
