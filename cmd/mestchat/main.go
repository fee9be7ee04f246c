package main

import (
	"fmt"
	"os"

	"MestChat/internal/chatbot"
	"MestChat/internal/config"
)

func main() {
	cfg := config.Load()

	variant, ok := chatbot.SelectVariant(os.Stdin, os.Stdout)
	if !ok {
		return
	}

	bot, err := chatbot.NewChatBot(variant, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize chatbot: %v\n", err)
		os.Exit(1)
	}

	if err := bot.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
