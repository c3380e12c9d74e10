package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/zackjh/discquiz/internal/client"
	"github.com/zackjh/discquiz/internal/config"
	"github.com/zackjh/discquiz/pkg/logger"
	"github.com/zackjh/discquiz/telegram"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Initialize logger
	logger.Init()
	defer logger.Sync()

	logger.Info("Starting DiscQuiz bot...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", err)
	}

	// Data-service client with a fixed short timeout
	api := client.New(cfg.APIBaseURL, cfg.APITimeout())

	// Initialize and start the Telegram bot; this also starts the daily
	// scheduler. The trigger set is in-memory: a restart clears it.
	bot, err := telegram.InitBot(cfg, api)
	if err != nil {
		logger.Fatal("Failed to initialize bot", err)
	}

	logger.Info("Bot started successfully", "env", cfg.AppEnv, "timezone", cfg.LocalTimezone)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	bot.Stop()
	logger.Info("Bot stopped")
}
