package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/RUTHVIKRAO04/HackConnect/internal/auth"
	"github.com/RUTHVIKRAO04/HackConnect/internal/cache"
	"github.com/RUTHVIKRAO04/HackConnect/internal/config"
	"github.com/RUTHVIKRAO04/HackConnect/internal/database"
	"github.com/RUTHVIKRAO04/HackConnect/internal/directory"
	"github.com/RUTHVIKRAO04/HackConnect/internal/handlers"
	"github.com/RUTHVIKRAO04/HackConnect/internal/notifier"
	"github.com/bwmarrin/discordgo"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Listing cache (optional, fail-safe)
	listCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Ops channel notifier (optional)
	var registrationNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			registrationNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Legacy user directory sync
	syncClient := directory.NewClient(cfg.UserSyncURL)

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db, syncClient)
	hackathonHandler := handlers.NewHackathonHandler(db, listCache, authHandler)
	registrationHandler := handlers.NewRegistrationHandler(db, registrationNotifier, authHandler)
	userHandler := handlers.NewUserHandler(db)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, hackathonHandler, registrationHandler, userHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
