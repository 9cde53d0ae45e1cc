package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4"            // Echo web framework
	"github.com/labstack/echo/v4/middleware" // Stock request logging and panic recovery

	"github.com/iliyamo/candidate-registry/internal/config"     // Internal config loader
	"github.com/iliyamo/candidate-registry/internal/database"   // SQLite connection handling
	"github.com/iliyamo/candidate-registry/internal/handler"    // HTTP handlers
	"github.com/iliyamo/candidate-registry/internal/repository" // Data access layer
	"github.com/iliyamo/candidate-registry/internal/router"     // Internal router setup
)

func main() {
	cfg := config.Load() // Load environment config

	// The server must not accept a single request until the database handle
	// is confirmed usable, so the listener is bound last.
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil { // Create tables when the file is fresh
		log.Fatalf("ensure schema: %v", err)
	}

	candidateRepo := repository.NewCandidateRepo(db) // Candidate persistence
	partyRepo := repository.NewPartyRepo(db)         // Party lookups (read-only)

	e := echo.New() // Create Echo instance
	e.Use(middleware.Logger(), middleware.Recover())
	router.RegisterRoutes(e, handler.NewCandidateHandler(candidateRepo), handler.NewPartyHandler(partyRepo))

	addr := ":" + cfg.Port                                                  // Address string with port
	log.Printf("listening on %s (env=%s db=%s)", addr, cfg.Env, cfg.DBPath) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
