package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "github.com/hyemnyarwi-dev/hackathon-voting-system-public/pkg/config"

	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/handler"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/repository"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/router"
	"github.com/hyemnyarwi-dev/hackathon-voting-system-public/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Hackathon Voting Service API
// @version 1.0
// @description Voting service for hackathon teams, voters and judges
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open database
	db, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.CreateSchema(db); err != nil {
		slog.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	slog.Info("successfully opened database")

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(db)
	voterRepo := repository.NewVoterRepository(db)
	judgeRepo := repository.NewJudgeRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(teamRepo, voterRepo, judgeRepo, cfg.AdminPassword, cfg.JWTSecret)
	voteService := service.NewVoteService(voteRepo, voterRepo, judgeRepo, teamRepo)
	teamService := service.NewTeamService(teamRepo)
	judgeService := service.NewJudgeService(judgeRepo)
	voterService := service.NewVoterService(voterRepo)
	resultsService := service.NewResultsService(teamRepo, voteRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	voteHandler := handler.NewVoteHandler(voteService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	rosterHandler := handler.NewRosterHandler(teamService)
	judgeHandler := handler.NewJudgeHandler(judgeService, validate)
	voterHandler := handler.NewVoterHandler(voterService)
	resultsHandler := handler.NewResultsHandler(resultsService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		voteHandler,
		teamHandler,
		rosterHandler,
		judgeHandler,
		voterHandler,
		resultsHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
