package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/services/bot"
	"github.com/mcoot/rpsgame/internal/services/game"
	"github.com/mcoot/rpsgame/internal/services/player"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Strategy       bot.Strategy
	PlayerService  *player.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Random overrides the random source (optional)
	// If nil, crypto/rand is used
	Random random.Random
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	rnd := cfg.Random
	if rnd == nil {
		rnd = random.New()
	}

	return newWithDependencies(clock.New(), rnd, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	strategy := bot.NewRandomStrategy(rnd)
	playerService := player.New(strategy, logger)
	gameController := game.NewController(playerService, clk, logger)

	return &App{
		Clock:          clk,
		Random:         rnd,
		Strategy:       strategy,
		PlayerService:  playerService,
		GameController: gameController,
	}
}
