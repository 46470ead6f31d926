package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/player"
)

// Controller runs a round of rock-paper-scissors between a human and the computer
type Controller struct {
	playerService *player.Service
	clock         clock.Clock
	logger        *slog.Logger
}

// NewController creates a new game Controller
func NewController(playerService *player.Service, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		playerService: playerService,
		clock:         clk,
		logger:        logger.With(slog.String("component", "game-controller")),
	}
}

// Play runs one round: the computer picks, the human is asked until they
// give a valid choice, then the two are compared.
func (c *Controller) Play(ctx context.Context, console player.Console) (*model.Result, error) {
	human := c.playerService.New(true)
	computer := c.playerService.New(false)

	if err := c.playerService.RequestChoice(ctx, human, console); err != nil {
		return nil, err
	}

	return c.resolve(human, computer)
}

func (c *Controller) resolve(human, computer *model.Player) (*model.Result, error) {
	outcome, err := human.Play(computer)
	if err != nil {
		return nil, fmt.Errorf("resolving round: %w", err)
	}

	// Both choices are set once Play succeeds
	humanChoice, _ := human.Choice()
	computerChoice, _ := computer.Choice()

	result := &model.Result{
		PlayerChoice:   humanChoice,
		ComputerChoice: computerChoice,
		Outcome:        outcome,
		PlayedAt:       c.clock.Now(),
	}

	c.logger.Info("round complete",
		slog.String("player_choice", humanChoice.String()),
		slog.String("computer_choice", computerChoice.String()),
		slog.String("outcome", outcome.String()),
	)

	return result, nil
}
