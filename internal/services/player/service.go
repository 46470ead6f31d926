package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/bot"
	"github.com/mcoot/rpsgame/internal/services/choice"
)

// PromptMessage is shown before each attempt to read the human's choice
const PromptMessage = "Make a choice:"

// Console is the line-oriented terminal a human player types into
type Console interface {
	// ReadLine blocks until one line of input is available
	ReadLine() (string, error)
	PrintMessage(msg string)
	PrintError(err error)
}

// Service creates players and collects their choices
type Service struct {
	strategy bot.Strategy
	logger   *slog.Logger
}

// New creates a new player Service
func New(strategy bot.Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "player-service")),
	}
}

// New creates a player. Computer players choose immediately; humans start unset.
func (s *Service) New(isHuman bool) *model.Player {
	if isHuman {
		return model.NewHumanPlayer()
	}

	c := s.strategy.Choose()
	s.logger.Debug("computer chose", slog.String("choice", c.String()))
	return model.NewComputerPlayer(c)
}

// RequestChoice prompts a human player until a line names a valid choice.
// It does nothing for computer players or players who have already chosen.
func (s *Service) RequestChoice(ctx context.Context, p *model.Player, console Console) error {
	if !p.IsHuman || p.HasChoice() {
		return nil
	}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		console.PrintMessage(PromptMessage)
		line, err := console.ReadLine()
		if err != nil {
			return fmt.Errorf("reading choice: %w", err)
		}

		m, err := choice.Find(line)
		if err != nil {
			var parseErr *model.ParseError
			if !errors.As(err, &parseErr) {
				return err
			}
			s.logger.Debug("rejected input",
				slog.String("input", parseErr.Input),
				slog.Int("attempt", attempt),
			)
			console.PrintError(err)
			continue
		}

		if !m.Exact() {
			console.PrintMessage(fmt.Sprintf("reading %q as %s", m.Input, m.Choice))
		}

		if err := p.SetChoice(m.Choice); err != nil {
			return err
		}
		s.logger.Debug("human chose",
			slog.String("choice", m.Choice.String()),
			slog.Int("attempts", attempt),
		)
		return nil
	}
}
