package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Choice errors
	ErrInvalidChoice = errors.New("invalid choice")

	// Player errors
	ErrBothPlayersMustChoose = errors.New("both players must have made a choice")
	ErrChoiceAlreadySet      = errors.New("player has already made a choice")
)

// ParseError reports text that names none of the three choices.
// It matches ErrInvalidChoice under errors.Is.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid choice: %s!", e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidChoice
}
