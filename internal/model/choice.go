package model

import "fmt"

// Choice is a move in a round of rock-paper-scissors
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// AllChoices lists every Choice in declaration order
var AllChoices = []Choice{Rock, Paper, Scissors}

// String returns the lowercase keyword for the choice
func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// IsValid reports whether c is one of the three defined choices
func (c Choice) IsValid() bool {
	return c >= Rock && c <= Scissors
}

// MarshalText encodes the choice as its keyword
func (c Choice) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot marshal %s", c)
	}
	return []byte(c.String()), nil
}

// OutcomeAgainst returns the result of playing c against other, from c's side
func (c Choice) OutcomeAgainst(other Choice) Outcome {
	switch {
	case c == other:
		return Draw
	case c == Rock && other == Paper,
		c == Paper && other == Scissors,
		c == Scissors && other == Rock:
		return Lose
	}
	return Win
}

// Outcome is the result of comparing one choice against another
type Outcome int

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns the capitalised outcome word
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome as its word
func (o Outcome) MarshalText() ([]byte, error) {
	if o < Win || o > Draw {
		return nil, fmt.Errorf("cannot marshal %s", o)
	}
	return []byte(o.String()), nil
}
