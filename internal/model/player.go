package model

// Player is one side of a round.
// A human starts without a choice; a computer is created with one.
type Player struct {
	IsHuman bool
	choice  *Choice
}

// NewHumanPlayer creates a human player that has not chosen yet
func NewHumanPlayer() *Player {
	return &Player{IsHuman: true}
}

// NewComputerPlayer creates a computer player holding the given choice
func NewComputerPlayer(c Choice) *Player {
	return &Player{IsHuman: false, choice: &c}
}

// Choice returns the player's choice and whether one has been made
func (p *Player) Choice() (Choice, bool) {
	if p.choice == nil {
		return 0, false
	}
	return *p.choice, true
}

// HasChoice reports whether the player has made a choice
func (p *Player) HasChoice() bool {
	return p.choice != nil
}

// SetChoice records the player's choice. A choice can only be made once.
func (p *Player) SetChoice(c Choice) error {
	if p.choice != nil {
		return ErrChoiceAlreadySet
	}
	p.choice = &c
	return nil
}

// Play compares this player's choice against the opponent's
func (p *Player) Play(opponent *Player) (Outcome, error) {
	if p.choice == nil || opponent == nil || opponent.choice == nil {
		return 0, ErrBothPlayersMustChoose
	}
	return p.choice.OutcomeAgainst(*opponent.choice), nil
}
