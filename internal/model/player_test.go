package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PlayerSuite struct {
	suite.Suite
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) TestHumanStartsWithoutChoice() {
	p := NewHumanPlayer()
	s.True(p.IsHuman)
	s.False(p.HasChoice())

	_, ok := p.Choice()
	s.False(ok)
}

func (s *PlayerSuite) TestComputerStartsWithChoice() {
	p := NewComputerPlayer(Paper)
	s.False(p.IsHuman)
	s.True(p.HasChoice())

	c, ok := p.Choice()
	s.True(ok)
	s.Equal(Paper, c)
}

func (s *PlayerSuite) TestSetChoiceOnlyOnce() {
	p := NewHumanPlayer()
	s.Require().NoError(p.SetChoice(Rock))

	err := p.SetChoice(Scissors)
	s.ErrorIs(err, ErrChoiceAlreadySet)

	c, _ := p.Choice()
	s.Equal(Rock, c)
}

func (s *PlayerSuite) TestPlayRequiresBothChoices() {
	p1 := NewHumanPlayer()
	p2 := NewHumanPlayer()

	_, err := p1.Play(p2)
	s.ErrorIs(err, ErrBothPlayersMustChoose)

	s.Require().NoError(p1.SetChoice(Rock))
	_, err = p1.Play(p2)
	s.ErrorIs(err, ErrBothPlayersMustChoose)

	_, err = p2.Play(p1)
	s.ErrorIs(err, ErrBothPlayersMustChoose)

	s.Require().NoError(p2.SetChoice(Rock))
	outcome, err := p1.Play(p2)
	s.Require().NoError(err)
	s.Equal(Draw, outcome)
}

func (s *PlayerSuite) TestPlayNilOpponent() {
	p := NewComputerPlayer(Rock)
	_, err := p.Play(nil)
	s.ErrorIs(err, ErrBothPlayersMustChoose)
}

func (s *PlayerSuite) TestPlayMatchesOutcomeAgainst() {
	for _, a := range AllChoices {
		for _, b := range AllChoices {
			outcome, err := NewComputerPlayer(a).Play(NewComputerPlayer(b))
			s.Require().NoError(err)
			s.Equal(a.OutcomeAgainst(b), outcome)
		}
	}
}

func (s *PlayerSuite) TestParseErrorMatchesSentinel() {
	var err error = &ParseError{Input: "banana"}
	s.True(errors.Is(err, ErrInvalidChoice))
	s.Equal("invalid choice: banana!", err.Error())
}
