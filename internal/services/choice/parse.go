package choice

import (
	"regexp"
	"strings"

	"github.com/mcoot/rpsgame/internal/model"
)

// keywordPattern finds the leftmost keyword. At equal start positions the
// alternation order decides, so "rock" wins over "paper" over "scissors".
// Each keyword has its own group so the match maps to a Choice without
// case-folding the matched text.
var keywordPattern = regexp.MustCompile(`(?i)(rock)|(paper)|(scissors)`)

// Match describes where a choice keyword was found in free text
type Match struct {
	Choice  model.Choice
	Input   string // whitespace-trimmed input
	Keyword string // keyword as it appeared in Input
}

// Exact reports whether the keyword was the whole trimmed input
func (m Match) Exact() bool {
	return m.Keyword == m.Input
}

// Find locates the first choice keyword in input, ignoring case.
// Returns a *model.ParseError when there is none.
func Find(input string) (Match, error) {
	trimmed := strings.TrimSpace(input)

	loc := keywordPattern.FindStringSubmatchIndex(trimmed)
	if loc == nil {
		return Match{}, &model.ParseError{Input: trimmed}
	}

	// loc[2*(i+1)] is the start of group i+1, or -1 if it did not take part
	var c model.Choice
	for i, candidate := range model.AllChoices {
		if loc[2*(i+1)] >= 0 {
			c = candidate
			break
		}
	}

	return Match{
		Choice:  c,
		Input:   trimmed,
		Keyword: trimmed[loc[0]:loc[1]],
	}, nil
}

// Parse returns the choice named by input
func Parse(input string) (model.Choice, error) {
	m, err := Find(input)
	if err != nil {
		return 0, err
	}
	return m.Choice, nil
}
