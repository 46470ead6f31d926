package cli

import (
	"bufio"
	"errors"
	"io"

	"github.com/mcoot/rpsgame/internal/services/player"
)

// Terminal reads the human's lines and writes prompts through an Output
type Terminal struct {
	*Output
	reader *bufio.Reader
}

var _ player.Console = (*Terminal)(nil)

// NewTerminal creates a Terminal reading from in
func NewTerminal(in io.Reader, out *Output) *Terminal {
	return &Terminal{Output: out, reader: bufio.NewReader(in)}
}

// ReadLine returns the next line including its newline.
// A final line without a newline is returned before io.EOF.
func (t *Terminal) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}
