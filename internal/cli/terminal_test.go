package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalReadLine(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("rock\npaper"), NewOutput(FormatText, &out, &out))

	line, err := term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "rock\n", line)

	line, err = term.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "paper", line)

	_, err = term.ReadLine()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestOutputPrintError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	NewOutput(FormatText, &stdout, &stderr).PrintError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", stderr.String())

	stderr.Reset()
	NewOutput(FormatJSON, &stdout, &stderr).PrintError(errors.New("boom"))
	assert.JSONEq(t, `{"error":{"message":"boom"}}`, stderr.String())
	assert.Empty(t, stdout.String())
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Output: FormatText, LogFormat: FormatJSON}
	require.NoError(t, cfg.Validate())

	cfg.LogFormat = "xml"
	assert.Error(t, cfg.Validate())
}
