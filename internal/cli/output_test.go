package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitFailure, "roster validation failed")
	assert.Equal(t, "roster validation failed", plain.Error())
	assert.Nil(t, plain.Unwrap())

	cause := errors.New("no such file")
	wrapped := WrapExitError(ExitCommandError, "load roster", cause)
	assert.Equal(t, "load roster: no such file", wrapped.Error())
	assert.Same(t, cause, wrapped.Unwrap())
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad credentials")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}

func TestOutputFormatterSuccess(t *testing.T) {
	out := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out}
	require.NoError(t, f.Success("all good"))
	assert.Equal(t, "all good\n", out.String())

	out.Reset()
	f.Format = "json"
	require.NoError(t, f.Success(map[string]int{"games": 2}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatterError(t *testing.T) {
	out := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: out}
	require.NoError(t, f.Error("E_ROSTER", "no games configured"))
	assert.Equal(t, "Error [E_ROSTER]: no games configured\n", out.String())

	out.Reset()
	f.Format = "json"
	require.NoError(t, f.Error("E_ROSTER", "no games configured"))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E_ROSTER", resp.Error.Code)
}
