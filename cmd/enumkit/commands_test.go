package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	for _, name := range []string{"user.type", "page.connection", "page.revision", "config.format"} {
		assert.Contains(t, out, name)
	}
}

func TestShowCommandTable(t *testing.T) {
	out, err := execute(t, "show", "user.type")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "REGULAR")
	assert.Contains(t, out, "regular")
	assert.Contains(t, out, "BOT")

	// Declaration order survives rendering.
	assert.Less(t, strings.Index(out, "REGULAR"), strings.Index(out, "SYSTEM"))
	assert.Less(t, strings.Index(out, "SYSTEM"), strings.Index(out, "BOT"))
}

func TestShowCommandJSON(t *testing.T) {
	out, err := execute(t, "show", "page.revision", "--format", "json")
	require.NoError(t, err)

	var variants []struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &variants))
	require.Len(t, variants, 5)
	assert.Equal(t, "CREATE", variants[0].Name)
	assert.Equal(t, "create", variants[0].Value)
	assert.Equal(t, "UNDELETE", variants[4].Name)
}

func TestShowCommandYAML(t *testing.T) {
	out, err := execute(t, "show", "user.type", "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "REGULAR: regular\nSYSTEM: system\nBOT: bot\n", out)
}

func TestShowCommandUnknownVocabulary(t *testing.T) {
	_, err := execute(t, "show", "no.such.set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown vocabulary")
}

func TestShowCommandUnknownFormat(t *testing.T) {
	_, err := execute(t, "show", "user.type", "--format", "xml")
	require.Error(t, err)
}

func TestCheckCommandMember(t *testing.T) {
	out, err := execute(t, "check", "user.type", "bot")
	require.NoError(t, err)
	assert.Contains(t, out, "is a value of user.type")
}

func TestCheckCommandNonMember(t *testing.T) {
	_, err := execute(t, "check", "user.type", "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a value of user.type")
}

func TestCheckCommandUnknownVocabulary(t *testing.T) {
	_, err := execute(t, "check", "no.such.set", "bot")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "enumkit version")
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"bot", 1},  // plain string
		{"42", 2},   // string, int64
		{"4.5", 2},  // string, float64
		{"true", 2}, // string, bool
		{"1", 3},    // string, int64, bool
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := candidates(tt.raw)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.raw, got[0])
			assert.Len(t, got, tt.want)
		})
	}
}
