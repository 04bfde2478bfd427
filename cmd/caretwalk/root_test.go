package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/bidicaret"
	"github.com/iw2rmb/bidicaret/layout"
	"github.com/iw2rmb/bidicaret/motion"
)

const hebrew = "\u05d0\u05d1\u05d2"

// writeConfig writes a YAML config to a temp dir so tests never pick up a
// user config.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestWalk_MixedLineRight(t *testing.T) {
	cfg := writeConfig(t, "wrap: none\n")
	out, err := runCmd(t, "walk", "--config", cfg, "--text", "abc"+hebrew)
	require.NoError(t, err)
	require.Equal(t, []string{
		"0 before 0",
		"1 before 0",
		"2 before 0",
		"3 before 0",
		"5 after 0",
		"4 after 0",
		"3 after 0",
	}, lines(out))
}

func TestWalk_WrappedRowsFromConfig(t *testing.T) {
	cfg := writeConfig(t, "width: 3\nwrap: grapheme\n")
	out, err := runCmd(t, "walk", "--config", cfg, "--text", "abc"+hebrew)
	require.NoError(t, err)
	require.Equal(t, []string{
		"0 before 0",
		"1 before 0",
		"2 before 0",
		"3 before 0",
		"5 after 1",
		"4 after 1",
		"3 after 1",
	}, lines(out))
}

func TestWalk_FlagsOverrideConfig(t *testing.T) {
	cfg := writeConfig(t, "width: 3\nbase: ltr\n")
	out, err := runCmd(t, "walk", "--config", cfg, "--width", "0", "--base", "rtl", "--dir", "right", "--text", "\u05d0\u05d1")
	require.NoError(t, err)
	require.Equal(t, []string{"2 before 0", "1 after 0", "0 after 0"}, lines(out))
}

func TestWalk_RTLParagraphStartsInLeadingNumber(t *testing.T) {
	cfg := writeConfig(t, "base: rtl\n")
	out, err := runCmd(t, "walk", "--config", cfg, "--text", "\u05d0 12")
	require.NoError(t, err)
	require.Equal(t, []string{"2 after 0", "3 before 0", "4 before 0", "1 after 0", "0 after 0"}, lines(out))
}

func TestWalk_Left(t *testing.T) {
	cfg := writeConfig(t, "wrap: none\n")
	out, err := runCmd(t, "walk", "--config", cfg, "--dir", "left", "--text", "ab")
	require.NoError(t, err)
	require.Equal(t, []string{"2 before 0", "1 after 0", "0 after 0"}, lines(out))
}

func TestWalk_RejectsBadInput(t *testing.T) {
	cfg := writeConfig(t, "wrap: none\n")

	_, err := runCmd(t, "walk", "--config", cfg, "--dir", "up", "--text", "ab")
	require.Error(t, err)
	require.Contains(t, err.Error(), "dir")

	_, err = runCmd(t, "walk", "--config", cfg, "--wrap", "soft", "--text", "ab")
	require.Error(t, err)
	require.Contains(t, err.Error(), "wrap")

	_, err = runCmd(t, "walk", "--config", cfg)
	require.Error(t, err, "text is required")

	bad := writeConfig(t, "width: [\n")
	_, err = runCmd(t, "walk", "--config", bad, "--text", "ab")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config")
}

func TestVersionFlag(t *testing.T) {
	out, err := runCmd(t, "--version")
	require.NoError(t, err)
	require.Contains(t, out, bidicaret.Version())
}

func newTestModel(text string, byUnit bool) tuiModel {
	return newTUIModel(bidicaret.NewLine(text, bidicaret.Options{}), byUnit, false, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func press(m tuiModel, msgs ...tea.KeyMsg) tuiModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(tuiModel)
	}
	return m
}

func TestTUI_ArrowsMoveVisually(t *testing.T) {
	m := newTestModel("abc"+hebrew, true)

	m = press(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, motion.Caret{Index: 5, Sticky: motion.StickyAfter}, m.line.Caret())

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, motion.Caret{Index: 6, Sticky: motion.StickyBefore}, m.line.Caret())
}

func TestTUI_HomeEndAndToggle(t *testing.T) {
	m := newTestModel("abc"+hebrew, false)

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, motion.Caret{Index: 3, Sticky: motion.StickyAfter}, m.line.Caret())

	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, motion.Caret{Index: 0, Sticky: motion.StickyBefore}, m.line.Caret())

	require.False(t, m.byUnit)
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	require.True(t, m.byUnit)
	require.Contains(t, m.View(), "moves by unit")
}

func TestTUI_QuitAndResize(t *testing.T) {
	line := bidicaret.NewLine("abc", bidicaret.Options{Wrap: layout.Options{Mode: layout.WrapGrapheme}})
	m := newTUIModel(line, true, true, slog.New(slog.NewTextHandler(io.Discard, nil)))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 3, Height: 10})
	m = next.(tuiModel)
	require.Len(t, m.line.Layout().Rows(), 2)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}
