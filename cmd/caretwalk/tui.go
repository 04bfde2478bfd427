package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/bidicaret"
	"github.com/iw2rmb/bidicaret/layout"
	"github.com/iw2rmb/bidicaret/motion"
)

func newTUICmd(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Move a caret through a line interactively",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			// Query the background before the program owns the terminal so
			// the reply does not land in the input stream.
			_ = lipgloss.HasDarkBackground()

			m := newTUIModel(bidicaret.NewLine(text, a.opt), a.cfg.ByUnit, a.cfg.Width == 0 && a.opt.Wrap.Mode != layout.WrapNone, a.log)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("running program: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "line of text to edit")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

type tuiModel struct {
	line   *bidicaret.Line
	keys   keyMap
	help   help.Model
	style  layout.Style
	status lipgloss.Style
	log    *slog.Logger

	byUnit bool
	// fitWidth rewraps the line to the window width.
	fitWidth bool
}

func newTUIModel(line *bidicaret.Line, byUnit, fitWidth bool, log *slog.Logger) tuiModel {
	return tuiModel{
		line:     line,
		keys:     defaultKeyMap(),
		help:     help.New(),
		style:    layout.DefaultStyle(),
		status:   lipgloss.NewStyle().Faint(true),
		log:      log,
		byUnit:   byUnit,
		fitWidth: fitWidth,
	}
}

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if m.fitWidth {
			m.line.SetWidth(msg.Width - 1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleUnit):
			m.byUnit = !m.byUnit
		case key.Matches(msg, m.keys.Left):
			m.move(bidicaret.MoveRune, motion.Left)
		case key.Matches(msg, m.keys.Right):
			m.move(bidicaret.MoveRune, motion.Right)
		case key.Matches(msg, m.keys.Home):
			m.move(bidicaret.MoveLine, motion.Left)
		case key.Matches(msg, m.keys.End):
			m.move(bidicaret.MoveLine, motion.Right)
		}
	}
	return m, nil
}

func (m tuiModel) move(unit bidicaret.MoveUnit, dir motion.Dir) {
	if unit == bidicaret.MoveRune && m.byUnit {
		unit = bidicaret.MoveCluster
	}
	if !m.line.Move(bidicaret.Move{Unit: unit, Dir: dir}) {
		m.log.Debug("caret stays", "caret", m.line.Caret(), "dir", dir)
		return
	}
	m.log.Debug("caret moved", "caret", m.line.Caret(), "dir", dir)
}

func (m tuiModel) View() string {
	var sb strings.Builder
	sb.WriteString(m.line.Render(m.style))
	sb.WriteString("\n\n")

	c := m.line.Caret()
	unit := "rune"
	if m.byUnit {
		unit = "unit"
	}
	sb.WriteString(m.status.Render(fmt.Sprintf("caret %d %s  row %d  moves by %s", c.Index, c.Sticky, m.line.CaretRow(c), unit)))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
