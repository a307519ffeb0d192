package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwestend/pswatch/internal/layout"
	"github.com/mwestend/pswatch/internal/model"
	"github.com/mwestend/pswatch/internal/registry"
	"github.com/mwestend/pswatch/internal/sampler"
)

// Model drives the dashboard: it owns the registry, consumes snapshots
// from the sampler stream, and reacts to the key bindings. Nothing else
// ever touches the registry or the terminal.
type Model struct {
	reg       *registry.Registry
	stream    <-chan sampler.Snapshot
	ctxCancel context.CancelFunc
	keys      keyMap
	help      help.Model
	width     int
	height    int
}

func New(query string) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	s := sampler.New(query, sampler.DefaultInterval)
	return &Model{
		reg:       registry.New(),
		stream:    s.Stream(ctx),
		ctxCancel: cancel,
		keys:      defaultKeys(),
		help:      help.New(),
		width:     80,
		height:    24,
	}
}

type snapshotMsg sampler.Snapshot

// waitSnapshot blocks on the sampler stream and hands the next snapshot
// to Update. It is re-armed after every receive.
func (m *Model) waitSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.stream
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (m *Model) Init() tea.Cmd { return m.waitSnapshot() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctxCancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.reg.Reset()
		case key.Matches(msg, m.keys.ExpandAll):
			m.reg.SetDetailAll(model.Expanded)
		case key.Matches(msg, m.keys.CondenseAll):
			m.reg.SetDetailAll(model.Condensed)
		}
	case snapshotMsg:
		m.reg.Apply(sampler.Snapshot(msg))
		return m, m.waitSnapshot()
	}
	return m, nil
}

func (m *Model) View() string {
	// The bottom row belongs to the help bar; entries get the rest.
	budget := m.height - 1
	regions := layout.Plan(m.reg.Entries(), budget)

	now := time.Now()
	lines := make([]string, 0, m.height)
	for _, r := range regions {
		lines = append(lines, renderEntry(r.Entry, m.width, now)...)
	}
	for len(lines) < budget {
		lines = append(lines, "")
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

// Run starts the dashboard and blocks until quit or a fatal terminal
// error. The alternate screen and raw mode are restored on every exit
// path, error exits included.
func Run(query string) error {
	m := New(query)
	defer m.ctxCancel()
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}
