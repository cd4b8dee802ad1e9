// Package tui provides the interactive terminal front end. The bubbletea
// update loop doubles as the engine's host thread: every UI tick advances
// a manual scheduler by one frame delay, so engine callbacks run
// cooperatively on the same goroutine as rendering and key handling.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/evolab/internal/config"
	"github.com/san-kum/evolab/internal/evo"
	"github.com/san-kum/evolab/internal/problems"
)

const historyWindow = 120

type model struct {
	name    string
	cfg     *config.Config
	session problems.Session
	sched   *evo.ManualScheduler

	width  int
	height int
}

type tickMsg time.Time

// Run starts the live view for one problem.
func Run(name string, cfg *config.Config) error {
	registry := problems.NewRegistry()
	sched := evo.NewManualScheduler()
	session, err := registry.New(name, cfg, sched)
	if err != nil {
		return err
	}

	m := model{
		name:    name,
		cfg:     cfg,
		session: session,
		sched:   sched,
		width:   80,
		height:  24,
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd {
	return m.tick()
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDelay(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.session.Running() {
				m.session.Pause()
			} else {
				m.session.Play()
			}
		case "r":
			m.session.Reset()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		// Fires any engine tick that came due; when paused or
		// terminated the pending tick exits without side effects.
		m.sched.Advance(m.cfg.FrameDelay())
		return m, m.tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("evolab · "+m.name) + "  " + m.status() + "\n\n")

	stats := m.session.Stats()
	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s   %s %s\n\n",
		labelStyle.Render("gen"), valueStyle.Render(fmt.Sprintf("%d", m.session.Generation())),
		labelStyle.Render("best"), valueStyle.Render(fmt.Sprintf("%.2f", stats.Best)),
		labelStyle.Render("mean"), valueStyle.Render(fmt.Sprintf("%.2f", stats.Mean)),
		labelStyle.Render("worst"), valueStyle.Render(fmt.Sprintf("%.2f", stats.Worst)),
	))

	if graph := m.historyGraph(); graph != "" {
		b.WriteString(panelStyle.Render(graph) + "\n\n")
	}

	b.WriteString(m.session.BestView(m.width-4) + "\n")
	b.WriteString(hintStyle.Render("space play/pause · r reset · q quit"))

	return b.String()
}

func (m model) status() string {
	switch {
	case m.session.Running():
		return statusRunning.Render("RUNNING")
	case m.session.Done():
		return statusDone.Render("DONE")
	default:
		return statusPaused.Render("PAUSED")
	}
}

func (m model) historyGraph() string {
	history := m.session.History()
	if len(history) < 2 {
		return ""
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	width := m.width - 16
	if width < 20 {
		width = 20
	}
	return asciigraph.Plot(history,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("best fitness"),
	)
}
