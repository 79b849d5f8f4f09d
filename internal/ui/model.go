// Package ui drives the dashboard: a bubbletea model owning the history
// buffer, the probe scheduler and the selection cursor. Probe batches run
// as commands off the UI loop; redraws happen only on batch arrival,
// resize, or a navigation key.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pingdeck/internal/history"
	"pingdeck/internal/probe"
	"pingdeck/internal/sched"
)

// Prober produces one batch of probe results. Satisfied by *probe.Pinger.
type Prober interface {
	Batch(ctx context.Context, count int) []*probe.Result
}

// Config carries the knobs exposed by the CLI.
type Config struct {
	Address  string
	Count    int           // probes per batch
	Interval time.Duration // time between batches
	Timeout  time.Duration // per-probe timeout
	Capacity int           // retained history entries
}

// tickMsg signals the scheduler should be polled.
type tickMsg time.Time

// batchMsg carries the results of one finished probe batch.
type batchMsg []*probe.Result

// Model is the bubbletea model for the dashboard.
type Model struct {
	cfg    Config
	prober Prober

	buffer *history.Buffer
	sel    Selection
	sched  *sched.Scheduler

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// New returns a model probing via p with the given configuration.
func New(cfg Config, p Prober) Model {
	return Model{
		cfg:    cfg,
		prober: p,
		buffer: history.NewBuffer(cfg.Capacity),
		sched:  sched.New(cfg.Interval),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init kicks off the first probe batch immediately.
func (m Model) Init() tea.Cmd {
	return m.probeCmd()
}

// probeCmd runs one batch on a worker so the UI loop stays responsive for
// the batch's full duration.
func (m Model) probeCmd() tea.Cmd {
	return func() tea.Msg {
		return batchMsg(m.prober.Batch(context.Background(), m.cfg.Count))
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if m.sched.Due() {
			return m, m.probeCmd()
		}
		return m, tickCmd(m.sched.Remaining())

	case batchMsg:
		entry := history.NewEntry(msg, float64(m.cfg.Timeout.Milliseconds()))
		m.buffer.Insert(entry)
		m.sel.Shift(m.buffer.Len())
		m.sched.Rearm()
		return m, tickCmd(m.sched.Remaining())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.sel.Next(m.buffer.Len())
	case key.Matches(msg, m.keys.Prev):
		m.sel.Prev(m.buffer.Len())
	case key.Matches(msg, m.keys.First):
		m.sel.First(m.buffer.Len())
	case key.Matches(msg, m.keys.Last):
		m.sel.Last(m.buffer.Len())
	case key.Matches(msg, m.keys.Clear):
		m.sel.Clear()
	}
	return m, nil
}
