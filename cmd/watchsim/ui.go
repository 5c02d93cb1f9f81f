package main

import (
	"fmt"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/watchface/host"
	"github.com/ardnew/watchface/model"
)

const (
	batteryStep = 5
	buzzHold    = 400 * time.Millisecond
)

type (
	frameMsg    struct{ img *image.RGBA }
	vibrateMsg  struct{ pattern model.Pattern }
	buzzDoneMsg struct{ seq int }
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	buzzStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
)

type ui struct {
	sim  *host.Sim
	keys keyMap
	help help.Model

	frame   string
	buzz    bool
	buzzSeq int
}

func newUI(sim *host.Sim) ui {
	return ui{sim: sim, keys: newKeyMap(), help: help.New()}
}

func (m ui) Init() tea.Cmd { return nil }

func (m ui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case frameMsg:
		m.frame = renderFrame(msg.img)
	case vibrateMsg:
		m.buzz = true
		m.buzzSeq++
		seq := m.buzzSeq
		return m, tea.Tick(buzzHold, func(time.Time) tea.Msg { return buzzDoneMsg{seq: seq} })
	case buzzDoneMsg:
		if msg.seq == m.buzzSeq {
			m.buzz = false
		}
	}
	return m, nil
}

func (m ui) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.BatteryUp):
		m.sim.SetBattery(min(100, m.sim.Battery()+batteryStep))
	case key.Matches(msg, m.keys.BatteryDown):
		m.sim.SetBattery(max(0, m.sim.Battery()-batteryStep))
	case key.Matches(msg, m.keys.Connection):
		m.sim.SetConnected(!m.sim.Connected())
	case key.Matches(msg, m.keys.Quiet):
		m.sim.SetQuiet(!m.sim.QuietTime())
	case key.Matches(msg, m.keys.Clock):
		m.sim.SetClock24h(!m.sim.ClockIs24h())
	case key.Matches(msg, m.keys.NextDay):
		m.sim.Skip(24 * time.Hour)
	}
	return m, nil
}

func (m ui) View() string {
	frame := m.frame
	if frame == "" {
		frame = "starting..."
	}
	status := statusStyle.Render(m.status())
	if m.buzz {
		status = lipgloss.JoinHorizontal(lipgloss.Center, status, " ", buzzStyle.Render("BZZT"))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		frameStyle.Render(frame),
		status,
		m.help.View(m.keys),
	)
}

func (m ui) status() string {
	link := "up"
	if !m.sim.Connected() {
		link = "down"
	}
	quiet := "off"
	if m.sim.QuietTime() {
		quiet = "on"
	}
	clock := "12h"
	if m.sim.ClockIs24h() {
		clock = "24h"
	}
	return fmt.Sprintf("battery %d%%  link %s  quiet %s  clock %s  %s",
		m.sim.Battery(), link, quiet, clock, m.sim.Now().Format("Mon Jan 2 15:04"))
}
