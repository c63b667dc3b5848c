package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/service"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/store"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
)

type focus int

const (
	focusEvents focus = iota
	focusInput
)

const messageCharLimit = 64

type dashboardModel struct {
	ctx       context.Context
	client    service.SyncClient
	buildInfo models.AppBuildInfo

	snapshot store.Snapshot
	filtered []models.Event

	input   textinput.Model
	spinner spinner.Model
	focus   focus

	selected      int
	confirming    bool
	showBuildInfo bool
	busy          int
	status        string
	colored       bool
}

func newDashboardModel(ctx context.Context, client service.SyncClient, buildInfo models.AppBuildInfo) dashboardModel {
	input := textinput.New()
	input.Placeholder = "Type your text"
	input.CharLimit = messageCharLimit
	input.Prompt = "> "

	m := dashboardModel{
		ctx:       ctx,
		client:    client,
		buildInfo: buildInfo,
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		colored:   true,
	}
	m.applySnapshot(client.State())

	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.client.Changes()), m.spinner.Tick)
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateChangedMsg:
		m.applySnapshot(m.client.State())
		return m, waitForChange(m.client.Changes())
	case stateClosedMsg:
		return m, nil
	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		// the outcome is already in the state; only successes get a status line
		if msg.err == nil {
			m.status = opStatus(msg.op)
			return m, clearStatusAfter(statusTTL)
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "Clipboard unavailable"
		} else {
			m.status = "Readings copied"
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.focus == focusInput {
		return m.updateInput(msg)
	}
	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.busy++
			return m, deleteEventCmd(m.ctx, m.client, m.selected)
		case key.Matches(msg, keys.no, keys.esc):
			m.confirming = false
		}
		return m, nil
	}

	if m.focus == focusInput {
		switch {
		case key.Matches(msg, keys.tab, keys.esc):
			m.focus = focusEvents
			m.input.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			m.busy++
			return m, sendMessageCmd(m.ctx, m.client, m.input.Value())
		}
		return m.updateInput(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.toggle):
		m.busy++
		return m, setActuatorCmd(m.ctx, m.client, !m.snapshot.Actuator.On)
	case key.Matches(msg, keys.delete):
		if len(m.filtered) > 0 {
			m.confirming = true
		}
	case key.Matches(msg, keys.refresh):
		m.busy++
		return m, refreshAllCmd(m.ctx, m.client)
	case key.Matches(msg, keys.copy):
		return m, copyCmd(readingsText(m.snapshot.Sensors))
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}

	return m, nil
}

// updateInput forwards msg to the text input and mirrors the typed text
// into the state.
func (m dashboardModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		m.client.SetPendingMessage(after)
	}
	return m, cmd
}

func (m *dashboardModel) applySnapshot(s store.Snapshot) {
	m.snapshot = s
	m.filtered = s.FilteredEvents

	if m.input.Value() != s.PendingMessage {
		m.input.SetValue(s.PendingMessage)
	}

	if m.selected >= len(m.filtered) {
		m.selected = len(m.filtered) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if len(m.filtered) == 0 {
		m.confirming = false
	}
}

func opStatus(op string) string {
	switch op {
	case service.OpSendMessage:
		return "Message sent"
	case service.OpSetActuator:
		return "Actuator switched"
	case service.OpDeleteEvent:
		return "Event deleted"
	default:
		return "Refreshed"
	}
}

func (m dashboardModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(appName))
	if m.busy > 0 {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	b.WriteString(m.viewActuator())
	b.WriteString("\n\n")
	b.WriteString(m.viewSensors())
	b.WriteString("\n")
	b.WriteString(m.viewMessages())
	b.WriteString("\n")
	b.WriteString(m.viewEvents())

	if banner := (errorBanner{message: m.snapshot.Error}).View(); banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	if m.confirming && m.selected < len(m.filtered) {
		ev := m.filtered[m.selected]
		b.WriteString("\n")
		b.WriteString(confirmModel{message: ev.Timestamp.String() + " - " + ev.Kind}.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))

	return appStyle.Render(b.String())
}

func (m dashboardModel) viewActuator() string {
	state := offStyle.Render("[ OFF ]")
	if m.snapshot.Actuator.On {
		state = onStyle.Render("[ ON  ]")
	}
	return "Actuator " + state
}

func (m dashboardModel) viewSensors() string {
	s := m.snapshot.Sensors
	rows := []struct {
		label string
		value *float64
		unit  string
	}{
		{"Temperature", s.Temperature, "°C"},
		{"Humidity", s.Humidity, "%"},
		{"Water level", s.WaterLevel, "%"},
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Sensors"))
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s %-8s %s\n", row.label+":", FormatReading(row.value, row.unit), renderGauge(row.value, m.colored))
	}
	return b.String()
}

func (m dashboardModel) viewMessages() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Messages"))
	b.WriteString("\n")

	if len(m.snapshot.Messages) == 0 {
		b.WriteString(helpStyle.Render("no messages"))
		b.WriteString("\n")
	}
	for _, msg := range m.snapshot.Messages {
		b.WriteString("• ")
		b.WriteString(fitText(string(msg), 60))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func (m dashboardModel) viewEvents() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Flood Events"))
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("no events"))
		b.WriteString("\n")
	}
	for i, ev := range m.filtered {
		line := ev.Timestamp.String() + " - " + ev.Kind
		if i == m.selected && m.focus == focusEvents {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) helpLine() string {
	if m.focus == focusInput {
		return "enter: send • tab/esc: leave input • ctrl+c: quit"
	}
	return "t: actuator • tab: message • ↑/↓: select • d: delete • r: refresh • c: copy • v: about • q: quit"
}
