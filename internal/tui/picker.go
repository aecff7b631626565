// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/stoq-client/internal/service"
	"github.com/MKhiriev/stoq-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusServers focusArea = iota
	focusUsername
	focusPassword
	focusAreas
)

// pickerModel is the Bubble Tea model of the server picker. It keeps the live
// list of announced servers, the credential inputs and the state of the
// current sync attempt. A successful attempt ends the program; a failed one
// is reported in place.
type pickerModel struct {
	ctx  context.Context
	sync service.ClientSyncService

	servers []models.ServerAnnouncement
	idx     int

	inputs []textinput.Model
	focus  focusArea

	syncing bool
	spinner spinner.Model
	errMsg  string

	result     models.SyncResult
	syncedWith models.ServerKey
	quitByUser bool
}

func newPickerModel(ctx context.Context, sync service.ClientSyncService) pickerModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return pickerModel{
		ctx:     ctx,
		sync:    sync,
		inputs:  []textinput.Model{usernameInput, passwordInput},
		spinner: s,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - serverAddedMsg and serverRemovedMsg keep the server list current;
//   - syncDoneMsg ends the program on success or shows the error;
//   - key presses move between the list and the inputs and submit the form.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serverAddedMsg:
		m.addServer(msg.server)
		return m, nil

	case serverRemovedMsg:
		m.removeServer(msg.key)
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeSyncError(msg.err)
			return m, nil
		}
		m.result = msg.result
		m.syncedWith = msg.server
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		m.quitByUser = true
		return m, tea.Quit
	}
	if m.syncing {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		if m.focus == focusServers {
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, m.setFocus(focusServers)
	case key.Matches(msg, keys.tab):
		return m, m.setFocus((m.focus + 1) % focusAreas)
	case key.Matches(msg, keys.backtab):
		return m, m.setFocus((m.focus - 1 + focusAreas) % focusAreas)
	case key.Matches(msg, keys.enter):
		switch m.focus {
		case focusServers:
			if len(m.servers) == 0 {
				return m, nil
			}
			return m, m.setFocus(focusUsername)
		case focusUsername:
			return m, m.setFocus(focusPassword)
		default:
			return m.submit()
		}
	}

	if m.focus == focusServers {
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.servers)-1 {
				m.idx++
			}
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m pickerModel) submit() (tea.Model, tea.Cmd) {
	server, ok := m.selected()
	if !ok {
		m.errMsg = "No server selected"
		return m, m.setFocus(focusServers)
	}

	username := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if username == "" || password == "" {
		m.errMsg = "Username and password are required"
		return m, nil
	}

	m.errMsg = ""
	m.syncing = true
	creds := models.Credentials{Username: username, Password: password}
	return m, tea.Batch(m.spinner.Tick, m.cmdSync(server.Key, creds))
}

func (m pickerModel) cmdSync(server models.ServerKey, creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	sync := m.sync

	return func() tea.Msg {
		result, err := sync.Synchronize(ctx, server, creds)
		return syncDoneMsg{server: server, result: result, err: err}
	}
}

func (m *pickerModel) setFocus(focus focusArea) tea.Cmd {
	m.focus = focus

	var cmd tea.Cmd
	for i := range m.inputs {
		if focusArea(i+1) == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m pickerModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == focusServers {
		return m, nil
	}

	i := int(m.focus) - 1
	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m pickerModel) selected() (models.ServerAnnouncement, bool) {
	if m.idx < 0 || m.idx >= len(m.servers) {
		return models.ServerAnnouncement{}, false
	}
	return m.servers[m.idx], true
}

// addServer inserts or replaces server keeping the list sorted. The cursor
// stays on the server it pointed at.
func (m *pickerModel) addServer(server models.ServerAnnouncement) {
	current, hadCurrent := m.selected()

	i := slices.IndexFunc(m.servers, func(s models.ServerAnnouncement) bool { return s.Key == server.Key })
	if i >= 0 {
		m.servers[i] = server
	} else {
		m.servers = append(m.servers, server)
		slices.SortFunc(m.servers, func(a, b models.ServerAnnouncement) int {
			return compareKeys(a.Key, b.Key)
		})
	}

	if hadCurrent {
		m.idx = slices.IndexFunc(m.servers, func(s models.ServerAnnouncement) bool { return s.Key == current.Key })
	}
}

func (m *pickerModel) removeServer(key models.ServerKey) {
	current, hadCurrent := m.selected()

	m.servers = slices.DeleteFunc(m.servers, func(s models.ServerAnnouncement) bool { return s.Key == key })

	if hadCurrent && current.Key != key {
		m.idx = slices.IndexFunc(m.servers, func(s models.ServerAnnouncement) bool { return s.Key == current.Key })
		return
	}
	m.idx = min(m.idx, max(len(m.servers)-1, 0))
}

func compareKeys(a, b models.ServerKey) int {
	return cmp.Or(strings.Compare(a.Address, b.Address), cmp.Compare(a.Port, b.Port))
}

func (m pickerModel) View() string {
	var b strings.Builder

	if len(m.servers) == 0 {
		b.WriteString("Searching for servers...\n")
	}
	for i, server := range m.servers {
		cursor := "  "
		line := fmt.Sprintf("%-24s %s", fitText(serverName(server), 24), server.Key.HostPort())
		if i == m.idx {
			cursor = "> "
			if m.focus == focusServers {
				line = selectedStyle.Render(line)
			}
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\nUsername │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.syncing {
		if server, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(statusStyle.Render(m.spinner.View() + " Synchronizing with " + server.Key.HostPort() + "..."))
			b.WriteString("\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("STOQ SERVERS", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ tab: next field │ enter: confirm │ esc/q: quit")
}

func serverName(server models.ServerAnnouncement) string {
	if server.Instance != "" {
		return server.Instance
	}
	if server.HostName != "" {
		return server.HostName
	}
	return "-"
}
