package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// licenseChoice pairs an SPDX identifier with a display name.
type licenseChoice struct {
	ID   string
	Name string
}

// commonLicenses is the curated set offered by the interactive picker.
// Any other identifier can still be passed via --license.
var commonLicenses = []licenseChoice{
	{"MIT", "MIT License"},
	{"Apache-2.0", "Apache License 2.0"},
	{"BSD-2-Clause", "BSD 2-Clause \"Simplified\" License"},
	{"BSD-3-Clause", "BSD 3-Clause \"New\" License"},
	{"GPL-2.0-only", "GNU General Public License v2.0 only"},
	{"GPL-3.0-only", "GNU General Public License v3.0 only"},
	{"GPL-3.0-or-later", "GNU General Public License v3.0 or later"},
	{"LGPL-3.0-or-later", "GNU Lesser General Public License v3.0 or later"},
	{"AGPL-3.0-or-later", "GNU Affero General Public License v3.0 or later"},
	{"MPL-2.0", "Mozilla Public License 2.0"},
	{"ISC", "ISC License"},
	{"Unlicense", "The Unlicense"},
	{"CC0-1.0", "Creative Commons Zero v1.0 Universal"},
	{"CC-BY-4.0", "Creative Commons Attribution 4.0"},
	{"CC-BY-SA-4.0", "Creative Commons Attribution Share Alike 4.0"},
}

// =============================================================================
// LicenseListModel - Interactive license selection
// =============================================================================

// LicenseListModel is the bubbletea model for interactive license selection.
type LicenseListModel struct {
	Choices  []licenseChoice
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewLicenseListModel creates a new license list model.
func NewLicenseListModel(choices []licenseChoice) LicenseListModel {
	return LicenseListModel{
		Choices: choices,
		Cursor:  0,
		Height:  15,
		Offset:  0,
	}
}

func (m LicenseListModel) Init() tea.Cmd {
	return nil
}

func (m LicenseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Choices)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Choices[m.Cursor].ID
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m LicenseListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select License"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Choices) {
		end = len(m.Choices)
	}

	for i := m.Offset; i < end; i++ {
		choice := m.Choices[i]
		cursor := "  "
		line := fmt.Sprintf("%-20s %s", choice.ID, listDimStyle.Render(choice.Name))
		if i == m.Cursor {
			cursor = "▸ "
			b.WriteString(cursor + listSelectedStyle.Render(choice.ID) + strings.Repeat(" ", max(1, 20-len(choice.ID))) + listDimStyle.Render(choice.Name))
		} else {
			b.WriteString(cursor + listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Choices))))

	return b.String()
}

// pickLicense runs the interactive picker and returns the chosen SPDX
// identifier, or "" if the user quit without selecting.
func pickLicense(ctx context.Context) (string, error) {
	m := NewLicenseListModel(commonLicenses)
	p := tea.NewProgram(m, tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}
	fm, ok := finalModel.(LicenseListModel)
	if !ok {
		return "", nil
	}
	return fm.Selected, nil
}
