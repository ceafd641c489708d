package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type page int

const (
	planPage page = iota
	stackPage
)

func (p page) title() string {
	if p == stackPage {
		return "Technology Stack"
	}
	return "Migration Plan"
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// chrome is the number of lines taken by the header and footer
const chrome = 2

// ViewerModel pages through the rendered plan and technology stack
type ViewerModel struct {
	viewport viewport.Model
	pages    [2]string
	page     page
	ready    bool
	width    int
	height   int
}

// NewViewerModel creates a viewer for pre-rendered plan and stack text
func NewViewerModel(planText, stackText string) ViewerModel {
	return ViewerModel{
		pages: [2]string{planText, stackText},
		page:  planPage,
	}
}

// Init implements tea.Model
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := msg.Height - chrome
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.viewport.SetContent(m.pages[m.page])
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.page = (m.page + 1) % 2
			if m.ready {
				m.viewport.SetContent(m.pages[m.page])
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m ViewerModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("Strive Tech · %s", m.page.title()))
	footer := footerStyle.Render(fmt.Sprintf("%3.f%%  tab: switch page  ↑/↓ pgup/pgdn: scroll  q: quit", m.viewport.ScrollPercent()*100))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(footer)
	return b.String()
}
