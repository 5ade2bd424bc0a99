package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Page is one pre-rendered lesson.
type Page struct {
	Title string
	Body  string
}

// PagerModel steps through tutorial lessons one page at a time.
type PagerModel struct {
	pages    []Page
	current  int
	viewport viewport.Model
	styles   Styles
	quitting bool
}

// NewPagerModel creates a pager over pages, starting at start (clamped).
func NewPagerModel(pages []Page, start int, styles Styles) PagerModel {
	m := PagerModel{
		pages:    pages,
		viewport: viewport.New(80, 20),
		styles:   styles,
	}
	m.goTo(start)
	return m
}

// Current returns the index of the visible page.
func (m PagerModel) Current() int {
	return m.current
}

func (m *PagerModel) goTo(i int) {
	if len(m.pages) == 0 {
		m.current = 0
		m.viewport.SetContent("No lessons.")
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.pages) {
		i = len(m.pages) - 1
	}
	m.current = i
	m.viewport.SetContent(m.pages[i].Body)
	m.viewport.GotoTop()
}

// Init initializes the model.
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		// header + footer
		m.viewport.Height = max(msg.Height-2, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "n", "right", "l", "tab":
			m.goTo(m.current + 1)
			return m, nil
		case "p", "left", "h", "shift+tab":
			m.goTo(m.current - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the pager.
func (m PagerModel) View() string {
	if m.quitting {
		return ""
	}

	title := "Tutorial"
	if len(m.pages) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", m.pages[m.current].Title, m.current+1, len(m.pages))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(title))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(m.help()))
	return sb.String()
}

var pagerKeys = [][2]string{
	{"n/→", "next"},
	{"p/←", "previous"},
	{"↑/↓", "scroll"},
	{"q", "quit"},
}

// help renders the key bindings with keys in the foreground color.
func (m PagerModel) help() string {
	parts := make([]string, len(pagerKeys))
	for i, k := range pagerKeys {
		parts[i] = m.styles.FooterKey.Render(k[0]) + " " + k[1]
	}
	return strings.Join(parts, " • ")
}
