// Package browse implements an interactive picker over a resolved
// environment.
package browse

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/zenv/dotenv"
	"github.com/ardnew/zenv/log"
)

const (
	queryPrompt   = "➜ "
	defaultWidth  = 80
	defaultHeight = 20
	// chrome is the number of lines drawn around the entry list.
	chrome = 2
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// model is the Bubble Tea model for the picker.
type model struct {
	input    textinput.Model
	env      dotenv.Mapping
	keys     []string
	matches  fuzzy.Matches // keys matching the query, best first
	cursor   int           // index into matches
	offset   int           // first visible match
	width    int
	height   int
	chosen   string
	quitting bool
}

// Run shows the entries of env and lets the user filter them by fuzzy
// matching their keys. It returns the key the user picked with Enter, or
// false if the user quit without picking one.
//
// The picker is drawn on out and reads keys from in. Nil selects the
// terminal defaults of [tea.NewProgram].
func Run(
	ctx context.Context,
	env dotenv.Mapping,
	in io.Reader,
	out io.Writer,
) (string, bool, error) {
	log.TraceContext(ctx, "browse start", slog.Int("entries", len(env)))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}

	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	p := tea.NewProgram(newModel(env), opts...)

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, ok := final.(model)
	if !ok || m.chosen == "" {
		return "", false, nil
	}

	log.TraceContext(ctx, "browse chose", slog.String("key", m.chosen))

	return m.chosen, true, nil
}

func newModel(env dotenv.Mapping) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(queryPrompt)
	ti.Placeholder = "filter keys"
	ti.Focus()
	ti.Width = defaultWidth - len(queryPrompt)

	m := model{
		input:  ti,
		env:    env,
		keys:   env.Keys(),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.refresh()

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - len(queryPrompt) - 2
		m.scroll()

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) == 0 {
			return m, nil
		}

		m.chosen = m.matches[m.cursor].Str
		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP:
		m.move(-1)

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN:
		m.move(+1)

		return m, nil

	case tea.KeyPgUp:
		m.move(-m.rows())

		return m, nil

	case tea.KeyPgDown:
		m.move(+m.rows())

		return m, nil
	}

	var cmd tea.Cmd

	query := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != query {
		m.refresh()
	}

	return m, cmd
}

// refresh recomputes the matches for the current query and resets the
// selection to the best match.
func (m *model) refresh() {
	query := strings.TrimSpace(m.input.Value())

	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.keys))
		for i, k := range m.keys {
			m.matches[i] = fuzzy.Match{Str: k, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.keys)
	}

	m.cursor, m.offset = 0, 0
}

func (m *model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}

	m.cursor = max(0, min(len(m.matches)-1, m.cursor+delta))
	m.scroll()
}

// scroll keeps the cursor inside the visible window.
func (m *model) scroll() {
	rows := m.rows()

	switch {
	case m.cursor < m.offset:
		m.offset = m.cursor
	case m.cursor >= m.offset+rows:
		m.offset = m.cursor - rows + 1
	}
}

// rows returns how many entries fit on screen.
func (m model) rows() int {
	return max(1, m.height-chrome)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	end := min(len(m.matches), m.offset+m.rows())
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderEntry(m.matches[i], i == m.cursor))
		b.WriteString("\n")
	}

	hint := fmt.Sprintf("%s/%d",
		lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(len(m.matches))),
		len(m.keys))
	b.WriteString(hintStyle.Render(hint))

	return b.String()
}

// renderEntry renders one KEY=value row with the matched characters of the
// key highlighted. Values are cut to the terminal width.
func (m model) renderEntry(match fuzzy.Match, selected bool) string {
	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		switch {
		case selected:
			b.WriteString(selectedStyle.Render(string(r)))
		case matched[i]:
			b.WriteString(highlightStyle.Render(string(r)))
		default:
			b.WriteString(keyStyle.Render(string(r)))
		}
	}

	b.WriteString(hintStyle.Render("="))

	room := m.width - lipgloss.Width(match.Str) - 1
	b.WriteString(valueStyle.Render(truncate(m.env[match.Str], room)))

	return b.String()
}

// truncate shortens s to at most width cells, marking the cut with an
// ellipsis. Newlines are shown escaped.
func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", `\n`)

	if width <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= width {
		return s
	}

	const ellipsis = "…"

	var b strings.Builder

	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) >= width {
			break
		}

		b.WriteRune(r)
	}

	return b.String() + ellipsis
}
