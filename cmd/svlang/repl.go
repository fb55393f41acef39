package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"svlang/internal/diag"
	"svlang/internal/session"
)

// replModel is the interactive eval surface: a scrolling transcript of
// inputs, diagnostics, and values above a single-line prompt.
type replModel struct {
	sess  *session.Session
	input textinput.Model

	transcript []transcriptLine
	seenDiags  int
	width      int
	color      bool
}

type transcriptLine struct {
	kind byte // '>', '=', '!', '#'
	text string
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newReplModel(sess *session.Session, color bool) *replModel {
	ti := textinput.New()
	ti.Prompt = "sv> "
	ti.Focus()
	return &replModel{
		sess:  sess,
		input: ti,
		width: 80,
		color: color,
		transcript: []transcriptLine{
			{kind: '#', text: "svlang eval session; declarations accumulate, expressions print their constant value. Ctrl-D exits."},
		},
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if text != "" {
				m.feed(text)
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) feed(text string) {
	m.transcript = append(m.transcript, transcriptLine{kind: '>', text: text})
	result, bag := m.sess.Eval(text)
	items := bag.Items()
	fresh := items[m.seenDiags:]
	m.seenDiags = len(items)

	hadError := false
	for _, d := range fresh {
		m.transcript = append(m.transcript, transcriptLine{kind: '!', text: d.Code.ID() + ": " + d.Message})
		if d.Severity >= diag.SevError {
			hadError = true
		}
	}
	if hadError {
		return
	}
	if result.IsDecl {
		m.transcript = append(m.transcript, transcriptLine{kind: '#', text: "ok"})
		return
	}
	m.transcript = append(m.transcript, transcriptLine{kind: '=', text: result.Value.String()})
}

func (m *replModel) View() string {
	var sb strings.Builder
	for _, line := range m.transcript {
		prefix, style := "  ", dimStyle
		switch line.kind {
		case '>':
			prefix, style = "sv> ", promptStyle
		case '=':
			prefix, style = "  = ", valueStyle
		case '!':
			prefix, style = "  ! ", errStyle
		}
		for _, wrapped := range wrapToWidth(line.text, m.width-len(prefix)) {
			if m.color {
				sb.WriteString(style.Render(prefix))
			} else {
				sb.WriteString(prefix)
			}
			sb.WriteString(wrapped)
			sb.WriteByte('\n')
			prefix = strings.Repeat(" ", len(prefix))
		}
	}
	sb.WriteString(m.input.View())
	sb.WriteByte('\n')
	return sb.String()
}

// wrapToWidth breaks text at display-column boundaries; escaped
// identifiers and string literals may contain wide runes, so columns are
// counted with runewidth rather than len().
func wrapToWidth(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var cur strings.Builder
	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if col+w > width && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			col = 0
		}
		cur.WriteRune(r)
		col += w
	}
	if cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
