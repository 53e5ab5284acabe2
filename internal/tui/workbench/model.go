// ============================================================================
// Frege - Language Front End
// ============================================================================
//
// Package:     workbench
// Description: Main Bubbletea model for the Frege workbench
// Author:      msto63 with Claude
// Created:     2025-08-21
// License:     MIT
// ============================================================================

package workbench

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	frege "github.com/msto63/frege"
	"github.com/msto63/frege/internal/history"
	"github.com/msto63/frege/parser"
)

// recentResultLimit is how many earlier results are replayed on startup
const recentResultLimit = 20

// storeTimeout bounds every history store operation
const storeTimeout = 5 * time.Second

// Model is the main Bubbletea model for the workbench
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	continuing bool // collecting a multi-line input
	err        error

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Parse state
	engine    *frege.Engine
	sessionID string
	results   []ResultEntry
	pending   string // buffered lines of an incomplete input

	// Counters for the status bar
	defs     int
	externs  int
	exprs    int
	failures int

	// Input history
	inputHistory []string
	historyIndex int
	currentInput string

	// Persistence
	store history.Store

	// View options
	showPositions bool
	showTokens    bool
}

// Config holds workbench configuration
type Config struct {
	Engine *frege.Engine
	Store  history.Store // nil disables result persistence
}

// New creates a new workbench model
func New(cfg Config) Model {
	// Setup textarea
	ta := textarea.New()
	ta.Placeholder = "def fib(n) ... or any expression (Enter to parse)"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = FocusedInputStyle
	ta.BlurredStyle.Base = InputStyle

	engine := cfg.Engine
	if engine == nil {
		// Default options cannot fail validation
		engine, _ = frege.NewEngine()
	}

	sessionID := uuid.NewString()

	return Model{
		textarea:      ta,
		engine:        engine,
		store:         cfg.Store,
		sessionID:     sessionID,
		inputHistory:  LoadInputHistory(),
		historyIndex:  -1, // -1 bedeutet: keine Historie-Navigation aktiv
		showPositions: LoadShowPositions(),
		results: []ResultEntry{
			{
				System:    fmt.Sprintf("New session %s - enter def, extern or an expression", sessionID[:8]),
				Timestamp: time.Now(),
			},
		},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textarea.Blink,
		tea.EnterAltScreen,
	}
	if m.store != nil {
		cmds = append(cmds, m.loadRecentResults)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 8 // Input + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewportContent()

	case historyLoadedMsg:
		if msg.err == nil && len(msg.entries) > 0 {
			// List liefert neueste zuerst, Anzeige ist chronologisch
			var recalled []ResultEntry
			for i := len(msg.entries) - 1; i >= 0; i-- {
				e := msg.entries[i]
				// Merge entries that came out of the same input
				if n := len(recalled); n > 0 && recalled[n-1].Source == e.Source {
					appendStoreEntry(&recalled[n-1], e)
					continue
				}
				entry := ResultEntry{Source: e.Source, Timestamp: e.CreatedAt}
				appendStoreEntry(&entry, e)
				recalled = append(recalled, entry)
			}
			m.results = append(recalled, m.results...)
			m.updateViewportContent()
			m.viewport.GotoBottom()
		}

	case historySavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.appendSystem("History write failed: " + msg.err.Error())
		}

	case statsMsg:
		if msg.err != nil {
			m.appendSystem("Statistics unavailable: " + msg.err.Error())
		} else {
			m.appendSystem(fmt.Sprintf("History: %v entries, %v sessions, %v failed",
				msg.stats["total_entries"], msg.stats["total_sessions"], msg.stats["failed_entries"]))
		}
	}

	// Update components
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global shortcuts
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyCtrlL:
		// Clear results, counters stay
		m.results = nil
		m.appendSystem("Results cleared")
		return m, nil
	}

	// Check for Ctrl+P (toggle position display)
	if msg.String() == "ctrl+p" {
		m.showPositions = !m.showPositions
		_ = SaveShowPositions(m.showPositions)
		if m.showPositions {
			m.appendSystem("Position display on")
		} else {
			m.appendSystem("Position display off")
		}
		return m, nil
	}

	// Check for Ctrl+K (toggle token view)
	if msg.String() == "ctrl+k" {
		m.showTokens = !m.showTokens
		if m.showTokens {
			m.appendSystem("Token view on")
		} else {
			m.appendSystem("Token view off")
		}
		return m, nil
	}

	// Check for Ctrl+T (history statistics)
	if msg.String() == "ctrl+t" {
		if m.store == nil {
			m.appendSystem("History persistence is disabled")
			return m, nil
		}
		return m, m.loadStatistics
	}

	switch msg.Type {
	case tea.KeyEsc:
		// Abandon a half-finished multi-line input
		if m.continuing {
			m.pending = ""
			m.continuing = false
			m.textarea.Reset()
			m.appendSystem("Pending input discarded")
		}
		return m, nil

	case tea.KeyEnter:
		return m.handleSubmit()

	case tea.KeyUp:
		// Nach oben in der Historie navigieren
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.textarea.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textarea.SetValue(m.inputHistory[m.historyIndex])
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		// Nach unten in der Historie navigieren
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textarea.SetValue(m.inputHistory[m.historyIndex])
			} else {
				// Zurück zur aktuellen Eingabe
				m.historyIndex = -1
				m.textarea.SetValue(m.currentInput)
			}
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	// Pass other keys to textarea
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// handleSubmit parses the collected input and records the outcome
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" && m.pending == "" {
		return m, nil
	}

	source := input
	if m.pending != "" {
		source = m.pending + "\n" + input
	}

	start := time.Now()
	program, err := m.engine.ParseString(context.Background(), source)
	duration := time.Since(start)

	if err != nil && frege.IsIncomplete(err) {
		// Eingabe ist noch unvollständig, weitere Zeilen abwarten
		m.pending = source
		m.continuing = true
		m.textarea.Reset()
		m.updateViewportContent()
		return m, nil
	}

	m.pending = ""
	m.continuing = false
	m.rememberInput(source)
	m.textarea.Reset()

	entry := ResultEntry{
		Source:    source,
		Timestamp: time.Now(),
		Duration:  duration,
	}

	if program == nil {
		entry.Errors = append(entry.Errors, err.Error())
	} else {
		for _, item := range program.Items {
			pos := item.Pos()
			entry.Items = append(entry.Items, ItemResult{
				Kind:     item.Kind.String(),
				Name:     item.Name(),
				Rendered: item.String(),
				Line:     pos.Line,
				Column:   pos.Column,
			})
			switch item.Kind {
			case frege.ItemDefinition:
				m.defs++
			case frege.ItemExtern:
				m.externs++
			default:
				m.exprs++
			}
		}
		for _, perr := range program.Errors {
			entry.Errors = append(entry.Errors, renderError(perr))
		}
	}
	m.failures += len(entry.Errors)

	m.results = append(m.results, entry)
	m.updateViewportContent()
	m.viewport.GotoBottom()

	if m.store != nil {
		return m, m.saveResults(entry)
	}
	return m, nil
}

// rememberInput adds the input to the recall history
func (m *Model) rememberInput(input string) {
	// Nur aufnehmen wenn nicht identisch mit letztem Eintrag
	if len(m.inputHistory) == 0 || m.inputHistory[len(m.inputHistory)-1] != input {
		m.inputHistory = append(m.inputHistory, input)
		if len(m.inputHistory) > 100 {
			m.inputHistory = m.inputHistory[len(m.inputHistory)-100:]
		}
		_ = SaveInputHistory(m.inputHistory)
	}
	m.historyIndex = -1
	m.currentInput = ""
}

// appendSystem adds a plain notice to the result list
func (m *Model) appendSystem(text string) {
	m.results = append(m.results, ResultEntry{
		System:    text,
		Timestamp: time.Now(),
	})
	m.updateViewportContent()
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading workbench..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderResultArea())
	b.WriteString("\n")

	b.WriteString(m.renderInputArea())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with logo and store status
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	var status string
	if m.store != nil {
		status = StatusOnStyle.Render("history on")
	} else {
		status = StatusOffStyle.Render("history off")
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		status,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderResultArea renders the main result viewport
func (m Model) renderResultArea() string {
	style := ResultPanelStyle.Width(m.width - 2).Height(m.viewport.Height + 2)
	return style.Render(m.viewport.View())
}

// renderInputArea renders the input textarea
func (m Model) renderInputArea() string {
	input := m.textarea.View()
	if m.continuing {
		input = ContinuationStyle.Render(IconPending+"awaiting more input (Esc discards)") + "\n" + input
	}

	return FocusedInputStyle.Width(m.width - 2).Render(input)
}

// renderStatusBar renders the status bar with counters and session info
func (m Model) renderStatusBar() string {
	leftPart := HelpDescStyle.Render(fmt.Sprintf("%d def · %d extern · %d expr · %d errors",
		m.defs, m.externs, m.exprs, m.failures))
	centerPart := HelpDescStyle.Render("v" + Version)
	rightPart := HelpDescStyle.Render("session " + m.sessionID[:8])

	// Calculate padding
	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	totalLen := leftLen + centerLen + rightLen
	availableSpace := m.width - totalLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "parse"),
		RenderKeyHint("↑/↓", "history"),
		RenderKeyHint("Ctrl+P", "positions"),
		RenderKeyHint("Ctrl+K", "tokens"),
		RenderKeyHint("Ctrl+T", "stats"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Ctrl+C", "quit"),
	}
	if m.continuing {
		items = append(items, RenderKeyHint("Esc", "discard"))
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent updates the viewport with current results
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, entry := range m.results {
		if entry.System != "" {
			content.WriteString(SystemStyle.Render(entry.System))
			content.WriteString("\n\n")
			continue
		}

		// Source bubble with timestamp and parse duration
		timeStr := entry.Timestamp.Format("15:04")
		if entry.Duration > 0 {
			timeStr += fmt.Sprintf(" (%.2fms)", float64(entry.Duration.Microseconds())/1000.0)
		}
		content.WriteString(RenderSourceLabel() + "  " + HelpDescStyle.Render(timeStr))
		content.WriteString("\n")
		content.WriteString(SourceStyle.Width(m.width - 6).Render(entry.Source))
		content.WriteString("\n\n")

		if m.showTokens {
			// Token view shows the raw stream instead of the items
			content.WriteString(ResultStyle.Width(m.width - 6).Render(renderTokens(entry.Source)))
			content.WriteString("\n\n")
		} else {
			// One bubble per parsed item
			for _, item := range entry.Items {
				label := RenderKindLabel(item.Kind, item.Name)
				if m.showPositions && item.Line > 0 {
					label += "  " + PositionStyle.Render(fmt.Sprintf("@ %d:%d", item.Line, item.Column))
				}
				content.WriteString(label)
				content.WriteString("\n")
				content.WriteString(ResultStyle.Width(m.width - 6).Render(item.Rendered))
				content.WriteString("\n\n")
			}
		}

		// Errors
		for _, msg := range entry.Errors {
			content.WriteString(ErrorStyle.Render(IconError + msg))
			content.WriteString("\n\n")
		}
	}

	// Show the pending multi-line input
	if m.continuing && m.pending != "" {
		content.WriteString(ContinuationStyle.Render(IconPending + m.pending))
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// renderTokens lexes the source again and formats the token stream
func renderTokens(source string) string {
	tokens, err := parser.NewLexerFromString(source).Tokenize()
	if err != nil {
		return "token stream unavailable: " + err.Error()
	}

	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteString("\n")
		}
		value := tok.Value
		if value == "" {
			value = "-"
		}
		b.WriteString(fmt.Sprintf("%-12s %-16s %d:%d", tok.Type, value, tok.Line, tok.Column))
	}
	return b.String()
}

// loadRecentResults loads earlier results from the store
func (m Model) loadRecentResults() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	entries, err := m.store.List(ctx, recentResultLimit, 0)
	return historyLoadedMsg{entries: entries, err: err}
}

// loadStatistics loads store statistics
func (m Model) loadStatistics() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	stats, err := m.store.Statistics(ctx)
	return statsMsg{stats: stats, err: err}
}

// saveResults writes the outcome of one input to the store
func (m Model) saveResults(entry ResultEntry) tea.Cmd {
	store := m.store
	sessionID := m.sessionID

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()

		for _, item := range entry.Items {
			rec := &history.Entry{
				SessionID: sessionID,
				Source:    entry.Source,
				Kind:      item.Kind,
				Name:      item.Name,
				Rendered:  item.Rendered,
				Valid:     true,
			}
			if err := store.Append(ctx, rec); err != nil {
				return historySavedMsg{err: err}
			}
		}
		for _, msg := range entry.Errors {
			rec := &history.Entry{
				SessionID: sessionID,
				Source:    entry.Source,
				Kind:      frege.ItemInvalid.String(),
				Valid:     false,
				ErrorText: msg,
			}
			if err := store.Append(ctx, rec); err != nil {
				return historySavedMsg{err: err}
			}
		}
		return historySavedMsg{}
	}
}

// Run starts the workbench TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// appendStoreEntry folds one store entry into a result entry
func appendStoreEntry(entry *ResultEntry, e *history.Entry) {
	if e.Valid {
		entry.Items = append(entry.Items, ItemResult{
			Kind:     e.Kind,
			Name:     e.Name,
			Rendered: e.Rendered,
		})
	} else {
		entry.Errors = append(entry.Errors, e.ErrorText)
	}
}

// renderError prefers the bare parse error over its wrapped form
func renderError(err error) string {
	if pe, ok := frege.AsParseError(err); ok {
		return pe.Error()
	}
	return err.Error()
}
