package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/mosaicterm/mosaic/internal/keys"
)

// InputPanel is the shared message composer.
type InputPanel struct {
	basePanel
	input textarea.Model
}

func NewInputPanel(id string) *InputPanel {
	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.SetHeight(TextareaHeight)
	return &InputPanel{
		basePanel: basePanel{id: id, typ: "input", title: "Input"},
		input:     ti,
	}
}

// Value returns the current draft.
func (p *InputPanel) Value() string { return p.input.Value() }

// Clear empties the draft.
func (p *InputPanel) Clear() { p.input.Reset() }

func (p *InputPanel) SetSize(width, height int) {
	p.basePanel.SetSize(width, height)
	p.input.SetWidth(width)
	if height >= 1 {
		p.input.SetHeight(height)
	}
}

func (p *InputPanel) SetFocused(focused bool) {
	p.basePanel.SetFocused(focused)
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

func (p *InputPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *InputPanel) View() string {
	return p.input.View()
}

// SessionsPanel lists the known sessions with a movable selection.
type SessionsPanel struct {
	basePanel
	sessions []string
	selected int
	offset   int
}

func NewSessionsPanel(id string) *SessionsPanel {
	return &SessionsPanel{
		basePanel: basePanel{id: id, typ: "sessions", title: "Sessions"},
	}
}

// SetSessions replaces the session list, clamping the selection.
func (p *SessionsPanel) SetSessions(ids []string) {
	p.sessions = ids
	if p.selected >= len(ids) {
		p.selected = len(ids) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// Selected returns the highlighted session id, or "".
func (p *SessionsPanel) Selected() string {
	if p.selected < 0 || p.selected >= len(p.sessions) {
		return ""
	}
	return p.sessions[p.selected]
}

func (p *SessionsPanel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case keys.Up:
		if p.selected > 0 {
			p.selected--
		}
	case keys.Down:
		if p.selected < len(p.sessions)-1 {
			p.selected++
		}
	}
	p.scrollToSelection()
	return nil
}

func (p *SessionsPanel) scrollToSelection() {
	if p.height <= 0 {
		return
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+p.height {
		p.offset = p.selected - p.height + 1
	}
}

func (p *SessionsPanel) View() string {
	if len(p.sessions) == 0 {
		return EmptyHintStyle.Render("No sessions")
	}
	var sb strings.Builder
	end := len(p.sessions)
	if p.height > 0 && p.offset+p.height < end {
		end = p.offset + p.height
	}
	for i := p.offset; i < end; i++ {
		line := Truncate(p.sessions[i], p.innerWidth()-2)
		if i == p.selected {
			sb.WriteString(TabActiveStyle.Render(line))
		} else {
			sb.WriteString("  " + line)
		}
		if i != end-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// SearchPanel is a query box over a scrollable result list.
type SearchPanel struct {
	basePanel
	input    textinput.Model
	results  viewport.Model
	matches  []string
	searcher func(query string) []string
}

// NewSearchPanel creates a search panel. searcher may be nil, in which case
// every query yields no results.
func NewSearchPanel(id string, searcher func(query string) []string) *SearchPanel {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = SearchInputCharLimit
	return &SearchPanel{
		basePanel: basePanel{id: id, typ: "search", title: "Search"},
		input:     ti,
		results:   viewport.New(),
		searcher:  searcher,
	}
}

func (p *SearchPanel) SetSize(width, height int) {
	p.basePanel.SetSize(width, height)
	p.input.SetWidth(width)
	p.results.SetWidth(width)
	if height > 1 {
		p.results.SetHeight(height - 1)
	}
}

func (p *SearchPanel) SetFocused(focused bool) {
	p.basePanel.SetFocused(focused)
	if focused {
		p.input.Focus()
	} else {
		p.input.Blur()
	}
}

func (p *SearchPanel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Enter {
		p.runSearch()
		return nil
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

func (p *SearchPanel) runSearch() {
	p.matches = nil
	if p.searcher != nil && p.input.Value() != "" {
		p.matches = p.searcher(p.input.Value())
	}
	p.results.SetContent(strings.Join(p.matches, "\n"))
	p.results.GotoTop()
}

func (p *SearchPanel) View() string {
	body := EmptyHintStyle.Render("No results")
	if len(p.matches) > 0 {
		body = p.results.View()
	}
	return p.input.View() + "\n" + body
}

// EmptyPanel is the placeholder shown when nothing else is open.
type EmptyPanel struct {
	basePanel
}

func NewEmptyPanel(id string) *EmptyPanel {
	return &EmptyPanel{basePanel: basePanel{id: id, typ: "empty", title: "Empty"}}
}

func (p *EmptyPanel) Update(tea.Msg) tea.Cmd { return nil }

func (p *EmptyPanel) View() string {
	return EmptyHintStyle.Render(fmt.Sprintf("Nothing open. Press %s to open a chat.", "ctrl+o"))
}
