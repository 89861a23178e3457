package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ChatMessage is one transcript entry.
type ChatMessage struct {
	Role    string // "user" or "assistant"
	Content string
}

// ChatPanel shows a scrollable conversation transcript for one session.
type ChatPanel struct {
	basePanel
	viewport  viewport.Model
	messages  []ChatMessage
	sessionID string
}

// NewChatPanel creates a chat panel bound to a session id (may be empty for
// an unbound panel).
func NewChatPanel(id, sessionID string) *ChatPanel {
	vp := viewport.New()
	title := "Chat"
	if sessionID != "" {
		title = fmt.Sprintf("Chat (%s)", sessionID)
	}
	return &ChatPanel{
		basePanel: basePanel{id: id, typ: "chat", title: title},
		viewport:  vp,
		sessionID: sessionID,
	}
}

// SessionID returns the bound session, or "".
func (c *ChatPanel) SessionID() string { return c.sessionID }

// Rebind switches the panel to a different session and clears the transcript.
func (c *ChatPanel) Rebind(sessionID string) {
	c.sessionID = sessionID
	c.title = "Chat"
	if sessionID != "" {
		c.title = fmt.Sprintf("Chat (%s)", sessionID)
	}
	c.messages = nil
	c.refresh()
}

// Append adds a message to the transcript and scrolls to it.
func (c *ChatPanel) Append(msg ChatMessage) {
	c.messages = append(c.messages, msg)
	c.refresh()
}

// Messages returns the transcript.
func (c *ChatPanel) Messages() []ChatMessage {
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c *ChatPanel) SetSize(width, height int) {
	c.basePanel.SetSize(width, height)
	c.viewport.SetWidth(width)
	c.viewport.SetHeight(height)
	c.refresh()
}

func (c *ChatPanel) refresh() {
	wrapWidth := c.innerWidth()
	var sb strings.Builder
	for i, m := range c.messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		label := lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render("assistant")
		if m.Role == "user" {
			label = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render("you")
		}
		sb.WriteString(label)
		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Width(wrapWidth).Render(m.Content))
		sb.WriteString("\n")
	}
	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func (c *ChatPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

func (c *ChatPanel) View() string {
	if len(c.messages) == 0 {
		hint := "No messages yet"
		if c.sessionID != "" {
			hint = fmt.Sprintf("No messages in %s yet", c.sessionID)
		}
		return EmptyHintStyle.Render(hint)
	}
	return c.viewport.View()
}
