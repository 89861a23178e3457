package notification

import (
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    string
	}
	err error
}

func (m *mockNotification) notify(title, message, icon string) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    string
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty title",
			message: "Message with empty title",
		},
		{
			name:  "empty message",
			title: "Title",
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 Notification with emoji",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}

			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
		})
	}
}

func TestPanelAttention(t *testing.T) {
	tests := []struct {
		name            string
		panelTitle      string
		message         string
		expectedTitle   string
		expectedMessage string
	}{
		{
			name:            "with message",
			panelTitle:      "Chat (s-42)",
			message:         "response finished",
			expectedTitle:   "Mosaic: Chat (s-42)",
			expectedMessage: "response finished",
		},
		{
			name:            "default message",
			panelTitle:      "Search",
			expectedTitle:   "Mosaic: Search",
			expectedMessage: "requests your attention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := PanelAttention(tt.panelTitle, tt.message); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.expectedTitle {
				t.Errorf("title = %q, want %q", call.title, tt.expectedTitle)
			}
			if call.message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", call.message, tt.expectedMessage)
			}
		})
	}
}
