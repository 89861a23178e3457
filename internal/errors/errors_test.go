package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestE_BuildsFromParts(t *testing.T) {
	underlying := stderrors.New("disk full")
	err := E(Op("config.SaveLayout"), KindPersist, "writing layout.json", underlying)

	msg := err.Error()
	if !strings.Contains(msg, "config.SaveLayout") {
		t.Errorf("message missing op: %s", msg)
	}
	if !strings.Contains(msg, "writing layout.json") {
		t.Errorf("message missing context: %s", msg)
	}
	if !stderrors.Is(err, underlying) {
		t.Error("expected underlying error to unwrap")
	}
}

func TestE_ContextOnlyBecomesError(t *testing.T) {
	err := E(Op("x"), KindInvalid, "bad input")
	if err.Error() != "x: bad input" {
		t.Errorf("got %q", err.Error())
	}
}

func TestIs_MatchesKind(t *testing.T) {
	err := PanelNotFound("chat-3")
	if !Is(err, KindNotFound) {
		t.Error("expected KindNotFound")
	}
	if Is(err, KindPersist) {
		t.Error("unexpected KindPersist match")
	}

	wrapped := fmt.Errorf("opening: %w", err)
	if !Is(wrapped, KindNotFound) {
		t.Error("expected Kind to survive wrapping")
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(LayoutVersionMismatch(0, 1)); got != KindInvalid {
		t.Errorf("kind = %v, want KindInvalid", got)
	}
	if got := GetKind(stderrors.New("plain")); got != KindUnknown {
		t.Errorf("kind = %v, want KindUnknown", got)
	}
}

func TestKindStrings(t *testing.T) {
	kinds := []Kind{KindUnknown, KindNotFound, KindInvalid, KindUnavailable, KindIO, KindPersist, KindLayout, KindHost}
	for _, k := range kinds {
		if k.String() == "" {
			t.Errorf("kind %d has empty string", k)
		}
	}
}
