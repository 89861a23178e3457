package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLog(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "mosaic-test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Info("panel %s opened", "chat-1")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "panel chat-1 opened") {
		t.Errorf("log missing message: %s", data)
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "mosaic-test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	SetDebug(false)

	Debug("hidden message")
	Info("shown message")
	Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden message") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(string(data), "shown message") {
		t.Error("info message missing")
	}
}

func TestSetDebugEnablesDebug(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "mosaic-test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	SetDebug(true)

	Debug("verbose detail")
	Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "verbose detail") {
		t.Error("debug message missing with debug enabled")
	}
}

func TestComponentLogger(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "mosaic-test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}

	log := ComponentLogger("Workspace")
	log.Info("focus changed", "panelID", "chat-2")
	Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "component=Workspace") {
		t.Errorf("component attribute missing: %s", data)
	}
}

func TestInitTwiceIsNoop(t *testing.T) {
	Reset()
	defer Reset()

	first := filepath.Join(t.TempDir(), "first.log")
	second := filepath.Join(t.TempDir(), "second.log")
	if err := Init(first); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Init(second); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	Info("goes to first")
	Close()

	if _, err := os.Stat(second); !os.IsNotExist(err) {
		t.Error("second init should not create a file")
	}
}
