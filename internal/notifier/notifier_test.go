package notifier

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// Mock Process
type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int {
	return m.pid
}

func (m *mockProcess) PPid() int {
	return 0
}

func (m *mockProcess) Executable() string {
	return m.executable
}

func TestGetAgentConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) {
		return tempDir, nil
	}

	// Default location.
	expectedDefault := filepath.Join(tempDir, constants.AgentAppIdentifier)
	dir, err := GetAgentConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != expectedDefault {
		t.Errorf("expected %s, got %s", expectedDefault, dir)
	}

	// Lockfile dir overridden via settings.json.
	agentConfigDir := filepath.Join(tempDir, constants.AgentAppIdentifier)
	if err := os.MkdirAll(agentConfigDir, 0755); err != nil {
		t.Fatal(err)
	}

	customDir := "/custom/hamcare/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(agentConfigDir, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = GetAgentConfigDir()
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if dir != customDir {
		t.Errorf("expected %s, got %s", customDir, dir)
	}
}

func TestFindAndValidateAgentProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Lockfile missing.
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	// Two-part format.
	writeLockfile("8080|12345")
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for malformed lockfile")
	}

	// Not a lockfile at all.
	writeLockfile("invalid")
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for malformed lockfile")
	}

	// Empty secret.
	writeLockfile("8080|12345|")
	_, _, err := findAndValidateAgentProcess(lockfilePath)
	if err == nil {
		t.Error("expected error for empty secret")
	}
	if err != nil && !strings.Contains(err.Error(), "secret") {
		t.Errorf("expected error about empty secret, got: %v", err)
	}

	// Empty port.
	writeLockfile("|12345|testsecret123")
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for empty port")
	}

	// Port out of range.
	writeLockfile("99999|12345|testsecret123")
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for port out of range")
	}

	// Process not running.
	writeLockfile("8080|12345|testsecret123")
	findProcessFunc = func(pid int) (ps.Process, error) {
		return nil, nil
	}
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for missing process")
	}

	// Wrong executable.
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "other-app"}, nil
	}
	if _, _, err := findAndValidateAgentProcess(lockfilePath); err == nil {
		t.Error("expected error for wrong executable")
	}

	// Valid agent.
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "hamcare-agent"}, nil
	}
	port, secret, err := findAndValidateAgentProcess(lockfilePath)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if port != "8080" {
		t.Errorf("expected port 8080, got %s", port)
	}
	if secret != "testsecret123" {
		t.Errorf("expected secret testsecret123, got %s", secret)
	}
}

func TestSendReminder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		secret := r.Header.Get("X-Hamcare-Secret")
		if secret != "test-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}

		var payload ReminderPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if payload.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	parts := strings.Split(server.URL, ":")
	port := parts[len(parts)-1]

	if err := sendReminder(port, "test-secret", ReminderPayload{Text: "hello"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := sendReminder(port, "", ReminderPayload{Text: "hello"}); err == nil {
		t.Error("expected error for missing secret")
	}

	if err := sendReminder(port, "wrong-secret", ReminderPayload{Text: "hello"}); err == nil {
		t.Error("expected error for wrong secret")
	}

	if err := sendReminder(port, "test-secret", ReminderPayload{Text: "fail"}); err == nil {
		t.Error("expected error for server failure")
	}
}

func TestReminderBody(t *testing.T) {
	tests := []struct {
		name   string
		events []string
		want   string
	}{
		{"no events", nil, constants.DefaultReminderBody},
		{"single event", []string{"Add Food"}, "Add Food"},
		{"multiple events", []string{"Add Food", "Clean The Cage"}, "Add Food, Clean The Cage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReminderBody(tt.events); got != tt.want {
				t.Errorf("ReminderBody = %q, want %q", got, tt.want)
			}
		})
	}
}
