// Package notifier delivers schedule reminders through the hamcare tray
// agent. The agent writes a `port|pid|secret` lockfile into its config dir;
// we validate the pid actually belongs to a running agent before posting.
// Any failure means the reminder is skipped; the schedule save that
// triggered it has already succeeded and is never rolled back.
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/hamcare-app/hamcare/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

// ReminderPayload is the webhook body the tray agent expects. At is the
// moment the one-shot alert should fire.
type ReminderPayload struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	At         string `json:"at"` // RFC3339
	DurationMs uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// Schedule asks the agent to post a one-shot reminder at 09:00 local time on
// the target date, with the event labels as the body.
func (n *Notifier) Schedule(date time.Time, events []string) error {
	agentConfigPath, err := GetAgentConfigDir()
	if err != nil {
		return err
	}

	port, secret, err := findAndValidateAgentProcess(filepath.Join(agentConfigPath, constants.NotifierLockfileName))
	if err != nil {
		return err
	}

	at := time.Date(date.Year(), date.Month(), date.Day(),
		constants.ReminderHour, 0, 0, 0, time.Local)

	payload := ReminderPayload{
		ID:         uuid.NewString(),
		Text:       ReminderBody(events),
		At:         at.Format(time.RFC3339),
		DurationMs: constants.NotificationDurationMs,
	}

	return sendReminder(port, secret, payload)
}

// AgentStatus reports whether a valid tray agent is running, without sending
// anything. Used by the doctor command.
func (n *Notifier) AgentStatus() error {
	agentConfigPath, err := GetAgentConfigDir()
	if err != nil {
		return err
	}
	_, _, err = findAndValidateAgentProcess(filepath.Join(agentConfigPath, constants.NotifierLockfileName))
	return err
}

// ReminderBody joins the event labels into the alert text.
func ReminderBody(events []string) string {
	if len(events) == 0 {
		return constants.DefaultReminderBody
	}
	return strings.Join(events, ", ")
}

// GetAgentConfigDir returns the configuration directory used by the tray
// agent.
func GetAgentConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	agentConfigDir := filepath.Join(configDir, constants.AgentAppIdentifier)

	// The agent can relocate its lockfile via settings.json.
	settingsPath := filepath.Join(agentConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return agentConfigDir, nil
}

func findAndValidateAgentProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("hamcare-agent is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("hamcare-agent process not running")
	}

	if !strings.HasPrefix(process.Executable(), constants.AgentExecutablePrefix) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)",
			pid, constants.AgentExecutablePrefix, process.Executable())
	}

	return port, secret, nil
}

func sendReminder(port string, secret string, payload ReminderPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s/reminder", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Hamcare-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("reminder failed with status %d: %s", res.StatusCode, string(body))
}
