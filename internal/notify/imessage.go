package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// IMessage sends through the macOS Messages app via osascript. On any other
// platform, or without a recipient, Send fails immediately so the chain
// falls through to the next transport.
type IMessage struct {
	Recipient string
}

const imessageScript = `
tell application "Messages"
  try
    set targetService to 1st service whose service type = iMessage
    set targetBuddy to buddy "%s" of targetService
    send "%s" to targetBuddy
    return "OK"
  on error errMsg
    return "ERR:" & errMsg
  end try
end tell
`

func (m *IMessage) Send(ctx context.Context, message string) error {
	if m.Recipient == "" || runtime.GOOS != "darwin" {
		return fmt.Errorf("imessage unavailable")
	}

	script := fmt.Sprintf(imessageScript, escapeAppleScript(m.Recipient), escapeAppleScript(message))

	ctx, cancel := context.WithTimeout(ctx, 8*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return fmt.Errorf("osascript: %w", err)
	}
	if strings.TrimSpace(string(out)) != "OK" {
		return fmt.Errorf("imessage send failed: %s", strings.TrimSpace(string(out)))
	}
	return nil
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
