package git

import "strings"

// Redact replaces every literal occurrence of each secret in text with "***".
// Empty secrets are skipped. Diagnostic text from the git executable passes
// through here before it can reach an error message or a log line, even when
// git echoes the full fetch URL back in its own output.
func Redact(text string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		text = strings.ReplaceAll(text, secret, "***")
	}
	return text
}
