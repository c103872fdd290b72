package config

import (
	"fmt"
	"strings"
)

// Config holds the credentials and clone location for a single GitHub
// account. It is loaded once at process start and passed into each component
// constructor; nothing reads it ambiently. The token and username must never
// appear in logs, error text, or persisted git configuration.
type Config struct {
	// GitHubUsername is the account identifier used for authentication.
	GitHubUsername string `yaml:"github_username" json:"github_username"`

	// GitHubToken is the personal access token. Never serialized to output.
	GitHubToken string `yaml:"github_token" json:"github_token"`

	// CloneDirectory is the absolute base directory repositories are cloned
	// into. Tilde and environment variables are expanded during load.
	CloneDirectory string `yaml:"clone_directory" json:"clone_directory"`
}

// MaskedToken returns a fixed-width masked representation of the token for
// display purposes.
func (c *Config) MaskedToken() string {
	if c.GitHubToken == "" {
		return "(not configured)"
	}
	return strings.Repeat("*", 16) + " (configured)"
}

// String renders the configuration for the `mygit config` command with the
// token masked.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Current Configuration:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(&b, "GitHub Username: %s\n", c.GitHubUsername)
	fmt.Fprintf(&b, "GitHub Token: %s\n", c.MaskedToken())
	fmt.Fprintf(&b, "Clone Directory: %s\n", c.CloneDirectory)
	b.WriteString(strings.Repeat("-", 40))
	return b.String()
}
