package git

import "fmt"

const host = "github.com"

// CloneURL returns the credential-free display URL for a repository. This is
// the only URL form that may appear in logs, error messages, or the
// repository's persisted remote configuration.
func CloneURL(ref RepoRef) string {
	return fmt.Sprintf("https://%s/%s/%s.git", host, ref.Owner, ref.Name)
}

// AuthCloneURL returns the credential-embedded fetch URL. It exists solely to
// be handed to the git executable as an argument; it must never be logged,
// written to a file, or included in an error message.
func AuthCloneURL(ref RepoRef, username, token string) string {
	return fmt.Sprintf("https://%s:%s@%s/%s/%s.git", username, token, host, ref.Owner, ref.Name)
}
