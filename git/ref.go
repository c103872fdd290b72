package git

import (
	"strings"

	"github.com/grovetools/mygit/errors"
)

// RepoRef is a validated owner/name repository reference. Construct it with
// ParseRef; a zero RepoRef is not meaningful.
type RepoRef struct {
	Owner string
	Name  string
}

// ParseRef validates raw user input of the form "owner/repo". Input with
// anything other than exactly one separator, or with an empty part on either
// side, is rejected.
func ParseRef(input string) (RepoRef, error) {
	trimmed := strings.TrimSpace(input)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoRef{}, errors.InvalidRepoFormat(input)
	}
	return RepoRef{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the canonical "owner/name" form.
func (r RepoRef) String() string {
	return r.Owner + "/" + r.Name
}
