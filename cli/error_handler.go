package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/mygit/errors"
	"github.com/grovetools/mygit/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle prints a user-friendly message for err based on its error code and
// returns the error unchanged so the caller can exit non-zero.
func (h *ErrorHandler) Handle(err error) error {
	t := theme.DefaultTheme
	mark := t.Error.Render("✗")

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "%s Configuration not found.\n", mark)
		fmt.Fprintf(os.Stderr, "Create %s with your github_username, github_token, and clone_directory.\n",
			t.Path.Render("~/.config/mygit/config.yml"))

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "%s %v\n", mark, stripCode(err))

	case errors.ErrCodeInvalidRepoFormat:
		fmt.Fprintf(os.Stderr, "%s %v\n", mark, stripCode(err))
		fmt.Fprintf(os.Stderr, "Example: mygit clone acme/widgets\n")

	case errors.ErrCodeRepoNotFound:
		fmt.Fprintf(os.Stderr, "%s %v\n", mark, stripCode(err))

	case errors.ErrCodeRemoteUnauthorized:
		fmt.Fprintf(os.Stderr, "%s %v\n", mark, stripCode(err))
		fmt.Fprintf(os.Stderr, "Check the github_token in your configuration.\n")

	default:
		fmt.Fprintf(os.Stderr, "%s Error: %v\n", mark, stripCode(err))
	}

	if h.Verbose {
		if mErr, ok := err.(*errors.MygitError); ok {
			fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", mErr.ToJSON())
		}
	}
	return err
}

// stripCode renders the error without its machine-readable code prefix.
func stripCode(err error) string {
	if mErr, ok := err.(*errors.MygitError); ok {
		return mErr.Message
	}
	return err.Error()
}
