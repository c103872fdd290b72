package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *MygitError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *MygitError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// InvalidRepoFormat creates an invalid repository format error
func InvalidRepoFormat(input string) *MygitError {
	return New(ErrCodeInvalidRepoFormat,
		fmt.Sprintf("invalid repository format: %q (use 'owner/repo')", input)).
		WithDetail("input", input)
}

// DirRemoveFailed creates a directory removal failure error
func DirRemoveFailed(path string, err error) *MygitError {
	return Wrap(err, ErrCodeDirRemoveFailed, fmt.Sprintf("failed to remove directory: %s", path)).
		WithDetail("path", path)
}

// CloneFailed creates a clone failure error. The diagnostic text must already
// be credential-redacted by the caller.
func CloneFailed(repo, diagnostic string) *MygitError {
	return New(ErrCodeCloneFailed, fmt.Sprintf("failed to clone %s: %s", repo, diagnostic)).
		WithDetail("repository", repo)
}

// PullFailed creates a pull failure error. The diagnostic text must already
// be credential-redacted by the caller.
func PullFailed(repo, diagnostic string) *MygitError {
	return New(ErrCodePullFailed, fmt.Sprintf("failed to pull %s: %s", repo, diagnostic)).
		WithDetail("repository", repo)
}

// RepoNotFound creates an error for operations on a repository that has not
// been cloned yet.
func RepoNotFound(repo, path string) *MygitError {
	return New(ErrCodeRepoNotFound,
		fmt.Sprintf("repository not found at %s (clone it first with: mygit clone %s)", path, repo)).
		WithDetail("repository", repo).
		WithDetail("path", path)
}

// ScriptNotFound creates a script not found error
func ScriptNotFound(path string) *MygitError {
	return New(ErrCodeScriptNotFound, fmt.Sprintf("script not found: %s", path)).
		WithDetail("path", path)
}

// ScriptNotAFile creates an error for a script path that is not a regular file
func ScriptNotAFile(path string) *MygitError {
	return New(ErrCodeScriptNotAFile, fmt.Sprintf("not a file: %s", path)).
		WithDetail("path", path)
}

// PathTraversal creates a path traversal error
func PathTraversal(requested string) *MygitError {
	return New(ErrCodePathTraversal,
		"script path traversal detected, operation cancelled").
		WithDetail("requested", requested)
}

// InvalidScriptPath creates an invalid script path error
func InvalidScriptPath(requested string, err error) *MygitError {
	return Wrap(err, ErrCodeInvalidScriptPath, fmt.Sprintf("invalid script path: %s", requested)).
		WithDetail("requested", requested)
}

// ExecLaunchFailed creates an error for a script process that could not be started
func ExecLaunchFailed(script string, err error) *MygitError {
	return Wrap(err, ErrCodeExecLaunchFailed, fmt.Sprintf("failed to execute script: %s", script)).
		WithDetail("script", script)
}

// RemoteUnauthorized creates an error for a rejected API token
func RemoteUnauthorized() *MygitError {
	return New(ErrCodeRemoteUnauthorized, "authentication failed: invalid credentials")
}

// RemoteForbidden creates an error for an API request the token may not perform
func RemoteForbidden() *MygitError {
	return New(ErrCodeRemoteForbidden, "access forbidden: token lacks required permissions")
}

// RemoteListFailed creates a generic remote listing failure error
func RemoteListFailed(page int, err error) *MygitError {
	return Wrap(err, ErrCodeRemoteListFailed, fmt.Sprintf("failed to list repositories (page %d)", page)).
		WithDetail("page", page)
}
