package pathutil

import (
	"path/filepath"
	"strings"
)

// Canonical returns the absolute path with symbolic links resolved.
// If symlink evaluation fails (e.g., the path does not exist yet), it falls
// back to the cleaned absolute path.
func Canonical(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	canonicalPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return absPath, nil
	}
	return canonicalPath, nil
}

// Contains reports whether child lies strictly inside root. Both paths must
// already be canonical; the comparison is textual, with a separator guard so
// that /tmp/repo-evil is not treated as inside /tmp/repo.
func Contains(root, child string) bool {
	root = filepath.Clean(root)
	child = filepath.Clean(child)
	if root == child {
		return false
	}
	return strings.HasPrefix(child, root+string(filepath.Separator))
}
