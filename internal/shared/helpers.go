// Package shared provides common utility functions used across multiple
// packages in the resmap codebase.
package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ResolvePath joins a relative path onto base and cleans it. Absolute
// and empty paths are returned cleaned or untouched.
func ResolvePath(base string, path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) || base == "" {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

// CanonicalPath returns an absolute path with symlinks evaluated. Paths
// that do not exist are returned absolute and cleaned.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return abs, nil
		}
		return "", err
	}
	return resolved, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ParseResourceID accepts decimal or 0x-prefixed hex ids. Values above
// the int32 range up to 0xffffffff wrap, matching how generated ids are
// printed.
func ParseResourceID(value string) (int32, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource id is empty")
	}
	if strings.HasPrefix(trimmed, "-") {
		parsed, err := strconv.ParseInt(trimmed, 0, 32)
		if err != nil {
			return 0, invalidResourceID(value, err)
		}
		return int32(parsed), nil
	}
	parsed, err := strconv.ParseUint(trimmed, 0, 32)
	if err != nil {
		return 0, invalidResourceID(value, err)
	}
	return int32(uint32(parsed)), nil
}

func invalidResourceID(value string, err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid resource id: " + value).
		WithCause(err)
}
