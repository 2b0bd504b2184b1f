package nvm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var userHomeDir = os.UserHomeDir

// ResolveRoot returns the nvm installation root. configured is the value of
// --nvm-dir or $NVM_DIR; when blank the conventional ~/.nvm is used. The
// path is not checked for existence.
func ResolveRoot(configured string) (string, error) {
	if trimmed := strings.TrimSpace(configured); trimmed != "" {
		return expandHome(trimmed)
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".nvm"), nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// DefaultAlias reads the target of nvm's "default" alias. It returns an
// empty string when the alias is absent or unreadable.
func DefaultAlias(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "alias", "default"))
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}
