// ABOUTME: XDG Base Directory Specification support for Linux/Unix standards
// ABOUTME: Handles config, data, and cache directories with HOME fallback

package xdg

import (
	"os"
	"path/filepath"
	"strings"
)

const appDir = "codex"

// ConfigHome returns ~/.config/codex or respects XDG_CONFIG_HOME.
func ConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, appDir)
	}
	return filepath.Join(getHome(), ".config", appDir)
}

// DataHome returns ~/.local/share/codex or respects XDG_DATA_HOME.
func DataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, appDir)
	}
	return filepath.Join(getHome(), ".local", "share", appDir)
}

// CacheHome returns ~/.cache/codex or respects XDG_CACHE_HOME.
func CacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appDir)
	}
	return filepath.Join(getHome(), ".cache", appDir)
}

// ExpandPath expands ~ and $XDG_* variables in config paths.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(getHome(), path[2:])
	}

	expand := func(name, fallback string) string {
		v := os.Getenv(name)
		if v == "" {
			v = fallback
		}
		return strings.Replace(path, "$"+name, v, 1)
	}
	switch {
	case strings.HasPrefix(path, "$XDG_DATA_HOME"):
		return expand("XDG_DATA_HOME", filepath.Join(getHome(), ".local", "share"))
	case strings.HasPrefix(path, "$XDG_CONFIG_HOME"):
		return expand("XDG_CONFIG_HOME", filepath.Join(getHome(), ".config"))
	case strings.HasPrefix(path, "$XDG_CACHE_HOME"):
		return expand("XDG_CACHE_HOME", filepath.Join(getHome(), ".cache"))
	}

	return path
}

// getHome returns HOME with a working-directory fallback so the client still
// starts in stripped-down environments.
func getHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
