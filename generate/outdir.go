package generate

import (
	"path/filepath"
	"strings"

	"github.com/itchio/bridgegen/config"
)

// NeedsHome reports whether an --out value is relative to the home directory.
func NeedsHome(raw string) bool {
	raw = strings.TrimSpace(raw)
	return raw == "~" || strings.HasPrefix(raw, "~/") || strings.HasPrefix(raw, "~"+string(filepath.Separator))
}

// ResolveOutDir turns an --out value into an absolute directory.
//
//   - "" -> <root>/generated
//   - "~", "~/x" -> home, home/x
//   - relative -> <root>/relative
//   - absolute -> unchanged
func ResolveOutDir(raw string, root string, home string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return filepath.Join(root, config.DefaultOut)
	}

	if NeedsHome(raw) {
		if raw == "~" {
			return filepath.Clean(home)
		}
		return filepath.Join(home, raw[2:])
	}

	if filepath.IsAbs(raw) {
		return raw
	}
	return filepath.Join(root, raw)
}
