package consultapi

import "strings"

// DocumentURL resolves an uploaded document path against the uploads host.
// Absolute URLs pass through unchanged and an empty path yields "".
func DocumentURL(base string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + "/" + strings.TrimLeft(path, "/")
}
