package locate

import "strings"

// QuotePath wraps path in double quotes when it contains a space.
// Quotes already present in path are left as they are.
func QuotePath(path string) string {
	if !strings.Contains(path, " ") {
		return path
	}
	return `"` + path + `"`
}
