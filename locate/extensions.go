package locate

import "strings"

// MaxExtensions is the number of fallback extensions a resolution considers.
// Entries past this bound are ignored.
const MaxExtensions = 30

// ExtensionDelimiter separates entries in PATHEXT-style lists.
const ExtensionDelimiter = ';'

// ParseList splits raw at every occurrence of delim.
//
// Empty segments are kept, so the result always has one more entry than
// there are delimiters in raw, even when raw is empty. Segments are not
// trimmed.
func ParseList(raw string, delim rune) []string {
	return strings.Split(raw, string(delim))
}

// LimitExtensions returns at most MaxExtensions leading entries of exts.
func LimitExtensions(exts []string) []string {
	if len(exts) > MaxExtensions {
		return exts[:MaxExtensions]
	}
	return exts
}

// HasExtension reports whether the last path element of name carries an
// extension.
func HasExtension(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return false
	}
	return strings.LastIndexAny(name, `:\/`) < i
}

// WithExtension appends ext to name unless name already has an extension
// or ext is empty.
func WithExtension(name, ext string) string {
	if ext == "" || HasExtension(name) {
		return name
	}
	return name + ext
}
