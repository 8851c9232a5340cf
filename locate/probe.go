package locate

import (
	"github.com/jongio/findpath/logutil"
)

// MaxPathBuffer bounds the scratch buffer a single probe may grow to.
// A Searcher asking for more is treated as an allocation failure.
const MaxPathBuffer = 32768 * 3

// Searcher is the OS directory-search primitive.
//
// SearchPath looks for fileName, with extension appended when fileName has
// none, and follows the SearchPathW contract:
//
//   - found and the path fits: the path is copied into buf and its length,
//     excluding a terminator slot, is returned.
//   - found but buf is too small: the required size, including a terminator
//     slot, is returned and buf is left untouched.
//   - not found or failed: 0 and the OS error are returned.
type Searcher interface {
	SearchPath(fileName, extension string, buf []byte) (int, error)
}

// SearcherFunc adapts a function to the Searcher interface.
type SearcherFunc func(fileName, extension string, buf []byte) (int, error)

// SearchPath calls f.
func (f SearcherFunc) SearchPath(fileName, extension string, buf []byte) (int, error) {
	return f(fileName, extension, buf)
}

// Prober performs single directory searches.
type Prober struct {
	searcher Searcher
	log      *logutil.ComponentLogger
}

// NewProber returns a Prober backed by searcher.
func NewProber(searcher Searcher) *Prober {
	return &Prober{
		searcher: searcher,
		log:      logutil.NewLogger("locate").WithOperation("probe"),
	}
}

// Probe searches for fileName once, with extension appended when fileName
// has none, and returns the absolute path of the first match.
//
// The scratch buffer starts empty and is reallocated to whatever size the
// Searcher reports until the returned length fits in it.
// Errors are always *SystemError.
func (p *Prober) Probe(fileName, extension string) (string, error) {
	var buf []byte
	size := 0

	for {
		if size > MaxPathBuffer {
			p.log.Debug("path buffer limit exceeded", "required", size, "limit", MaxPathBuffer)
			return "", NewSystemError(CodeNotEnoughMemory)
		}
		buf = make([]byte, size)

		n, err := p.searcher.SearchPath(fileName, extension, buf)
		if n == 0 {
			sysErr := Classify(err)
			p.log.Debug("probe failed", "file", fileName, "extension", extension, "code", uint32(sysErr.Code))
			return "", sysErr
		}
		if n <= len(buf) {
			return string(buf[:n]), nil
		}

		p.log.Debug("growing path buffer", "capacity", len(buf), "required", n)
		size = n
	}
}
