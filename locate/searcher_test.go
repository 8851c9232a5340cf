package locate

import "syscall"

// fakeSearcher resolves candidate names from a fixed table and records every
// call it receives.
type fakeSearcher struct {
	found map[string]string
	errs  map[string]error
	calls []string
	caps  []int
}

func newFakeSearcher(found map[string]string) *fakeSearcher {
	return &fakeSearcher{found: found, errs: map[string]error{}}
}

func (f *fakeSearcher) SearchPath(fileName, extension string, buf []byte) (int, error) {
	candidate := WithExtension(fileName, extension)
	f.calls = append(f.calls, candidate)
	f.caps = append(f.caps, len(buf))

	if err, ok := f.errs[candidate]; ok {
		return 0, err
	}
	path, ok := f.found[candidate]
	if !ok {
		return 0, syscall.Errno(CodeFileNotFound)
	}
	if len(path)+1 > len(buf) {
		return len(path) + 1, nil
	}
	return copy(buf, path), nil
}

// distinctCalls collapses buffer-negotiation retries into one entry per probe.
func (f *fakeSearcher) distinctCalls() []string {
	var out []string
	for i, c := range f.calls {
		if i > 0 && f.calls[i-1] == c && f.caps[i] > f.caps[i-1] {
			continue
		}
		out = append(out, c)
	}
	return out
}
