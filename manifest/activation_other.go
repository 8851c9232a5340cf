//go:build !windows

package manifest

func activate(string) (func() error, error) {
	return nil, ErrActivationUnsupported
}
