//go:build !unix

package testutil

import "errors"

// MakeFIFO is not supported on this platform.
func MakeFIFO(path string) error {
	return errors.ErrUnsupported
}
