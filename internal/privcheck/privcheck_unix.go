//go:build !windows

package privcheck

import "os"

// Check reports whether the process runs with root privileges.
func Check() (bool, error) {
	return os.Geteuid() == 0, nil
}
