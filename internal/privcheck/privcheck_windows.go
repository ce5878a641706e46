//go:build windows

package privcheck

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Check reports whether the process token is elevated.
func Check() (bool, error) {
	var token windows.Token
	err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token)
	if err != nil {
		return false, fmt.Errorf("OpenProcessToken failed: %w", err)
	}
	defer func(token windows.Token) {
		_ = token.Close()
	}(token)

	return token.IsElevated(), nil
}
