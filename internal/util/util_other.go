//go:build !windows

package util

func IsRunFromGUI() bool {
	// Only Windows starts console programs from a file manager with a
	// throwaway console window.
	return false
}
