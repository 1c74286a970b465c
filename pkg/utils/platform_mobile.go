//go:build mobile

package utils

// IsMobile always returns true in mobile builds.
func IsMobile() bool {
	return true
}
