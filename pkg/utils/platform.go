//go:build !mobile

package utils

import "os"

// IsMobile reports whether the dashboard runs on a mobile device.
// Desktop builds return false unless CARDASH_MOBILE_EMULATE=1 is set.
func IsMobile() bool {
	return os.Getenv("CARDASH_MOBILE_EMULATE") == "1"
}
