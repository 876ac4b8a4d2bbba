//go:build mobile

package utils

// MobileEmulateEnv has no effect on mobile builds.
const MobileEmulateEnv = "VERDANT_MOBILE_EMULATE"

// IsMobile reports whether the app runs on a touch device.
// 移动端编译时总是 true
func IsMobile() bool {
	return true
}
