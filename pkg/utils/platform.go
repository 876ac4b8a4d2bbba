//go:build !mobile

package utils

import "os"

// MobileEmulateEnv forces touch mode on desktop builds when set to "1".
const MobileEmulateEnv = "VERDANT_MOBILE_EMULATE"

// IsMobile reports whether the app runs on a touch device.
// 桌面端编译时返回 false，除非设置了 VERDANT_MOBILE_EMULATE=1（用于本地调试）
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
