// Package platform returns the platform name.
package platform

import "runtime"

// Name returns the platform name. The returned value is one of
// "android", "ios", "linux", "macos", "windows", and "unknown".
func Name() string {
	return name(runtime.GOOS)
}

// name is a utility function for implementing Name.
func name(goos string) string {
	switch goos {
	case "android", "linux", "windows", "ios":
		return goos
	case "darwin":
		return "macos"
	}
	return "unknown"
}

// IsMobile returns whether we are running on a mobile platform,
// where the host application can provide real device capabilities.
func IsMobile() bool {
	return isMobile(Name())
}

func isMobile(platform string) bool {
	return platform == "android" || platform == "ios"
}
