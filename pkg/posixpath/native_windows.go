//go:build windows

package posixpath

// ToOSNative returns the platform path string, translating to the Windows
// form.
func ToOSNative(p Path) string {
	return ToWin32(p)
}

// FromOSNative builds a Path from a platform path string.
func FromOSNative(s string) Path {
	return FromWin32(s)
}
