//go:build !windows

package posixpath

// ToOSNative returns the platform path string. On unix the internal form
// is already native.
func ToOSNative(p Path) string {
	return p.String()
}

// FromOSNative builds a Path from a platform path string.
func FromOSNative(s string) Path {
	return New(s)
}
