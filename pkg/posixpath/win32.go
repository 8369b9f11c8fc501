package posixpath

import "strings"

// Boundary translation between the internal POSIX form and the Windows
// path form. Round-trips drive-letter paths losslessly: "//c:/foo/bar"
// becomes `c:\foo\bar` and back.

// ToWin32 converts a path to its Windows string form. Drive roots drop
// the leading "//"; network roots keep both separators, yielding the UNC
// form; every separator becomes a backslash.
func ToWin32(p Path) string {
	s := p.String()
	if isDriveRoot(s) {
		s = s[2:]
	}
	return strings.ReplaceAll(s, sepString, win32SepString)
}

// FromWin32 converts a Windows path string to the internal POSIX form.
// A leading drive letter gains the "//" prefix of the drive-root scheme.
func FromWin32(s string) Path {
	s = strings.ReplaceAll(s, win32SepString, sepString)
	if len(s) >= 2 && isAlpha(s[0]) && s[1] == driveChar {
		s = "//" + s
	}
	return New(s)
}
