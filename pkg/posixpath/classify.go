package posixpath

import "github.com/arthur-debert/posixpath/pkg/assert"

// Character classifiers: allocation-free scans that answer structural
// questions about a path string. All of the component accessors are built
// directly on these rather than on the segment iterator, so a single-field
// query never pays for a full tokenization.

const (
	sep      = byte('/')
	dot      = byte('.')
	win32Sep = byte('\\')

	// driveChar separates the drive letter from the rest of a drive-rooted
	// path. ':' is a valid posix-path character but doubles as the PATH list
	// splitter on unix; a drive-rooted path is never expected to escape into
	// that context.
	driveChar = byte(':')

	sepString      = "/"
	dotString      = "."
	dotDotString   = ".."
	win32SepString = `\`

	// Drive root scheme is "//d:/", so the root separator sits at offset 4.
	driveRootPos = 4

	// noPos is the "not found" sentinel for all positional scans.
	noPos = -1
)

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9')
}

// isDriveRoot reports whether s begins with a drive-letter root: "//x:".
func isDriveRoot(s string) bool {
	return len(s) >= driveRootPos &&
		s[3] == driveChar && s[0] == sep && s[1] == sep && isAlpha(s[2])
}

// isNetworkRoot reports whether s begins with a network root: "//host",
// excluding the drive-root form "//x:".
func isNetworkRoot(s string) bool {
	isNet := len(s) >= 3 && s[0] == sep && s[1] == sep && isAlnum(s[2])
	return isNet && !(len(s) >= driveRootPos && s[3] == driveChar)
}

// hasRootName reports whether s begins with either root-name form.
func hasRootName(s string) bool {
	return isDriveRoot(s) || isNetworkRoot(s)
}

// findExtensionPos returns the offset of the dot that starts the filename
// extension, or noPos. Dotfiles (".gitignore") and the special names "."
// and ".." have no extension.
func findExtensionPos(s string) int {
	for pos := len(s) - 1; pos >= 0; pos-- {
		if s[pos] == sep {
			break
		}
		if s[pos] != dot {
			continue
		}
		// Found the last dot. Handle the exceptions: a dot that starts the
		// component ("." or a dotfile) and the ".." component.
		if pos == 0 || s[pos-1] == sep {
			break
		}
		if s[pos-1] == dot && (len(s) == 2 || (pos >= 2 && s[pos-2] == sep)) {
			break
		}
		return pos
	}
	return noPos
}

// findNextSep returns the position of the first separator at or after
// startPos, or noPos.
func findNextSep(s string, startPos int) int {
	for ; startPos < len(s); startPos++ {
		if s[startPos] == sep {
			return startPos
		}
	}
	return noPos
}

// findPrevSep returns the position of the last separator in s, or noPos.
func findPrevSep(s string) int {
	for pos := len(s) - 1; pos >= 0; pos-- {
		if s[pos] == sep {
			return pos
		}
	}
	return noPos
}

// findNetworkRootSep returns the position of the separator that ends the
// network host token, or noPos when the path is just "//host". Only valid
// after isNetworkRoot has confirmed the prefix.
func findNetworkRootSep(s string) int {
	assert.That(isNetworkRoot(s), "findNetworkRootSep requires a network-rooted path")
	return findNextSep(s, 3)
}

// isRootSeparator reports whether the separator at pos is the one that
// begins the root directory of a rooted path.
func isRootSeparator(s string, pos int) bool {
	if pos == driveRootPos && isDriveRoot(s[:pos]) {
		return true
	}
	if pos >= 3 && isNetworkRoot(s) {
		return findNetworkRootSep(s) == pos
	}
	return false
}

// findRootDirPos returns the offset of the separator that begins the root
// directory, or noPos for a relative path. For "//c:/x" that is 4, for
// "//host/x" the separator after the host, otherwise 0 when the path
// starts with a separator.
func findRootDirPos(s string) int {
	if len(s) == 0 || s[0] != sep {
		return noPos
	}
	if isDriveRoot(s) {
		if len(s) > driveRootPos {
			return driveRootPos
		}
		return noPos
	}
	if isNetworkRoot(s) {
		return findNetworkRootSep(s)
	}
	return 0
}

// findFilenamePos locates the filename portion of s. It returns the offset
// where the filename starts and the offset of the root separator (noPos if
// there is none). When the path ends in a separator, the returned offset is
// that of the final separator; the caller resolves what that means (a "."
// filename, or "/" when the separator is the root itself). A root-only
// path reports no filename at all.
func findFilenamePos(s string) (fpos, rootSepPos int) {
	lastPos := len(s) - 1
	lastSep := findPrevSep(s)

	// No separator at all means the whole string is the filename.
	if lastSep == noPos {
		return 0, noPos
	}

	rootSepPos = noPos
	switch {
	case isDriveRoot(s):
		if lastSep == 1 {
			return noPos, noPos // "//c:" is all root name
		}
		if lastSep == driveRootPos && lastPos == lastSep {
			return lastSep, driveRootPos // "//c:/"
		}
		rootSepPos = driveRootPos
	case isNetworkRoot(s):
		rootSepPos = findNetworkRootSep(s)
		if lastSep == 1 {
			return noPos, noPos // "//host" is all root name
		}
		if lastSep == lastPos && lastSep == rootSepPos {
			return lastSep, rootSepPos // "//host/"
		}
	case s[0] == sep:
		rootSepPos = 0
	}

	if lastSep == lastPos {
		return lastSep, rootSepPos
	}
	return lastSep + 1, rootSepPos
}
