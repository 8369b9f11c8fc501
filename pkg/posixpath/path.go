package posixpath

import (
	"hash/fnv"
	"strings"

	"github.com/arthur-debert/posixpath/pkg/assert"
)

// Path is a POSIX-style path value: an owned string plus two speculative
// boolean caches. The caches are only ever true when the property has been
// proven (by normalization, or by a caller with external knowledge calling
// the Force methods); false means unknown, never "definitely not".
type Path struct {
	s          string
	normalized bool
	absolute   bool
}

// New returns a Path over the given string. The flag caches start unknown.
func New(s string) Path {
	return Path{s: s}
}

// make is the flag-carrying constructor used by code paths that just
// proved a property.
func makePath(s string, normalized, absolute bool) Path {
	return Path{s: s, normalized: normalized, absolute: absolute}
}

// String returns the path in its internal POSIX form.
func (p Path) String() string { return p.s }

// Empty reports whether the path string is empty.
func (p Path) Empty() bool { return len(p.s) == 0 }

// Compare orders paths by their raw string bytes.
func (p Path) Compare(q Path) int { return strings.Compare(p.s, q.s) }

// Equal reports string equality; the flag caches do not participate.
func (p Path) Equal(q Path) bool { return p.s == q.s }

// Hash returns a hash of the path string, for use as a map key surrogate.
func (p Path) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(p.s))
	return h.Sum64()
}

// IsAbsolute reports whether the path has a root directory. The cached
// flag answers without a scan when it is already known true.
func (p Path) IsAbsolute() bool {
	return p.absolute || findRootDirPos(p.s) != noPos
}

// IsRelative reports whether the path has no root directory.
func (p Path) IsRelative() bool {
	return !p.absolute && findRootDirPos(p.s) == noPos
}

// IsNormalized is speculative: true means definitely normalized, false
// means not known. The empty path is trivially normalized, so the zero
// value answers true.
func (p Path) IsNormalized() bool { return p.normalized || len(p.s) == 0 }

// IsAbsonorm is speculative: true means definitely both absolute and
// normalized.
func (p Path) IsAbsonorm() bool { return p.normalized && p.absolute }

// ForceNormalized marks the path as known-normalized. Call only when
// external knowledge guarantees it.
func (p *Path) ForceNormalized() { p.normalized = true }

// ForceAbsolute marks the path as known-absolute. Call only when external
// knowledge guarantees it.
func (p *Path) ForceAbsolute() { p.absolute = true }

// Clear resets the path to empty and drops both caches.
func (p *Path) Clear() {
	p.s = ""
	p.normalized = false
	p.absolute = false
}

// Append appends q to p with a separator, following the std::filesystem
// operator/= contract: a right side that starts with a separator (absolute
// or rooted) replaces p entirely; an empty right side appends a trailing
// separator; otherwise exactly one separator joins the two unless p is
// empty or already ends in one.
func (p *Path) Append(q Path) {
	hasSep := len(p.s) > 0 && p.s[len(p.s)-1] == sep

	if q.Empty() {
		p.s += sepString
		p.normalized = false
		return
	}

	// An absolute or rooted right side fully replaces us.
	if q.s[0] == sep {
		*p = q
		return
	}

	if !hasSep && !p.Empty() {
		p.s += sepString
	}
	p.s += q.s

	// Can no longer ensure normalization. Absolute is unaffected.
	p.normalized = false
}

// Join returns p appended with q, leaving p untouched.
func (p Path) Join(q Path) Path {
	p.Append(q)
	return p
}

// JoinString is Join with a raw string right-hand side.
func (p Path) JoinString(s string) Path {
	return p.Join(New(s))
}

// Concat appends raw bytes with no separator. Beware: this is a plain
// string concatenation, not a path join.
func (p *Path) Concat(s string) {
	p.s += s
	p.normalized = false
}

// Plus returns p with raw bytes concatenated, leaving p untouched.
func (p Path) Plus(s string) Path {
	p.Concat(s)
	return p
}

// Shorten chops n bytes off the end as a dumb string operation. Shortening
// past the start leaves an empty path.
func (p *Path) Shorten(n int) {
	if len(p.s) > n {
		p.s = p.s[:len(p.s)-n]
	} else {
		p.s = ""
	}
	// Root names make it impossible to keep the absolute cache without a
	// rescan. Normalization is unaffected by truncation at this level.
	p.absolute = false
}

// Filename returns the last component. A path ending in a separator has
// filename "." (directory semantics), except a bare root separator, whose
// filename is "/". An all-root path has no filename.
func (p Path) Filename() string {
	s := p.s
	if len(s) == 0 {
		return ""
	}

	fpos, rootSepPos := findFilenamePos(s)
	if fpos == noPos {
		return ""
	}

	// The filename position landing on the root separator means the path is
	// just a root: "/" or "//c:/".
	if rootSepPos == fpos {
		assert.That(fpos == len(s)-1, "root separator filename must end the path")
		return sepString
	}

	if fpos == len(s)-1 && s[fpos] == sep {
		return dotString
	}
	return s[fpos:]
}

// Extension returns the extension including its dot, or "". Dotfiles and
// the "." / ".." components have no extension.
func (p Path) Extension() string {
	pos := findExtensionPos(p.s)
	if pos == noPos {
		return ""
	}
	return p.s[pos:]
}

// Stem returns the filename with its extension removed.
func (p Path) Stem() string {
	s := p.s
	if len(s) == 0 {
		return ""
	}

	// Back up until a dot or separator shows where the filename starts.
	endPos := len(s) - 1
	lastDot := noPos
	fileStart := noPos
	for pos := endPos; pos >= 0; pos-- {
		if s[pos] == sep {
			fileStart = pos + 1
			break
		}
		if lastDot == noPos && s[pos] == dot {
			lastDot = pos
		}
	}

	// Path ends with a separator: no filename, no stem.
	if fileStart == len(s) {
		return ""
	}
	if fileStart == noPos {
		fileStart = 0
	}

	if lastDot == noPos {
		return s[fileStart:]
	}
	if lastDot == fileStart {
		// Covers dotfiles like ".git" as well as ".".
		return s[fileStart:]
	}
	if lastDot == endPos && endPos-fileStart == 1 && s[fileStart] == dot {
		return s[fileStart:] // ".."
	}

	return s[fileStart:lastDot]
}

// ParentPath returns the path with its last component removed. A run of
// trailing separators collapses down to the first one; a single filename
// or a root-only path has no parent.
func (p Path) ParentPath() Path {
	par := p.parentPathString()
	// The source's caches survive truncation to a parent, except that an
	// empty parent can no longer be absolute.
	return makePath(par, p.normalized, p.absolute && par != "")
}

func (p Path) parentPathString() string {
	s := p.s
	if len(s) == 0 {
		return ""
	}

	// A path ending in separators: strip them all and call what remains the
	// parent. "/x/" -> "/x", "/x///" -> "/x".
	endIdx := len(s) - 1
	if s[endIdx] == sep {
		for i := endIdx - 1; i >= 0; i-- {
			if s[i] != sep {
				return s[:i+1]
			}
		}
		return ""
	}

	// The path now ends in either a filename or a root name.
	fpos, rootSepPos := findFilenamePos(s)

	// A lone filename has no parent.
	if fpos == 0 {
		return ""
	}

	// No filename at all means the path is a bare root name.
	if fpos == noPos {
		assert.That(rootSepPos == noPos, "bare root name cannot have a root separator")
		return ""
	}

	// The filename position can land on a separator before the filename.
	if s[fpos] == sep {
		return s[:fpos]
	}

	// Keep a separator only when it is the root.
	if rootSepPos == fpos-1 {
		return s[:fpos]
	}
	assert.That(fpos > 1, "non-root parent split must leave more than the leading byte")
	return s[:fpos-1]
}

// RootName returns the drive ("//c:") or network ("//host") prefix, or "".
func (p Path) RootName() string {
	s := p.s
	if len(s) < 2 {
		return ""
	}

	if isDriveRoot(s) {
		return s[:driveRootPos]
	}

	if isNetworkRoot(s) {
		n := findNetworkRootSep(s)
		if n == noPos {
			n = len(s)
		}
		return s[:n]
	}

	return ""
}

// RootDirectory returns "/" when the path has a root directory, else "".
func (p Path) RootDirectory() string {
	if findRootDirPos(p.s) == noPos {
		return ""
	}
	return sepString
}

// RootPath returns root name plus root directory, keeping the root
// directory only when it is present in the string: "//c:" stays "//c:",
// "//c:/" stays "//c:/".
func (p Path) RootPath() string {
	s := p.s

	if isDriveRoot(s) {
		n := driveRootPos + 1
		if n > len(s) {
			n = len(s)
		}
		return s[:n]
	}

	if isNetworkRoot(s) {
		n := findNetworkRootSep(s)
		if n == noPos {
			return s
		}
		return s[:n+1]
	}

	if len(s) > 0 && s[0] == sep {
		return sepString
	}
	return ""
}

// RelativePath returns the portion after the root path, or the whole
// string for a relative path.
func (p Path) RelativePath() string {
	s := p.s

	if isDriveRoot(s) {
		const n = driveRootPos + 1
		if len(s) > n {
			return s[n:]
		}
		return ""
	}

	if isNetworkRoot(s) {
		n := findNetworkRootSep(s)
		if n == noPos || n+1 >= len(s) {
			return ""
		}
		return s[n+1:]
	}

	if len(s) > 1 && s[0] == sep {
		return s[1:]
	}
	if len(s) > 0 && s[0] == sep {
		return ""
	}
	return s
}

// HasRootPath reports whether RootPath is non-empty.
func (p Path) HasRootPath() bool { return p.RootPath() != "" }

// HasRootName reports whether RootName is non-empty.
func (p Path) HasRootName() bool { return p.RootName() != "" }

// HasRootDirectory reports whether RootDirectory is non-empty.
func (p Path) HasRootDirectory() bool { return p.RootDirectory() != "" }

// HasRelativePath reports whether RelativePath is non-empty.
func (p Path) HasRelativePath() bool { return p.RelativePath() != "" }

// HasParentPath reports whether ParentPath is non-empty.
func (p Path) HasParentPath() bool { return !p.ParentPath().Empty() }

// HasFilename reports whether Filename is non-empty.
func (p Path) HasFilename() bool { return p.Filename() != "" }

// HasStem reports whether Stem is non-empty.
func (p Path) HasStem() bool { return p.Stem() != "" }

// HasExtension reports whether Extension is non-empty.
func (p Path) HasExtension() bool { return p.Extension() != "" }

// RemoveFilename chops the filename off, leaving any trailing separator in
// place. A path without a filename is left untouched.
func (p *Path) RemoveFilename() {
	fpos, _ := findFilenamePos(p.s)
	if fpos == noPos {
		return
	}
	if fpos < len(p.s) && p.s[fpos] != sep {
		p.s = p.s[:fpos]
	}
}

// ReplaceFilename removes the filename and appends the replacement.
func (p *Path) ReplaceFilename(replacement Path) {
	p.RemoveFilename()
	p.Append(replacement)
}

// ReplaceExtension swaps the extension for the replacement, which may be
// given with or without its leading dot. An empty replacement removes the
// extension.
func (p *Path) ReplaceExtension(replacement Path) {
	replHasDot := !replacement.Empty() && replacement.s[0] == dot
	extPos := findExtensionPos(p.s)
	if extPos != noPos {
		if replHasDot || replacement.Empty() {
			p.s = p.s[:extPos] // chop our dot
		} else {
			p.s = p.s[:extPos+1] // reuse our dot
		}
	}
	p.Concat(replacement.s)
}
