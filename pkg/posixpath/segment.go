package posixpath

import (
	"github.com/arthur-debert/posixpath/pkg/assert"
)

// Section tags one syntactic component of a path.
type Section uint8

const (
	// SectionNone is the initial scanner state; never emitted.
	SectionNone Section = iota
	// SectionRootName is a drive ("//c:") or network ("//host") prefix.
	SectionRootName
	// SectionRootDir is the separator that begins the absolute portion.
	SectionRootDir
	// SectionDot is a lone "." component.
	SectionDot
	// SectionDotDot is a ".." component.
	SectionDotDot
	// SectionFilename is any other component.
	SectionFilename
	// SectionFinalSep is a trailing separator after at least one filename.
	SectionFinalSep
	// sectionSep is an interior separator; consumed silently, never emitted.
	sectionSep
	// SectionEnd marks exhaustion of the path.
	SectionEnd
)

// String returns the section name, mostly for logs and CLI output.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionRootName:
		return "root-name"
	case SectionRootDir:
		return "root-dir"
	case SectionDot:
		return "dot"
	case SectionDotDot:
		return "dot-dot"
	case SectionFilename:
		return "filename"
	case SectionFinalSep:
		return "final-sep"
	case sectionSep:
		return "sep"
	case SectionEnd:
		return "end"
	}
	return "unknown"
}

// Segment is a non-owning view of one path component plus its section tag.
// Str aliases the iterated string (or one of the fixed "/", ".", ".."
// tokens) and must not be retained past mutation of the source path.
type Segment struct {
	Str     string
	Section Section
}

// IsEnd reports whether the segment is the end-of-path marker.
func (s Segment) IsEnd() bool { return s.Section == SectionEnd }

var endSegment = Segment{Section: SectionEnd}

// SegmentIterator walks a path string exactly once, emitting typed
// segments. The only state needed to disambiguate the next token is the
// previously emitted section plus at most two characters of lookahead,
// which makes this a finite-state scanner with O(1) extra memory.
//
// The iterator holds cursor state and is not safe for concurrent use.
// Begin resets it, so one iterator can re-scan the same string repeatedly.
type SegmentIterator struct {
	s            string
	pos          int
	last         Section
	seenFilename bool
}

// NewSegmentIterator returns an iterator over the given path string.
func NewSegmentIterator(s string) *SegmentIterator {
	return &SegmentIterator{s: s}
}

// Begin resets the iterator and returns the first segment.
func (it *SegmentIterator) Begin() Segment {
	it.pos = 0
	it.last = SectionNone
	it.seenFilename = false
	return it.advance()
}

// Next returns the next segment, or the end segment once exhausted.
// Calling Next past the end keeps returning the end segment.
func (it *SegmentIterator) Next() Segment {
	return it.advance()
}

func (it *SegmentIterator) advance() Segment {
	for {
		section := it.currentSection()
		it.last = section
		switch section {
		case SectionNone:
			assert.Fail("segment scanner re-entered the None state")
			return endSegment

		case SectionRootName:
			return it.scanRootName()

		case SectionFilename:
			it.seenFilename = true
			return it.scanFilename()

		case SectionRootDir:
			it.pos++
			return Segment{sepString, SectionRootDir}

		case SectionDot:
			it.pos++
			it.seenFilename = true
			return Segment{dotString, SectionDot}

		case SectionDotDot:
			it.pos += 2
			it.seenFilename = true
			return Segment{dotDotString, SectionDotDot}

		case SectionFinalSep:
			it.pos++
			// A trailing separator is only a component when a filename-like
			// segment preceded it. A root-only path like "/" has no extra
			// trailing component, matching std::filesystem iteration.
			if it.seenFilename {
				return Segment{sepString, SectionFinalSep}
			}
			return endSegment

		case sectionSep:
			// Interior separators are consumed silently.
			it.pos++

		case SectionEnd:
			return endSegment
		}
	}
}

// currentSection computes the section starting at the cursor, given only
// the previously emitted section and up to two characters of lookahead.
func (it *SegmentIterator) currentSection() Section {
	switch it.last {
	case SectionEnd, SectionFinalSep:
		return SectionEnd

	case SectionNone:
		switch it.current() {
		case 0:
			return SectionEnd
		case sep:
			return it.initialSep()
		case dot:
			return it.dotSection()
		default:
			return SectionFilename
		}

	case SectionRootName:
		switch it.current() {
		case 0:
			return SectionEnd
		case sep:
			return SectionRootDir
		case dot:
			return it.dotSection()
		default:
			return SectionFilename
		}

	case SectionRootDir, SectionDot, SectionDotDot, SectionFilename, sectionSep:
		switch it.current() {
		case 0:
			return SectionEnd
		case sep:
			if it.peek() == 0 {
				return SectionFinalSep
			}
			return sectionSep
		case dot:
			return it.dotSection()
		default:
			return SectionFilename
		}
	}

	return SectionEnd
}

// initialSep disambiguates a leading separator: "//x" with a usable third
// character is a root name, anything else is the root directory.
func (it *SegmentIterator) initialSep() Section {
	if it.peek() != sep {
		return SectionRootDir
	}
	switch it.peekpeek() {
	case 0, sep:
		return SectionRootDir
	default:
		return SectionRootName
	}
}

// dotSection disambiguates a component that starts with a dot.
func (it *SegmentIterator) dotSection() Section {
	switch it.peek() {
	case dot:
		return SectionDotDot
	case sep, 0:
		return SectionDot
	default:
		return SectionFilename
	}
}

// scanRootName consumes a root name. Only entered after initialSep saw a
// root-name prefix, so one of the classifiers must confirm it.
func (it *SegmentIterator) scanRootName() Segment {
	assert.That(it.pos == 0, "root name must start the path")
	s := it.s

	if isDriveRoot(s) {
		it.pos += driveRootPos
		return Segment{s[:driveRootPos], SectionRootName}
	}

	if isNetworkRoot(s) {
		n := findNetworkRootSep(s)
		if n == noPos {
			n = len(s)
		}
		it.pos += n
		return Segment{s[:n], SectionRootName}
	}

	assert.Fail("root name confirmed by neither drive nor network classifier")
	return endSegment
}

// scanFilename consumes up to the next separator or end of string.
func (it *SegmentIterator) scanFilename() Segment {
	rest := it.s[it.pos:]
	n := findNextSep(rest, 0)
	if n == noPos {
		n = len(rest)
	}
	it.pos += n
	return Segment{rest[:n], SectionFilename}
}

// current returns the byte at the cursor, or 0 past the end.
func (it *SegmentIterator) current() byte {
	if it.pos >= len(it.s) {
		return 0
	}
	return it.s[it.pos]
}

// peek returns the byte after the cursor, or 0 past the end.
func (it *SegmentIterator) peek() byte {
	if it.pos+1 >= len(it.s) {
		return 0
	}
	return it.s[it.pos+1]
}

// peekpeek returns the second byte after the cursor, or 0 past the end.
func (it *SegmentIterator) peekpeek() byte {
	if it.pos+2 >= len(it.s) {
		return 0
	}
	return it.s[it.pos+2]
}
