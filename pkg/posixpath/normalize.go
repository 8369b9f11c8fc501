package posixpath

import (
	"strings"

	"github.com/arthur-debert/posixpath/pkg/assert"
)

// Style selects which normalization variant the Normalize/Absonorm family
// applies.
type Style int

const (
	// StyleStandard matches std::filesystem::path::lexically_normal.
	StyleStandard Style = iota
	// StyleFull additionally drops all trailing separators and normalizes
	// "." to "".
	StyleFull
)

// defaultStyle is consulted by Normalized, Normalize, Absonormed and
// Absonormize. Package-level rather than per-call because an application
// wants one form or the other throughout.
var defaultStyle = StyleStandard

// SetDefaultStyle selects the normalization variant used by the
// Normalize/Absonorm family. Not safe to call concurrently with path
// operations.
func SetDefaultStyle(s Style) { defaultStyle = s }

// DefaultStyle returns the current default normalization style.
func DefaultStyle() Style { return defaultStyle }

// Normalized returns the normalized form of p under the default style. A
// path already flagged normalized is returned as-is.
func (p Path) Normalized() Path {
	if p.IsNormalized() {
		return p
	}

	var norm Path
	if defaultStyle == StyleFull {
		norm = p.LexicallyFullNormal()
	} else {
		norm = p.LexicallyNormal()
	}
	norm.normalized = true
	norm.absolute = p.absolute
	return norm
}

// Normalize rewrites p into its normalized form in place.
func (p *Path) Normalize() {
	if !p.IsNormalized() {
		*p = p.Normalized()
	}
}

// Absonormed returns the weakly-canonical form of p: absolute (prefixed
// with cwd when relative) and normalized, still with no filesystem access.
// cwd must be absolute; that is a caller contract checked only by the
// debug assertion hook.
func (p Path) Absonormed(cwd Path) Path {
	if p.IsAbsonorm() {
		return p
	}

	assert.That(cwd.IsAbsolute(), "absonorm requires an absolute cwd")

	abs := p
	if !p.IsAbsolute() {
		abs = cwd.Join(p)
	}
	canon := abs.Normalized()
	canon.absolute = true
	return canon
}

// Absonormize rewrites p into its weakly-canonical form in place.
func (p *Path) Absonormize(cwd Path) {
	if !p.IsAbsonorm() {
		*p = p.Absonormed(cwd)
	}
}

// LexicallyNormal computes the normal form of the path following the
// std::filesystem::path::lexically_normal algorithm:
//
//  1. An empty path stays empty.
//  2. Runs of separators collapse to one (the iterator does this).
//  3. Root-name separators are already in preferred form.
//  4. Every "." component is removed.
//  5. A filename followed by ".." cancels; both are removed.
//  6. A ".." directly after the root directory is removed.
//  7. When the last filename is "..", the trailing separator goes too.
//  8. An empty result becomes ".".
func (p Path) LexicallyNormal() Path {
	if p.Empty() {
		return p
	}

	segments := make([]Segment, 0, 16)
	it := NewSegmentIterator(p.s)

	lastSection := SectionNone
	concatFinalSep := false
	for seg := it.Begin(); !seg.IsEnd(); seg = it.Next() {
		switch seg.Section {
		case SectionDot:
			// Rule 4: dots vanish.

		case SectionDotDot:
			// Rules 5 and 6. A preceding filename cancels, the root
			// directory absorbs, anything else keeps the dot-dot.
			switch stackTop(segments).Section {
			case SectionFilename:
				segments = segments[:len(segments)-1]
			case SectionRootDir:
			default:
				segments = append(segments, seg)
			}

		case SectionRootName, SectionRootDir, SectionFilename:
			segments = append(segments, seg)

		case SectionFinalSep:
			// Rule 7, and the "./" -> "." part of rule 8. The separator is
			// flagged rather than stacked so reassembly can run entirely on
			// the join operator; a stacked "/" would read as absolute and
			// wipe the result.
			if stackTop(segments).Section != SectionDotDot && lastSection != SectionDot {
				concatFinalSep = true
			}

		default:
			assert.Fail("normalization received an internal-only section")
		}

		lastSection = seg.Section
	}

	// Rule 8: nothing survived, the normal form is ".".
	if len(segments) == 0 {
		return New(dotString)
	}

	// A trailing "." keeps its directory meaning: "/x/." is "/x/", not
	// "/x". Suppressed when the stack ends at the root directory, so "/."
	// stays "/".
	if lastSection == SectionDot && segments[len(segments)-1].Section != SectionRootDir {
		concatFinalSep = true
	}

	return assembleSegments(segments, concatFinalSep)
}

// LexicallyFullNormal is LexicallyNormal with two stricter rules: every
// trailing separator is dropped, and an empty result stays empty rather
// than becoming ".". All spellings of the same directory normalize to one
// string:
//
//	"/x/y/." -> "/x/y"
//	"/x/y/"  -> "/x/y"
//	"."      -> ""
func (p Path) LexicallyFullNormal() Path {
	if p.Empty() {
		return p
	}

	segments := make([]Segment, 0, 16)
	it := NewSegmentIterator(p.s)

	for seg := it.Begin(); !seg.IsEnd(); seg = it.Next() {
		switch seg.Section {
		case SectionDot:

		case SectionDotDot:
			switch stackTop(segments).Section {
			case SectionFilename:
				segments = segments[:len(segments)-1]
			case SectionRootDir:
			default:
				segments = append(segments, seg)
			}

		case SectionRootName, SectionRootDir, SectionFilename:
			segments = append(segments, seg)

		case SectionFinalSep:
			// Dropped unconditionally.

		default:
			assert.Fail("normalization received an internal-only section")
		}
	}

	if len(segments) == 0 {
		return Path{}
	}

	return assembleSegments(segments, false)
}

// stackTop returns the top of the segment stack, or the end segment when
// the stack is empty.
func stackTop(segments []Segment) Segment {
	if len(segments) == 0 {
		return endSegment
	}
	return segments[len(segments)-1]
}

// assembleSegments rebuilds a path string from the surviving stack. Root
// directories concatenate directly; everything else joins with a single
// separator, exactly the append-operator rules. The size estimate is one
// allocation's worth of optimization, not a correctness requirement.
func assembleSegments(segments []Segment, finalSep bool) Path {
	size := len(segments)
	for _, seg := range segments {
		size += len(seg.Str)
	}
	if finalSep {
		size++
	}

	var b strings.Builder
	b.Grow(size)
	for _, seg := range segments {
		if seg.Section == SectionRootDir {
			// The join rule would treat "/" as absolute and restart the
			// string; the root directory is plain concatenation.
			b.WriteString(seg.Str)
			continue
		}
		if b.Len() > 0 && b.String()[b.Len()-1] != sep {
			b.WriteByte(sep)
		}
		b.WriteString(seg.Str)
	}
	if finalSep {
		b.WriteByte(sep)
	}

	assert.That(size >= b.Len(), "normalization size estimate fell short")
	return New(b.String())
}
