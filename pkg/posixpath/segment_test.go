package posixpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectSegments drains the iterator from Begin to the end marker.
func collectSegments(t *testing.T, path string) []Segment {
	t.Helper()
	it := NewSegmentIterator(path)
	var segs []Segment
	for seg := it.Begin(); !seg.IsEnd(); seg = it.Next() {
		segs = append(segs, seg)
		require.Less(t, len(segs), 64, "runaway iteration")
	}
	return segs
}

func TestSegmentIterator(t *testing.T) {
	tests := []struct {
		path string
		want []Segment
	}{
		{"", nil},
		{
			"//foo/foo/.././bar/foobar.txt",
			[]Segment{
				{"//foo", SectionRootName},
				{"/", SectionRootDir},
				{"foo", SectionFilename},
				{"..", SectionDotDot},
				{".", SectionDot},
				{"bar", SectionFilename},
				{"foobar.txt", SectionFilename},
			},
		},
		{
			// A double slash with nothing after it is a root dir, not a
			// root name.
			"//",
			[]Segment{{"/", SectionRootDir}},
		},
		{
			"/foo/",
			[]Segment{
				{"/", SectionRootDir},
				{"foo", SectionFilename},
				{"/", SectionFinalSep},
			},
		},
		{"foo", []Segment{{"foo", SectionFilename}}},
		{
			"foo/",
			[]Segment{
				{"foo", SectionFilename},
				{"/", SectionFinalSep},
			},
		},
		{
			"../../..",
			[]Segment{
				{"..", SectionDotDot},
				{"..", SectionDotDot},
				{"..", SectionDotDot},
			},
		},
		{
			"././../..",
			[]Segment{
				{".", SectionDot},
				{".", SectionDot},
				{"..", SectionDotDot},
				{"..", SectionDotDot},
			},
		},
		{
			// Short filenames must still stop at the next separator.
			"/a/b",
			[]Segment{
				{"/", SectionRootDir},
				{"a", SectionFilename},
				{"b", SectionFilename},
			},
		},
		{
			// Root-only path yields no trailing-separator component.
			"/",
			[]Segment{{"/", SectionRootDir}},
		},
		{
			"//c:/x",
			[]Segment{
				{"//c:", SectionRootName},
				{"/", SectionRootDir},
				{"x", SectionFilename},
			},
		},
		{
			// Network root with no separator after the host.
			"//blah",
			[]Segment{{"//blah", SectionRootName}},
		},
		{
			// Interior separator runs collapse silently.
			"/x//y",
			[]Segment{
				{"/", SectionRootDir},
				{"x", SectionFilename},
				{"y", SectionFilename},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, collectSegments(t, tt.path))
		})
	}
}

func TestSegmentIteratorPastEnd(t *testing.T) {
	it := NewSegmentIterator("foo")
	require.Equal(t, Segment{"foo", SectionFilename}, it.Begin())
	assert.True(t, it.Next().IsEnd())
	// Calling again keeps answering end.
	assert.True(t, it.Next().IsEnd())
}

func TestSegmentIteratorRestart(t *testing.T) {
	it := NewSegmentIterator("/foo")
	first := it.Begin()
	for seg := it.Next(); !seg.IsEnd(); seg = it.Next() {
	}
	// Begin rewinds and re-scans from the top.
	assert.Equal(t, first, it.Begin())
	assert.Equal(t, Segment{"foo", SectionFilename}, it.Next())
}

func TestSectionString(t *testing.T) {
	assert.Equal(t, "root-name", SectionRootName.String())
	assert.Equal(t, "root-dir", SectionRootDir.String())
	assert.Equal(t, "dot", SectionDot.String())
	assert.Equal(t, "dot-dot", SectionDotDot.String())
	assert.Equal(t, "filename", SectionFilename.String())
	assert.Equal(t, "final-sep", SectionFinalSep.String())
	assert.Equal(t, "end", SectionEnd.String())
}
