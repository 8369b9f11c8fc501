package posixpath_test

import (
	"testing"

	"github.com/arthur-debert/posixpath/pkg/posixpath"
	"github.com/stretchr/testify/assert"
)

func componentStrings(p posixpath.Path) []string {
	comps := p.Components()
	var strs []string
	for _, c := range comps {
		strs = append(strs, c.String())
	}
	return strs
}

func TestComponents(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"", nil},
		{"/foo/bar/foobar", []string{"/", "foo", "bar", "foobar"}},
		{"/foo/", []string{"/", "foo", "/"}},
		// Root-only paths have no trailing-separator component.
		{"/", []string{"/"}},
		{"//c:/", []string{"//c:", "/"}},
		{"//host/share", []string{"//host", "/", "share"}},
		{"a/./../b", []string{"a", ".", "..", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, componentStrings(posixpath.New(tt.path)))
		})
	}
}

func TestComponentsMatchAccessors(t *testing.T) {
	p := posixpath.New("//host/share/file.txt")
	comps := componentStrings(p)
	assert.Equal(t, p.RootName(), comps[0])
	assert.Equal(t, p.RootDirectory(), comps[1])
	assert.Equal(t, p.Filename(), comps[len(comps)-1])
}

func TestSegments(t *testing.T) {
	segs := posixpath.New("/x/..").Segments()
	want := []posixpath.Segment{
		{Str: "/", Section: posixpath.SectionRootDir},
		{Str: "x", Section: posixpath.SectionFilename},
		{Str: "..", Section: posixpath.SectionDotDot},
	}
	assert.Equal(t, want, segs)
}
