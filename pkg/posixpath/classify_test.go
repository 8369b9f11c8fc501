package posixpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootClassifiers(t *testing.T) {
	tests := []struct {
		path      string
		driveRoot bool
		netRoot   bool
	}{
		{"//C:", true, false},
		{"//c:", true, false},
		{"//c:/", true, false},
		{"//c:/foobar", true, false},
		{"", false, false},
		{"/", false, false},
		{"/cx/foobar", false, false},
		{"c/", false, false},
		{"//host/foobar", false, true},
		{"//foo", false, true},
		{"//foo/", false, true},
		{"//fo/f", false, true},
		{"c:/", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.driveRoot, isDriveRoot(tt.path), "isDriveRoot")
			assert.Equal(t, tt.netRoot, isNetworkRoot(tt.path), "isNetworkRoot")
			assert.Equal(t, tt.driveRoot || tt.netRoot, hasRootName(tt.path), "hasRootName")
		})
	}
}

func TestIsRootSeparator(t *testing.T) {
	// Network root: only the separator ending the host token is the root.
	for pos := 0; pos < 8; pos++ {
		want := pos == 3
		assert.Equal(t, want, isRootSeparator("//f/foo/bar", pos), "pos %d", pos)
	}
	// Drive root: fixed offset 4.
	for pos := 0; pos < 8; pos++ {
		want := pos == 4
		assert.Equal(t, want, isRootSeparator("//f:/foo/bar", pos), "pos %d", pos)
	}
	assert.False(t, isRootSeparator("/foo/bar", 4))
}

func TestSeparatorScans(t *testing.T) {
	assert.Equal(t, 1, findNextSep("f/foo/bar/baz", 0))
	assert.Equal(t, 0, findNextSep("/foo/bar/baz", 0))
	assert.Equal(t, 4, findNextSep("/foo/bar/baz", 1))
	assert.Equal(t, noPos, findNextSep("/foo/bar/baz", 10))

	assert.Equal(t, 8, findPrevSep("/foo/bar/baz"))
	assert.Equal(t, 4, findPrevSep("/foo/bar"))
	assert.Equal(t, 0, findPrevSep("/fo"))
	assert.Equal(t, noPos, findPrevSep("_foo_bar"))

	assert.Equal(t, 3, findNetworkRootSep("//f/foo/bar"))
	assert.Equal(t, 5, findNetworkRootSep("//foo/"))
	assert.Equal(t, noPos, findNetworkRootSep("//foo"))
}

func TestFindRootDirPos(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", noPos},
		{"foo/bar", noPos},
		{"/", 0},
		{"/foo", 0},
		{"//c:", noPos},
		{"//c:/", driveRootPos},
		{"//c:/foo", driveRootPos},
		{"//host", noPos},
		{"//host/", 6},
		{"//host/foo", 6},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, findRootDirPos(tt.path))
		})
	}
}

func TestFindFilenamePos(t *testing.T) {
	tests := []struct {
		path        string
		wantFile    int
		wantRootSep int
	}{
		{"f/baz", 2, noPos},
		{"//f:/baz", 5, 4},
		{"//f:/", 4, 4},
		{"//f:", noPos, noPos},
		{"/fo", 1, 0},
		{"", 0, noPos},
		{"//f/", 3, 3},
		{"//f/foo", 4, 3},
		{"//f", noPos, noPos},
		{"/", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			fpos, rootSepPos := findFilenamePos(tt.path)
			assert.Equal(t, tt.wantFile, fpos, "filename pos")
			assert.Equal(t, tt.wantRootSep, rootSepPos, "root sep pos")
		})
	}
}

func TestFindExtensionPos(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", noPos},
		{"/foo/", noPos},
		{"/foo/foobar.txt", 11},
		{"/foo/.txt", noPos},
		{"/foo/.", noPos},
		{"/foo/..", noPos},
		{".", noPos},
		{"..", noPos},
		{".gitignore", noPos},
		{"a.tar.gz", 5},
		{"bar.bat", 3},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, findExtensionPos(tt.path))
		})
	}
}
