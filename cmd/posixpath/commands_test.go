package posixpath

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pathlib "github.com/arthur-debert/posixpath/pkg/posixpath"
)

// runCommand executes the CLI with the given args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	styleFlag = ""
	verbosity = 0
	t.Cleanup(func() { pathlib.SetDefaultStyle(pathlib.StyleStandard) })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	out, err := runCommand(t, "normalize", "/foo//bar/../baz/.")
	require.NoError(t, err)
	assert.Equal(t, "/foo/baz/\n", out)
}

func TestNormalizeMultiplePaths(t *testing.T) {
	out, err := runCommand(t, "normalize", "a/..", "./b")
	require.NoError(t, err)
	assert.Equal(t, ".\nb\n", out)
}

func TestNormalizeFullFlag(t *testing.T) {
	out, err := runCommand(t, "normalize", "--full", "/foo/bar/")
	require.NoError(t, err)
	assert.Equal(t, "/foo/bar\n", out)
}

func TestNormalizeStyleFromFlag(t *testing.T) {
	out, err := runCommand(t, "--style", "full", "normalize", "a/..")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestNormalizeAbsolute(t *testing.T) {
	out, err := runCommand(t, "normalize", "--absolute", "--cwd", "/base/dir", "../x")
	require.NoError(t, err)
	assert.Equal(t, "/base/x\n", out)
}

func TestNormalizeRejectsRelativeCwd(t *testing.T) {
	_, err := runCommand(t, "normalize", "--absolute", "--cwd", "relative/dir", "x")
	assert.Error(t, err)
}

func TestJoinCommand(t *testing.T) {
	out, err := runCommand(t, "join", "/usr", "lib", "x.so")
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/x.so\n", out)
}

func TestJoinAbsoluteReplacement(t *testing.T) {
	out, err := runCommand(t, "join", "/usr", "/etc", "passwd")
	require.NoError(t, err)
	assert.Equal(t, "/etc/passwd\n", out)
}

func TestComponentsText(t *testing.T) {
	out, err := runCommand(t, "components", "/foo/bar/")
	require.NoError(t, err)
	assert.Contains(t, out, "root-dir   /")
	assert.Contains(t, out, "filename   foo")
	assert.Contains(t, out, "filename   bar")
	assert.Contains(t, out, "final-sep  /")
}

func TestComponentsYaml(t *testing.T) {
	out, err := runCommand(t, "components", "--format", "yaml", "/foo/bar")
	require.NoError(t, err)
	assert.Contains(t, out, "path: /foo/bar")
	assert.Contains(t, out, "section: root-dir")
	assert.Contains(t, out, "section: filename")
	assert.Contains(t, out, "text: foo")
	assert.Contains(t, out, "text: bar")
}

func TestComponentsRejectsBadFormat(t *testing.T) {
	_, err := runCommand(t, "components", "--format", "json", "/x")
	assert.Error(t, err)
}

func TestInfoCommand(t *testing.T) {
	out, err := runCommand(t, "info", "//host/share/file.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "//host/share/file.txt")
	assert.Contains(t, out, "file.txt")
	assert.Contains(t, out, ".txt")
	assert.Contains(t, out, "//host")
}

func TestWin32Command(t *testing.T) {
	out, err := runCommand(t, "win32", "//c:/Users/blah")
	require.NoError(t, err)
	assert.Equal(t, "c:\\Users\\blah\n", out)
}

func TestWin32FromCommand(t *testing.T) {
	out, err := runCommand(t, "win32", "--from", `c:\Users\blah`)
	require.NoError(t, err)
	assert.Equal(t, "//c:/Users/blah\n", out)
}

func TestGenconfigPrintsDefaults(t *testing.T) {
	out, err := runCommand(t, "genconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[normalize]")
	assert.Contains(t, out, `style = "standard"`)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "posixpath version")
}

func TestUnknownStyleRejected(t *testing.T) {
	_, err := runCommand(t, "--style", "bogus", "normalize", "/x")
	assert.Error(t, err)
}
