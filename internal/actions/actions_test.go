package actions

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
)

func newTestContext(t *testing.T, dir string) *buildctx.Context {
	t.Helper()
	ctx := buildctx.New(context.Background(), nil)
	ctx.Dir = dir
	return ctx
}

func TestShell_RunsCommandInContextDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	action := Shell("touch marker.txt")

	err := action(newTestContext(t, dir))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "marker.txt"))
}

func TestShell_FailureWrapsExitError(t *testing.T) {
	t.Parallel()

	action := Shell("exit 7")
	err := action(newTestContext(t, t.TempDir()))
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 7, exitErr.ExitCode())
}

func TestCopy_CopiesFileContentAndMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))

	action := Copy("src.txt", "nested/dst.txt")
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.ReadFile(filepath.Join(dir, "nested/dst.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(got))

	srcInfo, err := os.Stat(src)
	require.NoError(t, err)
	dstInfo, err := os.Stat(filepath.Join(dir, "nested/dst.txt"))
	require.NoError(t, err)
	require.Equal(t, srcInfo.Mode(), dstInfo.Mode())
}

func TestCopy_RejectsDirectorySource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "srcdir"), 0o755))

	action := Copy("srcdir", "dst")
	err := action(newTestContext(t, dir))
	require.Error(t, err)
}

func TestSymlink_CreatesLinkWhenAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	action := Symlink("target.txt", "link.txt")
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.Readlink(filepath.Join(dir, "link.txt"))
	require.NoError(t, err)
	require.Equal(t, "target.txt", got)
}

func TestSymlink_NoopWhenAlreadyCorrect(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	linkPath := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("target.txt", linkPath))

	action := Symlink("target.txt", "link.txt")
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.Readlink(linkPath)
	require.NoError(t, err)
	require.Equal(t, "target.txt", got)
}

func TestSymlink_ReplacesWhenPointingElsewhere(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	linkPath := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("old.txt", linkPath))

	action := Symlink("new.txt", "link.txt")
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.Readlink(linkPath)
	require.NoError(t, err)
	require.Equal(t, "new.txt", got)
}

func TestTemplate_RendersVariables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src.tmpl"), []byte("hello {{.Name}}"), 0o644))

	action := Template("src.tmpl", "out.txt", map[string]string{"Name": "world"})
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello world", string(got))
}

func TestLineInFile_AppendsWhenAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	action := LineInFile("file.txt", "two")
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "one\ntwo\n", string(got))
}

func TestLineInFile_NoopWhenAlreadyPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	before := info.ModTime()

	action := LineInFile("file.txt", "two")
	require.NoError(t, action(newTestContext(t, dir)))

	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, before, info.ModTime())
}

func TestLineInFile_RemovesMatchWhenAbsent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("keep\ndrop\n"), 0o644))

	action := LineInFile("file.txt", "drop", Absent())
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "keep\n", string(got))
}

func TestLineInFile_ReplacesFirstRegexMatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("port=8080\n"), 0o644))

	action := LineInFile("file.txt", "port=9090", WithMatch(`^port=`))
	require.NoError(t, action(newTestContext(t, dir)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "port=9090\n", string(got))
}

func TestGitClone_NoopWhenDestinationAlreadyARepository(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	repoDir := filepath.Join(dir, "repo")
	_, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)

	action := GitClone("https://example.invalid/repo.git", "repo")
	require.NoError(t, action(newTestContext(t, dir)))
}

func TestGitClone_FailsFastForMissingLocalSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	action := GitClone(filepath.Join(dir, "no-such-source"), "repo")
	err := action(newTestContext(t, dir))
	require.Error(t, err)
}
