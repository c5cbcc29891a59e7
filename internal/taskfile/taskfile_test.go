package taskfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forge/internal/engine"
	"github.com/alexisbeaulieu97/forge/internal/strategy"
)

const sample = `
version: "1.0"
name: sample
tasks:
  - name: fetch-deps
    run:
      type: command
      command: touch deps.txt
  - name: build
    depends_on: [fetch-deps]
    run:
      type: command
      command: touch build.txt
`

func TestLoad_ParsesValidDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sample", doc.Name)
	require.Len(t, doc.Tasks, 2)
}

func TestLoad_RejectsUnknownRunType(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	bad := `
version: "1.0"
name: sample
tasks:
  - name: build
    run:
      type: not-a-real-type
`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestRegister_BuildsRunnableEngine(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	eng := engine.New(engine.Sequential, zerolog.Nop())
	require.NoError(t, Register(doc, eng))

	wd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(wd) }()
	require.NoError(t, os.Chdir(dir))

	_, err = eng.RunTarget(context.Background(), strategy.NewDefault(), "build")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "deps.txt"))
	require.FileExists(t, filepath.Join(dir, "build.txt"))
}

func TestRegister_DuplicateTaskNameFails(t *testing.T) {
	t.Parallel()

	dup := `
version: "1.0"
name: sample
tasks:
  - name: build
    run:
      type: command
      command: echo one
  - name: build
    run:
      type: command
      command: echo two
`
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dup), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	eng := engine.New(engine.Sequential, zerolog.Nop())
	require.Error(t, Register(doc, eng))
}
