package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_WritesHumanReadableByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(Options{Writer: &buf, Level: "debug"})
	require.NoError(t, err)

	l.Info("hello", "task", "build")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "build")
}

func TestNew_RejectsInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "not-a-level"})
	require.Error(t, err)
}

func TestWith_CarriesFieldsIntoDerivedLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	derived := l.With("component", "runner")
	derived.Info("tick")
	require.Contains(t, buf.String(), "component")
	require.Contains(t, buf.String(), "runner")
}
