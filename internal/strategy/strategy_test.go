package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/forge/internal/buildctx"
	"github.com/alexisbeaulieu97/forge/internal/task"
)

func TestDefault_ExecuteAsyncInvokesAction(t *testing.T) {
	t.Parallel()

	var ran bool
	tk := task.NewBuilder("a").Does(func(ctx *buildctx.Context) error { ran = true; return nil }).Build()

	err := Default{}.ExecuteAsync(buildctx.New(context.Background(), nil), tk)
	require.NoError(t, err)
	require.True(t, ran)
}

func TestDefault_ReportErrorsSwallowsReporterFailure(t *testing.T) {
	t.Parallel()

	reporter := func(err error) error { return errors.New("reporter exploded") }
	require.NotPanics(t, func() {
		Default{}.ReportErrors(reporter, errors.New("original"))
	})
}

func TestDryRun_NeverInvokesAction(t *testing.T) {
	t.Parallel()

	var ran bool
	tk := task.NewBuilder("a").Does(func(ctx *buildctx.Context) error { ran = true; return nil }).Build()

	var announced string
	d := NewDryRun(func(name string) { announced = name })

	err := d.ExecuteAsync(buildctx.New(context.Background(), nil), tk)
	require.NoError(t, err)
	require.False(t, ran)
	require.Equal(t, "a", announced)
}
