package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/loader"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	write := func(goal string) {
		doc := "initial: A\ngoals: [" + goal + "]\nedges: [{from: A, to: B, cost: 1}, {from: B, to: C, cost: 1}]\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	}
	write("B")

	type loaded struct {
		p   *loader.Problem
		err error
	}
	got := make(chan loaded, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- loader.Watch(ctx, path, 20*time.Millisecond, func(p *loader.Problem, err error) {
			got <- loaded{p, err}
		})
	}()

	next := func() loaded {
		select {
		case l := <-got:
			return l
		case <-time.After(5 * time.Second):
			t.Fatal("no reload")
			return loaded{}
		}
	}

	first := next()
	require.NoError(t, first.err)
	require.Equal(t, []string{"B"}, first.p.Search.Goals())

	write("C")
	second := next()
	require.NoError(t, second.err)
	require.Equal(t, []string{"C"}, second.p.Search.Goals())

	require.NoError(t, os.WriteFile(path, []byte("initial: [\n"), 0o600))
	third := next()
	require.ErrorIs(t, third.err, loader.ErrInvalidFile)

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_MissingDir(t *testing.T) {
	err := loader.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "p.yaml"), 0, func(*loader.Problem, error) {})
	require.Error(t, err)
}
