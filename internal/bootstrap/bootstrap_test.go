package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New(0)
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run failure is returned without cleanup", func(t *testing.T) {
		app := New(0)
		cleaned := false
		app.OnShutdown(func(ctx context.Context) error {
			cleaned = true
			return nil
		})

		want := errors.New("listen failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
		assert.False(t, cleaned)
	})

	t.Run("cleanup runs in reverse order on cancellation", func(t *testing.T) {
		app := New(time.Second)
		var mu sync.Mutex
		var order []string

		for _, name := range []string{"database", "migrations", "server"} {
			app.OnShutdown(func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"server", "migrations", "database"}, order)
	})

	t.Run("cleanup errors are joined", func(t *testing.T) {
		app := New(time.Second)
		first := errors.New("close listener")
		second := errors.New("close database")
		app.OnShutdown(func(ctx context.Context) error { return second })
		app.OnShutdown(func(ctx context.Context) error { return first })

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})

	t.Run("callback registered from inside run", func(t *testing.T) {
		app := New(time.Second)
		cleaned := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.OnShutdown(func(ctx context.Context) error {
				cleaned = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, cleaned)
	})
}
