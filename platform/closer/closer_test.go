package closer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseAllReverseOrder(t *testing.T) {
	t.Parallel()

	c := New()
	var order []string
	for _, name := range []string{"mongo", "kafka", "http"} {
		c.AddNamed(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, []string{"http", "kafka", "mongo"}, order)
}

func TestCloseAllJoinsErrorsAndRunsOnce(t *testing.T) {
	t.Parallel()

	c := New()
	calls := 0
	c.AddNamed("first", func(context.Context) error {
		calls++
		return errors.New("boom")
	})
	c.AddNamed("second", func(context.Context) error {
		calls++
		return nil
	})

	err := c.CloseAll(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "first: boom")
	assert.Equal(t, 2, calls)

	require.NoError(t, c.CloseAll(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestCloseAllCancelledContext(t *testing.T) {
	t.Parallel()

	c := New()
	called := false
	c.AddNamed("db", func(context.Context) error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.CloseAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
