package helpqueue_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classlab/helpdesk/pkg/helpqueue"
)

func TestQueue_Enqueue(t *testing.T) {
	t.Parallel()

	t.Run("grows by one per distinct group", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		for i := 1; i <= 5; i++ {
			require.NoError(t, q.Enqueue(helpqueue.Group(i), helpqueue.Channel(i*100)))

			n, err := q.Len()
			require.NoError(t, err)
			assert.Equal(t, i, n)
		}
	})

	t.Run("rejects duplicate group without changing size", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))

		err := q.Enqueue(1, 200)
		require.Error(t, err)
		assert.ErrorIs(t, err, helpqueue.ErrDuplicateRequest)

		n, err := q.Len()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("group may re-enqueue after being served", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))
		_, _, err := q.Next()
		require.NoError(t, err)

		require.NoError(t, q.Enqueue(1, 200))

		group, channel, err := q.Next()
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Group(1), group)
		assert.Equal(t, helpqueue.Channel(200), channel)
	})
}

func TestQueue_Next(t *testing.T) {
	t.Parallel()

	t.Run("fails on empty queue", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		_, _, err := q.Next()
		assert.ErrorIs(t, err, helpqueue.ErrEmptyQueue)
	})

	t.Run("serves in arrival order, not group order", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))
		require.NoError(t, q.Enqueue(2, 200))

		group, channel, err := q.Next()
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Group(1), group)
		assert.Equal(t, helpqueue.Channel(100), channel)

		group, channel, err = q.Next()
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Group(2), group)
		assert.Equal(t, helpqueue.Channel(200), channel)
	})

	t.Run("arrival order survives a partial drain", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))
		require.NoError(t, q.Enqueue(2, 200))

		group, _, err := q.Next()
		require.NoError(t, err)
		require.Equal(t, helpqueue.Group(1), group)

		// Enqueued after a removal; must still come out last.
		require.NoError(t, q.Enqueue(3, 300))

		group, _, err = q.Next()
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Group(2), group)

		group, _, err = q.Next()
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Group(3), group)
	})
}

func TestQueue_Dismiss(t *testing.T) {
	t.Parallel()

	t.Run("removes only the named group", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))
		require.NoError(t, q.Enqueue(2, 200))
		require.NoError(t, q.Enqueue(3, 300))

		channel, err := q.Dismiss(2)
		require.NoError(t, err)
		assert.Equal(t, helpqueue.Channel(200), channel)

		n, err := q.Len()
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		groups, err := q.Sorted()
		require.NoError(t, err)
		assert.Equal(t, []helpqueue.Group{1, 3}, groups)
	})

	t.Run("fails for unknown group", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		_, err := q.Dismiss(42)
		assert.ErrorIs(t, err, helpqueue.ErrNotFound)
	})
}

func TestQueue_Clear(t *testing.T) {
	t.Parallel()
	q := helpqueue.New()

	require.NoError(t, q.Enqueue(1, 100))
	require.NoError(t, q.Enqueue(2, 200))

	require.NoError(t, q.Clear())

	empty, err := q.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	_, _, err = q.Next()
	assert.ErrorIs(t, err, helpqueue.ErrEmptyQueue)

	// Idempotent on an empty queue.
	require.NoError(t, q.Clear())
}

func TestQueue_Sorted(t *testing.T) {
	t.Parallel()

	t.Run("reflects arrival order", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(3, 300))
		require.NoError(t, q.Enqueue(1, 100))
		require.NoError(t, q.Enqueue(2, 200))

		groups, err := q.Sorted()
		require.NoError(t, err)
		assert.Equal(t, []helpqueue.Group{3, 1, 2}, groups)
	})

	t.Run("snapshot is isolated from later mutations", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		require.NoError(t, q.Enqueue(1, 100))
		require.NoError(t, q.Enqueue(2, 200))

		groups, err := q.Sorted()
		require.NoError(t, err)

		require.NoError(t, q.Clear())
		assert.Equal(t, []helpqueue.Group{1, 2}, groups)
	})

	t.Run("empty queue yields empty slice", func(t *testing.T) {
		t.Parallel()
		q := helpqueue.New()

		groups, err := q.Sorted()
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestQueue_Reset(t *testing.T) {
	t.Parallel()
	q := helpqueue.New()

	require.NoError(t, q.Enqueue(1, 100))
	q.Reset()

	empty, err := q.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, q.Enqueue(1, 100))
}

func TestQueue_ConcurrentEnqueueDrain(t *testing.T) {
	t.Parallel()
	q := helpqueue.New()

	const groups = 500

	var wg sync.WaitGroup
	for i := range groups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			group := helpqueue.Group(i + 1)
			assert.NoError(t, q.Enqueue(group, helpqueue.Channel(group)*10))
		}()
	}
	wg.Wait()

	n, err := q.Len()
	require.NoError(t, err)
	require.Equal(t, groups, n)

	// Drain until empty: every inserted group comes out exactly once.
	seen := make(map[helpqueue.Group]bool, groups)
	for {
		group, channel, err := q.Next()
		if errors.Is(err, helpqueue.ErrEmptyQueue) {
			break
		}
		require.NoError(t, err)
		require.False(t, seen[group], "group %d served twice", group)
		require.Equal(t, helpqueue.Channel(group)*10, channel)
		seen[group] = true
	}
	assert.Len(t, seen, groups)
}

func TestQueue_ConcurrentReadersAndWriters(t *testing.T) {
	t.Parallel()
	q := helpqueue.New()

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = q.Enqueue(helpqueue.Group(i+1), helpqueue.Channel(i))
		}()
		go func() {
			defer wg.Done()
			if _, err := q.Sorted(); err != nil {
				t.Error(err)
			}
			if _, err := q.Len(); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	n, err := q.Len()
	require.NoError(t, err)
	assert.Equal(t, 100, n)
}
