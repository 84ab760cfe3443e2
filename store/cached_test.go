package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/confmerge/internal/mock"
	"github.com/MKhiriev/confmerge/models"
)

// TestCachedStore_SameInstance verifies that repeated lookups return the
// identical instance.
func TestCachedStore_SameInstance(t *testing.T) {
	c := NewCachedStore(models.Mapping{"foo": map[string]any{"bar": "baz"}})
	target := testShape()
	ctx := context.Background()

	config1, err := c.Get(ctx, "foo", target)
	require.NoError(t, err)
	config2, err := c.Get(ctx, "foo", target)
	require.NoError(t, err)
	config3, err := c.Get(ctx, "foo", target)
	require.NoError(t, err)
	config4, err := c.Get(ctx, "foo", target)
	require.NoError(t, err)

	assert.Equal(t, &testConfig{Bar: "baz"}, config1)
	assert.Same(t, config1, config2)
	assert.Same(t, config2, config3)
	assert.Same(t, config3, config4)
}

// TestCachedStore_DelegatesOncePerPair verifies with a mock that the wrapped
// getter is reached once for each distinct (path, shape) pair, including
// nil results, and that alternating shapes on one path do not evict each
// other.
func TestCachedStore_DelegatesOncePerPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockGetter(ctrl)
	ctx := context.Background()
	a := testShape()
	b := serverShape()

	inner.EXPECT().Get(ctx, "foo", a).Return(&testConfig{Bar: "a"}, nil).Times(1)
	inner.EXPECT().Get(ctx, "foo", b).Return(&serverConfig{Host: "b"}, nil).Times(1)
	inner.EXPECT().Get(ctx, "foo", nil).Return(map[string]any{}, nil).Times(1)
	inner.EXPECT().Get(ctx, "", nil).Return(map[string]any{"whole": true}, nil).Times(1)
	inner.EXPECT().Get(ctx, "missing", nil).Return(nil, nil).Times(1)

	c := NewCached(inner, nil)
	for i := 0; i < 3; i++ {
		for _, target := range []*models.Shape{a, b, nil} {
			_, err := c.Get(ctx, "foo", target)
			require.NoError(t, err)
		}
		_, err := c.Get(ctx, "", nil)
		require.NoError(t, err)

		v, err := c.Get(ctx, "missing", nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	}

	assert.Equal(t, 5, c.Len())
}

// TestCachedStore_ErrorsNotCached verifies that a failing lookup is retried.
func TestCachedStore_ErrorsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := mock.NewMockGetter(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		inner.EXPECT().Get(ctx, "foo", nil).Return(nil, assert.AnError),
		inner.EXPECT().Get(ctx, "foo", nil).Return("ok", nil),
	)

	c := NewCached(inner, nil)

	_, err := c.Get(ctx, "foo", nil)
	assert.ErrorIs(t, err, assert.AnError)

	v, err := c.Get(ctx, "foo", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	v, err = c.Get(ctx, "foo", nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
}

// TestCachedStore_PathsCachedVerbatim verifies that differently cased paths
// are distinct entries that resolve to equal values.
func TestCachedStore_PathsCachedVerbatim(t *testing.T) {
	c := NewCachedStore(models.Mapping{"foo": map[string]any{"bar": "baz"}})
	ctx := context.Background()

	lower, err := c.Get(ctx, "foo", testShape())
	require.NoError(t, err)
	upper, err := c.Get(ctx, "FOO", testShape())
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.Equal(t, 2, c.Len())
}

// TestCachedStore_ConcurrentFirstLookup verifies that concurrent first calls
// all observe one instance.
func TestCachedStore_ConcurrentFirstLookup(t *testing.T) {
	c := NewCachedStore(models.Mapping{"foo": map[string]any{"bar": "baz"}})
	target := testShape()

	const workers = 16
	results := make([]any, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(context.Background(), "foo", target)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		assert.Same(t, results[0], results[i])
	}
}
