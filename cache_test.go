package cmsconsole

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/cmsconsole/views"
)

func countingLoader(calls *int, err *error) func(context.Context) (views.DashboardStats, error) {
	return func(context.Context) (views.DashboardStats, error) {
		*calls++
		if *err != nil {
			return views.DashboardStats{}, *err
		}
		return views.DashboardStats{Blogs: *calls, Careers: 2, Contacts: 3}, nil
	}
}

func TestStatsCacheServesWithinTTL(t *testing.T) {
	var calls int
	var loadErr error
	c := NewStatsCache(countingLoader(&calls, &loadErr), time.Minute)

	first, err := c.Get(context.Background())
	require.NoError(t, err)
	second, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestStatsCacheInvalidate(t *testing.T) {
	var calls int
	var loadErr error
	c := NewStatsCache(countingLoader(&calls, &loadErr), time.Minute)

	_, err := c.Get(context.Background())
	require.NoError(t, err)
	c.Invalidate()
	stats, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, stats.Blogs)
}

func TestStatsCacheExpires(t *testing.T) {
	var calls int
	var loadErr error
	c := NewStatsCache(countingLoader(&calls, &loadErr), 20*time.Millisecond)

	_, err := c.Get(context.Background())
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	_, err = c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestStatsCacheDoesNotKeepFailures(t *testing.T) {
	var calls int
	loadErr := errors.New("cms down")
	c := NewStatsCache(countingLoader(&calls, &loadErr), time.Minute)

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, loadErr)

	loadErr = nil
	stats, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Blogs)
	assert.Equal(t, 2, calls)
}
