package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Title string `json:"title"`
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	var got entry
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, m.Set(ctx, "k", entry{Title: "Alpha"}, time.Minute))
	found, err = m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Alpha", got.Title)

	require.NoError(t, m.Delete(ctx, "k"))
	found, _ = m.Get(ctx, "k", &got)
	assert.False(t, found)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	require.NoError(t, m.Set(ctx, "k", entry{Title: "Alpha"}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var got entry
	found, err := m.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
