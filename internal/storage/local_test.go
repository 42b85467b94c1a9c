package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) Storage {
	t.Helper()

	store, err := NewStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/uploads",
	})
	require.NoError(t, err)
	return store
}

func TestSaveGetDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Save(ctx, "pic.png", strings.NewReader("png-bytes"), "image/png"))

	exists, err := store.Exists(ctx, "pic.png")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Get(ctx, "pic.png")
	require.NoError(t, err)
	defer reader.Close()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	require.NoError(t, store.Delete(ctx, "pic.png"))
	exists, err = store.Exists(ctx, "pic.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteMissingFileIsNoop(t *testing.T) {
	t.Parallel()

	store := newTestStorage(t)
	assert.NoError(t, store.Delete(context.Background(), "never-existed.png"))
}

func TestGetURL(t *testing.T) {
	t.Parallel()

	store := newTestStorage(t)
	url, err := store.GetURL(context.Background(), "pic.png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/pic.png", url)
}
