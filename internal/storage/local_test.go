package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocalStore(dir, "/images/")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "qr_1_lunch_2024-03-11.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/qr_1_lunch_2024-03-11.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "qr_1_lunch_2024-03-11.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	// Overwrite behaves like an upsert.
	_, err = store.Save(context.Background(), "qr_1_lunch_2024-03-11.png", []byte("newer"))
	require.NoError(t, err)

	data, err = os.ReadFile(filepath.Join(dir, "qr_1_lunch_2024-03-11.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("newer"), data)
}

func TestLocalStore_Save_RejectsPathEscape(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/images")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "../evil.png", []byte("x"))
	assert.Error(t, err)
}
