package backdrop

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestReadNoFile(t *testing.T) {
	img, err := Read("none.png", nil)
	assert.NoError(t, err)
	assert.Nil(t, img)

	img, err = FromURI(nil)
	assert.NoError(t, err)
	assert.Nil(t, img)
}

func TestRead(t *testing.T) {
	img, err := Read("chart.png", strings.NewReader("not really a png"))
	require.NoError(t, err)
	assert.Equal(t, "chart.png", img.Name)
	assert.Equal(t, []byte("not really a png"), img.Data)
	assert.Empty(t, img.Path)

	res := img.Resource()
	assert.Equal(t, "chart.png", res.Name())
	assert.Equal(t, img.Data, res.Content())
}

func TestReadError(t *testing.T) {
	_, err := Read("broken.png", failingReader{})
	assert.ErrorContains(t, err, "boom")
}

func TestReadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(p, []byte{1, 2, 3}, 0o644))

	img, err := ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "chart.png", img.Name)
	assert.Equal(t, p, img.Path)
	assert.Equal(t, []byte{1, 2, 3}, img.Data)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "chart.png")
	require.NoError(t, os.WriteFile(p, []byte("v1"), 0o644))

	reloaded := make(chan *Image, 8)
	w, err := NewWatcher(p, func(img *Image) { reloaded <- img }, nil)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(p, []byte("v2"), 0o644))

	select {
	case img := <-reloaded:
		assert.Equal(t, []byte("v2"), img.Data)
		assert.Equal(t, w.Path(), img.Path)
	case <-time.After(3 * time.Second):
		t.Fatal("image was not reloaded")
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	p := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, os.WriteFile(p, []byte("v1"), 0o644))

	w, err := NewWatcher(p, nil, nil)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "chart.png"), nil, nil)
	assert.Error(t, err)
}
