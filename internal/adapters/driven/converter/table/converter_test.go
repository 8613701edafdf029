package table

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpgillam/cuneifyplus/internal/core/domain"
)

// TestConverter_New tests lookups against a seeded table
func TestConverter_New(t *testing.T) {
	conv := New(map[string]string{
		"lugal": "𒈗",
		"a":     "𒀀",
	})

	glyph, err := conv.Convert(context.Background(), "lugal")
	require.NoError(t, err)
	assert.Equal(t, "𒈗", glyph)
	assert.Equal(t, 2, conv.Len())
}

// TestConverter_New_CopiesMap tests that the caller's map is not retained
func TestConverter_New_CopiesMap(t *testing.T) {
	signs := map[string]string{"lugal": "𒈗"}
	conv := New(signs)

	signs["lugal"] = "mutated"

	glyph, err := conv.Convert(context.Background(), "lugal")
	require.NoError(t, err)
	assert.Equal(t, "𒈗", glyph)
}

// TestConverter_Convert_Unrecognised tests a miss
func TestConverter_Convert_Unrecognised(t *testing.T) {
	conv := New(map[string]string{"lugal": "𒈗"})

	_, err := conv.Convert(context.Background(), "zz")
	assert.ErrorIs(t, err, domain.ErrUnrecognisedSign)
}

// TestConverter_Convert_EmptySign tests the empty-sign rule
func TestConverter_Convert_EmptySign(t *testing.T) {
	conv := New(nil)

	glyph, err := conv.Convert(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, glyph)
}

// TestConverter_Load tests loading a sign file
func TestConverter_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.tsv")
	content := "# sign file\n\nlugal\t𒈗\na\t𒀀\n  ni\t𒉌  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	conv, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, conv.Len())

	glyph, err := conv.Convert(context.Background(), "ni")
	require.NoError(t, err)
	assert.Equal(t, "𒉌", glyph)
}

// TestConverter_Load_Malformed tests that a line without a tab fails
// with the file position
func TestConverter_Load_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.tsv")
	require.NoError(t, os.WriteFile(path, []byte("lugal 𒈗\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ":1:")
}

// TestConverter_Load_MissingFile tests a missing sign file
func TestConverter_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.tsv"))
	assert.Error(t, err)
}

// TestConverter_Reload tests picking up file edits
func TestConverter_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.tsv")
	require.NoError(t, os.WriteFile(path, []byte("lugal\t𒈗\n"), 0o644))

	conv, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, conv.Len())

	require.NoError(t, os.WriteFile(path, []byte("lugal\t𒈗\na\t𒀀\n"), 0o644))
	require.NoError(t, conv.Reload())
	assert.Equal(t, 2, conv.Len())
}

// TestConverter_Reload_NoFile tests that reloading a map-backed table
// is a no-op
func TestConverter_Reload_NoFile(t *testing.T) {
	conv := New(map[string]string{"lugal": "𒈗"})

	require.NoError(t, conv.Reload())
	assert.Equal(t, 1, conv.Len())
}

// TestConverter_Watch_NoFile tests that watching a map-backed table fails
func TestConverter_Watch_NoFile(t *testing.T) {
	conv := New(nil)

	err := conv.Watch(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestConverter_Watch tests hot reload on file change
func TestConverter_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signs.tsv")
	require.NoError(t, os.WriteFile(path, []byte("lugal\t𒈗\n"), 0o644))

	conv, err := Load(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- conv.Watch(ctx) }()

	// Give the watcher a moment to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("lugal\t𒈗\na\t𒀀\n"), 0o644))

	require.Eventually(t, func() bool {
		return conv.Len() == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
