package global

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRollingWriterRotates(t *testing.T) {
	dir := t.TempDir()

	w, err := NewRollingFileWriter(dir, "test", 10, 3)
	require.NoError(t, err)

	for _, line := range []string{"first\n", "second\n", "third\n", "fourth\n"} {
		n, err := w.Write([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, len(line), n)
	}

	assert.Equal(t, "fourth\n", readLog(t, filepath.Join(dir, "test.log")))
	assert.Equal(t, "third\n", readLog(t, filepath.Join(dir, "test-1.log")))
	assert.Equal(t, "second\n", readLog(t, filepath.Join(dir, "test-2.log")))
	assert.NoFileExists(t, filepath.Join(dir, "test-3.log"))
}

func TestRollingWriterAppendsUnderLimit(t *testing.T) {
	dir := t.TempDir()

	w, err := NewRollingFileWriter(dir, "test", 100, 2)
	require.NoError(t, err)

	for range 5 {
		_, err := w.Write([]byte("line\n"))
		require.NoError(t, err)
	}

	assert.Equal(t, strings.Repeat("line\n", 5), readLog(t, filepath.Join(dir, "test.log")))
	assert.NoFileExists(t, filepath.Join(dir, "test-1.log"))
}

func TestRollingWriterSingleFile(t *testing.T) {
	dir := t.TempDir()

	w, err := NewRollingFileWriter(dir, "test", 4, 1)
	require.NoError(t, err)

	_, err = w.Write([]byte("aaa"))
	require.NoError(t, err)
	_, err = w.Write([]byte("bbb"))
	require.NoError(t, err)

	assert.Equal(t, "bbb", readLog(t, filepath.Join(dir, "test.log")))
	assert.NoFileExists(t, filepath.Join(dir, "test-1.log"))
}

func TestRollingWriterOversizedWrite(t *testing.T) {
	dir := t.TempDir()

	w, err := NewRollingFileWriter(filepath.Join(dir, "logs"), "test", 4, 2)
	require.NoError(t, err)

	// an empty file takes the write even when it is larger than the limit
	_, err = w.Write([]byte("0123456789"))
	require.NoError(t, err)
	assert.Equal(t, "0123456789", readLog(t, filepath.Join(dir, "logs", "test.log")))
}
