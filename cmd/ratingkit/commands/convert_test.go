package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	out, closeOut, err := openOutput(path)
	require.NoError(t, err)

	_, err = out.Write([]byte("a,b\n"))
	require.NoError(t, err)
	require.NoError(t, closeOut())

	// A failed close surfaces instead of being swallowed.
	assert.Error(t, closeOut())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}

func TestOpenOutputStdout(t *testing.T) {
	out, closeOut, err := openOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, out)
	assert.NoError(t, closeOut())
}

func TestOpenInputMissingFile(t *testing.T) {
	_, _, err := openInput(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
