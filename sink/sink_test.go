package sink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colorfulnotion/isrgen/isr"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isr.asm")
	doc := isr.Generate()
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, doc.String(), string(data))

	_, err = os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err), "temp file must not survive the rename")
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "isr.asm")
	require.NoError(t, os.WriteFile(path, []byte("stale artifact\n"), 0644))

	doc := isr.GenerateIRQ()
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, doc.String(), string(data))
}

func TestWriteFileBadDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "isr.asm")
	err := WriteFile(path, isr.Generate())
	require.Error(t, err)

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr), "no partial artifact on failure")
}
