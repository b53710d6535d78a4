package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyprdrop/pkg/logger"
)

func TestOpenLedgerReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses")
	require.NoError(t, os.WriteFile(path, []byte("term\t0x1\n"), 0o644))

	l := openLedger(path, logger.NewNop())
	require.Len(t, l.Entries(), 1)
	assert.Equal(t, "term", l.Entries()[0].Key)
}

func TestOpenLedgerUnreadableContinuesEmpty(t *testing.T) {
	// A directory in place of the file fails on read.
	path := filepath.Join(t.TempDir(), "addresses")
	require.NoError(t, os.Mkdir(path, 0o755))

	l := openLedger(path, logger.NewNop())
	require.NotNil(t, l)
	assert.Empty(t, l.Entries())

	require.NoError(t, l.Record("term", "0x2"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
