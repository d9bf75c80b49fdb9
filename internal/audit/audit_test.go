package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauv0809/wordle-tribble/internal/scores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")
	r := NewFile(path)

	r.Record("ann", 100, scores.Guessed(3))
	r.Record("bob", 100, scores.Failed())
	require.NoError(t, r.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `Day 100\s+ann\s+score 3$`, lines[0])
	assert.Regexp(t, `Day 100\s+bob\s+score X$`, lines[1])
}

func TestNewFile_EmptyPathDisables(t *testing.T) {
	r := NewFile("")
	r.Record("ann", 1, scores.Guessed(1))
	assert.NoError(t, r.Close())
	assert.Equal(t, Nop(), r)
}
