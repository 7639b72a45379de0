package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, New(Options{}).GetLevel())
	assert.Equal(t, logrus.DebugLevel, New(Options{Verbose: true}).GetLevel())
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	logger := New(Options{File: path})
	logger.WithField("split", "train").Info("Converted")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[split:train]")
	assert.Contains(t, string(b), "Converted")
	assert.NotContains(t, string(b), "\x1b[", "file output must not be colored")
}
