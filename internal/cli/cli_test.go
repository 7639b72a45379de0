package cli

import (
	"testing"

	"github.com/akamensky/argparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenv(t *testing.T) {
	t.Setenv(EnvDatasetDir, "")
	assert.Equal(t, "default", Getenv(EnvDatasetDir, "default"))

	t.Setenv(EnvDatasetDir, "/data/visdrone")
	assert.Equal(t, "/data/visdrone", Getenv(EnvDatasetDir, "default"))
}

func TestAddCommon(t *testing.T) {
	p := argparse.NewParser("test", "")
	c := AddCommon(p)
	require.NoError(t, p.Parse([]string{"test", "-v", "--log-file", "run.log"}))
	assert.True(t, *c.verbose)
	assert.Equal(t, "run.log", *c.logFile)
}
