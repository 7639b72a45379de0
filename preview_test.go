package dronelbl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	dir := t.TempDir()
	data := testAnnotatedFiles(t, dir, 1)
	coords := data[0].Annotations[0].Coords

	outPath := filepath.Join(dir, "out", "a.png")
	require.NoError(t, RenderPreview(data[0], outPath, PreviewOptions{LongerSide: 128}))
	assert.Equal(t, coords, data[0].Annotations[0].Coords, "caller's annotations must not be scaled")

	cfg, format, err := decodeImageConfig(outPath)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 64, cfg.Height)
}

func TestRenderPreview_KeepsSize(t *testing.T) {
	dir := t.TempDir()
	data := testAnnotatedFiles(t, dir, 1)

	outPath := filepath.Join(dir, "out.jpg")
	require.NoError(t, RenderPreview(data[0], outPath, PreviewOptions{HideLabels: true}))
	cfg, format, err := decodeImageConfig(outPath)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestRenderPreviews(t *testing.T) {
	dir := t.TempDir()
	data := testAnnotatedFiles(t, dir, 3)
	data[2].FilePath = filepath.Join(dir, "missing.jpg")

	outDir := filepath.Join(dir, "previews")
	assert.Equal(t, 2, RenderPreviews(data, outDir, PreviewOptions{LongerSide: 32}))
	assert.FileExists(t, filepath.Join(outDir, "a.jpg"))
	assert.FileExists(t, filepath.Join(outDir, "b.jpg"))
	assert.NoFileExists(t, filepath.Join(outDir, "missing.jpg"))
}
