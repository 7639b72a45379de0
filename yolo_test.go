package dronelbl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYOLOAnnotation_String(t *testing.T) {
	a := YOLOAnnotation{ClassID: 7, CenterX: 0.5, CenterY: 1.0 / 3, Width: 0.0000004, Height: 1}
	assert.Equal(t, "7 0.500000 0.333333 0.000000 1.000000", a.String())
}

func TestParseYOLOAnnotation(t *testing.T) {
	a, err := ParseYOLOAnnotation("2 0.125000 0.125000 0.050000 0.050000")
	require.NoError(t, err)
	assert.Equal(t, YOLOAnnotation{ClassID: 2, CenterX: 0.125, CenterY: 0.125, Width: 0.05, Height: 0.05}, a)

	_, err = ParseYOLOAnnotation("2 0.1 0.1 0.1")
	assert.Error(t, err)
	_, err = ParseYOLOAnnotation("car 0.1 0.1 0.1 0.1")
	assert.Error(t, err)
	_, err = ParseYOLOAnnotation("1 0.1 x 0.1 0.1")
	assert.Error(t, err)
}

func TestYOLOAnnotation_Coords(t *testing.T) {
	a := YOLOAnnotation{CenterX: 0.5, CenterY: 0.25, Width: 0.2, Height: 0.1}
	c := a.Coords(200, 400)
	assert.InDeltaSlice(t, []float64{80, 80, 120, 120}, c[:], 1e-9)
}

func TestWriteYOLO(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	written, err := WriteYOLO(path, nil)
	require.NoError(t, err)
	assert.False(t, written)
	assert.NoFileExists(t, path)

	annotations := []YOLOAnnotation{
		{ClassID: 0, CenterX: 0.1, CenterY: 0.2, Width: 0.3, Height: 0.4},
		{ClassID: 9, CenterX: 1, CenterY: 1, Width: 0, Height: 0},
	}
	written, err = WriteYOLO(path, annotations)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, "0 0.100000 0.200000 0.300000 0.400000\n9 1.000000 1.000000 0.000000 0.000000\n",
		readTestFile(t, path))

	read, err := ReadYOLO(path)
	require.NoError(t, err)
	assert.Equal(t, annotations, read)
}

func TestWriteYOLO_MissingDir(t *testing.T) {
	_, err := WriteYOLO(filepath.Join(t.TempDir(), "missing", "a.txt"),
		[]YOLOAnnotation{{ClassID: 1}})
	assert.Error(t, err)
}

func TestFromYOLO(t *testing.T) {
	dir := t.TempDir()
	labelDir := filepath.Join(dir, "labels")
	imageDir := filepath.Join(dir, "images")

	writeTestImage(t, filepath.Join(imageDir, "a.jpg"), 200, 100)
	writeTestImage(t, filepath.Join(imageDir, "b.png"), 50, 50)
	writeTestFile(t, filepath.Join(labelDir, "a.txt"),
		"3 0.500000 0.500000 0.100000 0.200000",
		"12 0.5 0.5 0.1 0.1",
	)
	writeTestFile(t, filepath.Join(labelDir, "b.txt"), "0 0.5 0.5 1 1")
	writeTestFile(t, filepath.Join(labelDir, "c.txt"), "0 0.5 0.5 1 1")
	writeTestFile(t, filepath.Join(labelDir, "d.txt"), "garbage")
	writeTestImage(t, filepath.Join(imageDir, "d.jpg"), 10, 10)

	data, err := FromYOLO(labelDir, imageDir)
	require.NoError(t, err)
	require.Len(t, data, 2)

	a := data[0]
	assert.Equal(t, filepath.Join(imageDir, "a.jpg"), a.FilePath)
	assert.Equal(t, 200, a.Width)
	assert.Equal(t, 100, a.Height)
	require.Len(t, a.Annotations, 1)
	assert.Equal(t, "car", a.Annotations[0].Label())
	assert.InDeltaSlice(t, []float64{90, 40, 110, 60}, a.Annotations[0].Coords[:], 1e-9)

	b := data[1]
	assert.Equal(t, filepath.Join(imageDir, "b.png"), b.FilePath)
	assert.InDeltaSlice(t, []float64{0, 0, 50, 50}, b.Annotations[0].Coords[:], 1e-9)
}
