package dronelbl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBox(t *testing.T) {
	cases := []struct {
		w, h int
		box  [4]int
	}{
		{1000, 1000, [4]int{100, 100, 50, 50}},
		{1360, 765, [4]int{0, 0, 1360, 765}},
		{640, 480, [4]int{17, 301, 3, 9}},
		{1920, 1080, [4]int{1919, 1079, 1, 1}},
		{7, 13, [4]int{0, 0, 0, 0}},
	}

	for _, c := range cases {
		cx, cy, nw, nh := ConvertBox(c.w, c.h, c.box)
		W, H := float64(c.w), float64(c.h)
		x1, y1, bw, bh := float64(c.box[0]), float64(c.box[1]), float64(c.box[2]), float64(c.box[3])
		assert.InDelta(t, (x1+bw/2)/W, cx, 1e-12)
		assert.InDelta(t, (y1+bh/2)/H, cy, 1e-12)
		assert.InDelta(t, bw/W, nw, 1e-12)
		assert.InDelta(t, bh/H, nh, 1e-12)
	}
}

func TestConvertBox_NoClamping(t *testing.T) {
	cx, _, nw, _ := ConvertBox(100, 100, [4]int{90, 0, 40, 10})
	assert.InDelta(t, 1.1, cx, 1e-12)
	assert.InDelta(t, 0.4, nw, 1e-12)
}

func TestParseVisDroneAnnotation(t *testing.T) {
	a, err := ParseVisDroneAnnotation("684,8,273,116,0,0,0,0")
	require.NoError(t, err)
	assert.Equal(t, VisDroneAnnotation{X: 684, Y: 8, Width: 273, Height: 116}, a)

	a, err = ParseVisDroneAnnotation(" 1, 2, 3, 4, 1, 4, 1, 2, extra\r")
	require.NoError(t, err)
	assert.Equal(t, VisDroneAnnotation{X: 1, Y: 2, Width: 3, Height: 4, Score: 1, Category: 4,
		Truncation: 1, Occlusion: 2}, a)

	_, err = ParseVisDroneAnnotation("1,2,3,4,1,4,0")
	assert.ErrorIs(t, err, ErrMalformedLine)

	_, err = ParseVisDroneAnnotation("1,2,x,4,1,4,0,0")
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestConvertRecord(t *testing.T) {
	a, err := ConvertRecord("100,100,50,50,1,3,0,0", 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, "2 0.125000 0.125000 0.050000 0.050000", a.String())
}

func TestConvertRecord_Drops(t *testing.T) {
	cases := []struct {
		name string
		line string
		want error
	}{
		{"too few fields", "100,100,50,50,1,3", ErrMalformedLine},
		{"empty", "", ErrMalformedLine},
		{"ignored region", "100,100,50,50,1,0,0,0", ErrIgnoredRegion},
		{"ignored region with zero score", "100,100,50,50,0,0,0,0", ErrIgnoredRegion},
		{"zero score", "100,100,50,50,0,4,0,0", ErrZeroScore},
		{"others category", "100,100,50,50,1,11,0,0", ErrClassOutOfRange},
		{"negative category", "100,100,50,50,1,-2,0,0", ErrClassOutOfRange},
		{"right edge outside", "980,100,50,50,1,4,0,0", ErrBoxOutOfBounds},
		{"wider than image", "0,0,2001,10,1,4,0,0", ErrBoxOutOfBounds},
		{"negative origin", "-100,100,50,50,1,4,0,0", ErrBoxOutOfBounds},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ConvertRecord(c.line, 1000, 1000)
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestConvertRecord_BoundsCheckedAfterNormalization(t *testing.T) {
	// The right edge exceeds the image, but the center and size are still within [0, 1].
	a, err := ConvertRecord("900,0,150,100,1,1,0,0", 1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, a.ClassID)
	assert.InDelta(t, 0.975, a.CenterX, 1e-12)
}

func TestConvertRecord_AllClasses(t *testing.T) {
	for category := 1; category <= NumClasses; category++ {
		a, err := ConvertRecord("10,10,10,10,1,"+strconv.Itoa(category)+",0,0", 100, 100)
		require.NoError(t, err)
		assert.Equal(t, category-1, a.ClassID)
	}
}
